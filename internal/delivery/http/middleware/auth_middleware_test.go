package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hms-backend/config"
	"hms-backend/internal/domain/entity"
	"hms-backend/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTService() *jwt.JWTService {
	return jwt.NewJWTService(config.JWTConfig{Secret: "test-secret", Expiry: time.Hour})
}

func TestAuthenticate(t *testing.T) {
	jwtService := testJWTService()
	m := NewAuthMiddleware(jwtService)

	userID := uuid.New()
	token, err := jwtService.GenerateToken(userID, "doc@x.com", entity.RoleDoctor)
	require.NoError(t, err)

	var gotID uuid.UUID
	var gotEmail string
	var gotRole entity.Role
	handler := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = GetUserIDFromContext(r.Context())
		gotEmail, _ = GetUserEmailFromContext(r.Context())
		gotRole, _ = GetRoleFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{name: "missing header", authHeader: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", authHeader: "Basic " + token, wantStatus: http.StatusUnauthorized},
		{name: "malformed header", authHeader: "Bearer", wantStatus: http.StatusUnauthorized},
		{name: "garbage token", authHeader: "Bearer not-a-token", wantStatus: http.StatusUnauthorized},
		{name: "valid token", authHeader: "Bearer " + token, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}

	// The successful request carried the verified claims into context.
	assert.Equal(t, userID, gotID)
	assert.Equal(t, "doc@x.com", gotEmail)
	assert.Equal(t, entity.RoleDoctor, gotRole)
}

func TestAuthenticateRejectsExpiredToken(t *testing.T) {
	expiredService := jwt.NewJWTService(config.JWTConfig{Secret: "test-secret", Expiry: -time.Minute})
	token, err := expiredService.GenerateToken(uuid.New(), "doc@x.com", entity.RoleDoctor)
	require.NoError(t, err)

	m := NewAuthMiddleware(testJWTService())
	handler := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run with an expired token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAdmin(t *testing.T) {
	handler := RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name       string
		role       entity.Role
		hasRole    bool
		wantStatus int
	}{
		{name: "admin passes", role: entity.RoleAdmin, hasRole: true, wantStatus: http.StatusOK},
		{name: "doctor forbidden", role: entity.RoleDoctor, hasRole: true, wantStatus: http.StatusForbidden},
		{name: "patient forbidden", role: entity.RolePatient, hasRole: true, wantStatus: http.StatusForbidden},
		{name: "no role unauthorized", hasRole: false, wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/users/x", nil)
			if tt.hasRole {
				req = req.WithContext(WithRole(req.Context(), tt.role))
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
