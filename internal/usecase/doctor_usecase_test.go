package usecase

import (
	"context"
	"testing"

	"hms-backend/internal/delivery/dto"
	"hms-backend/internal/delivery/http/middleware"
	"hms-backend/internal/domain/entity"
	"hms-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// stubDoctorListCache records cache traffic without touching Redis.
type stubDoctorListCache struct {
	doctors     []dto.DoctorResponse
	cached      bool
	invalidated int
}

func (c *stubDoctorListCache) Get(ctx context.Context) ([]dto.DoctorResponse, bool) {
	return c.doctors, c.cached
}

func (c *stubDoctorListCache) Set(ctx context.Context, doctors []dto.DoctorResponse) {
	c.doctors = doctors
	c.cached = true
}

func (c *stubDoctorListCache) Invalidate(ctx context.Context) {
	c.doctors = nil
	c.cached = false
	c.invalidated++
}

func newDoctorUsecase(t *testing.T) (DoctorUsecase, *gorm.DB, *stubDoctorListCache) {
	t.Helper()
	db := setupTestDB(t)
	cache := &stubDoctorListCache{}
	uc := NewDoctorUsecase(
		db,
		testLogger(),
		repository.NewUserRepository(),
		repository.NewDoctorProfileRepository(),
		repository.NewScheduleEntryRepository(),
		cache,
	)
	return uc, db, cache
}

func adminContext() context.Context {
	return middleware.WithRole(context.Background(), entity.RoleAdmin)
}

func createDoctorRequest(email, license string) *dto.CreateDoctorRequest {
	return &dto.CreateDoctorRequest{
		Email:             email,
		Password:          "password123",
		FullName:          "Dr. Test",
		Specialty:         "Cardiology",
		LicenseNumber:     license,
		YearsOfExperience: 5,
		Schedules: []dto.ScheduleRequest{
			{DayOfWeek: entity.DayMonday, StartTime: "09:00", EndTime: "12:00"},
			{DayOfWeek: entity.DayWednesday, StartTime: "13:00", EndTime: "17:00"},
		},
	}
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(model).Count(&count).Error)
	return count
}

func TestDoctorUsecase_CreateDoctor(t *testing.T) {
	uc, db, cache := newDoctorUsecase(t)

	doctor, err := uc.CreateDoctor(adminContext(), createDoctorRequest("doc@x.com", "LIC-1"))
	require.NoError(t, err)

	assert.Equal(t, "doc@x.com", doctor.User.Email)
	assert.Equal(t, string(entity.RoleDoctor), doctor.User.Role)
	assert.Equal(t, "Cardiology", doctor.Specialty)
	assert.Equal(t, "LIC-1", doctor.LicenseNumber)
	assert.Len(t, doctor.Schedules, 2)

	assert.Equal(t, int64(1), countRows(t, db, &entity.User{}))
	assert.Equal(t, int64(1), countRows(t, db, &entity.DoctorProfile{}))
	assert.Equal(t, int64(2), countRows(t, db, &entity.ScheduleEntry{}))
	assert.Equal(t, 1, cache.invalidated)
}

func TestDoctorUsecase_CreateDoctorForbiddenWritesNothing(t *testing.T) {
	uc, db, _ := newDoctorUsecase(t)

	for _, role := range []entity.Role{entity.RoleDoctor, entity.RolePatient} {
		ctx := middleware.WithRole(context.Background(), role)
		_, err := uc.CreateDoctor(ctx, createDoctorRequest("doc@x.com", "LIC-1"))
		assert.ErrorIs(t, err, ErrForbidden)
	}

	// No actor at all is rejected the same way.
	_, err := uc.CreateDoctor(context.Background(), createDoctorRequest("doc@x.com", "LIC-1"))
	assert.ErrorIs(t, err, ErrForbidden)

	assert.Equal(t, int64(0), countRows(t, db, &entity.User{}))
	assert.Equal(t, int64(0), countRows(t, db, &entity.DoctorProfile{}))
	assert.Equal(t, int64(0), countRows(t, db, &entity.ScheduleEntry{}))
}

func TestDoctorUsecase_CreateDoctorInvalidScheduleAborts(t *testing.T) {
	uc, db, _ := newDoctorUsecase(t)

	req := createDoctorRequest("doc@x.com", "LIC-1")
	req.Schedules = []dto.ScheduleRequest{
		{DayOfWeek: entity.DayMonday, StartTime: "12:00", EndTime: "09:00"},
	}

	before := countRows(t, db, &entity.User{})
	_, err := uc.CreateDoctor(adminContext(), req)
	assert.ErrorIs(t, err, ErrInvalidScheduleTime)

	// No identity may survive a failed aggregate creation.
	assert.Equal(t, before, countRows(t, db, &entity.User{}))
	assert.Equal(t, int64(0), countRows(t, db, &entity.DoctorProfile{}))
	assert.Equal(t, int64(0), countRows(t, db, &entity.ScheduleEntry{}))
}

func TestDoctorUsecase_CreateDoctorDuplicateLicenseRollsBack(t *testing.T) {
	uc, db, _ := newDoctorUsecase(t)
	ctx := adminContext()

	first, err := uc.CreateDoctor(ctx, createDoctorRequest("first@x.com", "LIC-1"))
	require.NoError(t, err)

	_, err = uc.CreateDoctor(ctx, createDoctorRequest("second@x.com", "LIC-1"))
	assert.ErrorIs(t, err, ErrLicenseAlreadyExists)

	// The failed attempt must not leave its identity row behind.
	assert.Equal(t, int64(1), countRows(t, db, &entity.User{}))
	assert.Equal(t, int64(1), countRows(t, db, &entity.DoctorProfile{}))

	list, err := uc.GetAllDoctors(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, first.ID, list.Doctors[0].ID)
}

func TestDoctorUsecase_CreateDoctorDuplicateEmail(t *testing.T) {
	uc, db, _ := newDoctorUsecase(t)
	ctx := adminContext()

	_, err := uc.CreateDoctor(ctx, createDoctorRequest("doc@x.com", "LIC-1"))
	require.NoError(t, err)

	_, err = uc.CreateDoctor(ctx, createDoctorRequest("doc@x.com", "LIC-2"))
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	assert.Equal(t, int64(1), countRows(t, db, &entity.User{}))
}

func TestDoctorUsecase_UpdateDoctorReplacesScheduleSet(t *testing.T) {
	uc, db, _ := newDoctorUsecase(t)
	ctx := adminContext()

	created, err := uc.CreateDoctor(ctx, createDoctorRequest("doc@x.com", "LIC-1"))
	require.NoError(t, err)
	require.Len(t, created.Schedules, 2)

	updated, err := uc.UpdateDoctor(ctx, created.ID, &dto.UpdateDoctorRequest{
		Schedules: []dto.ScheduleRequest{
			{DayOfWeek: entity.DayFriday, StartTime: "08:00", EndTime: "10:00"},
		},
	})
	require.NoError(t, err)
	require.Len(t, updated.Schedules, 1)
	assert.Equal(t, entity.DayFriday, updated.Schedules[0].DayOfWeek)

	// Exactly the new set persists; none of the original entries survive.
	var entries []entity.ScheduleEntry
	require.NoError(t, db.Find(&entries).Error)
	require.Len(t, entries, 1)
	for _, old := range created.Schedules {
		assert.NotEqual(t, old.ID, entries[0].ID)
	}
}

func TestDoctorUsecase_UpdateDoctorProfileFields(t *testing.T) {
	uc, _, _ := newDoctorUsecase(t)
	ctx := adminContext()

	created, err := uc.CreateDoctor(ctx, createDoctorRequest("doc@x.com", "LIC-1"))
	require.NoError(t, err)

	years := 12
	updated, err := uc.UpdateDoctor(ctx, created.ID, &dto.UpdateDoctorRequest{
		Specialty:         "Neurology",
		YearsOfExperience: &years,
	})
	require.NoError(t, err)
	assert.Equal(t, "Neurology", updated.Specialty)
	assert.Equal(t, 12, updated.YearsOfExperience)
	// License untouched, schedules untouched.
	assert.Equal(t, "LIC-1", updated.LicenseNumber)
	assert.Len(t, updated.Schedules, 2)
}

func TestDoctorUsecase_UpdateDoctorBlankPasswordKeepsHash(t *testing.T) {
	uc, db, _ := newDoctorUsecase(t)
	ctx := adminContext()

	created, err := uc.CreateDoctor(ctx, createDoctorRequest("doc@x.com", "LIC-1"))
	require.NoError(t, err)

	var before entity.User
	require.NoError(t, db.Where("email = ?", "doc@x.com").First(&before).Error)

	_, err = uc.UpdateDoctor(ctx, created.ID, &dto.UpdateDoctorRequest{FullName: "Dr. Renamed"})
	require.NoError(t, err)

	var after entity.User
	require.NoError(t, db.Where("email = ?", "doc@x.com").First(&after).Error)
	assert.Equal(t, before.Password, after.Password)
	assert.Equal(t, "Dr. Renamed", after.FullName)

	// A supplied password is re-hashed.
	_, err = uc.UpdateDoctor(ctx, created.ID, &dto.UpdateDoctorRequest{Password: "new-password-1"})
	require.NoError(t, err)
	require.NoError(t, db.Where("email = ?", "doc@x.com").First(&after).Error)
	assert.NotEqual(t, before.Password, after.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(after.Password), []byte("new-password-1")))
}

func TestDoctorUsecase_UpdateDoctorNotFound(t *testing.T) {
	uc, db, _ := newDoctorUsecase(t)

	created, err := uc.CreateDoctor(adminContext(), createDoctorRequest("doc@x.com", "LIC-1"))
	require.NoError(t, err)

	require.NoError(t, db.Where("id = ?", created.ID).Delete(&entity.DoctorProfile{}).Error)

	_, err = uc.UpdateDoctor(adminContext(), created.ID, &dto.UpdateDoctorRequest{Specialty: "Neurology"})
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestDoctorUsecase_DeleteDoctorCascades(t *testing.T) {
	uc, db, _ := newDoctorUsecase(t)
	ctx := adminContext()

	created, err := uc.CreateDoctor(ctx, createDoctorRequest("doc@x.com", "LIC-1"))
	require.NoError(t, err)

	require.NoError(t, uc.DeleteDoctor(ctx, created.ID))

	assert.Equal(t, int64(0), countRows(t, db, &entity.ScheduleEntry{}))
	assert.Equal(t, int64(0), countRows(t, db, &entity.DoctorProfile{}))
	assert.Equal(t, int64(0), countRows(t, db, &entity.User{}))

	// The owning identity is gone: lookup by email finds nothing.
	user, err := repository.NewUserRepository().FindByEmail(db, "doc@x.com")
	require.NoError(t, err)
	assert.Nil(t, user)

	err = uc.DeleteDoctor(ctx, created.ID)
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestDoctorUsecase_DeleteDoctorForbidden(t *testing.T) {
	uc, db, _ := newDoctorUsecase(t)

	created, err := uc.CreateDoctor(adminContext(), createDoctorRequest("doc@x.com", "LIC-1"))
	require.NoError(t, err)

	ctx := middleware.WithRole(context.Background(), entity.RoleDoctor)
	err = uc.DeleteDoctor(ctx, created.ID)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Equal(t, int64(1), countRows(t, db, &entity.DoctorProfile{}))
}

func TestDoctorUsecase_GetAllDoctorsUsesCache(t *testing.T) {
	uc, _, cache := newDoctorUsecase(t)

	_, err := uc.CreateDoctor(adminContext(), createDoctorRequest("doc@x.com", "LIC-1"))
	require.NoError(t, err)

	// First call fills the cache from the store.
	list, err := uc.GetAllDoctors(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)
	assert.True(t, cache.cached)

	// Second call is served from the cache.
	cache.doctors[0].Specialty = "FromCache"
	list, err = uc.GetAllDoctors(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "FromCache", list.Doctors[0].Specialty)
}

func TestDoctorUsecase_GetDoctor(t *testing.T) {
	uc, _, _ := newDoctorUsecase(t)

	created, err := uc.CreateDoctor(adminContext(), createDoctorRequest("doc@x.com", "LIC-1"))
	require.NoError(t, err)

	doctor, err := uc.GetDoctor(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, doctor.ID)
	assert.Len(t, doctor.Schedules, 2)
}
