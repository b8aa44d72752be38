package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleDoctor.Valid())
	assert.True(t, RolePatient.Valid())

	assert.False(t, Role("").Valid())
	assert.False(t, Role("admin").Valid())
	assert.False(t, Role("SUPERUSER").Valid())
}

func TestRoleAuthorities(t *testing.T) {
	assert.Equal(t, []string{"ADMIN"}, RoleAdmin.Authorities())
	assert.Equal(t, []string{"DOCTOR"}, RoleDoctor.Authorities())

	// Same role always yields the same authority set.
	assert.Equal(t, RolePatient.Authorities(), RolePatient.Authorities())
}

func TestHasAnyRole(t *testing.T) {
	assert.True(t, HasAnyRole(RoleAdmin, RoleAdmin))
	assert.True(t, HasAnyRole(RoleDoctor, RoleAdmin, RoleDoctor))

	assert.False(t, HasAnyRole(RolePatient, RoleAdmin, RoleDoctor))
	assert.False(t, HasAnyRole(RoleAdmin))
}
