package permissions

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/uci-sgcd/panel-api/internal/models"
)

func TestAdminManagesUsersButNotReports(t *testing.T) {
	assert.True(t, HasPermission(models.RoleAdmin, ManageUsers))
	assert.True(t, HasPermission(models.RoleAdmin, ManageRoles))
	assert.True(t, HasPermission(models.RoleAdmin, DeleteProfessor))
	assert.False(t, HasPermission(models.RoleAdmin, DownloadReports))
	assert.False(t, HasPermission(models.RoleAdmin, AddComment))
}

func TestDirectorIsReadOnly(t *testing.T) {
	assert.True(t, HasPermission(models.RoleDirector, ViewProfessors))
	assert.True(t, HasPermission(models.RoleDirector, DownloadReports))
	assert.True(t, HasPermission(models.RoleDirector, ViewComments))
	assert.False(t, HasPermission(models.RoleDirector, AddProfessor))
	assert.False(t, HasPermission(models.RoleDirector, EditProfessor))
	assert.False(t, HasPermission(models.RoleDirector, AddComment))
}

func TestDisciplineAndDepartmentHeadsMatch(t *testing.T) {
	for _, perm := range []Permission{ViewProfessors, AddProfessor, EditProfessor, DeleteProfessor, AddComment} {
		assert.True(t, HasPermission(models.RoleJefeDisciplina, perm), string(perm))
		assert.True(t, HasPermission(models.RoleJefeDepartamento, perm), string(perm))
	}
	assert.False(t, HasPermission(models.RoleJefeDisciplina, DownloadReports))
	assert.False(t, HasPermission(models.RoleJefeDepartamento, ManageUsers))
}

func TestVicedecanoHasWidestRosterAccess(t *testing.T) {
	for _, perm := range []Permission{ViewProfessors, AddProfessor, EditProfessor, DeleteProfessor, DownloadReports, ViewComments, AddComment} {
		assert.True(t, HasPermission(models.RoleVicedecano, perm), string(perm))
	}
	assert.False(t, HasPermission(models.RoleVicedecano, ManageUsers))
}

func TestUnknownRoleGrantsNothing(t *testing.T) {
	assert.False(t, HasPermission(models.Role("ESTUDIANTE"), ViewProfessors))
	assert.False(t, HasPermission(models.Role(""), ViewProfessors))
	assert.Empty(t, PermissionsFor(models.Role("ESTUDIANTE")))
}

func TestPermissionsForReturnsCopy(t *testing.T) {
	perms := PermissionsFor(models.RoleDirector)
	perms[0] = Permission("mutated")

	assert.Equal(t, ViewProfessors, PermissionsFor(models.RoleDirector)[0])
}

func TestConvenienceHelpers(t *testing.T) {
	assert.True(t, CanManageProfessors(models.RoleJefeDisciplina))
	assert.False(t, CanManageProfessors(models.RoleDirector))
	assert.True(t, CanDownloadReports(models.RoleVicedecano))
	assert.True(t, CanViewComments(models.RoleDirector))
	assert.False(t, CanViewComments(models.RoleJefeDisciplina))
}
