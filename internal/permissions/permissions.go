package permissions

import (
	"github.com/uci-sgcd/panel-api/internal/models"
)

// Permission is a single capability token.
type Permission string

const (
	ManageUsers     Permission = "manage_users"
	ManageRoles     Permission = "manage_roles"
	ViewProfessors  Permission = "view_professors"
	AddProfessor    Permission = "add_professor"
	EditProfessor   Permission = "edit_professor"
	DeleteProfessor Permission = "delete_professor"
	DownloadReports Permission = "download_reports"
	ViewComments    Permission = "view_comments"
	AddComment      Permission = "add_comment"
)

// rolePermissions is the static role→permission table. Changing it is a code
// change, not a runtime operation.
var rolePermissions = map[models.Role][]Permission{
	models.RoleAdmin: {
		ManageUsers,
		ManageRoles,
		ViewProfessors,
		AddProfessor,
		EditProfessor,
		DeleteProfessor,
	},
	models.RoleDirector: {
		ViewProfessors,
		DownloadReports,
		ViewComments,
	},
	models.RoleJefeDisciplina: {
		ViewProfessors,
		AddProfessor,
		EditProfessor,
		DeleteProfessor,
		AddComment,
	},
	models.RoleJefeDepartamento: {
		ViewProfessors,
		AddProfessor,
		EditProfessor,
		DeleteProfessor,
		AddComment,
	},
	models.RoleVicedecano: {
		ViewProfessors,
		AddProfessor,
		EditProfessor,
		DeleteProfessor,
		DownloadReports,
		ViewComments,
		AddComment,
	},
}

// HasPermission reports whether the role grants the permission. Roles absent
// from the table grant nothing.
func HasPermission(role models.Role, perm Permission) bool {
	for _, p := range rolePermissions[role] {
		if p == perm {
			return true
		}
	}
	return false
}

// PermissionsFor returns a copy of the role's permission set.
func PermissionsFor(role models.Role) []Permission {
	perms := rolePermissions[role]
	out := make([]Permission, len(perms))
	copy(out, perms)
	return out
}

// CanManageProfessors reports whether the role may edit the roster.
func CanManageProfessors(role models.Role) bool {
	return HasPermission(role, EditProfessor)
}

// CanDownloadReports reports whether the role may download reports.
func CanDownloadReports(role models.Role) bool {
	return HasPermission(role, DownloadReports)
}

// CanViewComments reports whether the role may read the audit trail.
func CanViewComments(role models.Role) bool {
	return HasPermission(role, ViewComments)
}
