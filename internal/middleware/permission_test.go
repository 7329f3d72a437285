package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/uci-sgcd/panel-api/internal/models"
	"github.com/uci-sgcd/panel-api/internal/permissions"
)

// commentRouter mounts the audit trail routes with the same permission gates
// the server uses, behind a stub that injects the given role as the caller.
func commentRouter(role models.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(ContextIdentityKey, &models.Identity{ID: 7, FullName: "Ana Pérez", Role: role})
	})

	ok := func(status int) gin.HandlerFunc {
		return func(c *gin.Context) { c.Status(status) }
	}
	r.GET("/comments",
		RequirePermission(permissions.ViewComments), ok(http.StatusOK))
	r.POST("/comments",
		RequirePermission(permissions.AddComment), ok(http.StatusCreated))
	r.POST("/comments/:id/read",
		RequireAnyPermission(permissions.ViewComments, permissions.AddComment), ok(http.StatusNoContent))
	return r
}

func exercise(r *gin.Engine, method, target string) int {
	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, httptest.NewRequest(method, target, nil))
	return recorder.Code
}

func TestCommentRoutesCarryTheirOwnPermission(t *testing.T) {
	tests := []struct {
		name     string
		role     models.Role
		list     int
		create   int
		markRead int
	}{
		{"jefe disciplina posts without view", models.RoleJefeDisciplina, http.StatusForbidden, http.StatusCreated, http.StatusNoContent},
		{"jefe departamento posts without view", models.RoleJefeDepartamento, http.StatusForbidden, http.StatusCreated, http.StatusNoContent},
		{"director reads only", models.RoleDirector, http.StatusOK, http.StatusForbidden, http.StatusNoContent},
		{"vicedecano holds both", models.RoleVicedecano, http.StatusOK, http.StatusCreated, http.StatusNoContent},
		{"admin holds neither", models.RoleAdmin, http.StatusForbidden, http.StatusForbidden, http.StatusForbidden},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := commentRouter(tc.role)

			assert.Equal(t, tc.list, exercise(r, http.MethodGet, "/comments"))
			assert.Equal(t, tc.create, exercise(r, http.MethodPost, "/comments"))
			assert.Equal(t, tc.markRead, exercise(r, http.MethodPost, "/comments/10/read"))
		})
	}
}

func TestRequireAnyPermissionWithoutIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/comments",
		RequireAnyPermission(permissions.ViewComments, permissions.AddComment),
		func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusUnauthorized, exercise(r, http.MethodGet, "/comments"))
}
