package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"learning_portal_backend/internal/config"
	"learning_portal_backend/internal/model"
	"learning_portal_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubResolver map[string]*model.User

func (s stubResolver) ResolveUser(id string) (*model.User, error) {
	if u, ok := s[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func newUser(id string, role model.UserRole) *model.User {
	u := &model.User{Name: id, Role: role, IsApproved: true}
	u.ID = id
	return u
}

func setupRouter(users stubResolver) (*gin.Engine, *config.Config) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{JWT: config.JWTConfig{Secret: "test-secret"}}

	r := gin.New()
	auth := AuthMiddleware(cfg, users)
	r.GET("/me", auth, func(c *gin.Context) {
		util.Success(c, util.GetUserFromContext(c).ID)
	})
	r.GET("/teacher", auth, RoleMiddleware(model.Teacher), func(c *gin.Context) {
		util.Success(c, "ok")
	})
	return r, cfg
}

func do(r *gin.Engine, path, token string) (*httptest.ResponseRecorder, util.Response) {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body util.Response
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestAuthMiddleware(t *testing.T) {
	student := newUser("s1", model.Student)
	users := stubResolver{student.ID: student}
	r, cfg := setupRouter(users)

	valid, err := util.GenerateJWT(student, cfg.JWT.Secret, time.Hour)
	require.NoError(t, err)
	expired, err := util.GenerateJWT(student, cfg.JWT.Secret, -time.Hour)
	require.NoError(t, err)
	forged, err := util.GenerateJWT(student, "other-secret", time.Hour)
	require.NoError(t, err)
	ghost, err := util.GenerateJWT(newUser("ghost", model.Student), cfg.JWT.Secret, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		status  int
		message string
	}{
		{"no token", "", http.StatusUnauthorized, "Not authorized, no token"},
		{"expired", expired, http.StatusUnauthorized, "Session expired. Please log in again."},
		{"bad signature", forged, http.StatusUnauthorized, "Invalid token"},
		{"deleted user", ghost, http.StatusUnauthorized, "User no longer exists"},
		{"valid", valid, http.StatusOK, "success"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := do(r, "/me", tt.token)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.message, body.Message)
		})
	}
}

func TestAuthMiddleware_QueryToken(t *testing.T) {
	student := newUser("s1", model.Student)
	r, cfg := setupRouter(stubResolver{student.ID: student})

	token, err := util.GenerateJWT(student, cfg.JWT.Secret, time.Hour)
	require.NoError(t, err)

	w, _ := do(r, "/me?token="+token, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRoleMiddleware(t *testing.T) {
	student := newUser("s1", model.Student)
	teacher := newUser("t1", model.Teacher)
	admin := newUser("a1", model.Admin)
	r, cfg := setupRouter(stubResolver{student.ID: student, teacher.ID: teacher, admin.ID: admin})

	for _, tt := range []struct {
		user   *model.User
		status int
	}{
		{teacher, http.StatusOK},
		{student, http.StatusForbidden},
		{admin, http.StatusForbidden},
	} {
		token, err := util.GenerateJWT(tt.user, cfg.JWT.Secret, time.Hour)
		require.NoError(t, err)

		w, body := do(r, "/teacher", token)
		assert.Equal(t, tt.status, w.Code, string(tt.user.Role))
		if tt.status == http.StatusForbidden {
			assert.Equal(t, "Access denied: Teachers only", body.Message)
			assert.Equal(t, util.KindForbidden, body.Kind)
		}
	}
}

func TestRoleLabel(t *testing.T) {
	assert.Equal(t, "Admins", roleLabel([]model.UserRole{model.Admin}))
	assert.Equal(t, "Teachers and Admins", roleLabel([]model.UserRole{model.Teacher, model.Admin}))
}
