package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-booking/internal/auth"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
	"github.com/BruksfildServices01/barbershop-booking/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(t *testing.T) (*gin.Engine, *auth.TokenService, models.User, models.User) {
	t.Helper()
	tdb := testutil.Open(t)
	tokens := auth.NewTokenService("secret", time.Hour)
	user := testutil.SeedUser(t, tdb.Gorm, "budi@example.com", models.RoleUser)
	admin := testutil.SeedUser(t, tdb.Gorm, "admin@example.com", models.RoleAdmin)

	r := gin.New()
	ok := func(c *gin.Context) {
		id, _ := CurrentUserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id})
	}
	r.GET("/private", Authenticate(tokens, tdb.Gorm), ok)
	r.GET("/admin", Authenticate(tokens, tdb.Gorm), RequireAdmin(), ok)
	r.GET("/optional", OptionalAuth(tokens, tdb.Gorm), ok)
	return r, tokens, user, admin
}

func do(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthenticate(t *testing.T) {
	r, tokens, user, admin := newRouter(t)
	userToken, _ := tokens.Issue(&user)
	adminToken, _ := tokens.Issue(&admin)
	ghostToken, _ := tokens.Issue(&models.User{ID: 999, Role: models.RoleAdmin})

	tests := []struct {
		name   string
		path   string
		token  string
		status int
		body   string
	}{
		{"missing token", "/private", "", http.StatusUnauthorized, "Token tidak ditemukan"},
		{"garbage token", "/private", "abc", http.StatusUnauthorized, "Token tidak valid"},
		{"unknown user", "/private", ghostToken, http.StatusUnauthorized, "User tidak ditemukan"},
		{"valid user", "/private", userToken, http.StatusOK, `"user_id"`},
		{"user on admin route", "/admin", userToken, http.StatusForbidden, "Hanya admin"},
		{"admin on admin route", "/admin", adminToken, http.StatusOK, `"user_id"`},
		{"optional without token", "/optional", "", http.StatusOK, `"user_id":0`},
		{"optional with bad token", "/optional", "abc", http.StatusOK, `"user_id":0`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, tt.path, tt.token)
			if w.Code != tt.status {
				t.Fatalf("status = %d, want %d (%s)", w.Code, tt.status, w.Body.String())
			}
			if !strings.Contains(w.Body.String(), tt.body) {
				t.Fatalf("body = %s, want %q", w.Body.String(), tt.body)
			}
		})
	}
}
