package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-booking/internal/auth"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
	ContextUser     = "user"
)

var (
	errUserNotFound = httperr.ErrUnauthorized("user_not_found", "User tidak ditemukan")
	errAdminOnly    = httperr.ErrForbidden("admin_only", "Akses ditolak. Hanya admin yang dapat mengakses.")
)

// Authenticate requires a valid bearer token for an existing user.
func Authenticate(tokens *auth.TokenService, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := resolveUser(c, tokens, db)
		if err != nil {
			abortWith(c, err)
			return
		}
		setUser(c, user)
		c.Next()
	}
}

// OptionalAuth attaches the user when a valid token is present and
// otherwise lets the request through anonymously.
func OptionalAuth(tokens *auth.TokenService, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user, err := resolveUser(c, tokens, db); err == nil {
			setUser(c, user)
		}
		c.Next()
	}
}

// RequireAdmin must run after Authenticate.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsAdmin(c) {
			abortWith(c, errAdminOnly)
			return
		}
		c.Next()
	}
}

func resolveUser(c *gin.Context, tokens *auth.TokenService, db *gorm.DB) (*models.User, error) {
	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return nil, auth.ErrTokenMissing
	}

	claims, err := tokens.Parse(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := db.WithContext(c.Request.Context()).First(&user, claims.UserID()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func setUser(c *gin.Context, user *models.User) {
	c.Set(ContextUser, user)
	c.Set(ContextUserID, user.ID)
	c.Set(ContextUserRole, user.Role)
}

func abortWith(c *gin.Context, err error) {
	httperr.Respond(c, err, "")
	c.Abort()
}

// --------------------------------------------------
// Accessors
// --------------------------------------------------

func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(ContextUser)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}

func CurrentUserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

func IsAdmin(c *gin.Context) bool {
	return c.GetString(ContextUserRole) == models.RoleAdmin
}
