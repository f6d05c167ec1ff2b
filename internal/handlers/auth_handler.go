package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-booking/internal/auth"
	"github.com/BruksfildServices01/barbershop-booking/internal/dto"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-booking/internal/middleware"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
	"github.com/BruksfildServices01/barbershop-booking/internal/validators"
)

var (
	errEmailTaken         = httperr.ErrValidation("email_taken", "Email sudah terdaftar")
	errEmailDomain        = httperr.ErrValidation("invalid_email_domain", "Domain email tidak valid")
	errInvalidCredentials = httperr.ErrUnauthorized("invalid_credentials", "Email atau password salah")
	errWrongPassword      = httperr.ErrValidation("wrong_password", "Password saat ini salah")
	errGoogleToken        = httperr.ErrUnauthorized("invalid_google_token", "Token Google tidak valid")
	errGoogleIdentity     = httperr.ErrValidation("google_identity_required", "Nama dan email diperlukan")
	errGoogleDisabled     = httperr.ErrUnauthorized("google_not_configured", "Login dengan Google belum dikonfigurasi")
	errGoogleUnverified   = httperr.ErrUnauthorized("google_unverified", "Akun sudah terdaftar. Silakan login dengan password")
)

type AuthHandler struct {
	db     *gorm.DB
	tokens *auth.TokenService

	google auth.GoogleVerifier
	opts   AuthOptions
}

type AuthOptions struct {
	VerifyEmailDomain bool

	// SimulatedGoogle lets /auth/google register new accounts from a
	// posted name and email when no verifier is configured. Existing
	// accounts are never signed in this way.
	SimulatedGoogle bool
}

// NewAuthHandler takes a nil google verifier when no OAuth client id is
// configured.
func NewAuthHandler(db *gorm.DB, tokens *auth.TokenService, google auth.GoogleVerifier, opts AuthOptions) *AuthHandler {
	return &AuthHandler{db: db, tokens: tokens, google: google, opts: opts}
}

type authResult struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := bindJSON(c, &req); err != nil {
		httperr.Respond(c, err, "")
		return
	}
	if err := req.Normalize(); err != nil {
		httperr.Respond(c, err, "")
		return
	}

	if h.opts.VerifyEmailDomain && !validators.IsEmailDomainValid(req.Email) {
		httperr.Respond(c, errEmailDomain, "")
		return
	}

	taken, err := h.emailTaken(c, req.Email)
	if err != nil {
		httperr.Respond(c, err, "Gagal melakukan registrasi")
		return
	}
	if taken {
		httperr.Respond(c, errEmailTaken, "")
		return
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		httperr.Respond(c, err, "Gagal melakukan registrasi")
		return
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: hashed,
		Role:     models.RoleUser,
	}
	if err := h.db.WithContext(c.Request.Context()).Create(&user).Error; err != nil {
		httperr.Respond(c, err, "Gagal melakukan registrasi")
		return
	}

	result, err := h.issue(&user)
	if err != nil {
		httperr.Respond(c, err, "Gagal melakukan registrasi")
		return
	}

	httpresp.Created(c, "Registrasi berhasil", result)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := bindJSON(c, &req); err != nil {
		httperr.Respond(c, err, "")
		return
	}
	if err := req.Normalize(); err != nil {
		httperr.Respond(c, err, "")
		return
	}

	user, err := h.findByEmail(c, req.Email)
	if err != nil {
		httperr.Respond(c, err, "Gagal melakukan login")
		return
	}
	if user == nil || !auth.CheckPassword(user.Password, req.Password) {
		httperr.Respond(c, errInvalidCredentials, "")
		return
	}

	result, err := h.issue(user)
	if err != nil {
		httperr.Respond(c, err, "Gagal melakukan login")
		return
	}

	httpresp.WithMessage(c, "Login berhasil", result)
}

// Google signs in (or registers) a user from a Google identity.
func (h *AuthHandler) Google(c *gin.Context) {
	var req dto.GoogleAuthRequest
	if err := bindJSON(c, &req); err != nil {
		httperr.Respond(c, err, "")
		return
	}

	name, email := strings.TrimSpace(req.Name), dto.NormalizeEmail(req.Email)
	avatar := ""
	verified := false

	switch {
	case h.google != nil:
		id, err := h.google.Verify(c.Request.Context(), req.Token())
		if err != nil {
			httperr.Respond(c, errGoogleToken, "")
			return
		}
		name, email, avatar = strings.TrimSpace(id.Name), dto.NormalizeEmail(id.Email), id.Picture
		verified = true
	case !h.opts.SimulatedGoogle:
		httperr.Respond(c, errGoogleDisabled, "")
		return
	}

	if !validators.IsEmailSyntaxValid(email) {
		httperr.Respond(c, errGoogleIdentity, "")
		return
	}
	if name == "" {
		name = email[:strings.Index(email, "@")]
	}

	user, err := h.findByEmail(c, email)
	if err != nil {
		httperr.Respond(c, err, "Gagal login dengan Google")
		return
	}

	// an unverified identity may only create a fresh account
	if user != nil && !verified {
		httperr.Respond(c, errGoogleUnverified, "")
		return
	}

	if user == nil {
		// The account can only sign in through Google until a password is set.
		hashed, err := auth.HashPassword("google-oauth-" + uuid.NewString())
		if err != nil {
			httperr.Respond(c, err, "Gagal login dengan Google")
			return
		}

		user = &models.User{
			Name:     name,
			Email:    email,
			Password: hashed,
			Role:     models.RoleUser,
			Avatar:   avatar,
		}
		if err := h.db.WithContext(c.Request.Context()).Create(user).Error; err != nil {
			httperr.Respond(c, err, "Gagal login dengan Google")
			return
		}
	}

	result, err := h.issue(user)
	if err != nil {
		httperr.Respond(c, err, "Gagal login dengan Google")
		return
	}

	httpresp.WithMessage(c, "Login dengan Google berhasil", result)
}

func (h *AuthHandler) Me(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		httperr.Respond(c, err, "")
		return
	}
	httpresp.OK(c, user)
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req dto.ProfileRequest
	if err := bindJSON(c, &req); err != nil {
		httperr.Respond(c, err, "")
		return
	}

	user, err := currentUser(c)
	if err != nil {
		httperr.Respond(c, err, "")
		return
	}
	if req.Name != nil {
		if name := strings.TrimSpace(*req.Name); name != "" {
			user.Name = name
		}
	}
	if req.Phone != nil {
		user.Phone = strings.TrimSpace(*req.Phone)
	}

	if err := h.db.WithContext(c.Request.Context()).
		Model(user).
		Select("name", "phone", "updated_at").
		Updates(user).Error; err != nil {
		httperr.Respond(c, err, "Gagal memperbarui profil")
		return
	}

	httpresp.WithMessage(c, "Profil berhasil diperbarui", user)
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := bindJSON(c, &req); err != nil {
		httperr.Respond(c, err, "")
		return
	}

	current, next, err := req.Normalize()
	if err != nil {
		httperr.Respond(c, err, "")
		return
	}

	user, err := currentUser(c)
	if err != nil {
		httperr.Respond(c, err, "")
		return
	}
	if !auth.CheckPassword(user.Password, current) {
		httperr.Respond(c, errWrongPassword, "")
		return
	}

	hashed, err := auth.HashPassword(next)
	if err != nil {
		httperr.Respond(c, err, "Gagal mengubah password")
		return
	}

	if err := h.db.WithContext(c.Request.Context()).
		Model(user).
		Update("password", hashed).Error; err != nil {
		httperr.Respond(c, err, "Gagal mengubah password")
		return
	}

	httpresp.Message(c, "Password berhasil diubah")
}

func (h *AuthHandler) CheckEmail(c *gin.Context) {
	email := dto.NormalizeEmail(c.Query("email"))
	if email == "" {
		httperr.Respond(c, httperr.ErrValidation("email_required", "Email diperlukan"), "")
		return
	}

	taken, err := h.emailTaken(c, email)
	if err != nil {
		httperr.Respond(c, err, "Gagal memeriksa email")
		return
	}

	httpresp.OK(c, gin.H{"available": !taken})
}

// ----

func currentUser(c *gin.Context) (*models.User, error) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return nil, auth.ErrTokenMissing
	}
	return user, nil
}

func (h *AuthHandler) issue(user *models.User) (authResult, error) {
	token, err := h.tokens.Issue(user)
	if err != nil {
		return authResult{}, err
	}
	return authResult{User: user, Token: token}, nil
}

func (h *AuthHandler) findByEmail(c *gin.Context, email string) (*models.User, error) {
	var user models.User
	err := h.db.WithContext(c.Request.Context()).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (h *AuthHandler) emailTaken(c *gin.Context, email string) (bool, error) {
	var count int64
	err := h.db.WithContext(c.Request.Context()).
		Model(&models.User{}).
		Where("email = ?", email).
		Count(&count).Error
	return count > 0, err
}
