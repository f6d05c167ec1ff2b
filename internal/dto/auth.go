package dto

import (
	"strings"

	"github.com/BruksfildServices01/barbershop-booking/internal/auth"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/validators"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

func (r *RegisterRequest) Normalize() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Email = NormalizeEmail(r.Email)

	if r.Name == "" {
		return httperr.ErrValidation("name_required", "Nama wajib diisi")
	}
	if !validators.IsEmailSyntaxValid(r.Email) {
		return httperr.ErrValidation("invalid_email", "Email tidak valid")
	}
	if len(r.Password) < auth.MinPasswordLength {
		return httperr.ErrValidation("password_too_short", "Password minimal 6 karakter")
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Normalize() error {
	r.Email = NormalizeEmail(r.Email)
	if !validators.IsEmailSyntaxValid(r.Email) {
		return httperr.ErrValidation("invalid_email", "Email tidak valid")
	}
	if r.Password == "" {
		return httperr.ErrValidation("password_required", "Password wajib diisi")
	}
	return nil
}

// GoogleAuthRequest carries a Google ID token, or name and email when
// token verification is not configured.
type GoogleAuthRequest struct {
	Credential string `json:"credential"`
	IDToken    string `json:"idToken"`
	IDTokenAlt string `json:"id_token"`
	Name       string `json:"name"`
	Email      string `json:"email"`
}

func (r GoogleAuthRequest) Token() string {
	return firstString(r.Credential, r.IDToken, r.IDTokenAlt)
}

type ProfileRequest struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
}

type ChangePasswordRequest struct {
	CurrentPassword      string `json:"currentPassword"`
	CurrentPasswordSnake string `json:"current_password"`
	NewPassword          string `json:"newPassword"`
	NewPasswordSnake     string `json:"new_password"`
}

func (r ChangePasswordRequest) Normalize() (current, next string, err error) {
	current = r.CurrentPassword
	if current == "" {
		current = r.CurrentPasswordSnake
	}
	next = r.NewPassword
	if next == "" {
		next = r.NewPasswordSnake
	}
	if current == "" {
		return "", "", httperr.ErrValidation("password_required", "Password saat ini wajib diisi")
	}
	if len(next) < auth.MinPasswordLength {
		return "", "", httperr.ErrValidation("password_too_short", "Password minimal 6 karakter")
	}
	return current, next, nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
