package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

func TestIssueAndParse(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	user := &models.User{ID: 7, Email: "budi@example.com", Role: models.RoleAdmin}

	raw, err := svc.Issue(user)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	claims, err := svc.Parse(raw)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if claims.UserID() != 7 || claims.Email != user.Email || claims.Role != models.RoleAdmin {
		t.Fatalf("claims = %+v", claims)
	}
	if claims.IssuedAt == nil || claims.ExpiresAt == nil {
		t.Fatalf("iat/exp missing")
	}
}

func TestParseFailures(t *testing.T) {
	issued := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	svc := NewTokenService("secret", time.Hour)
	svc.now = func() time.Time { return issued }

	raw, err := svc.Issue(&models.User{ID: 1, Role: models.RoleUser})
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	svc.now = func() time.Time { return issued.Add(2 * time.Hour) }
	if _, err := svc.Parse(raw); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expired token error = %v", err)
	}

	other := NewTokenService("other", time.Hour)
	other.now = func() time.Time { return issued }
	if _, err := other.Parse(raw); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("wrong secret error = %v", err)
	}

	if _, err := svc.Parse("not-a-token"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("garbage error = %v", err)
	}
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("rahasia")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if !CheckPassword(hash, "rahasia") || CheckPassword(hash, "salah") {
		t.Fatalf("CheckPassword mismatch")
	}
}
