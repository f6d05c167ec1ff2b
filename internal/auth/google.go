package auth

import (
	"context"
	"fmt"

	"google.golang.org/api/idtoken"
)

type GoogleIdentity struct {
	Email         string
	Name          string
	Picture       string
	EmailVerified bool
}

type GoogleVerifier interface {
	Verify(ctx context.Context, idToken string) (*GoogleIdentity, error)
}

// IDTokenVerifier checks Google ID tokens against the OAuth client id.
type IDTokenVerifier struct {
	clientID string
}

func NewIDTokenVerifier(clientID string) *IDTokenVerifier {
	return &IDTokenVerifier{clientID: clientID}
}

func (v *IDTokenVerifier) Verify(ctx context.Context, idToken string) (*GoogleIdentity, error) {
	payload, err := idtoken.Validate(ctx, idToken, v.clientID)
	if err != nil {
		return nil, fmt.Errorf("validate google id token: %w", err)
	}

	id := &GoogleIdentity{}
	id.Email, _ = payload.Claims["email"].(string)
	id.Name, _ = payload.Claims["name"].(string)
	id.Picture, _ = payload.Claims["picture"].(string)
	id.EmailVerified, _ = payload.Claims["email_verified"].(bool)
	return id, nil
}
