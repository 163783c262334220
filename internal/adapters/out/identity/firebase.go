// Package identity verifies bearer credentials. Production verifies Firebase
// ID tokens; local runs and tests use HMAC-signed JWTs with the same claims.
package identity

import (
	"context"
	"errors"
	"fmt"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/user"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

var ErrNoEmailClaim = errors.New("token has no email claim")

// FirebaseVerifier checks Firebase ID tokens.
type FirebaseVerifier struct {
	client *auth.Client
}

// NewFirebaseVerifier initializes the Firebase app from a service account
// key file.
func NewFirebaseVerifier(ctx context.Context, credentialsPath string) (*FirebaseVerifier, error) {
	if credentialsPath == "" {
		return nil, errors.New("firebase credentials path is empty")
	}

	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("init firebase auth: %w", err)
	}
	return &FirebaseVerifier{client: client}, nil
}

func (v *FirebaseVerifier) Verify(ctx context.Context, token string) (user.Identity, error) {
	verified, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return user.Identity{}, err
	}
	return identityFromToken(verified)
}

func identityFromToken(token *auth.Token) (user.Identity, error) {
	raw, _ := token.Claims["email"].(string)
	if raw == "" {
		return user.Identity{}, ErrNoEmailClaim
	}

	email, err := kernel.NewEmail(raw)
	if err != nil {
		return user.Identity{}, err
	}
	return user.Identity{UID: token.UID, Email: email}, nil
}
