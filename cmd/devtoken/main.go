// Command devtoken mints a bearer token accepted by the jwt auth provider,
// for local runs against a server started with AUTH_PROVIDER=jwt.
//
//	go run ./cmd/devtoken -email admin@example.com
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"parcelhub/cmd"
	"parcelhub/internal/adapters/out/identity"
	"parcelhub/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

func main() {
	email := flag.String("email", "", "e-mail claim of the token")
	uid := flag.String("uid", "", "subject of the token (random when empty)")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	if err := mint(*email, *uid, *ttl); err != nil {
		fmt.Fprintf(os.Stderr, "devtoken: %v\n", err)
		os.Exit(1)
	}
}

func mint(rawEmail, uid string, ttl time.Duration) error {
	cfg, err := cmd.LoadConfig()
	if err != nil {
		return err
	}
	if cfg.AuthProvider != cmd.AuthProviderJWT {
		return fmt.Errorf("AUTH_PROVIDER is %q, tokens are only accepted by %q", cfg.AuthProvider, cmd.AuthProviderJWT)
	}

	email, err := kernel.NewEmail(rawEmail)
	if err != nil {
		return err
	}
	if uid == "" {
		uid = uuid.NewString()
	}

	verifier, err := identity.NewJWTVerifier(cfg.JWTSecret, cfg.JWTIssuer)
	if err != nil {
		return err
	}
	token, err := verifier.IssueToken(uid, email.String(), ttl)
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}
