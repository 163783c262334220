package ports

import (
	"context"

	"parcelhub/internal/core/domain/model/user"
)

// IdentityVerifier checks a bearer credential with the identity provider.
// Any failure means the credential must be treated as invalid.
type IdentityVerifier interface {
	Verify(ctx context.Context, token string) (user.Identity, error)
}
