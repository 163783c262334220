package kernel_test

import (
	"testing"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	t.Run("normalizes case and whitespace", func(t *testing.T) {
		e, err := kernel.NewEmail("  Rider.One@Example.COM ")

		require.NoError(t, err)
		assert.Equal(t, "rider.one@example.com", e.String())
		assert.True(t, e.IsEqual(kernel.MustEmail("rider.one@example.com")))
	})

	t.Run("empty is required", func(t *testing.T) {
		_, err := kernel.NewEmail("   ")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("malformed is invalid", func(t *testing.T) {
		_, err := kernel.NewEmail("not-an-email")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var e kernel.Email

		require.ErrorIs(t, e.Validate(), errs.ErrValueIsRequired)
	})
}
