package logger_test

import (
	"testing"

	"parcelhub/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		env       string
		debugOpen bool
	}{
		{env: "production", debugOpen: false},
		{env: "development", debugOpen: true},
		{env: "", debugOpen: true},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			log, err := logger.New(tt.env, "parcelhub")

			require.NoError(t, err)
			assert.Equal(t, tt.debugOpen, log.Core().Enabled(zapcore.DebugLevel))
		})
	}
}
