package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name           string
		lvl            string
		format         string
		expectedError  bool
		expectedLogLvl zapcore.Level
	}{
		{
			name:           "Valid log level info",
			lvl:            "info",
			format:         "console",
			expectedError:  false,
			expectedLogLvl: zapcore.InfoLevel,
		},
		{
			name:           "Valid log level warn as json",
			lvl:            "warn",
			format:         "json",
			expectedError:  false,
			expectedLogLvl: zapcore.WarnLevel,
		},
		{
			name:           "Valid log level debug",
			lvl:            "debug",
			format:         "console",
			expectedError:  false,
			expectedLogLvl: zapcore.DebugLevel,
		},
		{
			name:          "Invalid log level",
			lvl:           "invalid",
			format:        "console",
			expectedError: true,
		},
		{
			name:          "Invalid format",
			lvl:           "info",
			format:        "xml",
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := InitLogger(tt.lvl, tt.format)

			if tt.expectedError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, zap.L().Core().Enabled(tt.expectedLogLvl))
			assert.False(t, zap.L().Core().Enabled(tt.expectedLogLvl-1))
		})
	}
}
