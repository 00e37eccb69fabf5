package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		level string
		json  bool
		want  zapcore.Level
	}{
		{"", false, zapcore.InfoLevel},
		{"debug", true, zapcore.DebugLevel},
		{"warn", false, zapcore.WarnLevel},
		{"error", true, zapcore.ErrorLevel},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			l, err := New(tt.level, tt.json)
			require.NoError(t, err)
			assert.True(t, l.Core().Enabled(tt.want))
			assert.False(t, l.Core().Enabled(tt.want-1))
		})
	}
}

func TestNew_UnknownLevel(t *testing.T) {
	_, err := New("loud", false)
	assert.Error(t, err)
}
