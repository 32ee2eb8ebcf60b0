package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	t.Run("json debug", func(t *testing.T) {
		l, err := New("debug", "json")
		require.NoError(t, err)
		assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("console warn", func(t *testing.T) {
		l, err := New("warn", "console")
		require.NoError(t, err)
		assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
		assert.True(t, l.Core().Enabled(zapcore.WarnLevel))
	})

	t.Run("empty format defaults to json", func(t *testing.T) {
		_, err := New("info", "")
		require.NoError(t, err)
	})

	t.Run("bad level", func(t *testing.T) {
		_, err := New("loud", "json")
		require.Error(t, err)
	})

	t.Run("bad format", func(t *testing.T) {
		_, err := New("info", "xml")
		require.Error(t, err)
	})
}

func TestEncoderConfig(t *testing.T) {
	enc := encoderConfig()
	assert.Equal(t, "ts", enc.TimeKey)
}
