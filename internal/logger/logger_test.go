package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zap.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zap.InfoLevel, ParseLevel("info"))
	assert.Equal(t, zap.WarnLevel, ParseLevel("warn"))
	assert.Equal(t, zap.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zap.WarnLevel, ParseLevel("verbose"))
}

func TestNew(t *testing.T) {
	lgr, err := New("debug")
	require.NoError(t, err)
	require.NotNil(t, lgr)

	assert.True(t, lgr.Core().Enabled(zap.DebugLevel))

	lgr, err = New("error")
	require.NoError(t, err)
	assert.False(t, lgr.Core().Enabled(zap.WarnLevel))
}
