package logger

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { _ = SetLevel("info") })

	assert.NoError(t, SetLevel("debug"))
	assert.True(t, L.Core().Enabled(zapcore.DebugLevel))

	assert.NoError(t, SetLevel("warn"))
	assert.False(t, L.Core().Enabled(zapcore.InfoLevel))

	assert.Error(t, SetLevel("loud"))
}

func TestWithComponent(t *testing.T) {
	assert.NotNil(t, WithComponent("service"))
}

func TestWithComponent_CallerIsLogSite(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := WithComponent("service").WithOptions(zap.WrapCore(func(zapcore.Core) zapcore.Core { return core }))

	log.Info("purchases marked paid")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.True(t, entry.Caller.Defined)
	assert.Equal(t, "logger_test.go", filepath.Base(entry.Caller.File))
}
