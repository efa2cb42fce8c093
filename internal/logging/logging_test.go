package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "conectivo.log")

	log, err := New(Options{Mode: "prod", Level: "info", File: path})
	require.NoError(t, err)
	log.Info("hello", "k", "v")
	log.Debug("hidden")
	log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
	assert.NotContains(t, string(data), "hidden")
}

func TestNew_RejectsBadLevel(t *testing.T) {
	_, err := New(Options{Level: "loud"})
	assert.Error(t, err)
}

func TestValidLevel(t *testing.T) {
	for _, lvl := range []string{"debug", "info", "warn", "error"} {
		if !ValidLevel(lvl) {
			t.Errorf("ValidLevel(%q) = false, want true", lvl)
		}
	}
	if ValidLevel("verbose") {
		t.Error("ValidLevel(verbose) = true, want false")
	}
}

func TestWith_AddsFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	log := FromZap(zap.New(core)).With("session", "abc")
	log.Warn("fallback", "err", "boom")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "fallback", entries[0].Message)
	assert.Equal(t, "abc", entries[0].ContextMap()["session"])
	assert.Equal(t, "boom", entries[0].ContextMap()["err"])
}

func TestNop_DoesNotPanic(t *testing.T) {
	log := Nop()
	log.Debug("x")
	log.Info("x")
	log.Warn("x")
	log.Error("x")
	log.Sync()
}
