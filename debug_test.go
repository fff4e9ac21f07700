package ranger

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// captureLogs routes ranger's logger into a buffer for the test's duration.
func captureLogs(t *testing.T, level slog.Level) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})))
	t.Cleanup(func() { SetLogger(nil) })
	return &buf
}

func TestDebugModeWarnsOnDeepTree(t *testing.T) {
	buf := captureLogs(t, slog.LevelWarn)
	SetDebugMode(true)
	defer SetDebugMode(false)

	ids := &IDGenerator{}
	n := NewGroup(ids, "root", nil)
	for range debugMaxTreeDepth + 1 {
		n = NewGroup(ids, "deep", n)
	}
	assert.Contains(t, buf.String(), "tree depth exceeds threshold")
}

func TestDebugModeWarnsOnWideNode(t *testing.T) {
	buf := captureLogs(t, slog.LevelWarn)
	SetDebugMode(true)
	defer SetDebugMode(false)

	ids := &IDGenerator{}
	root := NewGroup(ids, "wide", nil)
	for range debugMaxChildCount + 1 {
		NewLeaf(ids, "leaf", root)
	}
	assert.Contains(t, buf.String(), "too many children")
}

func TestDebugModeOffIsSilent(t *testing.T) {
	buf := captureLogs(t, slog.LevelWarn)
	ids := &IDGenerator{}
	n := NewGroup(ids, "root", nil)
	for range debugMaxTreeDepth + 1 {
		n = NewGroup(ids, "deep", n)
	}
	assert.Empty(t, buf.String())
}

func TestLoggerDefaultsToNop(t *testing.T) {
	SetLogger(nil)
	assert.False(t, Logger().Enabled(t.Context(), slog.LevelError))
}

func TestPopOnEmptyStackLogsWarning(t *testing.T) {
	buf := captureLogs(t, slog.LevelWarn)
	NewSceneStack().Pop()
	assert.True(t, strings.Contains(buf.String(), "pop on empty scene stack"))
}
