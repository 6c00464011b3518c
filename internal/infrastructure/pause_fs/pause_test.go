package pause_fs

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestSwitch_StatFallback(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paused")
	s := New(path, zaptest.NewLogger(t))

	assert.False(t, s.Paused())

	require.NoError(t, os.WriteFile(path, nil, 0o644))
	assert.True(t, s.Paused())

	require.NoError(t, os.Remove(path))
	assert.False(t, s.Paused())
}

func TestSwitch_Watch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paused")
	s := New(path, zaptest.NewLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, s.Watch(ctx))

	require.NoError(t, os.WriteFile(path, nil, 0o644))
	assert.Eventually(t, s.Paused, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, os.Remove(path))
	assert.Eventually(t, func() bool { return !s.Paused() }, 2*time.Second, 10*time.Millisecond)
}

func TestSwitch_EmptyPathNeverPauses(t *testing.T) {
	s := New("", nil)
	assert.False(t, s.Paused())
	assert.NoError(t, s.Watch(context.Background()))
}
