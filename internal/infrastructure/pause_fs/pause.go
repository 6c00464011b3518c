package pause_fs

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Switch reports polling as paused while a marker file exists.
type Switch struct {
	path string
	log  *zap.Logger

	paused   atomic.Bool
	watching atomic.Bool
}

func New(path string, l *zap.Logger) *Switch {
	if l == nil {
		l = zap.NewNop()
	}
	s := &Switch{path: path, log: l}
	s.refresh()
	return s
}

// Paused falls back to a stat per call when the file is not being watched.
func (s *Switch) Paused() bool {
	if s.path == "" {
		return false
	}
	if !s.watching.Load() {
		s.refresh()
	}
	return s.paused.Load()
}

// Watch follows the marker file's directory until ctx is done.
func (s *Switch) Watch(ctx context.Context) error {
	if s.path == "" {
		return nil
	}

	dir := filepath.Dir(s.path)
	base := filepath.Base(s.path)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return err
	}

	s.refresh()
	s.watching.Store(true)

	go func() {
		defer func() {
			s.watching.Store(false)
			_ = w.Close()
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Base(ev.Name) != base {
					continue
				}
				if ev.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
					s.refresh()
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				s.log.Warn("fsnotify error", zap.Error(err))
			}
		}
	}()

	return nil
}

func (s *Switch) refresh() {
	if s.path == "" {
		return
	}
	_, err := os.Stat(s.path)
	now := err == nil
	if s.paused.Swap(now) == now {
		return
	}
	if now {
		s.log.Info("polling paused", zap.String("pause_file", s.path))
	} else {
		s.log.Info("polling resumed", zap.String("pause_file", s.path))
	}
}
