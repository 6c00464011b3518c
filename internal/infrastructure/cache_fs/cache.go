package cache_fs

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/davarch/homework-watcher/internal/domain"
)

// FSCache keeps the last delivered notification in a JSON file for status
// bars. It is write-only: the watcher never reads it back.
type FSCache struct {
	path string
}

func New(path string) *FSCache { return &FSCache{path: path} }

type snapshotFile struct {
	Text      string `json:"text"`
	Kind      string `json:"kind,omitempty"`
	Failure   bool   `json:"failure"`
	Watermark int64  `json:"from_date"`
	Retrieved int64  `json:"retrieved"`
}

func (c *FSCache) Write(_ context.Context, s domain.Snapshot) error {
	if c.path == "" {
		return errors.New("cache path is empty")
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return err
	}

	tmp := c.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")

	err = enc.Encode(snapshotFile{
		Text:      s.Text,
		Kind:      string(s.Kind),
		Failure:   s.Kind != domain.KindNone,
		Watermark: s.Watermark,
		Retrieved: s.Retrieved,
	})
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(tmp)
		return err
	}

	return os.Rename(tmp, c.path)
}
