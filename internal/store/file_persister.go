package store

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/preston-bernstein/nhl-goal-notifier/internal/domain/subscriptions"
)

// FilePersister stores subscriptions as a JSON document on disk.
type FilePersister struct {
	path string
}

// NewFilePersister returns a persister writing to path.
func NewFilePersister(path string) *FilePersister {
	return &FilePersister{path: path}
}

// Path exposes the target file.
func (p *FilePersister) Path() string {
	return p.path
}

// Load reads the document. A missing file is an empty list.
func (p *FilePersister) Load(ctx context.Context) ([]subscriptions.Subscription, error) {
	data, err := os.ReadFile(p.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", p.path)
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(err, "decode %s", p.path)
	}
	return doc.Subscriptions, nil
}

// Save writes the document atomically via a temp file and rename.
func (p *FilePersister) Save(ctx context.Context, subs []subscriptions.Subscription) error {
	if subs == nil {
		subs = []subscriptions.Subscription{}
	}
	data, err := json.MarshalIndent(document{Subscriptions: subs}, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode subscriptions")
	}
	if existing, err := os.ReadFile(p.path); err == nil && bytes.Equal(existing, data) {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(p.path), 0o755); err != nil {
		return errors.Wrap(err, "create data dir")
	}
	tmp := p.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", tmp)
	}
	if err := os.Rename(tmp, p.path); err != nil {
		return errors.Wrapf(err, "rename %s", tmp)
	}
	return nil
}
