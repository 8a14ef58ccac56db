package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileGateway stores each aggregate as a pretty-printed JSON file in a
// data directory. This is the default driver: zero external services,
// human-readable on disk.
type FileGateway struct {
	dir string
}

// NewFileGateway ensures the data directory exists.
func NewFileGateway(dir string) (*FileGateway, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileGateway{dir: dir}, nil
}

func (g *FileGateway) path(doc string) string {
	return filepath.Join(g.dir, doc+".json")
}

// LoadAll reads the three documents. A completely empty directory is a
// first run; a partially present set loads what exists and leaves the
// rest zero-valued.
func (g *FileGateway) LoadAll(ctx context.Context) (*Snapshot, error) {
	snapshot := &Snapshot{Connections: map[string][]string{}}
	found := false

	for doc, dest := range map[string]any{
		DocUsers:       &snapshot.Users,
		DocConnections: &snapshot.Connections,
		DocPosts:       &snapshot.Posts,
	} {
		data, err := os.ReadFile(g.path(doc))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read %s document: %w", doc, err)
		}
		if err := json.Unmarshal(data, dest); err != nil {
			return nil, fmt.Errorf("decode %s document: %w", doc, err)
		}
		found = true
	}

	if !found {
		return nil, ErrNoData
	}
	return snapshot, nil
}

// SaveAll writes each document via a temp file and rename, so a crash
// mid-write never leaves a torn document behind.
func (g *FileGateway) SaveAll(ctx context.Context, snapshot *Snapshot) error {
	for doc, src := range map[string]any{
		DocUsers:       snapshot.Users,
		DocConnections: snapshot.Connections,
		DocPosts:       snapshot.Posts,
	} {
		data, err := json.MarshalIndent(src, "", "  ")
		if err != nil {
			return fmt.Errorf("encode %s document: %w", doc, err)
		}
		tmp := g.path(doc) + ".tmp"
		if err := os.WriteFile(tmp, data, 0o644); err != nil {
			return fmt.Errorf("write %s document: %w", doc, err)
		}
		if err := os.Rename(tmp, g.path(doc)); err != nil {
			return fmt.Errorf("replace %s document: %w", doc, err)
		}
	}
	return nil
}

// Close is a no-op for the file driver.
func (g *FileGateway) Close() error {
	return nil
}
