package persistence

import (
	"context"
	"errors"

	"pronet/internal/domains/post"
	"pronet/internal/domains/user"
)

var (
	// ErrNoData signals a first run: the backing store holds none of
	// the aggregates yet and the caller should seed.
	ErrNoData = errors.New("no persisted data found")

	// ErrSaveFailed wraps any write-through failure. The session keeps
	// running on in-memory state when this happens.
	ErrSaveFailed = errors.New("failed to persist data")
)

// Aggregate document names. Every gateway stores exactly one textual
// (JSON) document per aggregate under these names.
const (
	DocUsers       = "users"
	DocConnections = "connections"
	DocPosts       = "posts"
)

// Snapshot is the full durable state: the three aggregates, each
// serialized as one document. Users keep directory insertion order.
type Snapshot struct {
	Users       []user.User         `json:"users"`
	Connections map[string][]string `json:"connections"`
	Posts       []post.Post         `json:"posts"`
}

// Gateway is the durable storage contract: load everything at startup,
// save everything on each write-through. No partial reads or writes.
type Gateway interface {
	// LoadAll reads the three aggregates.
	// Returns: ErrNoData when the store has never been written.
	LoadAll(ctx context.Context) (*Snapshot, error)

	// SaveAll replaces the three aggregates atomically where the
	// backend allows it (single tx on Postgres, pipeline on Redis,
	// per-file writes on disk).
	SaveAll(ctx context.Context, snapshot *Snapshot) error

	// Close releases backend resources.
	Close() error
}

// Saver is the write-through hook handed to the stores. The coordinator
// implements it by snapshotting every store and calling SaveAll.
type Saver interface {
	Save(ctx context.Context) error
}
