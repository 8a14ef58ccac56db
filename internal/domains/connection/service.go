package connection

import (
	"context"

	"pronet/internal/domains/user"
)

// Service defines the connection graph contract. The relation is
// symmetric and irreflexive; edges are permanent - there is no
// disconnect.
type Service interface {
	// Connect inserts the undirected edge a<->b and mirrors it onto the
	// follower/following duals of both profiles as one logical
	// mutation. Connecting an already connected pair is a no-op, not an
	// error.
	// Returns: ErrSelfConnection, user.ErrUserNotFound.
	Connect(ctx context.Context, a, b string) error

	// ConnectionsOf returns the adjacency list in insertion order.
	ConnectionsOf(ctx context.Context, username string) ([]string, error)

	// Connected reports whether a and b share an edge.
	Connected(ctx context.Context, a, b string) (bool, error)
}

// Directory is the slice of the user directory the graph needs: profile
// existence checks and the follower/following dual update.
type Directory interface {
	Get(ctx context.Context, username string) (*user.User, error)
	RecordFollow(ctx context.Context, follower, followee string) error
}
