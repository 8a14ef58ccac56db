package persistence

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"pronet/internal/domains/post"
	"pronet/internal/domains/user"
)

// Snapshot sources implemented by the three stores.
type (
	UsersSource interface {
		SnapshotUsers() []user.User
	}
	ConnectionsSource interface {
		SnapshotConnections() map[string][]string
	}
	PostsSource interface {
		SnapshotPosts() []post.Post
	}
)

// Coordinator implements Saver on top of a Gateway. Every Save pulls a
// fresh snapshot from all three stores and writes it in one call, so
// multi-store operations flush as a single logical write.
//
// A failed save is logged, latched as "degraded" for the frontend to
// surface, and otherwise ignored: the in-memory state stays
// authoritative and the session continues.
type Coordinator struct {
	gw Gateway

	mu       sync.Mutex
	users    UsersSource
	conns    ConnectionsSource
	posts    PostsSource
	degraded bool
}

// NewCoordinator wraps gw. Attach must be called before the first Save.
func NewCoordinator(gw Gateway) *Coordinator {
	return &Coordinator{gw: gw}
}

// Attach binds the snapshot sources. Split from the constructor because
// the stores themselves need the coordinator as their Saver.
func (c *Coordinator) Attach(users UsersSource, conns ConnectionsSource, posts PostsSource) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.users = users
	c.conns = conns
	c.posts = posts
}

// Save snapshots all three aggregates and writes them through.
func (c *Coordinator) Save(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.users == nil || c.conns == nil || c.posts == nil {
		return fmt.Errorf("%w: coordinator has no attached stores", ErrSaveFailed)
	}

	snapshot := &Snapshot{
		Users:       c.users.SnapshotUsers(),
		Connections: c.conns.SnapshotConnections(),
		Posts:       c.posts.SnapshotPosts(),
	}

	if err := c.gw.SaveAll(ctx, snapshot); err != nil {
		c.degraded = true
		log.Warn().Err(err).Msg("write-through save failed, continuing on in-memory state")
		return fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}

	c.degraded = false
	return nil
}

// Degraded reports whether the most recent save failed. The terminal
// renders this as a data-loss warning banner.
func (c *Coordinator) Degraded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.degraded
}
