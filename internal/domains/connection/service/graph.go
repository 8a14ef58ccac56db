package service

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/rs/zerolog/log"

	"pronet/internal/domains/connection"
	"pronet/internal/infrastructure/persistence"
)

// Graph owns the undirected connection adjacency. Both directions of an
// edge are inserted together, and the follower/following duals on the
// two profiles are updated in the same logical step, before the single
// write-through save.
type Graph struct {
	mu        sync.RWMutex
	adjacency map[string][]string // endpoint -> other endpoints, insertion order
	directory connection.Directory
	saver     persistence.Saver
}

// NewGraph builds the graph from a loaded (or seeded) adjacency map.
func NewGraph(saver persistence.Saver, directory connection.Directory, seed map[string][]string) *Graph {
	g := &Graph{
		adjacency: make(map[string][]string, len(seed)),
		directory: directory,
		saver:     saver,
	}
	for username, peers := range seed {
		g.adjacency[username] = slices.Clone(peers)
	}
	return g
}

// Connect inserts the symmetric edge a<->b. Idempotent: an existing
// edge is a silent no-op.
func (g *Graph) Connect(ctx context.Context, a, b string) error {
	if a == b {
		return connection.ErrSelfConnection
	}
	if _, err := g.directory.Get(ctx, a); err != nil {
		return err
	}
	if _, err := g.directory.Get(ctx, b); err != nil {
		return err
	}

	g.mu.Lock()
	if slices.Contains(g.adjacency[a], b) {
		g.mu.Unlock()
		return nil
	}

	// Symmetric insertion in one step keeps the two directions in
	// lockstep.
	g.adjacency[a] = append(g.adjacency[a], b)
	if !slices.Contains(g.adjacency[b], a) {
		g.adjacency[b] = append(g.adjacency[b], a)
	}
	g.mu.Unlock()

	// Mirror onto the follower/following duals before persisting, so the
	// single save never captures a half-applied connect. The save runs
	// with g.mu released because the coordinator calls back into
	// SnapshotConnections.
	if err := g.directory.RecordFollow(ctx, a, b); err != nil {
		return fmt.Errorf("record follow: %w", err)
	}
	if err := g.directory.RecordFollow(ctx, b, a); err != nil {
		return fmt.Errorf("record follow: %w", err)
	}

	_ = g.saver.Save(ctx)

	log.Info().Str("a", a).Str("b", b).Msg("connection added")
	return nil
}

// ConnectionsOf returns a copy of the adjacency list in insertion
// order; empty when the user has no connections.
func (g *Graph) ConnectionsOf(ctx context.Context, username string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return slices.Clone(g.adjacency[username]), nil
}

// Connected reports whether a and b share an edge.
func (g *Graph) Connected(ctx context.Context, a, b string) (bool, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return slices.Contains(g.adjacency[a], b), nil
}

// SnapshotConnections returns a deep copy of the adjacency map for the
// persistence coordinator.
func (g *Graph) SnapshotConnections() map[string][]string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	snapshot := make(map[string][]string, len(g.adjacency))
	for username, peers := range g.adjacency {
		snapshot[username] = slices.Clone(peers)
	}
	return snapshot
}
