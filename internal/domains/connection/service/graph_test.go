package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pronet/internal/domains/connection"
	"pronet/internal/domains/user"
	userService "pronet/internal/domains/user/service"
)

type noopSaver struct{ calls int }

func (s *noopSaver) Save(ctx context.Context) error {
	s.calls++
	return nil
}

func newTestGraph(t *testing.T, usernames ...string) (*Graph, *userService.Directory, *noopSaver) {
	t.Helper()

	saver := &noopSaver{}
	seed := make([]user.User, 0, len(usernames))
	for _, username := range usernames {
		seed = append(seed, user.User{
			Username:  username,
			Name:      "User " + username,
			Email:     username + "@x.com",
			Password:  "Abcdef1",
			Followers: []string{},
			Following: []string{},
		})
	}
	directory := userService.NewDirectory(saver, seed)
	return NewGraph(saver, directory, nil), directory, saver
}

func TestConnectIsSymmetric(t *testing.T) {
	g, directory, _ := newTestGraph(t, "u1", "u2")
	ctx := context.Background()

	require.NoError(t, g.Connect(ctx, "u1", "u2"))

	ofU1, _ := g.ConnectionsOf(ctx, "u1")
	ofU2, _ := g.ConnectionsOf(ctx, "u2")
	assert.Equal(t, []string{"u2"}, ofU1)
	assert.Equal(t, []string{"u1"}, ofU2)

	// Follower/following duals mirror the edge in both directions.
	u1, _ := directory.Get(ctx, "u1")
	u2, _ := directory.Get(ctx, "u2")
	assert.True(t, u1.IsFollowing("u2"))
	assert.True(t, u1.IsFollowedBy("u2"))
	assert.True(t, u2.IsFollowing("u1"))
	assert.True(t, u2.IsFollowedBy("u1"))
}

func TestConnectIsIdempotent(t *testing.T) {
	g, directory, _ := newTestGraph(t, "u1", "u2")
	ctx := context.Background()

	require.NoError(t, g.Connect(ctx, "u1", "u2"))
	require.NoError(t, g.Connect(ctx, "u1", "u2"))
	require.NoError(t, g.Connect(ctx, "u2", "u1"))

	ofU1, _ := g.ConnectionsOf(ctx, "u1")
	ofU2, _ := g.ConnectionsOf(ctx, "u2")
	assert.Equal(t, []string{"u2"}, ofU1)
	assert.Equal(t, []string{"u1"}, ofU2)

	u1, _ := directory.Get(ctx, "u1")
	assert.Equal(t, []string{"u2"}, u1.Following)
	assert.Equal(t, []string{"u2"}, u1.Followers)
}

func TestConnectRejectsSelfAndGhosts(t *testing.T) {
	g, _, _ := newTestGraph(t, "u1")
	ctx := context.Background()

	assert.ErrorIs(t, g.Connect(ctx, "u1", "u1"), connection.ErrSelfConnection)
	assert.ErrorIs(t, g.Connect(ctx, "u1", "ghost"), user.ErrUserNotFound)
	assert.ErrorIs(t, g.Connect(ctx, "ghost", "u1"), user.ErrUserNotFound)

	ofU1, _ := g.ConnectionsOf(ctx, "u1")
	assert.Empty(t, ofU1)
}

func TestConnectSavesOncePerEdge(t *testing.T) {
	g, _, saver := newTestGraph(t, "u1", "u2")
	ctx := context.Background()

	require.NoError(t, g.Connect(ctx, "u1", "u2"))
	assert.Equal(t, 1, saver.calls)

	// The idempotent no-op does not persist again.
	require.NoError(t, g.Connect(ctx, "u1", "u2"))
	assert.Equal(t, 1, saver.calls)
}

func TestConnectionsOfKeepsInsertionOrder(t *testing.T) {
	g, _, _ := newTestGraph(t, "u1", "u2", "u3", "u4")
	ctx := context.Background()

	require.NoError(t, g.Connect(ctx, "u1", "u3"))
	require.NoError(t, g.Connect(ctx, "u1", "u2"))
	require.NoError(t, g.Connect(ctx, "u1", "u4"))

	ofU1, _ := g.ConnectionsOf(ctx, "u1")
	assert.Equal(t, []string{"u3", "u2", "u4"}, ofU1)
}

func TestConnected(t *testing.T) {
	g, _, _ := newTestGraph(t, "u1", "u2", "u3")
	ctx := context.Background()

	require.NoError(t, g.Connect(ctx, "u1", "u2"))

	yes, _ := g.Connected(ctx, "u1", "u2")
	no, _ := g.Connected(ctx, "u1", "u3")
	assert.True(t, yes)
	assert.False(t, no)
}

func TestSnapshotConnectionsIsDeepCopy(t *testing.T) {
	g, _, _ := newTestGraph(t, "u1", "u2")
	ctx := context.Background()

	require.NoError(t, g.Connect(ctx, "u1", "u2"))

	snapshot := g.SnapshotConnections()
	snapshot["u1"][0] = "mutated"
	snapshot["u3"] = []string{"u1"}

	ofU1, _ := g.ConnectionsOf(ctx, "u1")
	assert.Equal(t, []string{"u2"}, ofU1)
	ofU3, _ := g.ConnectionsOf(ctx, "u3")
	assert.Empty(t, ofU3)
}
