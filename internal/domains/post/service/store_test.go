package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pronet/internal/domains/post"
	"pronet/internal/domains/user"
	userService "pronet/internal/domains/user/service"
)

type noopSaver struct{ calls int }

func (s *noopSaver) Save(ctx context.Context) error {
	s.calls++
	return nil
}

func newTestStore(t *testing.T, usernames ...string) *Store {
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
	return NewStore(saver, userService.NewDirectory(saver, seed), nil)
}

func TestCreateInsertsAtFront(t *testing.T) {
	s := newTestStore(t, "ana1")
	ctx := context.Background()

	first, err := s.Create(ctx, "ana1", "first post")
	require.NoError(t, err)
	second, err := s.Create(ctx, "ana1", "second post")
	require.NoError(t, err)

	feed, err := s.Feed(ctx)
	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.Equal(t, second.ID, feed[0].ID)
	assert.Equal(t, first.ID, feed[1].ID)
	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
}

func TestCreateSnapshotsAuthorName(t *testing.T) {
	s := newTestStore(t, "ana1")
	ctx := context.Background()

	p, err := s.Create(ctx, "ana1", "hello there")
	require.NoError(t, err)
	assert.Equal(t, "User ana1", p.AuthorName)

	// Renaming the author later must not rewrite published posts.
	live, err := s.dir.Get(ctx, "ana1")
	require.NoError(t, err)
	live.Name = "Renamed"

	feed, _ := s.Feed(ctx)
	assert.Equal(t, "User ana1", feed[0].AuthorName)
}

func TestCreateValidatesContent(t *testing.T) {
	s := newTestStore(t, "ana1")
	ctx := context.Background()

	_, err := s.Create(ctx, "ana1", "hey")
	assert.ErrorIs(t, err, post.ErrContentTooShort)

	_, err = s.Create(ctx, "ana1", "     ")
	assert.ErrorIs(t, err, post.ErrContentTooShort)

	long, err := s.Create(ctx, "ana1", strings.Repeat("a", 600))
	require.NoError(t, err)
	assert.Len(t, long.Content, post.MaxContentLength)

	_, err = s.Create(ctx, "ghost", "hello world")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestIDReuseAfterDeletingNewest(t *testing.T) {
	s := newTestStore(t, "ana1")
	ctx := context.Background()

	_, err := s.Create(ctx, "ana1", "first post")
	require.NoError(t, err)
	second, err := s.Create(ctx, "ana1", "second post")
	require.NoError(t, err)
	assert.Equal(t, 2, second.ID)

	require.NoError(t, s.Delete(ctx, second.ID, "ana1"))

	// Ids recompute from the surviving posts: the deleted highest id is
	// handed out again.
	third, err := s.Create(ctx, "ana1", "third post")
	require.NoError(t, err)
	assert.Equal(t, second.ID, third.ID)
}

func TestToggleLikeIsAnInvolution(t *testing.T) {
	s := newTestStore(t, "ana1", "bruno2")
	ctx := context.Background()

	p, err := s.Create(ctx, "ana1", "hello world")
	require.NoError(t, err)

	liked, err := s.ToggleLike(ctx, p.ID, "bruno2")
	require.NoError(t, err)
	assert.True(t, liked.LikedBy("bruno2"))
	assert.Equal(t, 1, liked.LikeCount())

	unliked, err := s.ToggleLike(ctx, p.ID, "bruno2")
	require.NoError(t, err)
	assert.False(t, unliked.LikedBy("bruno2"))
	assert.Equal(t, 0, unliked.LikeCount())

	_, err = s.ToggleLike(ctx, 999, "bruno2")
	assert.ErrorIs(t, err, post.ErrPostNotFound)
}

func TestToggleLikeKeepsOtherLikes(t *testing.T) {
	s := newTestStore(t, "ana1", "bruno2", "carla3")
	ctx := context.Background()

	p, err := s.Create(ctx, "ana1", "hello world")
	require.NoError(t, err)

	_, err = s.ToggleLike(ctx, p.ID, "bruno2")
	require.NoError(t, err)
	_, err = s.ToggleLike(ctx, p.ID, "carla3")
	require.NoError(t, err)
	updated, err := s.ToggleLike(ctx, p.ID, "bruno2")
	require.NoError(t, err)

	assert.Equal(t, []string{"carla3"}, updated.Likes)
}

func TestAddComment(t *testing.T) {
	s := newTestStore(t, "ana1", "bruno2")
	ctx := context.Background()

	p, err := s.Create(ctx, "ana1", "hello world")
	require.NoError(t, err)

	_, err = s.AddComment(ctx, p.ID, "bruno2", " x ")
	assert.ErrorIs(t, err, post.ErrCommentTooShort)

	first, err := s.AddComment(ctx, p.ID, "bruno2", "nice post")
	require.NoError(t, err)
	assert.Equal(t, "nice post", first.Text)
	assert.Equal(t, "User bruno2", first.AuthorName)

	long, err := s.AddComment(ctx, p.ID, "ana1", strings.Repeat("c", 300))
	require.NoError(t, err)
	assert.Len(t, long.Text, post.MaxCommentLength)

	// Arrival order is preserved.
	feed, _ := s.Feed(ctx)
	require.Len(t, feed[0].Comments, 2)
	assert.Equal(t, "bruno2", feed[0].Comments[0].AuthorUsername)
	assert.Equal(t, "ana1", feed[0].Comments[1].AuthorUsername)

	_, err = s.AddComment(ctx, 999, "ana1", "hello")
	assert.ErrorIs(t, err, post.ErrPostNotFound)
}

func TestDeleteRequiresAuthor(t *testing.T) {
	s := newTestStore(t, "ana1", "bruno2")
	ctx := context.Background()

	p, err := s.Create(ctx, "ana1", "hello world")
	require.NoError(t, err)

	// A valid id from the wrong user and an invalid id answer the same.
	assert.ErrorIs(t, s.Delete(ctx, p.ID, "bruno2"), post.ErrNotAuthorized)
	assert.ErrorIs(t, s.Delete(ctx, 999, "ana1"), post.ErrNotAuthorized)

	require.NoError(t, s.Delete(ctx, p.ID, "ana1"))
	feed, _ := s.Feed(ctx)
	assert.Empty(t, feed)
}

// postsByAuthor must always agree with filtering the feed, no matter
// what sequence of mutations ran since the cache was last consulted.
func TestPostsByAuthorNeverGoesStale(t *testing.T) {
	s := newTestStore(t, "ana1", "bruno2")
	ctx := context.Background()

	checkAgainstFeed := func() {
		t.Helper()
		for _, author := range []string{"ana1", "bruno2"} {
			feed, err := s.Feed(ctx)
			require.NoError(t, err)
			var want []int
			for _, p := range feed {
				if p.AuthorUsername == author {
					want = append(want, p.ID)
				}
			}
			byAuthor, err := s.PostsByAuthor(ctx, author)
			require.NoError(t, err)
			var got []int
			for _, p := range byAuthor {
				got = append(got, p.ID)
			}
			assert.Equal(t, want, got, "author %s", author)
		}
	}

	p1, err := s.Create(ctx, "ana1", "ana first")
	require.NoError(t, err)
	checkAgainstFeed()

	_, err = s.Create(ctx, "bruno2", "bruno first")
	require.NoError(t, err)
	checkAgainstFeed()

	p3, err := s.Create(ctx, "ana1", "ana second")
	require.NoError(t, err)
	checkAgainstFeed()

	_, err = s.ToggleLike(ctx, p1.ID, "bruno2")
	require.NoError(t, err)
	checkAgainstFeed()

	require.NoError(t, s.Delete(ctx, p3.ID, "ana1"))
	checkAgainstFeed()

	_, err = s.AddComment(ctx, p1.ID, "bruno2", "still fresh")
	require.NoError(t, err)
	checkAgainstFeed()
}

func TestPostsByAuthorNewestFirst(t *testing.T) {
	s := newTestStore(t, "ana1", "bruno2")
	ctx := context.Background()

	_, err := s.Create(ctx, "ana1", "ana first")
	require.NoError(t, err)
	_, err = s.Create(ctx, "bruno2", "bruno first")
	require.NoError(t, err)
	_, err = s.Create(ctx, "ana1", "ana second")
	require.NoError(t, err)

	mine, err := s.PostsByAuthor(ctx, "ana1")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "ana second", mine[0].Content)
	assert.Equal(t, "ana first", mine[1].Content)

	none, err := s.PostsByAuthor(ctx, "ghost")
	require.NoError(t, err)
	assert.Empty(t, none)
}

// Full walkthrough of the account + feed lifecycle.
func TestPostLifecycleScenario(t *testing.T) {
	saver := &noopSaver{}
	directory := userService.NewDirectory(saver, nil)
	s := NewStore(saver, directory, nil)
	ctx := context.Background()

	_, err := directory.Register(ctx, user.RegisterRequest{
		Username: "ana1",
		Email:    "ana@x.com",
		Password: "Abcdef1",
		Name:     "Ana Lima",
	})
	require.NoError(t, err)

	authed, err := directory.Authenticate(ctx, "ana1", "Abcdef1")
	require.NoError(t, err)
	assert.Equal(t, "ana1", authed.Username)

	created, err := s.Create(ctx, "ana1", "Hello world!!")
	require.NoError(t, err)

	feed, err := s.Feed(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Hello world!!", feed[0].Content)

	_, err = s.ToggleLike(ctx, created.ID, "ana1")
	require.NoError(t, err)
	liked, err := s.ToggleLike(ctx, created.ID, "ana1")
	require.NoError(t, err)
	assert.Equal(t, 0, liked.LikeCount())

	assert.ErrorIs(t, s.Delete(ctx, created.ID, "other_user"), post.ErrNotAuthorized)
	require.NoError(t, s.Delete(ctx, created.ID, "ana1"))

	feed, err = s.Feed(ctx)
	require.NoError(t, err)
	for _, p := range feed {
		assert.NotEqual(t, created.ID, p.ID)
	}
}
