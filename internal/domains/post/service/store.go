package service

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"pronet/internal/domains/post"
	"pronet/internal/domains/user"
	"pronet/internal/infrastructure/persistence"
	"pronet/internal/shared/utils"
)

// Directory is the slice of the user directory the store needs: it
// resolves author display names at creation time (the snapshot stored
// on posts and comments).
type Directory interface {
	Get(ctx context.Context, username string) (*user.User, error)
}

// Store owns the feed: a single ordered sequence of posts, newest
// first, plus a lazily built per-author index. The index is cleared
// wholesale on every mutation rather than updated incrementally -
// recompute is cheap and can never go stale.
type Store struct {
	mu       sync.RWMutex
	posts    []*post.Post // newest first, insert-at-front
	byAuthor map[string][]*post.Post
	dir      Directory
	saver    persistence.Saver
}

// NewStore builds the store from a loaded (or seeded) post list, which
// is already ordered newest first.
func NewStore(saver persistence.Saver, dir Directory, seed []post.Post) *Store {
	s := &Store{
		byAuthor: make(map[string][]*post.Post),
		dir:      dir,
		saver:    saver,
	}
	for i := range seed {
		p := seed[i].Clone()
		s.posts = append(s.posts, &p)
	}
	return s
}

// Create publishes a post at the front of the feed. Content is trimmed
// and truncated to 500 characters before the 5-character minimum check.
// The id is max(existing)+1, so deleting the newest post hands its id
// to the next creation.
func (s *Store) Create(ctx context.Context, authorUsername, content string) (*post.Post, error) {
	content = utils.CleanText(content, post.MaxContentLength)
	if len([]rune(content)) < post.MinContentLength {
		return nil, post.ErrContentTooShort
	}

	author, err := s.dir.Get(ctx, authorUsername)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	p := &post.Post{
		ID:             s.nextID(),
		AuthorUsername: author.Username,
		AuthorName:     author.Name,
		Content:        content,
		CreatedAt:      time.Now(),
		Likes:          []string{},
		Comments:       []post.Comment{},
	}

	s.posts = append([]*post.Post{p}, s.posts...)
	s.invalidateCache()
	s.mu.Unlock()

	s.persist(ctx)

	log.Info().Int("post_id", p.ID).Str("author", p.AuthorUsername).Msg("post created")
	return p, nil
}

// nextID recomputes from the surviving posts. Callers hold the lock.
func (s *Store) nextID() int {
	highest := 0
	for _, p := range s.posts {
		if p.ID > highest {
			highest = p.ID
		}
	}
	return highest + 1
}

// ToggleLike flips username's like on the post: present removes it,
// absent adds it. Two calls restore the original like set.
func (s *Store) ToggleLike(ctx context.Context, postID int, username string) (*post.Post, error) {
	s.mu.Lock()
	p := s.find(postID)
	if p == nil {
		s.mu.Unlock()
		return nil, post.ErrPostNotFound
	}

	if i := slices.Index(p.Likes, username); i >= 0 {
		p.Likes = slices.Delete(p.Likes, i, i+1)
	} else {
		p.Likes = append(p.Likes, username)
	}
	s.invalidateCache()
	s.mu.Unlock()

	s.persist(ctx)
	return p, nil
}

// AddComment appends to the post's comment sequence. Text is trimmed
// and truncated to 200 characters before the 2-character minimum check.
// Comments keep arrival order and are never edited or removed.
func (s *Store) AddComment(ctx context.Context, postID int, username, text string) (*post.Comment, error) {
	text = utils.CleanText(text, post.MaxCommentLength)
	if len([]rune(text)) < post.MinCommentLength {
		return nil, post.ErrCommentTooShort
	}

	author, err := s.dir.Get(ctx, username)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	p := s.find(postID)
	if p == nil {
		s.mu.Unlock()
		return nil, post.ErrPostNotFound
	}

	c := post.Comment{
		AuthorUsername: author.Username,
		AuthorName:     author.Name,
		Text:           text,
		CreatedAt:      time.Now(),
	}
	p.Comments = append(p.Comments, c)
	added := &p.Comments[len(p.Comments)-1]
	s.invalidateCache()
	s.mu.Unlock()

	s.persist(ctx)
	return added, nil
}

// Delete removes a post from the feed. Only the author may delete; a
// missing post and someone else's post are both rejected the same way,
// so a spoofed requester learns nothing.
func (s *Store) Delete(ctx context.Context, postID int, requestingUsername string) error {
	s.mu.Lock()
	i := slices.IndexFunc(s.posts, func(p *post.Post) bool { return p.ID == postID })
	if i < 0 || s.posts[i].AuthorUsername != requestingUsername {
		s.mu.Unlock()
		return post.ErrNotAuthorized
	}

	s.posts = slices.Delete(s.posts, i, i+1)
	s.invalidateCache()
	s.mu.Unlock()

	s.persist(ctx)

	log.Info().Int("post_id", postID).Str("author", requestingUsername).Msg("post deleted")
	return nil
}

// PostsByAuthor serves the author's posts, newest first, from the
// per-author index. The index entry is built on first request and the
// whole index is dropped by any mutation anywhere in the store.
func (s *Store) PostsByAuthor(ctx context.Context, username string) ([]*post.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cached, ok := s.byAuthor[username]
	if !ok {
		for _, p := range s.posts {
			if p.AuthorUsername == username {
				cached = append(cached, p)
			}
		}
		s.byAuthor[username] = cached
	}
	return slices.Clone(cached), nil
}

// Feed returns the full store, newest first. Callers page through it
// externally.
func (s *Store) Feed(ctx context.Context) ([]*post.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.posts), nil
}

// SnapshotPosts returns deep copies for the persistence coordinator.
func (s *Store) SnapshotPosts() []post.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]post.Post, 0, len(s.posts))
	for _, p := range s.posts {
		snapshot = append(snapshot, p.Clone())
	}
	return snapshot
}

// find returns the live post with the given id. Callers hold the lock.
func (s *Store) find(postID int) *post.Post {
	for _, p := range s.posts {
		if p.ID == postID {
			return p
		}
	}
	return nil
}

// invalidateCache drops the whole per-author index. Coarse on purpose:
// correctness over hit rate. Callers hold the lock.
func (s *Store) invalidateCache() {
	s.byAuthor = make(map[string][]*post.Post)
}

// persist writes through; failures are logged and latched by the
// coordinator while the in-memory feed stays authoritative. Must be
// called with s.mu released: the coordinator calls back into
// SnapshotPosts.
func (s *Store) persist(ctx context.Context) {
	_ = s.saver.Save(ctx)
}
