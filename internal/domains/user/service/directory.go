package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"pronet/internal/domains/user"
	"pronet/internal/infrastructure/persistence"
	"pronet/internal/shared/utils"
)

// Directory owns the username -> profile mapping. State lives in
// memory; every successful mutation is written through the persistence
// coordinator.
type Directory struct {
	mu    sync.RWMutex
	users map[string]*user.User
	order []string // usernames in insertion order; map iteration alone is unordered
	saver persistence.Saver
}

// NewDirectory builds the directory from a loaded (or seeded) snapshot.
func NewDirectory(saver persistence.Saver, seed []user.User) *Directory {
	d := &Directory{
		users: make(map[string]*user.User, len(seed)),
		saver: saver,
	}
	for i := range seed {
		u := seed[i].Clone()
		d.users[u.Username] = &u
		d.order = append(d.order, u.Username)
	}
	return d
}

// Register creates a new profile after shape validation and uniqueness
// checks. Title and bio fall back to defaults when blank; the bio is
// capped at 200 characters.
func (d *Directory) Register(ctx context.Context, req user.RegisterRequest) (*user.User, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", user.ErrInvalidField, err)
	}

	d.mu.Lock()
	if _, ok := d.users[req.Username]; ok {
		d.mu.Unlock()
		return nil, user.ErrUsernameTaken
	}
	for _, username := range d.order {
		if d.users[username].Email == req.Email {
			d.mu.Unlock()
			return nil, user.ErrEmailTaken
		}
	}

	u := &user.User{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		Name:      strings.TrimSpace(req.Name),
		Title:     utils.DefaultIfBlank(strings.TrimSpace(req.Title), user.DefaultTitle),
		Bio:       utils.DefaultIfBlank(utils.CleanText(req.Bio, user.MaxBioLength), user.DefaultBio),
		Followers: []string{},
		Following: []string{},
		CreatedAt: time.Now(),
	}

	d.users[u.Username] = u
	d.order = append(d.order, u.Username)
	d.mu.Unlock()

	d.persist(ctx)

	log.Info().Str("username", u.Username).Msg("user registered")
	return u, nil
}

// Authenticate verifies the password with an exact string compare.
func (d *Directory) Authenticate(ctx context.Context, username, password string) (*user.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	u, ok := d.users[username]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	if u.Password != password {
		return nil, user.ErrWrongPassword
	}
	return u, nil
}

// Get returns the live profile record. Callers must not mutate it
// directly; follower/following edges go through RecordFollow.
func (d *Directory) Get(ctx context.Context, username string) (*user.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	u, ok := d.users[username]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

// Search matches term case-insensitively against username and display
// name, in directory insertion order. Each call re-scans the directory.
func (d *Directory) Search(ctx context.Context, term string) ([]*user.User, error) {
	needle := strings.ToLower(strings.TrimSpace(term))

	d.mu.RLock()
	defer d.mu.RUnlock()

	var results []*user.User
	if needle == "" {
		return results, nil
	}
	for _, username := range d.order {
		u := d.users[username]
		if strings.Contains(strings.ToLower(u.Username), needle) ||
			strings.Contains(strings.ToLower(u.Name), needle) {
			results = append(results, u)
		}
	}
	return results, nil
}

// List returns every profile in insertion order.
func (d *Directory) List(ctx context.Context) ([]*user.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	all := make([]*user.User, 0, len(d.order))
	for _, username := range d.order {
		all = append(all, d.users[username])
	}
	return all, nil
}

// EmailInUse reports whether any profile is already bound to email.
func (d *Directory) EmailInUse(ctx context.Context, email string) (bool, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, username := range d.order {
		if d.users[username].Email == email {
			return true, nil
		}
	}
	return false, nil
}

// UpdateProfile applies only the non-empty fields of req. The bio is
// capped at 200 characters.
func (d *Directory) UpdateProfile(ctx context.Context, username string, req user.UpdateProfileRequest) (*user.User, error) {
	d.mu.Lock()
	u, ok := d.users[username]
	if !ok {
		d.mu.Unlock()
		return nil, user.ErrUserNotFound
	}

	changed := false
	if title := strings.TrimSpace(req.Title); title != "" {
		u.Title = title
		changed = true
	}
	if bio := utils.CleanText(req.Bio, user.MaxBioLength); bio != "" {
		u.Bio = bio
		changed = true
	}
	d.mu.Unlock()

	if changed {
		d.persist(ctx)
		log.Info().Str("username", username).Msg("profile updated")
	}
	return u, nil
}

// RecordFollow mirrors a new connection edge onto the follower/following
// duals of both profiles. It does NOT persist: the connection graph owns
// the edge insertion and flushes both stores in a single save, so a
// half-applied state is never written.
func (d *Directory) RecordFollow(ctx context.Context, follower, followee string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	src, ok := d.users[follower]
	if !ok {
		return user.ErrUserNotFound
	}
	dst, ok := d.users[followee]
	if !ok {
		return user.ErrUserNotFound
	}

	if !slices.Contains(src.Following, followee) {
		src.Following = append(src.Following, followee)
	}
	if !slices.Contains(dst.Followers, follower) {
		dst.Followers = append(dst.Followers, follower)
	}
	return nil
}

// SnapshotUsers returns deep copies of every profile in insertion
// order, for the persistence coordinator.
func (d *Directory) SnapshotUsers() []user.User {
	d.mu.RLock()
	defer d.mu.RUnlock()

	snapshot := make([]user.User, 0, len(d.order))
	for _, username := range d.order {
		snapshot = append(snapshot, d.users[username].Clone())
	}
	return snapshot
}

// persist writes through to durable storage. Failures are logged and
// latched by the coordinator; the in-memory state remains authoritative
// so the session continues. Must be called with d.mu released: the
// coordinator calls back into SnapshotUsers.
func (d *Directory) persist(ctx context.Context) {
	_ = d.saver.Save(ctx)
}
