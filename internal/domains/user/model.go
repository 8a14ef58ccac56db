package user

import (
	"slices"
	"time"
)

// Defaults applied at registration when the optional profile fields are
// left blank.
const (
	DefaultTitle = "Professional"
	DefaultBio   = "No bio provided"

	MaxBioLength = 200
)

// User is the profile record owned by the directory.
// Username is the immutable key, chosen at registration.
// Followers/Following are the symmetric duals of the connection graph
// and are only ever mutated through RecordFollow.
type User struct {
	// Identity
	Username string `json:"username"`
	Email    string `json:"email"`

	// Authentication
	// Stored and compared verbatim: the system this models keeps
	// passwords in plain form and the session never leaves the process.
	Password string `json:"password"`

	// Profile
	Name  string `json:"name"`
	Title string `json:"title"`
	Bio   string `json:"bio"`

	// Graph duals - always mirror the connection set
	Followers []string `json:"followers"`
	Following []string `json:"following"`

	CreatedAt time.Time `json:"created_at"`
}

// IsFollowing reports whether u follows username.
func (u *User) IsFollowing(username string) bool {
	return slices.Contains(u.Following, username)
}

// IsFollowedBy reports whether username follows u.
func (u *User) IsFollowedBy(username string) bool {
	return slices.Contains(u.Followers, username)
}

// Clone returns a deep copy, used when snapshotting the directory for
// persistence so the gateway never aliases live slices.
func (u *User) Clone() User {
	cp := *u
	cp.Followers = slices.Clone(u.Followers)
	cp.Following = slices.Clone(u.Following)
	return cp
}
