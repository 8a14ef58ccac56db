package post

import (
	"slices"
	"time"
)

// Content limits. Trimming and truncation happen before the minimum
// length checks.
const (
	MaxContentLength = 500
	MinContentLength = 5
	MaxCommentLength = 200
	MinCommentLength = 2
)

// Post is a feed entry. IDs are integers assigned as max(existing)+1,
// which means the id of a deleted newest post is reused by the next
// creation - observable behavior the store keeps on purpose.
type Post struct {
	ID int `json:"id"`

	// Author
	AuthorUsername string `json:"author_username"`
	// AuthorName is a snapshot of the author's display name at creation
	// time; it is not updated if the profile changes later.
	AuthorName string `json:"author_name"`

	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`

	// Likes holds usernames in the order the likes arrived. Liking is a
	// toggle: a second like by the same user removes the first.
	Likes []string `json:"likes"`

	// Comments is append-only, never reordered or individually removed.
	Comments []Comment `json:"comments"`
}

// Comment is immutable once created.
type Comment struct {
	AuthorUsername string    `json:"author_username"`
	AuthorName     string    `json:"author_name"`
	Text           string    `json:"text"`
	CreatedAt      time.Time `json:"created_at"`
}

// LikedBy reports whether username currently likes the post.
func (p *Post) LikedBy(username string) bool {
	return slices.Contains(p.Likes, username)
}

// LikeCount returns the number of current likes.
func (p *Post) LikeCount() int {
	return len(p.Likes)
}

// CommentCount returns the number of comments.
func (p *Post) CommentCount() int {
	return len(p.Comments)
}

// Clone returns a deep copy for persistence snapshots.
func (p *Post) Clone() Post {
	cp := *p
	cp.Likes = slices.Clone(p.Likes)
	cp.Comments = slices.Clone(p.Comments)
	return cp
}
