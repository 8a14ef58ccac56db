package post

import "context"

// Service defines the feed/post store contract.
type Service interface {
	// Create publishes a post at the front of the feed. Content is
	// trimmed, truncated to 500 characters, then checked against the
	// 5-character minimum. The id is max(existing ids)+1.
	// Returns: ErrContentTooShort, user.ErrUserNotFound.
	Create(ctx context.Context, authorUsername, content string) (*Post, error)

	// ToggleLike adds the username to the like set, or removes it if
	// already present. Calling twice restores the original state.
	// Returns: ErrPostNotFound.
	ToggleLike(ctx context.Context, postID int, username string) (*Post, error)

	// AddComment appends a comment. Text is trimmed, truncated to 200
	// characters, then checked against the 2-character minimum.
	// Returns: ErrPostNotFound, ErrCommentTooShort.
	AddComment(ctx context.Context, postID int, username, text string) (*Comment, error)

	// Delete removes a post. Only the author may delete; a missing post
	// and a foreign post both answer ErrNotAuthorized.
	Delete(ctx context.Context, postID int, requestingUsername string) error

	// PostsByAuthor returns the author's posts, newest first, served
	// from the per-author cache.
	PostsByAuthor(ctx context.Context, username string) ([]*Post, error)

	// Feed returns all posts, newest first.
	Feed(ctx context.Context) ([]*Post, error)
}
