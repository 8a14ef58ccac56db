package post

import "errors"

// Store-level errors
var (
	// Not Found
	ErrPostNotFound = errors.New("post not found")

	// Validation
	ErrContentTooShort = errors.New("post content must have at least 5 characters")
	ErrCommentTooShort = errors.New("comment must have at least 2 characters")

	// Authorization
	ErrNotAuthorized = errors.New("not authorized to delete this post")
)
