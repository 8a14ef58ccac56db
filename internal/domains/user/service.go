package user

import "context"

// Service defines the directory contract consumed by the terminal
// frontend and the other domains.
type Service interface {
	// Register creates a new profile.
	// Returns: ErrUsernameTaken, ErrEmailTaken, or a wrapped
	// ErrInvalidField when a field fails validation.
	Register(ctx context.Context, req RegisterRequest) (*User, error)

	// Authenticate verifies credentials with an exact password compare.
	// Returns: ErrUserNotFound, ErrWrongPassword.
	Authenticate(ctx context.Context, username, password string) (*User, error)

	// Get looks up a profile by its immutable username key.
	// Returns: ErrUserNotFound.
	Get(ctx context.Context, username string) (*User, error)

	// Search scans for a case-insensitive substring of username or
	// display name. Results follow directory insertion order; each call
	// re-scans, so the sequence is restartable by searching again.
	Search(ctx context.Context, term string) ([]*User, error)

	// List returns every profile in insertion order, for paginated
	// browsing.
	List(ctx context.Context) ([]*User, error)

	// EmailInUse reports whether any profile is bound to email.
	EmailInUse(ctx context.Context, email string) (bool, error)

	// UpdateProfile mutates only the non-empty fields of req.
	// Returns: ErrUserNotFound.
	UpdateProfile(ctx context.Context, username string, req UpdateProfileRequest) (*User, error)
}
