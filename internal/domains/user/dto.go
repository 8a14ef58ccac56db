package user

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
	emailPattern    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	upperPattern    = regexp.MustCompile(`[A-Z]`)
	digitPattern    = regexp.MustCompile(`[0-9]`)
)

// ========================================
// REGISTRATION
// ========================================

// RegisterRequest carries everything the directory needs to create a
// profile. Title and Bio are optional; blanks fall back to defaults.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Title    string `json:"title,omitempty"`
	Bio      string `json:"bio,omitempty"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username,
			validation.Required.Error("username must have at least 3 characters"),
			validation.RuneLength(3, 0).Error("username must have at least 3 characters"),
			validation.Match(usernamePattern).Error("username may only contain letters, numbers and underscore"),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			validation.Match(emailPattern).Error("invalid email format, use local@example.com"),
		),
		validation.Field(&r.Password,
			validation.Required.Error("password must have at least 6 characters"),
			validation.RuneLength(6, 0).Error("password must have at least 6 characters"),
			validation.Match(upperPattern).Error("password must contain an uppercase letter"),
			validation.Match(digitPattern).Error("password must contain a number"),
		),
		validation.Field(&r.Name,
			validation.Required.Error("name must have at least 3 characters"),
			validation.RuneLength(3, 0).Error("name must have at least 3 characters"),
		),
	)
}

// ========================================
// PROFILE
// ========================================

// UpdateProfileRequest - only the fields a user can edit after
// registration. Empty fields are left untouched.
type UpdateProfileRequest struct {
	Title string `json:"title,omitempty"`
	Bio   string `json:"bio,omitempty"`
}
