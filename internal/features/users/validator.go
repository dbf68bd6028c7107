package users

import (
	"errors"
	"strings"

	"github.com/zubairstack/todoapp/internal/pkg/validator"
)

// ValidateSignup checks the signup form before any data access happens.
func ValidateSignup(req *SignupRequest) error {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if req.Username == "" || req.Email == "" || req.Password == "" {
		return errors.New("All fields are required.")
	}

	if err := ValidateUsername(req.Username); err != nil {
		return err
	}

	if !validator.IsValidEmail(req.Email) {
		return errors.New("Invalid email address.")
	}

	if len(req.Password) < 6 {
		return errors.New("Password must be at least 6 characters.")
	}

	return nil
}

// ValidateUsername checks the username length and character set.
func ValidateUsername(username string) error {
	if len(username) < 3 || len(username) > 20 {
		return errors.New("Username must be between 3 and 20 characters.")
	}
	if !validator.IsValidUsername(username) {
		return errors.New("Username may only contain letters, numbers, underscores, or hyphens.")
	}
	return nil
}

// ValidateSignin checks the login payload.
func ValidateSignin(req *SigninRequest) error {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if req.Email == "" || req.Password == "" {
		return errors.New("Email and password are required.")
	}
	return nil
}
