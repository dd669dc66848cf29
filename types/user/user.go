package user

import (
	"fmt"
)

// TokenRequest asks for a bearer token for a signed-in user.
type TokenRequest struct {
	Email string `json:"email"`
}

func (r TokenRequest) Validate() error {
	if r.Email == "" {
		return fmt.Errorf("email is required")
	}
	return nil
}

// UpsertUserRequest records a user on first sign-in. Inserting an email that
// already exists is not an error; the store reports the conflict.
type UpsertUserRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	PhotoURL string `json:"photoURL"`
	Role     string `json:"role"`
}

func (r UpsertUserRequest) Validate() error {
	if r.Email == "" {
		return fmt.Errorf("email is required")
	}
	return nil
}

// ProfileUpdateRequest carries the editable profile fields.
type ProfileUpdateRequest struct {
	Name     string `json:"name"`
	PhotoURL string `json:"photoURL"`
}
