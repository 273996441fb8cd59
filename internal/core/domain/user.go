package domain

import (
	"errors"
	"time"
)

const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
	RoleAgent  = "agent"
	RoleAdmin  = "admin"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrEmailTaken = errors.New("email already registered")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidToken = errors.New("invalid token")

// signupRoles are the roles a caller may request at registration. Admin
// accounts are provisioned out of band and can never be self-assigned.
var signupRoles = map[string]struct{}{
	RoleBuyer:  {},
	RoleSeller: {},
	RoleAgent:  {},
}

// NormalizeRole maps a requested signup role onto the allowed set. Anything
// outside the whitelist, "admin" included, silently becomes RoleBuyer.
// Unrecognized values are downgraded, not rejected; callers that want strict
// behavior must check before calling.
func NormalizeRole(requested string) string {
	if _, ok := signupRoles[requested]; ok {
		return requested
	}
	return RoleBuyer
}

// User models a registered identity in the marketplace.
// PasswordHash never crosses the JSON boundary.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// WithoutPassword returns a copy of the user safe to hand to external callers.
func (u *User) WithoutPassword() *User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.PasswordHash = ""
	return &clone
}

// ValidationError marks a client-correctable input problem. The message is
// safe to return verbatim in a response body.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Validation builds a ValidationError from a message.
func Validation(msg string) error {
	return &ValidationError{Msg: msg}
}
