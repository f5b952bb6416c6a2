package auth

import (
	"errors"
	"strings"
	"time"
)

// Role distinguishes regular parents from back-office admins.
const (
	RoleParent = "parent"
	RoleAdmin  = "admin"
)

// Domain-level errors for account behaviors
var (
	ErrEmailTaken         = errors.New("auth: email already registered")
	ErrInvalidCredentials = errors.New("auth: incorrect email or password")
)

// User is a parent or admin account. PasswordHash is a bcrypt hash and must
// never cross the HTTP boundary.
type User struct {
	ID           string    `db:"id"`
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}

// NewUser normalizes and validates signup input. Hashing happens in the
// application layer; this receives the already-hashed password.
func NewUser(firstName, lastName, email, passwordHash string) (*User, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	email = strings.ToLower(strings.TrimSpace(email))

	if firstName == "" || lastName == "" {
		return nil, errors.New("auth: first and last name are required")
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, errors.New("auth: a valid email is required")
	}
	if passwordHash == "" {
		return nil, errors.New("auth: password hash is required")
	}

	return &User{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         RoleParent,
		CreatedAt:    time.Now().UTC(),
	}, nil
}
