package domain

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for user operations.
var (
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("user already exists")
)

// Role codes carried in the token.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User represents a registered user
// swagger:model User
type User struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	PasswordHash     string    `json:"-"`
	Salt             string    `json:"-"`
	Role             string    `json:"role"`
	Phone            string    `json:"phone,omitempty"`
	College          string    `json:"college,omitempty"`
	ProfilePicture   string    `json:"profile_picture,omitempty"`
	RegisteredEvents []string  `json:"registered_events"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// NewUser returns a new User with the given fields. ID is typically set by the repository on create.
func NewUser(name, email, role string, createdAt, updatedAt time.Time) *User {
	return &User{
		Name:             name,
		Email:            email,
		Role:             role,
		RegisteredEvents: []string{},
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserUpdate holds profile changes. Empty fields keep the current value.
type UserUpdate struct {
	Name           string
	Email          string
	Phone          string
	College        string
	ProfilePicture string
	Password       string
}

// TokenClaims is the identity embedded in an issued token.
type TokenClaims struct {
	UserID string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// ClaimsFor returns the token claims describing u.
func ClaimsFor(u *User) TokenClaims {
	return TokenClaims{UserID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

// PasswordHasher handles salt generation, hashing, and verification.
// Implementations may use bcrypt, argon2, etc.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (hash string, err error)
	Compare(hash, salt, password string) error
}

// TokenIssuer issues signed tokens for an authenticated user.
type TokenIssuer interface {
	Issue(claims TokenClaims, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token's signature and expiry and returns its claims.
type TokenVerifier interface {
	Verify(token string) (*TokenClaims, error)
}

// UserRepository defines the interface for user storage
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	List(ctx context.Context) ([]*User, error)
	Update(ctx context.Context, user *User) error
	DeleteAll(ctx context.Context) error
}

// UserService defines the business logic for registration, login and profiles.
type UserService interface {
	Register(ctx context.Context, name, email, password string) (token string, user *User, err error)
	Login(ctx context.Context, email, password string) (token string, user *User, err error)
	List(ctx context.Context) ([]*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	RegisteredEvents(ctx context.Context, userID string) ([]*Event, error)
	Update(ctx context.Context, userID string, upd UserUpdate) (token string, user *User, err error)
}
