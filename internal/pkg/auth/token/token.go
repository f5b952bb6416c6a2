package token

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const defaultTTL = 30 * time.Minute

// ErrInvalidToken covers every verification failure: bad signature, wrong
// algorithm, expiry, malformed claims.
var ErrInvalidToken = errors.New("token: invalid or expired token")

// Identity is what a verified bearer credential resolves to.
type Identity struct {
	Email string
	Role  string
}

// Manager issues and verifies HS256-signed access tokens.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager builds a Manager with an explicit secret.
func NewManager(secret string, ttl time.Duration) (*Manager, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("token: signing secret is required")
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Manager{secret: []byte(secret), ttl: ttl}, nil
}

// NewManagerFromEnv reads JWT_SECRET from the environment.
func NewManagerFromEnv() (*Manager, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("token: JWT_SECRET environment variable is not set")
	}
	return NewManager(secret, defaultTTL)
}

// Issue signs an access token carrying the user's email and role.
func (m *Manager) Issue(id Identity, now time.Time) (string, error) {
	if id.Email == "" {
		return "", errors.New("token: email is required")
	}
	if now.IsZero() {
		now = time.Now()
	}
	claims := jwt.MapClaims{
		"sub":  id.Email,
		"role": id.Role,
		"iat":  now.Unix(),
		"exp":  now.Add(m.ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("token: sign: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a bearer token and returns the identity it
// carries. All failures collapse into ErrInvalidToken so callers don't leak
// verification detail.
func (m *Manager) Verify(raw string) (Identity, error) {
	parsed, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return m.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !parsed.Valid {
		return Identity{}, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, ErrInvalidToken
	}
	email, _ := claims["sub"].(string)
	if email == "" {
		return Identity{}, ErrInvalidToken
	}
	role, _ := claims["role"].(string)
	return Identity{Email: email, Role: role}, nil
}
