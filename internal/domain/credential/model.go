package credential

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Domain errors
var (
	ErrEmptyEmail    = errors.New("email cannot be empty")
	ErrEmptyPassword = errors.New("password cannot be empty")
	ErrInvalidHash   = errors.New("password hash is not a bcrypt hash")
)

// Credential is the single operator identity allowed into the admin dashboard.
type Credential struct {
	Email        string
	PasswordHash string
}

// New hashes plaintext and returns a Credential.
// PRE: email and plaintext are non-empty
// POST: PasswordHash is a bcrypt hash of plaintext
func New(email, plaintext string) (Credential, error) {
	if strings.TrimSpace(email) == "" {
		return Credential{}, ErrEmptyEmail
	}
	if plaintext == "" {
		return Credential{}, ErrEmptyPassword
	}
	hash, err := HashPassword(plaintext)
	if err != nil {
		return Credential{}, err
	}
	return Credential{Email: email, PasswordHash: hash}, nil
}

// FromHash builds a Credential from a precomputed bcrypt hash.
// PRE: hash was produced by bcrypt
// POST: Returns ErrInvalidHash if hash cannot be parsed
func FromHash(email, hash string) (Credential, error) {
	if strings.TrimSpace(email) == "" {
		return Credential{}, ErrEmptyEmail
	}
	if _, err := bcrypt.Cost([]byte(hash)); err != nil {
		return Credential{}, ErrInvalidHash
	}
	return Credential{Email: email, PasswordHash: hash}, nil
}

// HashPassword returns a bcrypt hash at the default cost.
func HashPassword(plaintext string) (string, error) {
	if plaintext == "" {
		return "", ErrEmptyPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Matches reports whether the submitted pair is exactly this credential.
// Email comparison is exact: no trimming, no case folding.
// INVARIANT: Credential fields are not mutated
func (c Credential) Matches(email, plaintext string) bool {
	if email != c.Email || plaintext == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(plaintext)) == nil
}
