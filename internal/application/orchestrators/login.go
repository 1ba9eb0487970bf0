package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"padelcygnus/internal/domain/credential"
	"padelcygnus/internal/domain/role"
)

// Authenticator verifies operator credentials. The server wires a
// ConfigAuthenticator; tests and alternative identity providers supply their own.
type Authenticator interface {
	// VerifyAdmin reports whether email and password are exactly the admin pair.
	VerifyAdmin(ctx context.Context, email, password string) (bool, error)
}

// ConfigAuthenticator checks submissions against one configured credential.
type ConfigAuthenticator struct {
	Credential credential.Credential
}

// VerifyAdmin implements Authenticator.
// PRE: none
// POST: Returns true only for an exact email match and a matching bcrypt password
func (a ConfigAuthenticator) VerifyAdmin(_ context.Context, email, password string) (bool, error) {
	return a.Credential.Matches(email, password), nil
}

// LoginMode selects how a non-admin pair is treated.
type LoginMode int

const (
	// LoginModeOpen grants any non-admin pair a member session.
	LoginModeOpen LoginMode = iota
	// LoginModeAdminOnly rejects every pair except the admin credential.
	LoginModeAdminOnly
)

// LoginInput carries input for the login orchestrator.
type LoginInput struct {
	Email    string
	Password string
	Mode     LoginMode
}

// LoginResult carries the identity a session is created for.
type LoginResult struct {
	Email string
	Role  role.Role
}

// LoginDeps holds dependencies for Login.
type LoginDeps struct {
	Authenticator Authenticator
}

// Auth errors
var (
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrIncompleteSignUp   = errors.New("name, email and password are required")
)

// ExecuteLogin resolves a submitted pair to a session role.
// PRE: deps.Authenticator is non-nil
// POST: Exact admin pair yields role admin; in open mode any other non-empty pair yields role member
// INVARIANT: the role is decided by credential comparison alone
func ExecuteLogin(ctx context.Context, input LoginInput, deps LoginDeps) (LoginResult, error) {
	if input.Email == "" || input.Password == "" {
		slog.Info("auth_event", "event", "login_failed", "email", input.Email, "reason", "empty_field")
		return LoginResult{}, ErrInvalidCredentials
	}

	isAdmin, err := deps.Authenticator.VerifyAdmin(ctx, input.Email, input.Password)
	if err != nil {
		return LoginResult{}, err
	}

	if isAdmin {
		slog.Info("auth_event", "event", "login_success", "email", input.Email, "role", role.Admin)
		return LoginResult{Email: input.Email, Role: role.Admin}, nil
	}

	if input.Mode == LoginModeAdminOnly {
		slog.Info("auth_event", "event", "login_failed", "email", input.Email, "reason", "not_admin")
		return LoginResult{}, ErrInvalidCredentials
	}

	slog.Info("auth_event", "event", "login_success", "email", input.Email, "role", role.Member)
	return LoginResult{Email: input.Email, Role: role.Member}, nil
}

// SignUpInput carries input for the sign-up orchestrator.
type SignUpInput struct {
	Name     string
	Email    string
	Password string
}

// ExecuteSignUp opens a member session for a new visitor. Nothing is stored:
// the password is only checked for presence.
// PRE: none
// POST: Returns a member identity or ErrIncompleteSignUp
func ExecuteSignUp(_ context.Context, input SignUpInput) (LoginResult, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return LoginResult{}, ErrIncompleteSignUp
	}
	slog.Info("auth_event", "event", "signup", "email", input.Email, "name", input.Name)
	return LoginResult{Email: input.Email, Role: role.Member}, nil
}
