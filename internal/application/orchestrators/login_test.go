package orchestrators

import (
	"context"
	"errors"
	"testing"

	"padelcygnus/internal/domain/credential"
	"padelcygnus/internal/domain/role"
)

const (
	adminEmail    = "admin@padelcygnus.com"
	adminPassword = "Admin123!"
)

func testAuthenticator(t *testing.T) ConfigAuthenticator {
	t.Helper()
	c, err := credential.New(adminEmail, adminPassword)
	if err != nil {
		t.Fatalf("credential.New: %v", err)
	}
	return ConfigAuthenticator{Credential: c}
}

// failingAuthenticator simulates an unreachable identity provider.
type failingAuthenticator struct{}

// VerifyAdmin implements Authenticator.
// PRE: none
// POST: always returns an error
func (failingAuthenticator) VerifyAdmin(context.Context, string, string) (bool, error) {
	return false, errors.New("identity provider down")
}

// TestExecuteLogin_Roles covers role derivation in both modes.
func TestExecuteLogin_Roles(t *testing.T) {
	deps := LoginDeps{Authenticator: testAuthenticator(t)}

	tests := []struct {
		name     string
		input    LoginInput
		wantRole role.Role
		wantErr  error
	}{
		{"admin pair on landing", LoginInput{Email: adminEmail, Password: adminPassword}, role.Admin, nil},
		{"other pair on landing", LoginInput{Email: "ana@example.com", Password: "whatever"}, role.Member, nil},
		{"admin email wrong password on landing", LoginInput{Email: adminEmail, Password: "adminpass123"}, role.Member, nil},
		{"admin pair on admin screen", LoginInput{Email: adminEmail, Password: adminPassword, Mode: LoginModeAdminOnly}, role.Admin, nil},
		{"other pair on admin screen", LoginInput{Email: "ana@example.com", Password: "x", Mode: LoginModeAdminOnly}, "", ErrInvalidCredentials},
		{"empty password", LoginInput{Email: adminEmail}, "", ErrInvalidCredentials},
		{"empty email", LoginInput{Password: adminPassword}, "", ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := ExecuteLogin(context.Background(), tt.input, deps)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if res.Role != tt.wantRole {
				t.Errorf("role = %q, want %q", res.Role, tt.wantRole)
			}
			if err == nil && res.Email != tt.input.Email {
				t.Errorf("email = %q, want %q", res.Email, tt.input.Email)
			}
		})
	}
}

// TestExecuteLogin_ErrorMessage verifies the only user-visible error text.
func TestExecuteLogin_ErrorMessage(t *testing.T) {
	if ErrInvalidCredentials.Error() != "Invalid email or password" {
		t.Errorf("message = %q", ErrInvalidCredentials.Error())
	}
}

// TestExecuteLogin_AuthenticatorError verifies provider failures are not masked as bad credentials.
func TestExecuteLogin_AuthenticatorError(t *testing.T) {
	_, err := ExecuteLogin(context.Background(),
		LoginInput{Email: adminEmail, Password: adminPassword},
		LoginDeps{Authenticator: failingAuthenticator{}},
	)
	if err == nil || errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("err = %v, want provider error", err)
	}
}

// TestExecuteSignUp covers required fields.
func TestExecuteSignUp(t *testing.T) {
	res, err := ExecuteSignUp(context.Background(), SignUpInput{Name: "Ana", Email: "ana@example.com", Password: "pw"})
	if err != nil {
		t.Fatalf("ExecuteSignUp: %v", err)
	}
	if res.Role != role.Member || res.Email != "ana@example.com" {
		t.Errorf("result = %+v", res)
	}

	for _, in := range []SignUpInput{
		{Email: "a@b.c", Password: "pw"},
		{Name: "Ana", Password: "pw"},
		{Name: "Ana", Email: "a@b.c"},
	} {
		if _, err := ExecuteSignUp(context.Background(), in); !errors.Is(err, ErrIncompleteSignUp) {
			t.Errorf("ExecuteSignUp(%+v) err = %v, want ErrIncompleteSignUp", in, err)
		}
	}
}
