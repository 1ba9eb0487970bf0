package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"padelcygnus/internal/domain/credential"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(strings.NewReader(stdin), &out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// TestHashPassword verifies the printed hash verifies the piped password.
func TestHashPassword(t *testing.T) {
	out, err := run(t, "S3cret!\n", "hash-password")
	if err != nil {
		t.Fatalf("hash-password: %v", err)
	}
	cred, err := credential.FromHash("admin@padelcygnus.com", strings.TrimSpace(out))
	if err != nil {
		t.Fatalf("FromHash: %v", err)
	}
	if !cred.Matches("admin@padelcygnus.com", "S3cret!") {
		t.Error("hash does not match the input password")
	}
}

// TestHashPassword_Empty verifies an empty password is rejected.
func TestHashPassword_Empty(t *testing.T) {
	if _, err := run(t, "\n", "hash-password"); err == nil {
		t.Error("expected error for empty password")
	}
}

// TestSeed verifies both kinds and rejects unknown ones.
func TestSeed(t *testing.T) {
	tests := []struct {
		kind            string
		wantBookings    int
		wantMembers     int
		wantFirstStatus string
	}{
		{"admin", 3, 3, "Pendiente"},
		{"member", 2, 0, "Confirmado"},
	}
	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			out, err := run(t, "", "seed", "--kind", tt.kind)
			if err != nil {
				t.Fatalf("seed: %v", err)
			}
			var got struct {
				Bookings []struct {
					ID     string `json:"id"`
					Status string `json:"status"`
				} `json:"bookings"`
				Members []json.RawMessage `json:"members"`
			}
			if err := json.Unmarshal([]byte(out), &got); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if len(got.Bookings) != tt.wantBookings || len(got.Members) != tt.wantMembers {
				t.Fatalf("bookings = %d, members = %d", len(got.Bookings), len(got.Members))
			}
			// Rows come back from the store in seed order.
			if got.Bookings[0].ID != "1" || got.Bookings[0].Status != tt.wantFirstStatus {
				t.Errorf("first booking = %+v, want id 1 with status %s", got.Bookings[0], tt.wantFirstStatus)
			}
		})
	}

	if _, err := run(t, "", "seed", "--kind", "coach"); err == nil {
		t.Error("expected error for unknown kind")
	}
}

// TestCheckConfig verifies the defaults pass and a bad level fails.
func TestCheckConfig(t *testing.T) {
	out, err := run(t, "", "check-config")
	if err != nil {
		t.Fatalf("check-config: %v", err)
	}
	if !strings.Contains(out, "env=development") || !strings.Contains(out, "email=noop") {
		t.Errorf("output = %q", out)
	}

	t.Setenv("PADEL_LOG_LEVEL", "loud")
	if _, err := run(t, "", "check-config"); err == nil {
		t.Error("expected error for invalid log level")
	}
}
