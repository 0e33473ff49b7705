package password_test

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"teammeet/shared/password"
)

func TestConstants(t *testing.T) {
	if password.DefaultCost != bcrypt.DefaultCost {
		t.Errorf("expected DefaultCost to be %d, got %d", bcrypt.DefaultCost, password.DefaultCost)
	}
}

func TestHash(t *testing.T) {
	tests := []struct {
		name        string
		password    string
		expectError bool
	}{
		{
			name:     "valid password",
			password: "validPassword123",
		},
		{
			name:        "empty password",
			password:    "",
			expectError: true,
		},
		{
			name:     "short password",
			password: "abc",
		},
		{
			name: "password beyond bcrypt's 72 byte limit",
			// bcrypt refuses inputs longer than 72 bytes.
			password:    strings.Repeat("a", 100),
			expectError: true,
		},
		{
			name:     "password with special characters",
			password: "P@ssw0rd!#$%^&*()",
		},
		{
			name:     "unicode password",
			password: "пароль123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := password.Hash(tt.password)

			if tt.expectError {
				if err == nil {
					t.Error("expected error, got nil")
				}

				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if hash == "" {
				t.Error("expected non-empty hash")
			}

			if hash == tt.password {
				t.Error("hash must not equal the plain password")
			}

			if err := password.Verify(tt.password, hash); err != nil {
				t.Errorf("expected hash to verify against its own password: %v", err)
			}
		})
	}
}

func TestHashIsSalted(t *testing.T) {
	first, err := password.Hash("samePassword")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := password.Hash("samePassword")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first == second {
		t.Error("expected two hashes of the same password to differ")
	}
}

func TestVerify(t *testing.T) {
	hash, err := password.Hash("correctPassword")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name        string
		password    string
		hash        string
		expectError error
	}{
		{
			name:     "matching password",
			password: "correctPassword",
			hash:     hash,
		},
		{
			name:        "wrong password",
			password:    "wrongPassword",
			hash:        hash,
			expectError: password.ErrInvalidPassword,
		},
		{
			name:        "empty password",
			password:    "",
			hash:        hash,
			expectError: password.ErrInvalidPassword,
		},
		{
			name:        "empty hash",
			password:    "correctPassword",
			hash:        "",
			expectError: password.ErrInvalidPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.password, tt.hash)

			if tt.expectError != nil {
				if !errors.Is(err, tt.expectError) {
					t.Errorf("expected %v, got %v", tt.expectError, err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestVerifyMalformedHash(t *testing.T) {
	err := password.Verify("anyPassword", "not-a-bcrypt-hash")
	if err == nil {
		t.Error("expected error for malformed hash")
	}

	if errors.Is(err, password.ErrInvalidPassword) {
		t.Error("malformed hash is not a mismatch and must not map to ErrInvalidPassword")
	}
}
