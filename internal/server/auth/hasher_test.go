package auth

import (
	"errors"
	"strings"
	"testing"

	"github.com/mpetrenko/authcore/internal/common"
)

func TestArgon2Hasher_RoundTrip(t *testing.T) {
	t.Parallel()

	h := NewArgon2Hasher()

	encoded, err := h.Hash("Secret123")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if !strings.HasPrefix(encoded, "$argon2id$") {
		t.Fatalf("unexpected hash format: %q", encoded)
	}
	if strings.Contains(encoded, "Secret123") {
		t.Fatalf("hash contains plaintext: %q", encoded)
	}

	ok, err := h.Verify("Secret123", encoded)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if !ok {
		t.Fatal("expected match")
	}

	ok, err = h.Verify("Secret124", encoded)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if ok {
		t.Fatal("expected mismatch")
	}
}

func TestArgon2Hasher_SaltsDiffer(t *testing.T) {
	t.Parallel()

	h := NewArgon2Hasher()

	first, err := h.Hash("same password")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	second, err := h.Hash("same password")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if first == second {
		t.Fatal("two hashes of the same password must differ (random salt)")
	}
}

func TestArgon2Hasher_InputBounds(t *testing.T) {
	t.Parallel()

	h := NewArgon2Hasher()

	if _, err := h.Hash(""); !errors.Is(err, common.ErrInvalidInput) {
		t.Fatalf("empty password: want ErrInvalidInput, got %v", err)
	}
	if _, err := h.Hash(strings.Repeat("a", MaxPasswordLen+1)); !errors.Is(err, common.ErrInvalidInput) {
		t.Fatalf("oversized password: want ErrInvalidInput, got %v", err)
	}
	if _, err := h.Hash(strings.Repeat("a", MaxPasswordLen)); err != nil {
		t.Fatalf("max-length password: unexpected error %v", err)
	}
}

func TestArgon2Hasher_CorruptHash(t *testing.T) {
	t.Parallel()

	h := NewArgon2Hasher()

	tests := []struct {
		name    string
		encoded string
	}{
		{"empty", ""},
		{"wrong segment count", "$argon2id$v=19$m=65536,t=1,p=4$saltonly"},
		{"wrong algorithm", "$bcrypt$v=19$m=65536,t=1,p=4$AAAA$BBBB"},
		{"bad parameters", "$argon2id$v=19$m=x,t=y,p=z$AAAA$BBBB"},
		{"bad salt encoding", "$argon2id$v=19$m=65536,t=1,p=4$!!!$BBBB"},
		{"bad key encoding", "$argon2id$v=19$m=65536,t=1,p=4$AAAA$!!!"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ok, err := h.Verify("whatever", tc.encoded)
			if ok {
				t.Fatal("corrupt hash must not verify")
			}
			if !errors.Is(err, common.ErrCorruptHash) {
				t.Fatalf("want ErrCorruptHash, got %v", err)
			}
		})
	}
}

func TestArgon2Hasher_MismatchIsNotAnError(t *testing.T) {
	t.Parallel()

	h := NewArgon2Hasher()

	encoded, err := h.Hash("right")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	ok, err := h.Verify("wrong", encoded)
	if err != nil {
		t.Fatalf("mismatch must not error, got %v", err)
	}
	if ok {
		t.Fatal("expected mismatch")
	}
}
