// Package auth provides the credential and session primitives of authcore:
// password hashing (argon2id) and session token issuance/verification (JWT).
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/mpetrenko/authcore/internal/common"
	"golang.org/x/crypto/argon2"
)

// argon2id parameters (OWASP-recommended).
const (
	argon2Time    = 1         // iterations
	argon2Memory  = 64 * 1024 // 64 MiB
	argon2Threads = 4
	argon2SaltLen = 16
	argon2KeyLen  = 32
)

// MaxPasswordLen bounds Hash input. Anything longer is rejected with
// common.ErrInvalidInput before any argon2 work is done.
const MaxPasswordLen = 256

// PasswordHasher is a one-way transform for plaintext passwords.
type PasswordHasher interface {
	// Hash produces a storable hash of the password with an embedded
	// per-call random salt.
	Hash(password string) (string, error)

	// Verify reports whether password matches the stored hash.
	// Mismatch is (false, nil); a structurally malformed stored hash is
	// (false, common.ErrCorruptHash).
	Verify(password, encoded string) (bool, error)
}

// Argon2Hasher implements PasswordHasher using argon2id in PHC string
// format: $argon2id$v=19$m=65536,t=1,p=4$<salt>$<hash>.
type Argon2Hasher struct{}

func NewArgon2Hasher() *Argon2Hasher {
	return &Argon2Hasher{}
}

// Hash hashes password with argon2id and a fresh random salt.
// Accepted input is 1..MaxPasswordLen bytes; anything outside that range
// fails with common.ErrInvalidInput.
func (h *Argon2Hasher) Hash(password string) (string, error) {
	if len(password) == 0 || len(password) > MaxPasswordLen {
		return "", fmt.Errorf("password length %d: %w", len(password), common.ErrInvalidInput)
	}

	salt := make([]byte, argon2SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("salt generation: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, argon2Time, argon2Memory, argon2Threads, argon2KeyLen)

	encoded := fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		argon2Memory,
		argon2Time,
		argon2Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)

	return encoded, nil
}

// Verify recomputes the hash with the parameters and salt embedded in the
// stored value and compares in constant time.
func (h *Argon2Hasher) Verify(password, encoded string) (bool, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 {
		return false, fmt.Errorf("hash has %d segments: %w", len(parts), common.ErrCorruptHash)
	}
	if parts[1] != "argon2id" {
		return false, fmt.Errorf("unsupported algorithm %q: %w", parts[1], common.ErrCorruptHash)
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return false, fmt.Errorf("hash version: %w", common.ErrCorruptHash)
	}

	var memory, time uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return false, fmt.Errorf("hash parameters: %w", common.ErrCorruptHash)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, fmt.Errorf("hash salt: %w", common.ErrCorruptHash)
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false, fmt.Errorf("hash key: %w", common.ErrCorruptHash)
	}
	if len(want) == 0 || len(want) > 1<<10 {
		return false, fmt.Errorf("hash key length %d: %w", len(want), common.ErrCorruptHash)
	}

	got := argon2.IDKey([]byte(password), salt, time, memory, threads, uint32(len(want)))

	return subtle.ConstantTimeCompare(got, want) == 1, nil
}
