package cryptox

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

var (
	ErrPasswordMismatch = errors.New("cryptox: password does not match")
	ErrInvalidHash      = errors.New("cryptox: invalid password hash")
)

// argonParams are the cost parameters recorded in a PHC string.
type argonParams struct {
	Memory      uint32
	Iterations  uint32
	Parallelism uint8
}

// currentParams is what new hashes are made with.
var currentParams = argonParams{Memory: memory, Iterations: iterations, Parallelism: parallelism}

type passwordHash struct {
	params argonParams
	salt   []byte
	key    []byte
}

func (p argonParams) derive(password string, salt []byte, n uint32) []byte {
	return argon2.IDKey([]byte(password+GetPepper()), salt, p.Iterations, p.Memory, p.Parallelism, n)
}

// String encodes h as $argon2id$v=19$m=..,t=..,p=..$salt$key.
func (h passwordHash) String() string {
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.params.Memory, h.params.Iterations, h.params.Parallelism,
		base64.RawStdEncoding.EncodeToString(h.salt),
		base64.RawStdEncoding.EncodeToString(h.key),
	)
}

func parsePasswordHash(encoded string) (passwordHash, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" {
		return passwordHash{}, fmt.Errorf("%w: expected 6 parts", ErrInvalidHash)
	}
	if parts[1] != "argon2id" {
		return passwordHash{}, fmt.Errorf("%w: not argon2id", ErrInvalidHash)
	}
	if parts[2] != fmt.Sprintf("v=%d", argon2.Version) {
		return passwordHash{}, fmt.Errorf("%w: wrong version", ErrInvalidHash)
	}

	var h passwordHash
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &h.params.Memory, &h.params.Iterations, &h.params.Parallelism); err != nil {
		return passwordHash{}, fmt.Errorf("%w: parameters: %w", ErrInvalidHash, err)
	}
	var err error
	if h.salt, err = base64.RawStdEncoding.DecodeString(parts[4]); err != nil {
		return passwordHash{}, fmt.Errorf("%w: salt: %w", ErrInvalidHash, err)
	}
	if h.key, err = base64.RawStdEncoding.DecodeString(parts[5]); err != nil || len(h.key) == 0 {
		return passwordHash{}, fmt.Errorf("%w: key", ErrInvalidHash)
	}
	return h, nil
}

// HashPassword derives an Argon2id key from the peppered password with a
// fresh salt and returns it in PHC format.
func HashPassword(password string) (string, error) {
	h := passwordHash{params: currentParams, salt: make([]byte, saltLength)}
	if _, err := rand.Read(h.salt); err != nil {
		return "", err
	}
	h.key = h.params.derive(password, h.salt, keyLength)
	return h.String(), nil
}

// VerifyPassword checks password against a hash made by HashPassword. It
// returns ErrPasswordMismatch or an error wrapping ErrInvalidHash.
func VerifyPassword(password, encoded string) error {
	h, err := parsePasswordHash(encoded)
	if err != nil {
		return err
	}
	got := h.params.derive(password, h.salt, uint32(len(h.key))) // #nosec G115 -- bounded by the decoded hash
	if subtle.ConstantTimeCompare(got, h.key) != 1 {
		return ErrPasswordMismatch
	}
	return nil
}

// NeedsRehash reports whether encoded was made with other cost parameters
// or sizes than HashPassword uses now. Unparseable hashes need one too.
func NeedsRehash(encoded string) bool {
	h, err := parsePasswordHash(encoded)
	if err != nil {
		return true
	}
	return h.params != currentParams || len(h.salt) != saltLength || len(h.key) != keyLength
}

// GeneratePassword returns a random password for a seeded operator.
func GeneratePassword() string {
	return rand.Text()
}
