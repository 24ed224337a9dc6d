// AngelaMos | 2026
// security.go

package core

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/crypto/argon2"
)

const (
	saltLength       = 16
	resetTokenLength = 32
)

var errMalformedHash = errors.New("malformed password hash")

// hashParams are the argon2id cost settings encoded into every stored hash.
type hashParams struct {
	memory  uint32
	time    uint32
	threads uint8
	keyLen  uint32
}

var currentParams = hashParams{
	memory:  64 * 1024,
	time:    1,
	threads: 4,
	keyLen:  32,
}

func (p hashParams) derive(password string, salt []byte) []byte {
	return argon2.IDKey([]byte(password), salt, p.time, p.memory, p.threads, p.keyLen)
}

// encode renders the PHC string: $argon2id$v=19$m=..,t=..,p=..$salt$key
func (p hashParams) encode(salt, key []byte) string {
	enc := base64.RawStdEncoding
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, p.memory, p.time, p.threads,
		enc.EncodeToString(salt), enc.EncodeToString(key))
}

func parseHash(encoded string) (hashParams, []byte, []byte, error) {
	var p hashParams

	fields := strings.Split(encoded, "$")
	if len(fields) != 6 || fields[0] != "" {
		return p, nil, nil, errMalformedHash
	}
	if fields[1] != "argon2id" {
		return p, nil, nil, fmt.Errorf("%w: algorithm %q", errMalformedHash, fields[1])
	}

	var version int
	if _, err := fmt.Sscanf(fields[2], "v=%d", &version); err != nil {
		return p, nil, nil, fmt.Errorf("%w: %w", errMalformedHash, err)
	}
	if version != argon2.Version {
		return p, nil, nil, fmt.Errorf("%w: argon2 version %d", errMalformedHash, version)
	}

	if _, err := fmt.Sscanf(fields[3], "m=%d,t=%d,p=%d",
		&p.memory, &p.time, &p.threads); err != nil {
		return p, nil, nil, fmt.Errorf("%w: %w", errMalformedHash, err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(fields[4])
	if err != nil {
		return p, nil, nil, fmt.Errorf("%w: salt: %w", errMalformedHash, err)
	}
	key, err := base64.RawStdEncoding.DecodeString(fields[5])
	if err != nil {
		return p, nil, nil, fmt.Errorf("%w: key: %w", errMalformedHash, err)
	}
	p.keyLen = uint32(len(key)) //nolint:gosec // G115: argon2 keys are tiny

	return p, salt, key, nil
}

func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	return currentParams.encode(salt, currentParams.derive(password, salt)), nil
}

// VerifyPassword reports whether password matches the stored hash. Only a
// hash that cannot be parsed is an error.
func VerifyPassword(password, encoded string) (bool, error) {
	p, salt, key, err := parseHash(encoded)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare(key, p.derive(password, salt)) == 1, nil
}

func needsRehash(encoded string) bool {
	p, _, _, err := parseHash(encoded)
	return err != nil || p != currentParams
}

// VerifyPasswordWithRehash also returns a replacement hash when the stored
// one was made with older cost settings. A failed rehash is not an error.
func VerifyPasswordWithRehash(password, encoded string) (bool, string, error) {
	ok, err := VerifyPassword(password, encoded)
	if err != nil || !ok {
		return false, "", err
	}
	if !needsRehash(encoded) {
		return true, "", nil
	}

	upgraded, err := HashPassword(password)
	if err != nil {
		return true, "", nil //nolint:nilerr // login already succeeded
	}
	return true, upgraded, nil
}

var timingHash = sync.OnceValue(func() string {
	h, err := HashPassword("mentorax-unknown-account")
	if err != nil {
		panic(fmt.Sprintf("security: timing hash: %v", err))
	}
	return h
})

// VerifyPasswordTimingSafe does the same argon2 work for unknown accounts so
// login latency does not reveal which emails exist. A nil or empty hash
// never matches.
func VerifyPasswordTimingSafe(password string, encoded *string) (bool, string, error) {
	if encoded == nil || *encoded == "" {
		_, _, _ = VerifyPasswordWithRehash(password, timingHash())
		return false, "", nil
	}
	return VerifyPasswordWithRehash(password, *encoded)
}

// GenerateResetToken returns a URL-safe one-time token. Only its HashToken
// digest is stored.
func GenerateResetToken() (string, error) {
	buf := make([]byte, resetTokenLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// HashToken is the at-rest form of refresh and reset tokens.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
