// AngelaMos | 2026
// security_test.go

package core

import (
	"encoding/base64"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/argon2"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter2hunter2")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))

	other, err := HashPassword("hunter2hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, hash, other, "salt must differ per hash")

	ok, err := VerifyPassword("hunter2hunter2", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword("wrong", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyPasswordRejectsMalformedHash(t *testing.T) {
	for _, bad := range []string{
		"",
		"plaintext",
		"$bcrypt$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA",
		"$argon2id$v=1$m=65536,t=1,p=4$c2FsdA$aGFzaA",
	} {
		_, err := VerifyPassword("x", bad)
		assert.Error(t, err, bad)
	}
}

func TestVerifyPasswordWithRehashUpgradesWeakParams(t *testing.T) {
	salt := []byte("0123456789abcdef")
	weak := argon2.IDKey([]byte("pw-to-upgrade"), salt, 1, 8*1024, 1, 32)
	encoded := fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, 8*1024, 1, 1,
		b64(salt), b64(weak),
	)

	ok, newHash, err := VerifyPasswordWithRehash("pw-to-upgrade", encoded)
	require.NoError(t, err)
	assert.True(t, ok)
	require.NotEmpty(t, newHash)
	assert.False(t, needsRehash(newHash))

	ok, newHash, err = VerifyPasswordWithRehash("nope", encoded)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, newHash)
}

func TestVerifyPasswordTimingSafeWithoutHash(t *testing.T) {
	ok, _, err := VerifyPasswordTimingSafe("anything", nil)
	require.NoError(t, err)
	assert.False(t, ok)

	empty := ""
	ok, _, err = VerifyPasswordTimingSafe("anything", &empty)
	require.NoError(t, err)
	assert.False(t, ok)

	hash, err := HashPassword("real-password")
	require.NoError(t, err)
	ok, _, err = VerifyPasswordTimingSafe("real-password", &hash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestTokenHashing(t *testing.T) {
	token, err := GenerateResetToken()
	require.NoError(t, err)
	assert.NotContains(t, token, "+")
	assert.NotContains(t, token, "/")

	hash := HashToken(token)
	assert.Len(t, hash, 64)
	assert.Equal(t, hash, HashToken(token))
	assert.NotEqual(t, hash, HashToken(token+"x"))
}

func b64(b []byte) string {
	return base64.RawStdEncoding.EncodeToString(b)
}
