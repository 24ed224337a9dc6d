// AngelaMos | 2026
// main_test.go

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/mentorax-api/internal/auth"
	"github.com/carterperez-dev/mentorax-api/internal/config"
	"github.com/carterperez-dev/mentorax-api/internal/core"
	"github.com/carterperez-dev/mentorax-api/internal/user"
)

func TestKeygenWritesUsableKeys(t *testing.T) {
	dir := t.TempDir()
	priv := filepath.Join(dir, "private.pem")
	pub := filepath.Join(dir, "public.pem")

	var out bytes.Buffer
	err := run(context.Background(),
		[]string{"keygen", "-private", priv, "-public", pub},
		os.Stdin, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), priv)

	m, err := auth.NewJWTManager(config.JWTConfig{
		PrivateKeyPath:     priv,
		PublicKeyPath:      pub,
		AccessTokenExpire:  time.Minute,
		RefreshTokenExpire: time.Hour,
		Issuer:             "mentorax",
		Audience:           "mentorax-api",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, m.GetKeyID())
}

func TestRunRejectsUnknownCommand(t *testing.T) {
	var out bytes.Buffer

	err := run(context.Background(), []string{"frobnicate"}, os.Stdin, &out)
	require.Error(t, err)
	assert.Contains(t, out.String(), "usage:")

	err = run(context.Background(), nil, os.Stdin, &out)
	require.Error(t, err)
}

func TestInsertAdmin(t *testing.T) {
	ctx := context.Background()
	repo := user.NewMemoryRepository()

	created, err := insertAdmin(ctx, repo, adminInput{
		email:     "Root@MentoraX.app",
		firstName: "Root",
		lastName:  "Admin",
		password:  "correct-horse",
	})
	require.NoError(t, err)
	assert.Equal(t, "root@mentorax.app", created.Email)
	assert.Equal(t, user.RoleAdmin, created.Role)

	ok, err := core.VerifyPassword("correct-horse", created.PasswordHash)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = insertAdmin(ctx, repo, adminInput{
		email:    "root@mentorax.app",
		password: "another-password",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = insertAdmin(ctx, repo, adminInput{
		email:    "short@mentorax.app",
		password: "short",
	})
	require.Error(t, err)
}

func TestPromptPasswordFromPipe(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	_, err = w.WriteString("s3cret-pass\n")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	var out bytes.Buffer
	got, err := promptPassword(r, &out)
	require.NoError(t, err)
	assert.Equal(t, "s3cret-pass", got)
}

func TestPromptPasswordMismatchOnTerminal(t *testing.T) {
	origRead, origTerm := readPassword, isTerminal
	t.Cleanup(func() { readPassword, isTerminal = origRead, origTerm })

	answers := [][]byte{[]byte("first-pass"), []byte("second-pass")}
	isTerminal = func(int) bool { return true }
	readPassword = func(int) ([]byte, error) {
		next := answers[0]
		answers = answers[1:]
		return next, nil
	}

	var out bytes.Buffer
	_, err := promptPassword(os.Stdin, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "do not match")
}
