// AngelaMos | 2026
// main.go

package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/carterperez-dev/mentorax-api/internal/auth"
	"github.com/carterperez-dev/mentorax-api/internal/config"
	"github.com/carterperez-dev/mentorax-api/internal/core"
	"github.com/carterperez-dev/mentorax-api/internal/store"
	"github.com/carterperez-dev/mentorax-api/internal/user"
)

const usage = `usage: mentorax <command> [flags]

commands:
  keygen        write an ES256 key pair for signing access tokens
  create-admin  create an administrator account in the database
`

var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin *os.File, stdout io.Writer) error {
	if len(args) == 0 {
		fmt.Fprint(stdout, usage)
		return errors.New("missing command")
	}

	switch args[0] {
	case "keygen":
		return keygen(args[1:], stdout)
	case "create-admin":
		return createAdmin(ctx, args[1:], stdin, stdout)
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
		return nil
	default:
		fmt.Fprint(stdout, usage)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func keygen(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("keygen", flag.ContinueOnError)
	privatePath := fs.String("private", "keys/private.pem", "private key output path")
	publicPath := fs.String("public", "keys/public.pem", "public key output path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	for _, p := range []string{*privatePath, *publicPath} {
		if err := os.MkdirAll(filepath.Dir(p), 0o700); err != nil {
			return fmt.Errorf("create key directory: %w", err)
		}
	}

	if err := auth.GenerateKeyPair(*privatePath, *publicPath); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "wrote %s and %s\n", *privatePath, *publicPath)
	return nil
}

type adminInput struct {
	email     string
	firstName string
	lastName  string
	password  string
}

func createAdmin(
	ctx context.Context,
	args []string,
	stdin *os.File,
	stdout io.Writer,
) error {
	fs := flag.NewFlagSet("create-admin", flag.ContinueOnError)
	configPath := fs.String("config", "config.yaml", "path to config file")
	email := fs.String("email", "", "admin email")
	firstName := fs.String("first-name", "Admin", "first name")
	lastName := fs.String("last-name", "User", "last name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	in := adminInput{
		email:     strings.TrimSpace(*email),
		firstName: *firstName,
		lastName:  *lastName,
	}
	if in.email == "" {
		return errors.New("-email is required")
	}

	password, err := promptPassword(stdin, stdout)
	if err != nil {
		return err
	}
	in.password = password

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if cfg.DemoMode() {
		return errors.New("DATABASE_URL is not set; demo accounts are configured with DEMO_ADMIN_EMAIL")
	}

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close() //nolint:errcheck // process exits right after

	if !db.Persistent() {
		return errors.New("database is not reachable")
	}

	created, err := insertAdmin(ctx, user.NewRepository(db.DB), in)
	if err != nil {
		return err
	}

	slog.Info("admin created", "id", created.ID, "email", created.Email)
	fmt.Fprintf(stdout, "created admin %s (%s)\n", created.Email, created.ID)
	return nil
}

func insertAdmin(
	ctx context.Context,
	repo user.Repository,
	in adminInput,
) (*user.User, error) {
	if len(in.password) < 8 {
		return nil, errors.New("password must be at least 8 characters")
	}

	hash, err := core.HashPassword(in.password)
	if err != nil {
		return nil, err
	}

	svc := user.NewService(store.MemoryOnly(repo))
	created, err := svc.CreateIn(ctx, repo, auth.NewUser{
		Email:        in.email,
		PasswordHash: hash,
		FirstName:    in.firstName,
		LastName:     in.lastName,
		Role:         user.RoleAdmin,
	})
	if errors.Is(err, core.ErrDuplicateKey) {
		return nil, fmt.Errorf("a user with email %s already exists", in.email)
	}
	return created, err
}

// promptPassword reads without echo from a terminal, or one line from a
// pipe.
func promptPassword(stdin *os.File, stdout io.Writer) (string, error) {
	fd := int(stdin.Fd()) //nolint:gosec // G115: file descriptors fit in int

	if !isTerminal(fd) {
		line, err := bufio.NewReader(stdin).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read password: %w", err)
		}
		return strings.TrimRight(line, "\r\n"), nil
	}

	fmt.Fprint(stdout, "Password: ")
	first, err := readPassword(fd)
	fmt.Fprintln(stdout)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}

	fmt.Fprint(stdout, "Confirm password: ")
	second, err := readPassword(fd)
	fmt.Fprintln(stdout)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}

	if string(first) != string(second) {
		return "", errors.New("passwords do not match")
	}
	return string(first), nil
}
