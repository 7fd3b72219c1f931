// Command adminctl manages administrator accounts directly in the database.
//
//	adminctl create-admin -username root -email root@example.com
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/samandr77/guardbook/internal/entity"
	"github.com/samandr77/guardbook/internal/repository"
	"github.com/samandr77/guardbook/internal/service"
	"github.com/samandr77/guardbook/pkg/config"
	"github.com/samandr77/guardbook/pkg/logger"
	"github.com/samandr77/guardbook/pkg/postgres"
)

var (
	errUsage            = errors.New("usage: adminctl create-admin -username <name> -email <email> [-env .env]")
	errPasswordMismatch = errors.New("passwords do not match")
)

// readPassword is replaced in tests.
var readPassword = term.ReadPassword

type createAdminArgs struct {
	username string
	email    string
	envPath  string
}

func main() {
	err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin *os.File, stdout io.Writer) error {
	if len(args) == 0 || args[0] != "create-admin" {
		return errUsage
	}

	a, err := parseCreateAdmin(args[1:])
	if err != nil {
		return err
	}

	password, err := promptPassword(stdin, stdout)
	if err != nil {
		return err
	}

	cfg, err := config.New(a.envPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if _, err := logger.New(cfg.Logger.Level); err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	pool, err := postgres.Connect(ctx, cfg.Postgres.DSN, 1)
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}
	defer pool.Close()

	if err := postgres.UpMigrations(cfg.Postgres.DSN); err != nil {
		return fmt.Errorf("up migrations: %w", err)
	}

	s := service.New(cfg, repository.New(pool), nil, nil)

	admin, err := s.CreateAdmin(ctx, entity.NewAdmin{
		Username: a.username,
		Email:    a.email,
		Password: password,
	})
	if err != nil {
		return fmt.Errorf("create admin: %w", err)
	}

	fmt.Fprintf(stdout, "administrator %s (%s) created with id %s\n", admin.Username, admin.Email, admin.ID)

	return nil
}

func parseCreateAdmin(args []string) (createAdminArgs, error) {
	var a createAdminArgs

	fs := flag.NewFlagSet("create-admin", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&a.username, "username", "", "administrator username")
	fs.StringVar(&a.email, "email", "", "administrator e-mail")
	fs.StringVar(&a.envPath, "env", ".env", "path to the env file")

	if err := fs.Parse(args); err != nil {
		return createAdminArgs{}, fmt.Errorf("%w: %w", errUsage, err)
	}

	if strings.TrimSpace(a.username) == "" || strings.TrimSpace(a.email) == "" {
		return createAdminArgs{}, errUsage
	}

	return a, nil
}

// promptPassword asks twice on a terminal. Piped input is read as a single line.
func promptPassword(stdin *os.File, stdout io.Writer) (string, error) {
	fd := int(stdin.Fd())

	if !term.IsTerminal(fd) {
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

	fmt.Fprint(stdout, "Repeat password: ")

	second, err := readPassword(fd)
	fmt.Fprintln(stdout)

	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}

	if string(first) != string(second) {
		return "", errPasswordMismatch
	}

	return string(first), nil
}
