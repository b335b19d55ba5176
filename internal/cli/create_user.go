package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/mrlokans/qualification/internal/auth"
	"github.com/mrlokans/qualification/internal/config"
	"github.com/mrlokans/qualification/internal/database"
	"github.com/mrlokans/qualification/internal/entities"
	"github.com/mrlokans/qualification/internal/logger"
)

type CreateUserCommand struct {
	Username string
	Password string
	Role     int

	// Config is loaded from the environment when nil.
	Config *config.Config
}

func NewCreateUserCommand() *CreateUserCommand {
	return &CreateUserCommand{}
}

func (cmd *CreateUserCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("create-user", flag.ContinueOnError)

	fs.StringVar(&cmd.Username, "username", "", "Username of the new account (required)")
	fs.StringVar(&cmd.Password, "password", "", "Password, at least 12 characters (required)")
	fs.IntVar(&cmd.Role, "role", int(entities.RoleMember), "Role: 0 banned, 1 member, 2 moderator, 3 admin")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s create-user [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Create a user account in the configured database.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s create-user -username alice -password 'correct horse battery'\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s create-user -username bob -password 'correct horse battery' -role 2\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.Username == "" {
		return fmt.Errorf("username is required")
	}
	if cmd.Password == "" {
		return fmt.Errorf("password is required")
	}
	if cmd.Role < int(entities.RoleBanned) || cmd.Role > int(entities.RoleAdmin) {
		return fmt.Errorf("role must be between %d and %d", entities.RoleBanned, entities.RoleAdmin)
	}
	return auth.ValidatePassword(cmd.Password)
}

func (cmd *CreateUserCommand) Run() error {
	cfg := cmd.Config
	if cfg == nil {
		cfg = config.NewConfig()
	}

	log, err := logger.New(cfg.Log.Mode)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer log.Sync()

	if err := database.Init(context.Background(), cfg, log, nil); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := database.Shutdown(); err != nil {
			log.Error("Error closing database", "error", err)
		}
	}()

	users, err := database.Get().Users()
	if err != nil {
		return err
	}

	cost := database.Get().BcryptCost
	hash, err := auth.HashPassword(cmd.Password, cost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := users.CreateUser(cmd.Username, hash, entities.Role(cmd.Role))
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	fmt.Printf("Created user %q (%s) with id %s\n", user.Username, user.Role, user.ID)
	return nil
}
