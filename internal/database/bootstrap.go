package database

import (
	"fmt"

	"github.com/mrlokans/qualification/internal/auth"
	"github.com/mrlokans/qualification/internal/database/users"
	"github.com/mrlokans/qualification/internal/entities"
)

// Credentials of the admin account created on an empty users collection.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin"
)

// seedAdmin creates the default admin if there are no users at all.
func (d *Database) seedAdmin(repo *users.Repository) error {
	count, err := repo.CountUsers()
	if err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(DefaultAdminPassword, d.BcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash default admin password: %w", err)
	}

	admin, err := repo.CreateUser(DefaultAdminUsername, hash, entities.RoleAdmin)
	if err != nil {
		d.log.Error("Failed to create default admin user", "error", err)
		return fmt.Errorf("failed to create default admin user: %w", err)
	}

	d.log.Warn("Created default admin user, change its password", "username", admin.Username, "id", admin.ID)
	return nil
}
