package database

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mrlokans/qualification/internal/config"
	"github.com/mrlokans/qualification/internal/logger"
)

func testDatabaseConfig(t *testing.T) config.Database {
	t.Helper()
	return config.Database{
		Driver:   config.DriverSQLite,
		Path:     "./test_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db",
		LogLevel: "silent",
	}
}

// setupTestDB creates a fresh, connected but uninitialized database
func setupTestDB(t *testing.T) *Database {
	t.Helper()
	cfg := testDatabaseConfig(t)

	db, err := NewDatabase(cfg, logger.Nop())
	require.NoError(t, err)
	db.BcryptCost = bcrypt.MinCost

	t.Cleanup(func() {
		db.Close()
		os.Remove(cfg.Path)
	})
	return db
}

func TestNewDatabase_SQLite(t *testing.T) {
	db := setupTestDB(t)

	assert.NotNil(t, db.DB)
	assert.NoError(t, db.Ping())
	assert.False(t, db.Initialized())
}

func TestNewDatabase_DefaultsToSQLite(t *testing.T) {
	cfg := testDatabaseConfig(t)
	cfg.Driver = ""
	defer os.Remove(cfg.Path)

	db, err := NewDatabase(cfg, nil)
	require.NoError(t, err)
	defer db.Close()

	assert.Equal(t, "sqlite", db.DB.Dialector.Name())
}

func TestNewDatabase_UnsupportedDriver(t *testing.T) {
	_, err := NewDatabase(config.Database{Driver: "mongodb"}, logger.Nop())

	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestNewDatabase_PostgresRequiresDSN(t *testing.T) {
	_, err := NewDatabase(config.Database{Driver: config.DriverPostgres}, logger.Nop())

	assert.ErrorIs(t, err, ErrMissingDSN)
}

func TestDatabase_PingWithoutConnection(t *testing.T) {
	db := &Database{}

	assert.ErrorIs(t, db.Ping(), ErrNotConnected)
	assert.NoError(t, db.Close())
}

func TestDescribeTarget_HidesPostgresCredentials(t *testing.T) {
	target := describeTarget(config.Database{
		Driver: config.DriverPostgres,
		DSN:    "postgres://user:secret@db:5432/qualification_plan",
	})

	assert.NotContains(t, target, "secret")
}
