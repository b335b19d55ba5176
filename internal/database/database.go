package database

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/mrlokans/qualification/internal/config"
	"github.com/mrlokans/qualification/internal/database/plans"
	"github.com/mrlokans/qualification/internal/database/tasks"
	"github.com/mrlokans/qualification/internal/database/topics"
	"github.com/mrlokans/qualification/internal/database/users"
	"github.com/mrlokans/qualification/internal/logger"
)

var (
	ErrUnsupportedDriver = errors.New("unsupported database driver")
	ErrMissingDSN        = errors.New("database DSN is required for postgres")
	ErrNotConnected      = errors.New("database is not connected")
)

// Database owns the connection and the registered models. It starts
// uninitialized; see Init.
type Database struct {
	DB *gorm.DB

	// BcryptCost is used to hash the bootstrap admin password.
	BcryptCost int

	log *logger.Logger

	mu          sync.Mutex
	initialized bool
	plans       *plans.Repository
	tasks       *tasks.Repository
	topics      *topics.Repository
	users       *users.Repository
}

// NewDatabase connects to the configured database. No models are
// registered until Init is called.
func NewDatabase(cfg config.Database, logg *logger.Logger) (*Database, error) {
	if logg == nil {
		logg = logger.Nop()
	}

	dialector, err := openDialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: newGormLogger(cfg.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	logg.Info("Database connected", "driver", driverName(cfg), "target", describeTarget(cfg))

	return &Database{
		DB:         db,
		BcryptCost: bcrypt.DefaultCost,
		log:        logg.With("component", "database"),
	}, nil
}

func openDialector(cfg config.Database) (gorm.Dialector, error) {
	switch driverName(cfg) {
	case config.DriverSQLite:
		return sqlite.Open(cfg.Path), nil
	case config.DriverPostgres:
		if cfg.DSN == "" {
			return nil, ErrMissingDSN
		}
		return postgres.Open(cfg.DSN), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

func driverName(cfg config.Database) string {
	if cfg.Driver == "" {
		return config.DriverSQLite
	}
	return strings.ToLower(cfg.Driver)
}

// describeTarget never includes postgres credentials.
func describeTarget(cfg config.Database) string {
	if driverName(cfg) == config.DriverPostgres {
		return "postgres"
	}
	return cfg.Path
}

func newGormLogger(level string) gormLogger.Interface {
	var logLevel gormLogger.LogLevel
	switch strings.ToLower(level) {
	case "silent":
		logLevel = gormLogger.Silent
	case "error":
		logLevel = gormLogger.Error
	case "info":
		logLevel = gormLogger.Info
	default:
		logLevel = gormLogger.Warn
	}

	return gormLogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormLogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logLevel,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}

// Ping checks that the underlying connection is alive.
func (d *Database) Ping() error {
	d.mu.Lock()
	db := d.DB
	d.mu.Unlock()

	if db == nil {
		return ErrNotConnected
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (d *Database) Close() error {
	d.mu.Lock()
	db := d.DB
	d.mu.Unlock()

	return closeConn(db)
}

// attach takes over the connection of an unregistered Database.
func (d *Database) attach(conn *Database) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.DB = conn.DB
	d.BcryptCost = conn.BcryptCost
	d.log = conn.log
}

// detach closes the connection and returns d to the unconnected,
// uninitialized state.
func (d *Database) detach() error {
	d.mu.Lock()
	db := d.DB
	d.DB = nil
	d.initialized = false
	d.plans, d.tasks, d.topics, d.users = nil, nil, nil, nil
	d.mu.Unlock()

	return closeConn(db)
}

func closeConn(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
