package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/mrlokans/qualification/internal/database/plans"
	"github.com/mrlokans/qualification/internal/database/tasks"
	"github.com/mrlokans/qualification/internal/database/topics"
	"github.com/mrlokans/qualification/internal/database/users"
	"github.com/mrlokans/qualification/internal/entities"
)

var (
	ErrAlreadyInitialized = errors.New("database is already initialized")
	ErrNotInitialized     = errors.New("database has not been initialized, call Init first")
)

// Models hands out one repository per entity once the database is initialized.
type Models interface {
	Plans() (*plans.Repository, error)
	Topics() (*topics.Repository, error)
	Tasks() (*tasks.Repository, error)
	Users() (*users.Repository, error)
}

// Init registers the plans, tasks, topics and users models in that order,
// creates the default admin when there are no users, and then calls
// callback (if non-nil). It may succeed only once per Database; a failed
// Init can be retried.
func (d *Database) Init(ctx context.Context, callback func()) error {
	if err := d.initModels(ctx); err != nil {
		return err
	}
	if callback != nil {
		callback()
	}
	return nil
}

func (d *Database) initModels(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.initialized {
		return ErrAlreadyInitialized
	}
	if d.DB == nil {
		return ErrNotConnected
	}

	db := d.DB.WithContext(ctx)
	models := []struct {
		name  string
		model any
	}{
		{"plans", &entities.Plan{}},
		{"tasks", &entities.Task{}},
		{"topics", &entities.Topic{}},
		{"users", &entities.User{}},
	}
	for _, m := range models {
		if err := db.AutoMigrate(m.model); err != nil {
			return fmt.Errorf("failed to register %s model: %w", m.name, err)
		}
	}

	plansRepo := plans.NewRepository(d.DB)
	tasksRepo := tasks.NewRepository(d.DB)
	topicsRepo := topics.NewRepository(d.DB)
	usersRepo := users.NewRepository(d.DB)

	if err := d.seedAdmin(usersRepo.WithContext(ctx)); err != nil {
		return err
	}

	d.plans, d.tasks, d.topics, d.users = plansRepo, tasksRepo, topicsRepo, usersRepo
	d.initialized = true
	d.log.Info("Database initialized", "models", len(models))
	return nil
}

// Initialized reports whether Init has completed successfully.
func (d *Database) Initialized() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.initialized
}

func (d *Database) ready() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.initialized {
		return ErrNotInitialized
	}
	return nil
}

func (d *Database) Plans() (*plans.Repository, error) {
	if err := d.ready(); err != nil {
		return nil, err
	}
	return d.plans, nil
}

func (d *Database) Topics() (*topics.Repository, error) {
	if err := d.ready(); err != nil {
		return nil, err
	}
	return d.topics, nil
}

func (d *Database) Tasks() (*tasks.Repository, error) {
	if err := d.ready(); err != nil {
		return nil, err
	}
	return d.tasks, nil
}

func (d *Database) Users() (*users.Repository, error) {
	if err := d.ready(); err != nil {
		return nil, err
	}
	return d.users, nil
}
