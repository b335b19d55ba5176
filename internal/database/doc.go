// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into one sub-package per entity:
//
//	database/
//	├── database.go      # Connection setup (sqlite or postgres)
//	├── lifecycle.go     # Init, model registration, accessors
//	├── bootstrap.go     # Default admin account
//	├── default.go       # Process-wide instance (Init / Get)
//	├── plans/           # Plan CRUD operations
//	├── topics/          # Topic CRUD operations and prerequisites
//	├── tasks/           # Task CRUD operations, ordering and search
//	└── users/           # User management
//
// Nested records (routes, plan exceptions, enrollments, ...) are stored as
// JSON documents inside their owning row, so every entity is read and
// written as one document.
//
// # Lifecycle
//
// A Database is usable only after Init. Init may succeed once; calling it
// again returns ErrAlreadyInitialized, and every accessor called before it
// returns ErrNotInitialized:
//
//	if err := database.Init(ctx, cfg, log, nil); err != nil {
//		return err
//	}
//	plansRepo, err := database.Get().Plans()
//
// # Adding a New Entity
//
//  1. Declare the entity in internal/entities with `validate` tags
//  2. Create a sub-package with a Repository struct holding a *gorm.DB
//  3. Register the model in Database.initModels and add an accessor
//  4. Add it to the Models interface
package database
