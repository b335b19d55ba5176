// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - PlanStore: Plan documents (internal/http/stores.go)
//   - TopicStore: Topics and their prerequisites (internal/http/stores.go)
//   - TaskStore: Tasks, ordering and search (internal/http/stores.go)
//   - UserStore: Read-only user access (internal/http/stores.go)
//
// ## Lifecycle Interfaces
//
//   - Models: Repository accessors that fail until Init (internal/database/lifecycle.go)
//   - HealthChecker: Connectivity and init state (internal/http/stores.go)
//
// # Adding a New Document Type
//
//  1. Declare the entity in internal/entities with `validate` tags and
//     BeforeSave/BeforeCreate hooks
//
//  2. Create sub-package: internal/database/<name>/
//
//     type Repository struct { db *gorm.DB }
//
//     func NewRepository(db *gorm.DB) *Repository
//
//  3. Register the model in Database.initModels and add an accessor to Models
//
//  4. Declare the store interface next to its controller and add a
//     compile-time check:
//
//     var _ http.CommentStore = (*comments.Repository)(nil)
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go for the current list.
package interfaces
