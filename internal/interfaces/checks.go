package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/qualification/internal/database"
	"github.com/mrlokans/qualification/internal/database/plans"
	"github.com/mrlokans/qualification/internal/database/tasks"
	"github.com/mrlokans/qualification/internal/database/topics"
	"github.com/mrlokans/qualification/internal/database/users"
	"github.com/mrlokans/qualification/internal/http"
)

// =============================================================================
// Data Access Layer
// =============================================================================

var _ http.PlanStore = (*plans.Repository)(nil)
var _ http.TopicStore = (*topics.Repository)(nil)
var _ http.TaskStore = (*tasks.Repository)(nil)
var _ http.UserStore = (*users.Repository)(nil)

// =============================================================================
// Lifecycle
// =============================================================================

var _ database.Models = (*database.Database)(nil)
var _ http.HealthChecker = (*database.Database)(nil)
