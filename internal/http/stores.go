package http

import "github.com/mrlokans/qualification/internal/entities"

// Store interfaces used by the controllers. The repositories under
// internal/database satisfy them; see internal/interfaces.

type PlanStore interface {
	CreatePlan(plan *entities.Plan) error
	GetPlanByID(id string) (*entities.Plan, error)
	GetAllPlans() ([]entities.Plan, error)
	GetActivePlans() ([]entities.Plan, error)
}

type TopicStore interface {
	CreateTopic(topic *entities.Topic) error
	GetTopicByID(id string) (*entities.Topic, error)
	GetAllTopics() ([]entities.Topic, error)
	GetActiveTopics() ([]entities.Topic, error)
	GetDependencies(topic *entities.Topic) ([]entities.Topic, error)
}

type TaskStore interface {
	CreateTask(task *entities.Task) error
	GetTaskByID(id string) (*entities.Task, error)
	GetAllTasks() ([]entities.Task, error)
	GetTasksByTopic(topicID string) ([]entities.Task, error)
	SearchTasks(query string) ([]entities.Task, error)
}

type UserStore interface {
	GetUserByID(id string) (*entities.User, error)
	GetAllUsers() ([]entities.User, error)
}

// HealthChecker reports database connectivity.
type HealthChecker interface {
	Ping() error
	Initialized() bool
}
