package http

import (
	"github.com/gin-gonic/gin"

	"github.com/mrlokans/qualification/internal/auth"
	"github.com/mrlokans/qualification/internal/logger"
)

// RouterConfig holds the dependencies of the HTTP API.
type RouterConfig struct {
	Version string
	Health  HealthChecker
	Plans   PlanStore
	Topics  TopicStore
	Tasks   TaskStore
	Users   UserStore
	Logger  *logger.Logger
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(auth.SecurityHeadersMiddleware())
	router.Use(auth.StrictTransportSecurityMiddleware())

	log := cfg.Logger
	if log == nil {
		log = logger.Nop()
	}

	health := NewHealthController(cfg.Health, cfg.Version)
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	api := router.Group("/api")

	if cfg.Plans != nil {
		plans := NewPlansController(cfg.Plans, log)
		api.GET("/plans", plans.ListPlans)
		api.POST("/plans", plans.CreatePlan)
		api.GET("/plans/:id", plans.GetPlan)
	}

	if cfg.Topics != nil {
		topics := NewTopicsController(cfg.Topics, log)
		api.GET("/topics", topics.ListTopics)
		api.POST("/topics", topics.CreateTopic)
		api.GET("/topics/:id", topics.GetTopic)
		api.GET("/topics/:id/dependencies", topics.GetDependencies)
	}

	if cfg.Tasks != nil {
		tasks := NewTasksController(cfg.Tasks, log)
		api.GET("/tasks", tasks.ListTasks)
		api.POST("/tasks", tasks.CreateTask)
		api.GET("/tasks/:id", tasks.GetTask)
	}

	if cfg.Users != nil {
		users := NewUsersController(cfg.Users, log)
		api.GET("/users", users.ListUsers)
		api.GET("/users/:id", users.GetUser)
	}

	return router
}
