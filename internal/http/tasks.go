package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/qualification/internal/entities"
	"github.com/mrlokans/qualification/internal/logger"
)

// PlanTaskResponse is a task as seen through one plan.
type PlanTaskResponse struct {
	entities.Task
	PlanID        string  `json:"plan_id"`
	ProgressValue float64 `json:"progress_value"`
	AutoGraded    bool    `json:"auto_graded"`
}

type TasksController struct {
	store TaskStore
	log   *logger.Logger
}

func NewTasksController(store TaskStore, log *logger.Logger) *TasksController {
	return &TasksController{store: store, log: log}
}

// ListTasks supports ?topic_id= (ordered within the topic) and ?q= (search).
func (tc *TasksController) ListTasks(c *gin.Context) {
	var (
		tasks []entities.Task
		err   error
	)
	switch {
	case c.Query("topic_id") != "":
		tasks, err = tc.store.GetTasksByTopic(c.Query("topic_id"))
	case c.Query("q") != "":
		tasks, err = tc.store.SearchTasks(c.Query("q"))
	default:
		tasks, err = tc.store.GetAllTasks()
	}
	if err != nil {
		respondInternalError(c, tc.log, err, "list tasks")
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks, "count": len(tasks)})
}

// GetTask returns the stored task, or with ?plan_id= the task with that
// plan's overrides applied.
func (tc *TasksController) GetTask(c *gin.Context) {
	task, err := tc.store.GetTaskByID(c.Param("id"))
	if err != nil {
		respondStoreError(c, tc.log, err, "task")
		return
	}

	planID := c.Query("plan_id")
	if planID == "" {
		c.JSON(http.StatusOK, task)
		return
	}

	c.JSON(http.StatusOK, PlanTaskResponse{
		Task:          task.ForPlan(planID),
		PlanID:        planID,
		ProgressValue: task.ProgressValue(planID),
		AutoGraded:    task.AnswerType.AutoGraded(),
	})
}

func (tc *TasksController) CreateTask(c *gin.Context) {
	var task entities.Task
	if err := c.ShouldBindJSON(&task); err != nil {
		respondBadRequest(c, "invalid task document: "+err.Error())
		return
	}
	task.ID = ""

	if err := tc.store.CreateTask(&task); err != nil {
		respondStoreError(c, tc.log, err, "task")
		return
	}
	respondCreated(c, task)
}
