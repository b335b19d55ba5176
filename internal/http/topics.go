package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/qualification/internal/entities"
	"github.com/mrlokans/qualification/internal/logger"
)

type TopicsController struct {
	store TopicStore
	log   *logger.Logger
}

func NewTopicsController(store TopicStore, log *logger.Logger) *TopicsController {
	return &TopicsController{store: store, log: log}
}

func (tc *TopicsController) ListTopics(c *gin.Context) {
	var (
		topics []entities.Topic
		err    error
	)
	if activeOnly(c) {
		topics, err = tc.store.GetActiveTopics()
	} else {
		topics, err = tc.store.GetAllTopics()
	}
	if err != nil {
		respondInternalError(c, tc.log, err, "list topics")
		return
	}
	c.JSON(http.StatusOK, gin.H{"topics": topics, "count": len(topics)})
}

func (tc *TopicsController) GetTopic(c *gin.Context) {
	topic, err := tc.store.GetTopicByID(c.Param("id"))
	if err != nil {
		respondStoreError(c, tc.log, err, "topic")
		return
	}
	c.JSON(http.StatusOK, topic)
}

// GetDependencies returns the prerequisite topics that exist. Dangling ids
// are reported separately rather than treated as an error.
func (tc *TopicsController) GetDependencies(c *gin.Context) {
	topic, err := tc.store.GetTopicByID(c.Param("id"))
	if err != nil {
		respondStoreError(c, tc.log, err, "topic")
		return
	}

	deps, err := tc.store.GetDependencies(topic)
	if err != nil {
		respondInternalError(c, tc.log, err, "topic dependencies")
		return
	}

	found := make(map[string]bool, len(deps))
	for _, d := range deps {
		found[d.ID] = true
	}
	missing := []string{}
	for _, id := range topic.DependenciesTopics {
		if !found[id] {
			missing = append(missing, id)
		}
	}

	c.JSON(http.StatusOK, gin.H{"dependencies": deps, "missing": missing})
}

func (tc *TopicsController) CreateTopic(c *gin.Context) {
	topic := entities.Topic{IsActive: true}
	if err := c.ShouldBindJSON(&topic); err != nil {
		respondBadRequest(c, "invalid topic document: "+err.Error())
		return
	}
	topic.ID = ""

	if err := tc.store.CreateTopic(&topic); err != nil {
		respondStoreError(c, tc.log, err, "topic")
		return
	}
	respondCreated(c, topic)
}
