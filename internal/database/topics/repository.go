// Package topics provides database operations for topics.
package topics

import (
	"context"

	"gorm.io/gorm"

	"github.com/mrlokans/qualification/internal/entities"
)

// Repository handles all topic database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new topics repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithContext returns a repository whose queries are bound to ctx.
func (r *Repository) WithContext(ctx context.Context) *Repository {
	return &Repository{db: r.db.WithContext(ctx)}
}

func (r *Repository) CreateTopic(topic *entities.Topic) error {
	return r.db.Create(topic).Error
}

func (r *Repository) SaveTopic(topic *entities.Topic) error {
	return r.db.Save(topic).Error
}

func (r *Repository) GetTopicByID(id string) (*entities.Topic, error) {
	var topic entities.Topic
	err := r.db.Where("id = ?", id).First(&topic).Error
	if err != nil {
		return nil, err
	}
	return &topic, nil
}

func (r *Repository) GetAllTopics() ([]entities.Topic, error) {
	var topics []entities.Topic
	err := r.db.Order("name ASC").Find(&topics).Error
	return topics, err
}

func (r *Repository) GetActiveTopics() ([]entities.Topic, error) {
	var topics []entities.Topic
	err := r.db.Where("is_active = ?", true).Order("name ASC").Find(&topics).Error
	return topics, err
}

// GetTopicsByIDs returns the topics in the order of ids. Unknown ids are skipped.
func (r *Repository) GetTopicsByIDs(ids []string) ([]entities.Topic, error) {
	if len(ids) == 0 {
		return []entities.Topic{}, nil
	}

	var found []entities.Topic
	if err := r.db.Where("id IN ?", ids).Find(&found).Error; err != nil {
		return nil, err
	}

	byID := make(map[string]entities.Topic, len(found))
	for _, t := range found {
		byID[t.ID] = t
	}
	topics := make([]entities.Topic, 0, len(found))
	for _, id := range ids {
		if t, ok := byID[id]; ok {
			topics = append(topics, t)
		}
	}
	return topics, nil
}

// GetDependencies returns the prerequisite topics of topic that exist.
func (r *Repository) GetDependencies(topic *entities.Topic) ([]entities.Topic, error) {
	return r.GetTopicsByIDs(topic.DependenciesTopics)
}

func (r *Repository) CountTopics() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Topic{}).Count(&count).Error
	return count, err
}
