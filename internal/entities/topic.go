package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Topic groups tasks. DependenciesTopics lists the topics that should be
// done before this one; the ids are stored as given and never resolved here.
type Topic struct {
	ID                 string                      `gorm:"primaryKey;size:36" json:"id"`
	Name               string                      `gorm:"size:255;not null" json:"name" validate:"required"`
	Description        string                      `gorm:"type:text;not null" json:"description" validate:"required"`
	IsActive           bool                        `gorm:"not null;index" json:"is_active"`
	DependenciesTopics datatypes.JSONSlice[string] `json:"dependencies_topics"`
	CreatedAt          time.Time                   `json:"created_at"`
	UpdatedAt          time.Time                   `json:"updated_at"`
}

func (Topic) TableName() string {
	return "topics"
}

func NewTopic(name, description string, dependencies ...string) *Topic {
	return &Topic{
		Name:               name,
		Description:        description,
		IsActive:           true,
		DependenciesTopics: datatypes.NewJSONSlice(dependencies),
	}
}

// DependsOn reports whether topicID is listed as a prerequisite.
func (t *Topic) DependsOn(topicID string) bool {
	for _, id := range t.DependenciesTopics {
		if id == topicID {
			return true
		}
	}
	return false
}

func (t *Topic) BeforeSave(tx *gorm.DB) error {
	return validateEntity("topic", t)
}

func (t *Topic) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
