package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Plan is a named curriculum of tasks a user can enroll in.
type Plan struct {
	ID            string                      `gorm:"primaryKey;size:36" json:"id"`
	Name          string                      `gorm:"size:255;not null" json:"name" validate:"required"`
	Route         datatypes.JSONSlice[string] `json:"route"` // ordered task/topic ids
	Description   string                      `gorm:"type:text;not null" json:"description" validate:"required"`
	EstimatedDays *float64                    `gorm:"not null" json:"estimated_days" validate:"required"`
	IsActive      bool                        `gorm:"not null;index" json:"is_active"`
	CreatedAt     time.Time                   `json:"created_at"`
	UpdatedAt     time.Time                   `json:"updated_at"`
}

func (Plan) TableName() string {
	return "plans"
}

// NewPlan returns an active plan with an empty route.
func NewPlan(name, description string, estimatedDays float64) *Plan {
	return &Plan{
		Name:          name,
		Description:   description,
		EstimatedDays: &estimatedDays,
		IsActive:      true,
	}
}

func (p *Plan) BeforeSave(tx *gorm.DB) error {
	return validateEntity("plan", p)
}

func (p *Plan) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
