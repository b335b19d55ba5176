// Package plans provides database operations for plans.
//
// # Usage
//
//	repo := plans.NewRepository(db)
//	plan, err := repo.GetPlanByID(id)
package plans

import (
	"context"

	"gorm.io/gorm"

	"github.com/mrlokans/qualification/internal/entities"
)

// Repository handles all plan database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new plans repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithContext returns a repository whose queries are bound to ctx.
func (r *Repository) WithContext(ctx context.Context) *Repository {
	return &Repository{db: r.db.WithContext(ctx)}
}

// CreatePlan inserts a new plan, assigning its ID.
func (r *Repository) CreatePlan(plan *entities.Plan) error {
	return r.db.Create(plan).Error
}

// SavePlan writes all fields of an existing plan.
func (r *Repository) SavePlan(plan *entities.Plan) error {
	return r.db.Save(plan).Error
}

func (r *Repository) GetPlanByID(id string) (*entities.Plan, error) {
	var plan entities.Plan
	err := r.db.Where("id = ?", id).First(&plan).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *Repository) GetAllPlans() ([]entities.Plan, error) {
	var plans []entities.Plan
	err := r.db.Order("name ASC").Find(&plans).Error
	return plans, err
}

func (r *Repository) GetActivePlans() ([]entities.Plan, error) {
	var plans []entities.Plan
	err := r.db.Where("is_active = ?", true).Order("name ASC").Find(&plans).Error
	return plans, err
}

func (r *Repository) CountPlans() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Plan{}).Count(&count).Error
	return count, err
}
