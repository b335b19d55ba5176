// Package tasks provides database operations for tasks.
package tasks

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/mrlokans/qualification/internal/entities"
)

// Repository handles all task database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new tasks repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithContext returns a repository whose queries are bound to ctx.
func (r *Repository) WithContext(ctx context.Context) *Repository {
	return &Repository{db: r.db.WithContext(ctx)}
}

func (r *Repository) CreateTask(task *entities.Task) error {
	return r.db.Create(task).Error
}

func (r *Repository) SaveTask(task *entities.Task) error {
	return r.db.Save(task).Error
}

func (r *Repository) GetTaskByID(id string) (*entities.Task, error) {
	var task entities.Task
	err := r.db.Where("id = ?", id).First(&task).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *Repository) GetAllTasks() ([]entities.Task, error) {
	var tasks []entities.Task
	err := r.db.Order("topic_id ASC, inner_topic_order ASC").Find(&tasks).Error
	return tasks, err
}

// GetTasksByTopic returns the topic's tasks in their inner-topic order.
func (r *Repository) GetTasksByTopic(topicID string) ([]entities.Task, error) {
	var tasks []entities.Task
	err := r.db.Where("topic_id = ?", topicID).Order("inner_topic_order ASC").Find(&tasks).Error
	return tasks, err
}

// SearchTasks matches query against titles and individual search keywords,
// case-insensitively. LIKE wildcards in query match literally.
func (r *Repository) SearchTasks(query string) ([]entities.Task, error) {
	var tasks []entities.Task
	searchPattern := "%" + escapeLike(strings.ToLower(query)) + "%"
	err := r.db.
		Where(`LOWER(title) LIKE ? ESCAPE '\' OR `+keywordMatch(r.db.Dialector.Name()), searchPattern, searchPattern).
		Order("topic_id ASC, inner_topic_order ASC").
		Find(&tasks).Error
	return tasks, err
}

// keywordMatch is a condition true when any element of the search_keywords
// array is LIKE the bound pattern.
func keywordMatch(dialect string) string {
	if dialect == "postgres" {
		return `EXISTS (SELECT 1 FROM jsonb_array_elements_text(
			CASE WHEN jsonb_typeof(tasks.search_keywords) = 'array' THEN tasks.search_keywords ELSE '[]'::jsonb END
		) AS kw(value) WHERE LOWER(kw.value) LIKE ? ESCAPE '\')`
	}
	return `EXISTS (SELECT 1 FROM json_each(tasks.search_keywords) AS kw
		WHERE kw.type = 'text' AND LOWER(kw.value) LIKE ? ESCAPE '\')`
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func (r *Repository) CountTasks() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Task{}).Count(&count).Error
	return count, err
}
