package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Checkpoint marks how strictly completing a task gates further progress.
type Checkpoint string

const (
	CheckpointNone   Checkpoint = "NONE"
	CheckpointSoft   Checkpoint = "SOFT"
	CheckpointStrong Checkpoint = "STRONG"
)

// AnswerType controls how a submitted answer is checked.
type AnswerType string

const (
	AnswerTypeTextStrong        AnswerType = "TEXT_STRONG"
	AnswerTypeTextSoft          AnswerType = "TEXT_SOFT"
	AnswerTypeTextFree          AnswerType = "TEXT_FREE"
	AnswerTypeFiles             AnswerType = "FILES"
	AnswerTypeCompilationResult AnswerType = "COMPILATION_RESULT"
	AnswerTypeBoolean           AnswerType = "BOOLEAN"
	AnswerTypeMultipleChoices   AnswerType = "MULTIPLE_CHOICES"
)

// AutoGraded reports whether answers of this type are checked automatically.
// TEXT_FREE and FILES always go to a reviewer.
func (a AnswerType) AutoGraded() bool {
	switch a {
	case AnswerTypeTextStrong, AnswerTypeTextSoft, AnswerTypeCompilationResult,
		AnswerTypeBoolean, AnswerTypeMultipleChoices:
		return true
	}
	return false
}

// DefaultProgressValue is how much a solved task counts towards a plan
// unless the plan's exception says otherwise.
const DefaultProgressValue = 1.0

type CodeSection struct {
	Content  string `json:"content"`
	Theme    string `json:"theme"`
	Language string `json:"language"`
}

// PlanException overrides task fields when the task is reached through the
// plan with the given ID. A nil field leaves the task's own value in place.
type PlanException struct {
	ID                string        `json:"id" validate:"required"`
	TaskProgressValue *float64      `json:"task_progress_value,omitempty" validate:"omitempty,gte=0"`
	Details           *string       `json:"details,omitempty"`
	SearchKeywords    []string      `json:"search_keywords"`
	FileNames         []string      `json:"file_names"`
	AnswerOptions     []string      `json:"answer_options"`
	CodeSections      []CodeSection `json:"code_sections"`
	JudgementCriteria []string      `json:"judgement_criteria"`
	Hints             []string      `json:"hints"`
}

type Task struct {
	ID                string                             `gorm:"primaryKey;size:36" json:"id"`
	Title             string                             `gorm:"size:512;not null" json:"title" validate:"required"`
	TopicID           string                             `gorm:"size:36;not null;index" json:"topic_id" validate:"required"`
	InnerTopicOrder   *int                               `gorm:"not null" json:"inner_topic_order" validate:"required"`
	Details           string                             `gorm:"type:text;not null" json:"details" validate:"required"`
	SearchKeywords    datatypes.JSONSlice[string]        `json:"search_keywords"`
	CheckPoint        Checkpoint                         `gorm:"size:16;not null" json:"check_point" validate:"oneof=NONE SOFT STRONG"`
	AnswerType        AnswerType                         `gorm:"size:32;not null" json:"answer_type" validate:"oneof=TEXT_STRONG TEXT_SOFT TEXT_FREE FILES COMPILATION_RESULT BOOLEAN MULTIPLE_CHOICES"`
	FileNames         datatypes.JSONSlice[string]        `json:"file_names"`
	AnswerOptions     datatypes.JSONSlice[string]        `json:"answer_options"`
	CodeSections      datatypes.JSONSlice[CodeSection]   `json:"code_sections"`
	JudgementCriteria datatypes.JSONSlice[string]        `json:"judgement_criteria"`
	Hints             datatypes.JSONSlice[string]        `json:"hints"`
	PlanExceptions    datatypes.JSONSlice[PlanException] `json:"plan_exceptions" validate:"dive"`
	Answer            datatypes.JSONSlice[string]        `json:"answer"`
	CreatedAt         time.Time                          `json:"created_at"`
	UpdatedAt         time.Time                          `json:"updated_at"`
}

func (Task) TableName() string {
	return "tasks"
}

// NewTask returns a free-text task without a checkpoint.
func NewTask(title, topicID string, order int, details string) *Task {
	return &Task{
		Title:           title,
		TopicID:         topicID,
		InnerTopicOrder: &order,
		Details:         details,
		CheckPoint:      CheckpointNone,
		AnswerType:      AnswerTypeTextFree,
	}
}

// PlanException returns the override block for planID, if any.
func (t *Task) PlanException(planID string) (PlanException, bool) {
	for _, ex := range t.PlanExceptions {
		if ex.ID == planID {
			return ex, true
		}
	}
	return PlanException{}, false
}

// ForPlan returns a copy of the task with the plan's overrides applied.
func (t Task) ForPlan(planID string) Task {
	ex, ok := t.PlanException(planID)
	if !ok {
		return t
	}

	if ex.Details != nil {
		t.Details = *ex.Details
	}
	if ex.SearchKeywords != nil {
		t.SearchKeywords = datatypes.NewJSONSlice(ex.SearchKeywords)
	}
	if ex.FileNames != nil {
		t.FileNames = datatypes.NewJSONSlice(ex.FileNames)
	}
	if ex.AnswerOptions != nil {
		t.AnswerOptions = datatypes.NewJSONSlice(ex.AnswerOptions)
	}
	if ex.CodeSections != nil {
		t.CodeSections = datatypes.NewJSONSlice(ex.CodeSections)
	}
	if ex.JudgementCriteria != nil {
		t.JudgementCriteria = datatypes.NewJSONSlice(ex.JudgementCriteria)
	}
	if ex.Hints != nil {
		t.Hints = datatypes.NewJSONSlice(ex.Hints)
	}
	return t
}

// ProgressValue is how much solving the task advances planID.
func (t *Task) ProgressValue(planID string) float64 {
	if ex, ok := t.PlanException(planID); ok && ex.TaskProgressValue != nil {
		return *ex.TaskProgressValue
	}
	return DefaultProgressValue
}

func (t *Task) BeforeSave(tx *gorm.DB) error {
	if t.CheckPoint == "" {
		t.CheckPoint = CheckpointNone
	}
	if t.AnswerType == "" {
		t.AnswerType = AnswerTypeTextFree
	}
	return validateEntity("task", t)
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
