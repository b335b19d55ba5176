package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Role is the access tier of a user.
type Role int

const (
	RoleBanned    Role = 0 // no access at all
	RoleMember    Role = 1 // submits tasks
	RoleModerator Role = 2 // creates, modifies and removes tasks, plans and members
	RoleAdmin     Role = 3 // creates moderators
)

func (r Role) String() string {
	switch r {
	case RoleBanned:
		return "banned"
	case RoleMember:
		return "member"
	case RoleModerator:
		return "moderator"
	case RoleAdmin:
		return "admin"
	default:
		return "unknown"
	}
}

func (r Role) IsBanned() bool    { return r == RoleBanned }
func (r Role) IsAdmin() bool     { return r == RoleAdmin }
func (r Role) CanModerate() bool { return r >= RoleModerator }

// TaskStatus is the state of an enrollment's current task.
type TaskStatus string

const (
	TaskStatusInProgress TaskStatus = "In Progress"
	TaskStatusWaiting    TaskStatus = "Waiting"
	TaskStatusInReview   TaskStatus = "In Review"
	TaskStatusCompleted  TaskStatus = "Completed" // last task of the plan is done
)

// ReviewerSystem is recorded as the reviewer of auto-graded tasks.
const ReviewerSystem = "System"

type CompletedTask struct {
	ID          string    `json:"id" validate:"required"`
	Answer      []string  `json:"answer"`
	Reviewer    string    `json:"reviewer" validate:"required"`
	ReviewerMsg string    `json:"reviewer_msg" validate:"required"`
	Date        time.Time `json:"date"`
}

type ReviewTask struct {
	ID     string   `json:"id" validate:"required"`
	Answer []string `json:"answer"`
}

type DeclinedTask struct {
	ID           string    `json:"id" validate:"required"`
	Answer       []string  `json:"answer"`
	LastReviewer string    `json:"last_reviewer" validate:"required"`
	ReviewerMsg  string    `json:"reviewer_msg" validate:"required"`
	Date         time.Time `json:"date"`
}

type CurrentTask struct {
	ID     string     `json:"id" validate:"required"`
	Status TaskStatus `json:"status" validate:"oneof='In Progress' Waiting 'In Review' Completed"`
	Answer []string   `json:"answer"`
}

// PlanEnrollment tracks a user's progress through one plan.
type PlanEnrollment struct {
	ID             string          `json:"id" validate:"required"` // plan id
	RegisterDate   time.Time       `json:"register_date"`
	CompletedTasks []CompletedTask `json:"completed_tasks" validate:"dive"`
	SkippedTasks   []string        `json:"skipped_tasks"`
	TasksForReview []ReviewTask    `json:"tasks_for_review" validate:"dive"`
	DeclinedTasks  []DeclinedTask  `json:"declined_tasks" validate:"dive"`
	CurrentTask    CurrentTask     `json:"current_task"`
}

type User struct {
	ID           string                              `gorm:"primaryKey;size:36" json:"id"`
	Username     string                              `gorm:"size:100;not null;index" json:"username" validate:"required"`
	Password     string                              `gorm:"size:255;not null" json:"-" validate:"required"` // bcrypt hash
	Role         Role                                `gorm:"not null" json:"role" validate:"min=0,max=3"`
	RegisterDate time.Time                           `gorm:"not null" json:"register_date"`
	Plans        datatypes.JSONSlice[PlanEnrollment] `json:"plans" validate:"dive"`
	UpdatedAt    time.Time                           `json:"updated_at"`

	// roleSet marks Role as chosen explicitly, so a new banned user is not
	// promoted to RoleMember on first save.
	roleSet bool
}

func (User) TableName() string {
	return "users"
}

// NewUser returns a user with the given password hash and no enrollments.
func NewUser(username, passwordHash string, role Role) *User {
	return &User{
		Username:     username,
		Password:     passwordHash,
		Role:         role,
		RegisterDate: time.Now(),
		roleSet:      true,
	}
}

// SetRole changes the user's role. Use it (or NewUser) to create a banned user.
func (u *User) SetRole(role Role) {
	u.Role = role
	u.roleSet = true
}

// Enrollment returns the user's enrollment in planID.
func (u *User) Enrollment(planID string) (*PlanEnrollment, bool) {
	for i := range u.Plans {
		if u.Plans[i].ID == planID {
			return &u.Plans[i], true
		}
	}
	return nil, false
}

// Enroll adds an enrollment in planID starting at firstTaskID.
// It returns the existing enrollment if the user is already enrolled.
func (u *User) Enroll(planID, firstTaskID string) *PlanEnrollment {
	if e, ok := u.Enrollment(planID); ok {
		return e
	}
	u.Plans = append(u.Plans, PlanEnrollment{
		ID:           planID,
		RegisterDate: time.Now(),
		CurrentTask: CurrentTask{
			ID:     firstTaskID,
			Status: TaskStatusInProgress,
		},
	})
	return &u.Plans[len(u.Plans)-1]
}

func (u *User) applyDefaults(now time.Time) {
	if u.ID == "" && u.Role == RoleBanned && !u.roleSet {
		u.Role = RoleMember
	}
	if u.RegisterDate.IsZero() {
		u.RegisterDate = now
	}
	for i := range u.Plans {
		e := &u.Plans[i]
		if e.RegisterDate.IsZero() {
			e.RegisterDate = now
		}
		if e.CurrentTask.Status == "" {
			e.CurrentTask.Status = TaskStatusInProgress
		}
		for j := range e.CompletedTasks {
			if e.CompletedTasks[j].Date.IsZero() {
				e.CompletedTasks[j].Date = now
			}
		}
		for j := range e.DeclinedTasks {
			if e.DeclinedTasks[j].Date.IsZero() {
				e.DeclinedTasks[j].Date = now
			}
		}
	}
}

func (u *User) BeforeSave(tx *gorm.DB) error {
	u.applyDefaults(time.Now())
	return validateEntity("user", u)
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
