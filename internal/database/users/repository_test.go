package users

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/qualification/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	dbPath := "./test_users_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.User{})
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return repo, cleanup
}

func TestRepository_CreateUser(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	user, err := repo.CreateUser("testuser", "$2a$04$hash", entities.RoleMember)

	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Len(t, user.ID, 36)
	assert.Equal(t, "testuser", user.Username)
	assert.Equal(t, entities.RoleMember, user.Role)
	assert.False(t, user.RegisterDate.IsZero())
}

func TestRepository_SaveUser_DefaultsRoleToMember(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.SaveUser(&entities.User{Username: "plain", Password: "$2a$04$hash"}))
	banned, err := repo.CreateUser("banned", "$2a$04$hash", entities.RoleBanned)
	require.NoError(t, err)

	plain, err := repo.GetUserByUsername("plain")
	require.NoError(t, err)
	assert.Equal(t, entities.RoleMember, plain.Role)

	got, err := repo.GetUserByID(banned.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.RoleBanned, got.Role)

	// reloaded users carry an id, so saving keeps the stored ban
	require.NoError(t, repo.SaveUser(got))
	got, err = repo.GetUserByID(banned.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.RoleBanned, got.Role)
}

func TestRepository_CreateUser_RequiresPassword(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.CreateUser("testuser", "", entities.RoleMember)

	require.Error(t, err)
	assert.True(t, entities.IsValidationError(err))
}

func TestRepository_CreateUser_RejectsUnknownRole(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.CreateUser("testuser", "$2a$04$hash", entities.Role(7))

	assert.True(t, entities.IsValidationError(err))
}

func TestRepository_GetUserByID(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	created, err := repo.CreateUser("testuser", "$2a$04$hash", entities.RoleModerator)
	require.NoError(t, err)

	user, err := repo.GetUserByID(created.ID)

	require.NoError(t, err)
	assert.Equal(t, "testuser", user.Username)
	assert.Equal(t, entities.RoleModerator, user.Role)
}

func TestRepository_GetUserByID_NotFound(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.GetUserByID("missing")

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_GetUserByUsername(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	created, err := repo.CreateUser("testuser", "$2a$04$hash", entities.RoleMember)
	require.NoError(t, err)

	user, err := repo.GetUserByUsername("testuser")

	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
}

func TestRepository_GetUserByUsername_NotFound(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.GetUserByUsername("nonexistent")

	assert.Error(t, err)
}

func TestRepository_SaveUser_PersistsEnrollments(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	user, err := repo.CreateUser("student", "$2a$04$hash", entities.RoleMember)
	require.NoError(t, err)

	enrollment := user.Enroll("plan-1", "task-1")
	enrollment.CompletedTasks = append(enrollment.CompletedTasks, entities.CompletedTask{
		ID:          "task-0",
		Answer:      []string{"42"},
		Reviewer:    entities.ReviewerSystem,
		ReviewerMsg: "correct",
	})
	enrollment.SkippedTasks = []string{"task-skip"}
	enrollment.TasksForReview = []entities.ReviewTask{{ID: "task-review", Answer: []string{"essay"}}}
	require.NoError(t, repo.SaveUser(user))

	loaded, err := repo.GetUserByID(user.ID)
	require.NoError(t, err)

	got, ok := loaded.Enrollment("plan-1")
	require.True(t, ok)
	assert.Equal(t, "task-1", got.CurrentTask.ID)
	assert.Equal(t, entities.TaskStatusInProgress, got.CurrentTask.Status)
	require.Len(t, got.CompletedTasks, 1)
	assert.Equal(t, entities.ReviewerSystem, got.CompletedTasks[0].Reviewer)
	assert.WithinDuration(t, time.Now(), got.CompletedTasks[0].Date, time.Minute)
	assert.Equal(t, []string{"task-skip"}, got.SkippedTasks)
	assert.Equal(t, "task-review", got.TasksForReview[0].ID)
}

func TestRepository_SaveUser_ValidatesNestedRecords(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	user, err := repo.CreateUser("student", "$2a$04$hash", entities.RoleMember)
	require.NoError(t, err)

	enrollment := user.Enroll("plan-1", "task-1")
	enrollment.DeclinedTasks = []entities.DeclinedTask{{ID: "task-1"}}

	err = repo.SaveUser(user)

	require.Error(t, err)
	var verr *entities.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields(), "plans[0].declined_tasks[0].last_reviewer")
	assert.Contains(t, verr.Fields(), "plans[0].declined_tasks[0].reviewer_msg")
}

func TestRepository_GetAllUsersAndCount(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.CreateUser("first", "$2a$04$hash", entities.RoleMember)
	require.NoError(t, err)
	_, err = repo.CreateUser("second", "$2a$04$hash", entities.RoleMember)
	require.NoError(t, err)

	users, err := repo.GetAllUsers()
	require.NoError(t, err)
	assert.Len(t, users, 2)

	count, err := repo.CountUsers()
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestRepository_CreateUser_UniqueIDs(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	user1, err := repo.CreateUser("user1", "$2a$04$hash", entities.RoleMember)
	require.NoError(t, err)
	user2, err := repo.CreateUser("user2", "$2a$04$hash", entities.RoleMember)
	require.NoError(t, err)

	assert.NotEqual(t, user1.ID, user2.ID)
}
