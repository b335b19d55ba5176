package plans

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/qualification/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	dbPath := "./test_plans_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.Plan{})
	require.NoError(t, err)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return NewRepository(db), cleanup
}

func TestRepository_CreatePlan(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	plan := entities.NewPlan("Backend", "Backend engineer track", 45)
	plan.Route = datatypes.NewJSONSlice([]string{"task-1", "topic-2", "task-3"})

	err := repo.CreatePlan(plan)

	require.NoError(t, err)
	assert.NotEmpty(t, plan.ID)

	got, err := repo.GetPlanByID(plan.ID)
	require.NoError(t, err)
	assert.Equal(t, "Backend", got.Name)
	assert.Equal(t, "Backend engineer track", got.Description)
	require.NotNil(t, got.EstimatedDays)
	assert.Equal(t, 45.0, *got.EstimatedDays)
	assert.True(t, got.IsActive)
	assert.Equal(t, []string{"task-1", "topic-2", "task-3"}, []string(got.Route))
}

func TestRepository_CreatePlan_RequiredFields(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	err := repo.CreatePlan(&entities.Plan{IsActive: true})

	require.Error(t, err)
	var verr *entities.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.ElementsMatch(t, []string{"name", "description", "estimated_days"}, verr.Fields())
}

func TestRepository_CreatePlan_KeepsExplicitInactive(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	plan := entities.NewPlan("Retired", "Old track", 10)
	plan.IsActive = false
	require.NoError(t, repo.CreatePlan(plan))

	got, err := repo.GetPlanByID(plan.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}

func TestRepository_SavePlan(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	plan := entities.NewPlan("Backend", "Backend engineer track", 45)
	require.NoError(t, repo.CreatePlan(plan))

	plan.Description = "Updated"
	plan.Route = append(plan.Route, "task-9")
	require.NoError(t, repo.SavePlan(plan))

	got, err := repo.GetPlanByID(plan.ID)
	require.NoError(t, err)
	assert.Equal(t, "Updated", got.Description)
	assert.Equal(t, []string{"task-9"}, []string(got.Route))
}

func TestRepository_GetPlanByID_NotFound(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.GetPlanByID("missing")

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_GetActivePlans(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	active := entities.NewPlan("B active", "desc", 1)
	inactive := entities.NewPlan("A inactive", "desc", 1)
	inactive.IsActive = false
	require.NoError(t, repo.CreatePlan(active))
	require.NoError(t, repo.CreatePlan(inactive))

	all, err := repo.GetAllPlans()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "A inactive", all[0].Name)

	plans, err := repo.GetActivePlans()
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, active.ID, plans[0].ID)

	count, err := repo.CountPlans()
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
