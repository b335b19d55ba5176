package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/qualification/internal/entities"
	"github.com/mrlokans/qualification/internal/logger"
)

type PlansController struct {
	store PlanStore
	log   *logger.Logger
}

func NewPlansController(store PlanStore, log *logger.Logger) *PlansController {
	return &PlansController{store: store, log: log}
}

// ListPlans returns all plans, or only active ones with ?active=true.
func (pc *PlansController) ListPlans(c *gin.Context) {
	var (
		plans []entities.Plan
		err   error
	)
	if activeOnly(c) {
		plans, err = pc.store.GetActivePlans()
	} else {
		plans, err = pc.store.GetAllPlans()
	}
	if err != nil {
		respondInternalError(c, pc.log, err, "list plans")
		return
	}
	c.JSON(http.StatusOK, gin.H{"plans": plans, "count": len(plans)})
}

func (pc *PlansController) GetPlan(c *gin.Context) {
	plan, err := pc.store.GetPlanByID(c.Param("id"))
	if err != nil {
		respondStoreError(c, pc.log, err, "plan")
		return
	}
	c.JSON(http.StatusOK, plan)
}

// CreatePlan stores the posted plan document. Omitted is_active defaults to true.
func (pc *PlansController) CreatePlan(c *gin.Context) {
	plan := entities.Plan{IsActive: true}
	if err := c.ShouldBindJSON(&plan); err != nil {
		respondBadRequest(c, "invalid plan document: "+err.Error())
		return
	}
	plan.ID = ""

	if err := pc.store.CreatePlan(&plan); err != nil {
		respondStoreError(c, pc.log, err, "plan")
		return
	}
	respondCreated(c, plan)
}
