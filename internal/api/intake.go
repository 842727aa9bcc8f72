package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abdul8704/Cookify-server/internal/service"
	"github.com/abdul8704/Cookify-server/internal/types"
)

// IntakeHandler handles daily nutrition tracking: what was eaten, when, and
// the day's running totals against goals.
type IntakeHandler struct {
	intakeService *service.IntakeService
	goalsService  *service.GoalsService
}

func NewIntakeHandler(intakeService *service.IntakeService, goalsService *service.GoalsService) *IntakeHandler {
	return &IntakeHandler{intakeService: intakeService, goalsService: goalsService}
}

// RegisterRoutes registers nutrition tracking routes on an authenticated
// group.
func (h *IntakeHandler) RegisterRoutes(router *gin.RouterGroup) {
	nutrition := router.Group("/nutrition")
	{
		nutrition.GET("/intake", h.GetDay)
		nutrition.POST("/intake/meals", h.AddEntry)
		nutrition.PUT("/intake/meals", h.UpdateEntry)
		nutrition.DELETE("/intake/meals/:entryId", h.RemoveEntry)
		nutrition.GET("/goals", h.GetGoals)
		nutrition.PUT("/goals", h.UpdateGoals)
	}
}

func (h *IntakeHandler) GetDay(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	intake, err := h.intakeService.GetDay(userID, c.Query("date"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"intake": intake})
}

func (h *IntakeHandler) AddEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.MealEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	intake, err := h.intakeService.AddEntry(userID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"intake": intake})
}

func (h *IntakeHandler) UpdateEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.MealEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	intake, err := h.intakeService.UpdateEntry(userID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"intake": intake})
}

func (h *IntakeHandler) RemoveEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	entryID, ok := parseIDParam(c, "entryId")
	if !ok {
		return
	}

	intake, err := h.intakeService.RemoveEntry(userID, entryID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"intake": intake})
}

// GetGoals returns the user's nutrition goals, computing them from the
// profile when no record exists yet.
func (h *IntakeHandler) GetGoals(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	goals, err := h.goalsService.SyncAuto(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"goals": goals})
}

func (h *IntakeHandler) UpdateGoals(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.UpdateGoalsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	goals, err := h.goalsService.UpdateManual(userID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"goals": goals})
}
