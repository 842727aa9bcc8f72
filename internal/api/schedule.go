package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abdul8704/Cookify-server/internal/service"
	"github.com/abdul8704/Cookify-server/internal/types"
)

// ScheduleHandler handles per-day meal planning.
type ScheduleHandler struct {
	scheduleService *service.ScheduleService
}

func NewScheduleHandler(scheduleService *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService}
}

// RegisterRoutes registers schedule routes on an authenticated group.
func (h *ScheduleHandler) RegisterRoutes(router *gin.RouterGroup) {
	schedule := router.Group("/schedule")
	{
		schedule.GET("", h.GetDay)
		schedule.GET("/range", h.GetRange)
		schedule.GET("/today/pending", h.TodayPending)
		schedule.POST("/meals", h.AddMeal)
		schedule.DELETE("/meals", h.RemoveMeal)
		schedule.POST("/meals/complete", h.Complete)
		schedule.POST("/meals/uncomplete", h.Uncomplete)
	}
}

func (h *ScheduleHandler) GetDay(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	schedule, err := h.scheduleService.GetDay(userID, c.Query("date"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedule": schedule})
}

func (h *ScheduleHandler) GetRange(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	from, to := c.Query("from"), c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to query parameters are required"})
		return
	}

	schedules, err := h.scheduleService.GetRange(userID, from, to)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedules": schedules})
}

func (h *ScheduleHandler) TodayPending(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	meals, err := h.scheduleService.TodayPending(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"meals": meals})
}

func (h *ScheduleHandler) AddMeal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.ScheduleMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	schedule, err := h.scheduleService.AddMeal(userID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"schedule": schedule})
}

func (h *ScheduleHandler) RemoveMeal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.ScheduleEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	schedule, err := h.scheduleService.RemoveMeal(userID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedule": schedule})
}

func (h *ScheduleHandler) Complete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.ScheduleEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	schedule, err := h.scheduleService.Complete(userID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedule": schedule})
}

func (h *ScheduleHandler) Uncomplete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.ScheduleEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	schedule, err := h.scheduleService.Uncomplete(userID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedule": schedule})
}
