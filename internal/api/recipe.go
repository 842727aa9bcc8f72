package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/abdul8704/Cookify-server/internal/middleware"
	"github.com/abdul8704/Cookify-server/internal/service"
	"github.com/abdul8704/Cookify-server/internal/types"
)

// RecipeHandler handles recipe CRUD.
type RecipeHandler struct {
	recipeService *service.RecipeService
}

func NewRecipeHandler(recipeService *service.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipeService: recipeService}
}

// RegisterRoutes registers recipe routes on an authenticated group.
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.List)
		recipes.GET("/:identifier", h.Get)

		admin := recipes.Group("", middleware.RequireAdmin())
		{
			admin.POST("", h.Create)
			admin.PUT("/:identifier", h.Update)
			admin.DELETE("/:identifier", h.Delete)
		}
	}
}

func (h *RecipeHandler) List(c *gin.Context) {
	filter := service.RecipeFilter{
		Search:   c.Query("search"),
		Tag:      c.Query("tag"),
		MealType: c.Query("mealType"),
		Cuisine:  c.Query("cuisine"),
	}

	recipes, err := h.recipeService.List(filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *RecipeHandler) Get(c *gin.Context) {
	recipe, err := h.recipeService.GetByIdentifier(c.Param("identifier"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipe": recipe})
}

func (h *RecipeHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	recipe, err := h.recipeService.Create(req, &userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"recipe": recipe})
}

func (h *RecipeHandler) Update(c *gin.Context) {
	existing, err := h.recipeService.GetByIdentifier(c.Param("identifier"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	var req types.RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	recipe, err := h.recipeService.Update(existing.ID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipe": recipe})
}

func (h *RecipeHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("identifier"))
	if err != nil {
		existing, getErr := h.recipeService.GetByIdentifier(c.Param("identifier"))
		if getErr != nil {
			respondServiceError(c, getErr)
			return
		}
		id = existing.ID
	}

	if err := h.recipeService.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "recipe deleted"})
}
