package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abdul8704/Cookify-server/internal/middleware"
	"github.com/abdul8704/Cookify-server/internal/service"
	"github.com/abdul8704/Cookify-server/internal/types"
)

// IngredientHandler handles the ingredient catalogue. Reads are open to any
// authenticated user; mutations are admin-only.
type IngredientHandler struct {
	ingredientService *service.IngredientService
}

func NewIngredientHandler(ingredientService *service.IngredientService) *IngredientHandler {
	return &IngredientHandler{ingredientService: ingredientService}
}

// RegisterRoutes registers ingredient routes on an authenticated group.
func (h *IngredientHandler) RegisterRoutes(router *gin.RouterGroup) {
	ingredients := router.Group("/ingredients")
	{
		ingredients.GET("", h.List)
		ingredients.GET("/search", h.Search)
		ingredients.GET("/:identifier", h.Get)

		admin := ingredients.Group("", middleware.RequireAdmin())
		{
			admin.POST("", h.Create)
			admin.PUT("/:identifier", h.Update)
			admin.DELETE("/:identifier", h.Delete)
		}
	}
}

func (h *IngredientHandler) List(c *gin.Context) {
	ingredients, err := h.ingredientService.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ingredients": ingredients})
}

func (h *IngredientHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
		return
	}

	ingredients, err := h.ingredientService.Search(query)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ingredients": ingredients})
}

func (h *IngredientHandler) Get(c *gin.Context) {
	ingredient, err := h.ingredientService.GetByIdentifier(c.Param("identifier"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ingredient": ingredient})
}

func (h *IngredientHandler) Create(c *gin.Context) {
	var req types.IngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ingredient, err := h.ingredientService.Create(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ingredient": ingredient})
}

func (h *IngredientHandler) Update(c *gin.Context) {
	existing, err := h.ingredientService.GetByIdentifier(c.Param("identifier"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	var req types.IngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ingredient, err := h.ingredientService.Update(existing.ID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ingredient": ingredient})
}

func (h *IngredientHandler) Delete(c *gin.Context) {
	existing, err := h.ingredientService.GetByIdentifier(c.Param("identifier"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if err := h.ingredientService.Delete(existing.ID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ingredient deleted"})
}
