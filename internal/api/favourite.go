package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abdul8704/Cookify-server/internal/service"
	"github.com/abdul8704/Cookify-server/internal/types"
)

// FavouriteHandler handles favourites and ratings.
type FavouriteHandler struct {
	favouriteService *service.FavouriteService
}

func NewFavouriteHandler(favouriteService *service.FavouriteService) *FavouriteHandler {
	return &FavouriteHandler{favouriteService: favouriteService}
}

// RegisterRoutes registers favourite routes on an authenticated group.
func (h *FavouriteHandler) RegisterRoutes(router *gin.RouterGroup) {
	favourites := router.Group("/favourites")
	{
		favourites.GET("", h.List)
		favourites.GET("/ids", h.IDs)
		favourites.POST("/:recipeId/toggle", h.Toggle)
		favourites.POST("/:recipeId/rate", h.Rate)
		favourites.DELETE("/:recipeId/rate", h.Unrate)
	}
}

func (h *FavouriteHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	recipes, err := h.favouriteService.List(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"favourites": recipes})
}

func (h *FavouriteHandler) IDs(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ids, err := h.favouriteService.IDs(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipeIds": ids})
}

func (h *FavouriteHandler) Toggle(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	recipeID, ok := parseIDParam(c, "recipeId")
	if !ok {
		return
	}

	favourited, err := h.favouriteService.Toggle(userID, recipeID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"favourited": favourited})
}

func (h *FavouriteHandler) Rate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	recipeID, ok := parseIDParam(c, "recipeId")
	if !ok {
		return
	}

	var req types.RateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	recipe, err := h.favouriteService.Rate(userID, recipeID, req.Score, req.Comment)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"ratingAverage": recipe.RatingAverage,
		"ratingCount":   recipe.RatingCount,
	})
}

func (h *FavouriteHandler) Unrate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	recipeID, ok := parseIDParam(c, "recipeId")
	if !ok {
		return
	}

	recipe, err := h.favouriteService.Unrate(userID, recipeID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"ratingAverage": recipe.RatingAverage,
		"ratingCount":   recipe.RatingCount,
	})
}
