package handler

import (
	"log/slog"
	"net/http"

	"flavour_fusion/internal/service"

	"github.com/gin-gonic/gin"
)

// RecipeHandler handles recipe requests
type RecipeHandler struct {
	service service.RecipeService
	logger  *slog.Logger
}

// NewRecipeHandler creates a new RecipeHandler
func NewRecipeHandler(s service.RecipeService, logger *slog.Logger) *RecipeHandler {
	return &RecipeHandler{service: s, logger: logger}
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "list recipes", err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

func (h *RecipeHandler) GetRecipeByID(c *gin.Context) {
	recipe, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, "get recipe", err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	fields, err := bindFields(c)
	if err != nil {
		respondMessage(c, http.StatusBadRequest, msgInvalidBody)
		return
	}

	if err := h.service.Create(c.Request.Context(), fields); err != nil {
		respondError(c, h.logger, "create recipe", err)
		return
	}
	respondMessage(c, http.StatusCreated, "recipe created successfully")
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	fields, err := bindFields(c)
	if err != nil {
		respondMessage(c, http.StatusBadRequest, msgInvalidBody)
		return
	}

	if err := h.service.Update(c.Request.Context(), c.Param("id"), fields); err != nil {
		respondError(c, h.logger, "update recipe", err)
		return
	}
	respondMessage(c, http.StatusOK, "recipe updated successfully")
}

// RegisterRecipeRoutes registers recipe routes
func (h *RecipeHandler) RegisterRecipeRoutes(rg *gin.RouterGroup) {
	recipeGroup := rg.Group("/recipes")
	{
		recipeGroup.GET("", h.ListRecipes)
		recipeGroup.GET("/:id", h.GetRecipeByID)
		recipeGroup.POST("", h.CreateRecipe)
		recipeGroup.PUT("/:id", h.UpdateRecipe)
	}
}
