package handler

import (
	"log/slog"
	"net/http"

	"flavour_fusion/internal/model"
	"flavour_fusion/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles registration and login requests
type UserHandler struct {
	service service.UserService
	logger  *slog.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(s service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{service: s, logger: logger}
}

type loginResponse struct {
	Message string `json:"message"`
	model.UserSummary
}

func (h *UserHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := bindRequest(c, &req); err != nil {
		respondMessage(c, http.StatusBadRequest, msgInvalidBody)
		return
	}

	if err := h.service.Register(c.Request.Context(), req); err != nil {
		respondError(c, h.logger, "register user", err)
		return
	}

	respondMessage(c, http.StatusCreated, "registration successful")
}

func (h *UserHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := bindRequest(c, &req); err != nil {
		respondMessage(c, http.StatusBadRequest, msgInvalidBody)
		return
	}

	user, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, h.logger, "login", err)
		return
	}

	c.JSON(http.StatusOK, loginResponse{
		Message: "login successful",
		UserSummary: model.UserSummary{
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Email:     user.Email,
		},
	})
}

// RegisterUserRoutes registers user routes
func (h *UserHandler) RegisterUserRoutes(rg *gin.RouterGroup) {
	userGroup := rg.Group("/users")
	{
		userGroup.POST("/register", h.Register)
		userGroup.POST("/login", h.Login)
	}
}
