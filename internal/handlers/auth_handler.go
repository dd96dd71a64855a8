package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xosoviet/xoso-backend/internal/models"
	"github.com/xosoviet/xoso-backend/internal/services"
)

// AuthHandler handles authentication related HTTP requests
type AuthHandler struct {
	 authService services.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		 authService: authService,
	}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	 if err := c.ShouldBindJSON(&req); err != nil {
		 c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		 return
	 }

	 resp, err := h.authService.Login(c.Request.Context(), &req)
	 if err != nil {
		 c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		 return
	 }
	 c.JSON(http.StatusOK, resp)
}

// Register handles POST /admin/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	 if err := c.ShouldBindJSON(&req); err != nil {
		 c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		 return
	 }

	 user, err := h.authService.Register(c.Request.Context(), &req)
	 if err != nil {
		 c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		 return
	 }
	 c.JSON(http.StatusCreated, user)
}
