package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bulbeats/api/internal/services"
)

type UserHandlers struct {
	userService services.UserServiceInterface
}

func NewUserHandlers(userService services.UserServiceInterface) *UserHandlers {
	return &UserHandlers{
		userService: userService,
	}
}

// EnsureUserRequest represents the request body for claiming a username
type EnsureUserRequest struct {
	Username string `json:"username" binding:"required"`
}

// EnsureUserResponse represents the response for claiming a username
type EnsureUserResponse struct {
	Success  bool   `json:"success"`
	Slug     string `json:"slug"`
	Username string `json:"username"`
	LastSeen string `json:"last_seen"`
}

// EnsureUser handles POST /v1/users
// Claims the username's slug, or re-enters as the returning claimant.
func (h *UserHandlers) EnsureUser(c *gin.Context) {
	var req EnsureUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username is required"})
		return
	}

	user, err := h.userService.EnsureUser(c.Request.Context(), req.Username)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNameTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "Username is already taken, choose another one"})
		case errors.Is(err, services.ErrInvalidUsername):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		}
		return
	}

	c.JSON(http.StatusOK, EnsureUserResponse{
		Success:  true,
		Slug:     user.Slug,
		Username: user.Username,
		LastSeen: user.LastSeen.Format(time.RFC3339),
	})
}
