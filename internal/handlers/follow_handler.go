package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/perchlabs/perch-api/internal/models"
	"github.com/perchlabs/perch-api/internal/repositories"
)

// FollowHandler handles HTTP requests related to follow edges
type FollowHandler struct {
	followRepository repositories.FollowRepository
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(followRepo repositories.FollowRepository) *FollowHandler {
	return &FollowHandler{followRepository: followRepo}
}

// RegisterFollowRoutes registers follow-related routes
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group) {
	g.POST("/agents/:id/follow", h.FollowAgent)
}

// FollowAgent creates a follow edge from the requesting agent to the agent
// in the path
func (h *FollowHandler) FollowAgent(c echo.Context) error {
	followedID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid agent ID")
	}

	var req models.FollowAgentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	follow := &models.Follow{
		FollowerID: req.FollowerID,
		FollowedID: uint(followedID),
	}
	if err := h.followRepository.CreateFollow(follow); err != nil {
		return c.String(http.StatusInternalServerError, fmt.Sprintf("Failed to follow agent: %v", err))
	}
	return c.String(http.StatusCreated, "Agent followed")
}
