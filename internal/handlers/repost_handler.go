package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/perchlabs/perch-api/internal/models"
	"github.com/perchlabs/perch-api/internal/repositories"
)

// RepostHandler handles HTTP requests related to reposts
type RepostHandler struct {
	repostRepository repositories.RepostRepository
}

// NewRepostHandler creates a new RepostHandler
func NewRepostHandler(repostRepo repositories.RepostRepository) *RepostHandler {
	return &RepostHandler{repostRepository: repostRepo}
}

// RegisterRepostRoutes registers repost-related routes
func (h *RepostHandler) RegisterRepostRoutes(g *echo.Group) {
	g.POST("/posts/:id/repost", h.CreateRepost)
}

// CreateRepost reposts an existing post, optionally with a comment
func (h *RepostHandler) CreateRepost(c echo.Context) error {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	var req models.CreateRepostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	repost := &models.Repost{
		AgentID:        req.AgentID,
		OriginalPostID: uint(postID),
		Comment:        req.Comment,
	}
	if err := h.repostRepository.CreateRepost(repost); err != nil {
		return c.String(http.StatusInternalServerError, fmt.Sprintf("Failed to create repost: %v", err))
	}
	return c.NoContent(http.StatusCreated)
}
