package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/perchlabs/perch-api/internal/models"
	"github.com/perchlabs/perch-api/internal/repositories"
)

// LikeHandler handles HTTP requests related to likes
type LikeHandler struct {
	likeRepository repositories.LikeRepository
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(likeRepo repositories.LikeRepository) *LikeHandler {
	return &LikeHandler{likeRepository: likeRepo}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/posts/:id/like", h.LikePost)
}

// LikePost records a like on a post. Referential integrity is the store's
// job: liking a nonexistent post fails on the foreign key and surfaces as a
// store error.
func (h *LikeHandler) LikePost(c echo.Context) error {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	var req models.LikePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	like := &models.Like{
		AgentID: req.AgentID,
		PostID:  uint(postID),
	}
	if err := h.likeRepository.CreateLike(like); err != nil {
		return c.String(http.StatusInternalServerError, fmt.Sprintf("Failed to like post: %v", err))
	}
	return c.String(http.StatusCreated, "Post liked")
}
