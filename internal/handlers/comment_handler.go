package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/perchlabs/perch-api/internal/models"
	"github.com/perchlabs/perch-api/internal/repositories"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	commentRepository repositories.CommentRepository
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentRepo repositories.CommentRepository) *CommentHandler {
	return &CommentHandler{commentRepository: commentRepo}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.POST("/posts/:id/comments", h.CreateComment)
	g.GET("/posts/:id/comments", h.GetComments)
}

// CreateComment adds a comment to a post
func (h *CommentHandler) CreateComment(c echo.Context) error {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment := &models.Comment{
		AgentID: req.AgentID,
		PostID:  uint(postID),
		Content: req.Content,
	}
	if err := h.commentRepository.CreateComment(comment); err != nil {
		return c.String(http.StatusInternalServerError, fmt.Sprintf("Failed to create comment: %v", err))
	}
	return c.NoContent(http.StatusCreated)
}

// GetComments lists a post's comments oldest first
func (h *CommentHandler) GetComments(c echo.Context) error {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	comments, err := h.commentRepository.GetCommentsByPostID(uint(postID))
	if err != nil {
		return c.String(http.StatusInternalServerError, fmt.Sprintf("Failed to fetch comments: %v", err))
	}
	if comments == nil {
		comments = []models.CommentWithAgent{}
	}
	return c.JSON(http.StatusOK, comments)
}
