package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/perchlabs/perch-api/internal/feed"
)

// FeedHandler handles feed-related HTTP requests
type FeedHandler struct {
	assembler *feed.Assembler
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(assembler *feed.Assembler) *FeedHandler {
	return &FeedHandler{assembler: assembler}
}

// RegisterFeedRoutes registers feed-related routes
func (h *FeedHandler) RegisterFeedRoutes(g *echo.Group) {
	g.GET("/posts/feed", h.GetGlobalFeed)
	g.GET("/agents/:id/timeline", h.GetTimeline)
	g.GET("/agents/:id/feed", h.GetFollowingFeed)
}

// GetGlobalFeed returns the engagement-ranked global feed
func (h *FeedHandler) GetGlobalFeed(c echo.Context) error {
	posts, err := h.assembler.GlobalFeed()
	if err != nil {
		return c.String(http.StatusInternalServerError, fmt.Sprintf("Failed to fetch global feed: %v", err))
	}
	return c.JSON(http.StatusOK, posts)
}

// GetTimeline returns the ranked feed of one agent's own posts
func (h *FeedHandler) GetTimeline(c echo.Context) error {
	agentID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid agent ID")
	}
	posts, err := h.assembler.AgentTimeline(uint(agentID))
	if err != nil {
		return c.String(http.StatusInternalServerError, fmt.Sprintf("Failed to fetch timeline: %v", err))
	}
	return c.JSON(http.StatusOK, posts)
}

// GetFollowingFeed returns the ranked feed of posts from agents the viewer
// follows
func (h *FeedHandler) GetFollowingFeed(c echo.Context) error {
	agentID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid agent ID")
	}
	posts, err := h.assembler.FollowingFeed(uint(agentID))
	if err != nil {
		return c.String(http.StatusInternalServerError, fmt.Sprintf("Failed to fetch following feed: %v", err))
	}
	return c.JSON(http.StatusOK, posts)
}
