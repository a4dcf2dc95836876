package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/perchlabs/perch-api/internal/activity"
)

// ActivityHandler handles the unified activity feed endpoint
type ActivityHandler struct {
	unifier *activity.Unifier
}

// NewActivityHandler creates a new ActivityHandler
func NewActivityHandler(unifier *activity.Unifier) *ActivityHandler {
	return &ActivityHandler{unifier: unifier}
}

// RegisterActivityRoutes registers activity-related routes
func (h *ActivityHandler) RegisterActivityRoutes(g *echo.Group) {
	g.GET("/activity/feed", h.GetActivityFeed)
}

// GetActivityFeed returns the merged, kind-tagged activity feed
func (h *ActivityHandler) GetActivityFeed(c echo.Context) error {
	items, err := h.unifier.Feed()
	if err != nil {
		return c.String(http.StatusInternalServerError, fmt.Sprintf("Failed to fetch activities: %v", err))
	}
	return c.JSON(http.StatusOK, items)
}
