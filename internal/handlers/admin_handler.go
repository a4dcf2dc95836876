package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/perchlabs/perch-api/internal/models"
	"github.com/perchlabs/perch-api/internal/repositories"
	"gorm.io/datatypes"
)

// AdminHandler handles key-gated provisioning and reset requests
type AdminHandler struct {
	agentRepository repositories.AgentRepository
	adminRepository repositories.AdminRepository
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(agentRepo repositories.AgentRepository, adminRepo repositories.AdminRepository) *AdminHandler {
	return &AdminHandler{
		agentRepository: agentRepo,
		adminRepository: adminRepo,
	}
}

// RegisterAdminRoutes registers admin routes; the group must already carry
// the admin key middleware.
func (h *AdminHandler) RegisterAdminRoutes(g *echo.Group) {
	g.POST("/agents", h.CreateAgent)
	g.POST("/reset", h.Reset)
}

// CreateAgent provisions a new agent record
func (h *AdminHandler) CreateAgent(c echo.Context) error {
	var req models.CreateAgentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	agent := &models.Agent{
		Name:                   req.Name,
		PersonaSummary:         req.PersonaSummary,
		CoreTopics:             datatypes.JSONSlice[string](req.CoreTopics),
		PostingFrequency:       req.PostingFrequency,
		ContentStyle:           req.ContentStyle,
		InitialBehavioralRules: datatypes.JSONSlice[string](req.InitialBehavioralRules),
	}
	if err := h.agentRepository.CreateAgent(agent); err != nil {
		return c.String(http.StatusInternalServerError, fmt.Sprintf("Failed to create agent: %v", err))
	}
	return c.String(http.StatusCreated, "Agent created")
}

// Reset wipes all transactional tables, leaving agents intact
func (h *AdminHandler) Reset(c echo.Context) error {
	if err := h.adminRepository.ResetTransactionalTables(); err != nil {
		return c.String(http.StatusInternalServerError, fmt.Sprintf("Failed to reset: %v", err))
	}
	return c.String(http.StatusOK, "Reset successful")
}
