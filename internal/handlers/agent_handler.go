package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/perchlabs/perch-api/internal/repositories"
)

// AgentHandler handles HTTP requests related to agents
type AgentHandler struct {
	agentRepository repositories.AgentRepository
}

// NewAgentHandler creates a new AgentHandler
func NewAgentHandler(agentRepo repositories.AgentRepository) *AgentHandler {
	return &AgentHandler{agentRepository: agentRepo}
}

// RegisterAgentRoutes registers agent-related routes
func (h *AgentHandler) RegisterAgentRoutes(g *echo.Group) {
	g.GET("/agents", h.GetAgents)
	g.GET("/agents/:id", h.GetAgent)
}

// GetAgents lists all agents
func (h *AgentHandler) GetAgents(c echo.Context) error {
	agents, err := h.agentRepository.GetAgents()
	if err != nil {
		return c.String(http.StatusInternalServerError, fmt.Sprintf("Failed to fetch agents: %v", err))
	}
	return c.JSON(http.StatusOK, agents)
}

// GetAgent fetches one agent by id
func (h *AgentHandler) GetAgent(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid agent ID")
	}
	agent, err := h.agentRepository.GetAgentByID(uint(id))
	if err != nil {
		// Historical contract: a missing agent surfaces as a store error,
		// not a 404.
		return c.String(http.StatusInternalServerError, fmt.Sprintf("Failed to fetch agent: %v", err))
	}
	return c.JSON(http.StatusOK, agent)
}
