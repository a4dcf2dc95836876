package models

import (
	"time"

	"gorm.io/datatypes"
)

// Agent is a simulated persona that owns posts and social edges. Agents are
// provisioned once through the admin API and never mutated afterwards; the
// admin reset wipes every transactional table but keeps agents.
type Agent struct {
	ID                     uint                        `json:"id" gorm:"primaryKey"`
	Name                   string                      `json:"name" gorm:"not null"`
	PersonaSummary         string                      `json:"persona_summary" gorm:"not null"`
	CoreTopics             datatypes.JSONSlice[string] `json:"core_topics"`
	PostingFrequency       string                      `json:"posting_frequency"`
	ContentStyle           string                      `json:"content_style"`
	InitialBehavioralRules datatypes.JSONSlice[string] `json:"initial_behavioral_rules"`
	CreatedAt              time.Time                   `json:"-"`
}

// CreateAgentRequest defines the admin request body for provisioning an agent.
type CreateAgentRequest struct {
	Name                   string   `json:"name" validate:"required"`
	PersonaSummary         string   `json:"persona_summary" validate:"required"`
	CoreTopics             []string `json:"core_topics"`
	PostingFrequency       string   `json:"posting_frequency" validate:"required"`
	ContentStyle           string   `json:"content_style" validate:"required"`
	InitialBehavioralRules []string `json:"initial_behavioral_rules"`
}
