package api

import (
	"github.com/BerylCAtieno/docgen-agent/internal/export"
	"github.com/BerylCAtieno/docgen-agent/internal/session"
)

// ErrorBody is the standard error object.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

type SessionResponse struct {
	ID    string                             `json:"id"`
	Flows map[session.Flow]session.FlowState `json:"flows"`
}

type MealPlanResponse struct {
	Document   string           `json:"document"`
	Disclaimer string           `json:"disclaimer"`
	Download   *export.Download `json:"download"`
}

type AnalyzeResponse struct {
	Skills           []string `json:"skills"`
	DefaultSelection []string `json:"defaultSelection"`
}

type GenerateRequest struct {
	SelectedSkills []string `json:"selectedSkills"`
}

type DocumentResponse struct {
	Document string           `json:"document"`
	Download *export.Download `json:"download"`
}

type ExtractResponse struct {
	Text string `json:"text"`
}

// AgentCard advertises what the service can do.
type AgentCard struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Version     string       `json:"version"`
	Skills      []AgentSkill `json:"skills"`
}

type AgentSkill struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Endpoint    string `json:"endpoint"`
}
