package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BerylCAtieno/docgen-agent/internal/extract"
	"github.com/BerylCAtieno/docgen-agent/internal/generator"
	"github.com/BerylCAtieno/docgen-agent/internal/logger"
	"github.com/BerylCAtieno/docgen-agent/internal/session"
	"github.com/BerylCAtieno/docgen-agent/internal/skills"
	"github.com/BerylCAtieno/docgen-agent/internal/synth"
	"github.com/BerylCAtieno/docgen-agent/internal/workflow"
)

const (
	msgNoSkills   = "No skills could be identified in the job description. Please try again."
	msgGeneration = "The document could not be generated right now. Please try again."
)

func respondError(c *gin.Context, status int, code, message string, details any) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Error: ErrorBody{Code: code, Message: message, Details: details},
	})
}

func validationError(c *gin.Context, message string) {
	respondError(c, http.StatusBadRequest, "validation_error", message, nil)
}

// writeError maps a workflow error onto a status and error code. Generation
// failures keep their detail out of the response and in the log.
func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, session.ErrNotFound), errors.Is(err, workflow.ErrUnknownFlow):
		respondError(c, http.StatusNotFound, "not_found", err.Error(), nil)
	case errors.Is(err, synth.ErrMissingInput),
		errors.Is(err, skills.ErrEmptyInput),
		errors.Is(err, workflow.ErrTooFewSkills),
		errors.Is(err, workflow.ErrUnknownSkill),
		errors.Is(err, extract.ErrNoText):
		validationError(c, err.Error())
	case errors.Is(err, skills.ErrNoSkillsFound):
		respondError(c, http.StatusUnprocessableEntity, "no_skills_found", msgNoSkills, nil)
	case errors.Is(err, workflow.ErrInvalidState), errors.Is(err, workflow.ErrNoDocument):
		respondError(c, http.StatusConflict, "invalid_state", err.Error(), nil)
	case errors.Is(err, extract.ErrUnsupportedType):
		respondError(c, http.StatusUnsupportedMediaType, "unsupported_media_type", err.Error(), nil)
	case errors.Is(err, context.DeadlineExceeded):
		h.logGenerationError(c, err)
		respondError(c, http.StatusGatewayTimeout, "timeout", "The request took too long. Please try again.", nil)
	case generator.IsGenerationError(err):
		h.logGenerationError(c, err)
		respondError(c, http.StatusBadGateway, "generation_failed", msgGeneration, nil)
	default:
		h.log.Error("request failed", logger.RequestIDKey, RequestIDFromContext(c), "error", err)
		respondError(c, http.StatusInternalServerError, "internal", "Unexpected server error", nil)
	}
}

func (h *Handler) logGenerationError(c *gin.Context, err error) {
	attrs := []any{logger.RequestIDKey, RequestIDFromContext(c), "error", err}
	var genErr *generator.GenerationError
	if errors.As(err, &genErr) {
		attrs = append(attrs, "kind", genErr.Kind)
	}
	h.log.Error("generation failed", attrs...)
}
