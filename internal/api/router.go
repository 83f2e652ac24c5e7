package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Version is reported by the agent card.
const Version = "1.0.0"

var agentCard = AgentCard{
	Name:        "Document Generation Agent",
	Description: "Generates personalized meal plans and job-tailored resumes and cover letters, with PDF export.",
	Version:     Version,
	Skills: []AgentSkill{
		{
			ID:          "meal-plan",
			Name:        "Meal Plan",
			Description: "Creates a 7-day meal plan from a health and lifestyle profile.",
			Endpoint:    "/api/v1/sessions/{id}/meal-plan",
		},
		{
			ID:          "resume",
			Name:        "Tailored Resume",
			Description: "Extracts the key skills of a job description and rewrites a resume around the selected ones.",
			Endpoint:    "/api/v1/sessions/{id}/flows/resume/analyze",
		},
		{
			ID:          "cover-letter",
			Name:        "Tailored Cover Letter",
			Description: "Writes a cover letter addressed to a named recipient around the selected skills.",
			Endpoint:    "/api/v1/sessions/{id}/flows/cover-letter/analyze",
		},
	},
}

// NewRouter builds the engine with middleware and every route registered.
func NewRouter(h *Handler, log *slog.Logger) *gin.Engine {
	if log == nil {
		log = slog.Default()
	}

	r := gin.New()
	r.Use(
		RequestID(),
		Logging(log),
		Recovery(log),
	)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/.well-known/agent.json", func(c *gin.Context) {
		c.JSON(http.StatusOK, agentCard)
	})

	h.RegisterRoutes(r.Group("/api/v1"))
	return r
}
