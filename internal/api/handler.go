package api

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BerylCAtieno/docgen-agent/internal/export"
	"github.com/BerylCAtieno/docgen-agent/internal/extract"
	"github.com/BerylCAtieno/docgen-agent/internal/logger"
	"github.com/BerylCAtieno/docgen-agent/internal/models"
	"github.com/BerylCAtieno/docgen-agent/internal/session"
	"github.com/BerylCAtieno/docgen-agent/internal/synth"
	"github.com/BerylCAtieno/docgen-agent/internal/workflow"
)

// Handler serves the form UI. Session state is only reached through the workflow.
type Handler struct {
	store          *session.Store
	workflow       *workflow.Workflow
	maxUploadBytes int64
	log            *slog.Logger
}

func NewHandler(store *session.Store, wf *workflow.Workflow, maxUploadBytes int64, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{
		store:          store,
		workflow:       wf,
		maxUploadBytes: maxUploadBytes,
		log:            log.With("component", "api"),
	}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/sessions", h.CreateSession)
	rg.GET("/sessions/:id", h.GetSession)
	rg.DELETE("/sessions/:id", h.DeleteSession)

	rg.POST("/sessions/:id/meal-plan", h.SubmitProfile)
	rg.POST("/sessions/:id/flows/:flow/analyze", h.Analyze)
	rg.POST("/sessions/:id/flows/:flow/generate", h.Generate)
	rg.GET("/sessions/:id/flows/:flow/document.pdf", h.DownloadDocument)

	rg.POST("/extract", h.ExtractText)
}

func (h *Handler) CreateSession(c *gin.Context) {
	sess := h.store.Create()
	h.log.Info("session created", "session_id", sess.ID, "active", h.store.Len())
	c.JSON(http.StatusCreated, SessionResponse{ID: sess.ID, Flows: h.workflow.Snapshot(sess)})
}

func (h *Handler) GetSession(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, SessionResponse{ID: sess.ID, Flows: h.workflow.Snapshot(sess)})
}

func (h *Handler) DeleteSession(c *gin.Context) {
	if err := h.store.Delete(c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SubmitProfile generates the meal plan for the posted profile.
func (h *Handler) SubmitProfile(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	c.Set(flowKey, string(session.FlowMealPlan))

	var profile models.UserProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		validationError(c, "invalid profile: "+err.Error())
		return
	}

	plan, err := h.workflow.SubmitProfile(c.Request.Context(), sess, profile)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.Set(stateKey, string(session.StateDocumentGenerated))

	c.JSON(http.StatusOK, MealPlanResponse{
		Document:   plan,
		Disclaimer: synth.Disclaimer,
		Download:   h.download(c, plan, session.FlowMealPlan),
	})
}

func (h *Handler) Analyze(c *gin.Context) {
	sess, flow, ok := h.sessionFlow(c)
	if !ok {
		return
	}

	var job models.JobContext
	if err := c.ShouldBindJSON(&job); err != nil {
		validationError(c, "invalid request body: "+err.Error())
		return
	}

	found, err := h.workflow.Analyze(c.Request.Context(), sess, flow, job)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.Set(stateKey, string(session.StateSkillsExtracted))

	c.JSON(http.StatusOK, AnalyzeResponse{
		Skills:           found,
		DefaultSelection: workflow.DefaultSelection(found),
	})
}

func (h *Handler) Generate(c *gin.Context) {
	sess, flow, ok := h.sessionFlow(c)
	if !ok {
		return
	}

	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, "invalid request body: "+err.Error())
		return
	}

	doc, err := h.workflow.Generate(c.Request.Context(), sess, flow, req.SelectedSkills)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.Set(stateKey, string(session.StateDocumentGenerated))

	c.JSON(http.StatusOK, DocumentResponse{
		Document: doc,
		Download: h.download(c, doc, flow),
	})
}

// DownloadDocument streams the flow's current document as a PDF attachment.
func (h *Handler) DownloadDocument(c *gin.Context) {
	sess, flow, ok := h.sessionFlow(c)
	if !ok {
		return
	}

	out, err := h.workflow.Export(sess, flow)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, out.Filename))
	c.Data(http.StatusOK, "application/pdf", out.PDF)
}

// ExtractText returns the text of an uploaded resume or job posting.
func (h *Handler) ExtractText(c *gin.Context) {
	if h.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	}

	fh, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(c, http.StatusRequestEntityTooLarge, "payload_too_large",
				fmt.Sprintf("file exceeds %d bytes", h.maxUploadBytes), nil)
			return
		}
		validationError(c, "file is required")
		return
	}

	f, err := fh.Open()
	if err != nil {
		h.writeError(c, err)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		h.writeError(c, err)
		return
	}

	text, err := extract.Text(c.Request.Context(), data, fh.Header.Get("Content-Type"), fh.Filename)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ExtractResponse{Text: text})
}

// download renders text for the flow. A failed export leaves the document
// usable on screen, so the link is dropped rather than failing the request.
func (h *Handler) download(c *gin.Context, text string, flow session.Flow) *export.Download {
	out, err := workflow.Render(text, flow)
	if err != nil {
		h.log.Warn("export failed",
			logger.RequestIDKey, RequestIDFromContext(c),
			"flow", flow,
			"error", err,
		)
		return nil
	}
	return out.Download
}

func (h *Handler) session(c *gin.Context) (*session.Session, bool) {
	sess, err := h.store.Get(c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return nil, false
	}
	return sess, true
}

func (h *Handler) sessionFlow(c *gin.Context) (*session.Session, session.Flow, bool) {
	sess, ok := h.session(c)
	if !ok {
		return nil, "", false
	}
	flow := session.Flow(c.Param("flow"))
	if !flow.Valid() {
		h.writeError(c, fmt.Errorf("%w: %q", workflow.ErrUnknownFlow, flow))
		return nil, "", false
	}
	c.Set(flowKey, string(flow))
	return sess, flow, true
}
