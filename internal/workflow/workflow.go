// Package workflow drives the collect → analyze → select → generate → export
// steps of each flow. It is the only writer of session state, and it commits
// state only after a step succeeds.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/BerylCAtieno/docgen-agent/internal/models"
	"github.com/BerylCAtieno/docgen-agent/internal/session"
	"github.com/BerylCAtieno/docgen-agent/internal/skills"
	"github.com/BerylCAtieno/docgen-agent/internal/synth"
)

var (
	ErrUnknownFlow  = errors.New("unknown flow")
	ErrInvalidState = errors.New("action not allowed in current state")
	ErrTooFewSkills = fmt.Errorf("select at least %d skills", models.MinSelectedSkills)
	ErrUnknownSkill = errors.New("selected skill was not extracted")
	ErrNoDocument   = errors.New("no generated document")
)

// Workflow drives the per-flow steps of a session.
type Workflow struct {
	extractor *skills.Extractor
	synth     *synth.Synthesizer
	log       *slog.Logger
}

// New returns a Workflow. A nil log uses slog.Default.
func New(extractor *skills.Extractor, synthesizer *synth.Synthesizer, log *slog.Logger) *Workflow {
	if log == nil {
		log = slog.Default()
	}
	return &Workflow{
		extractor: extractor,
		synth:     synthesizer,
		log:       log.With("component", "workflow"),
	}
}

// SubmitProfile generates a meal plan. The meal-plan flow has no skill step.
func (w *Workflow) SubmitProfile(ctx context.Context, sess *session.Session, profile models.UserProfile) (string, error) {
	sess.Lock()
	defer sess.Unlock()

	plan, err := w.synth.MealPlan(ctx, profile)
	if err != nil {
		return "", err
	}

	w.commit(sess, session.FlowMealPlan, session.FlowState{
		State:    session.StateDocumentGenerated,
		Document: plan,
	})
	return plan, nil
}

// Analyze extracts the ranked skills of job.JobDescription. Any previous
// skills, selection and document of the flow are discarded first, so a
// failed extraction leaves the flow idle.
func (w *Workflow) Analyze(ctx context.Context, sess *session.Session, flow session.Flow, job models.JobContext) ([]string, error) {
	if err := validateJob(flow, job); err != nil {
		return nil, err
	}

	sess.Lock()
	defer sess.Unlock()

	w.commit(sess, flow, session.FlowState{State: session.StateIdle})

	found, err := w.extractor.Extract(ctx, job.JobDescription)
	if err != nil {
		return nil, err
	}

	w.commit(sess, flow, session.FlowState{
		State:  session.StateSkillsExtracted,
		Job:    job,
		Skills: found,
	})
	return slices.Clone(found), nil
}

// Generate writes the tailored document of a resume or cover-letter flow from
// the selected skills. Selection is kept in rank order.
func (w *Workflow) Generate(ctx context.Context, sess *session.Session, flow session.Flow, selected []string) (string, error) {
	if flow != session.FlowResume && flow != session.FlowCoverLetter {
		return "", fmt.Errorf("%w: %q", ErrUnknownFlow, flow)
	}

	sess.Lock()
	defer sess.Unlock()

	fs := sess.Flow(flow)
	if fs.State != session.StateSkillsExtracted && fs.State != session.StateDocumentGenerated {
		return "", fmt.Errorf("%w: %s is %s", ErrInvalidState, flow, fs.State)
	}

	chosen, err := selectSkills(fs.Skills, selected)
	if err != nil {
		return "", err
	}

	var doc string
	switch flow {
	case session.FlowResume:
		doc, err = w.synth.Resume(ctx, fs.Job.ResumeText, fs.Job.JobDescription, chosen)
	case session.FlowCoverLetter:
		doc, err = w.synth.CoverLetter(ctx, fs.Job.ResumeText, fs.Job.JobDescription, chosen,
			fs.Job.CompanyName, fs.Job.RecipientName)
	}
	if err != nil {
		return "", err
	}

	fs.State = session.StateDocumentGenerated
	fs.Selected = chosen
	fs.Document = doc
	w.commit(sess, flow, fs)
	return doc, nil
}

// Snapshot returns a copy of every flow's state.
func (w *Workflow) Snapshot(sess *session.Session) map[session.Flow]session.FlowState {
	sess.Lock()
	defer sess.Unlock()
	return sess.Snapshot()
}

// DefaultSelection is the pre-checked subset offered after analysis.
func DefaultSelection(found []string) []string {
	n := min(len(found), models.DefaultSelectedSkills)
	return slices.Clone(found[:n])
}

func (w *Workflow) commit(sess *session.Session, flow session.Flow, next session.FlowState) {
	prev := sess.Flow(flow).State
	sess.Set(flow, next)
	if prev != next.State {
		w.log.Info("flow transition", "session_id", sess.ID, "flow", flow, "from", prev, "to", next.State)
	}
}

func validateJob(flow session.Flow, job models.JobContext) error {
	required := map[string]string{
		"resume text":     job.ResumeText,
		"job description": job.JobDescription,
	}
	switch flow {
	case session.FlowResume:
	case session.FlowCoverLetter:
		required["company name"] = job.CompanyName
		required["recipient name"] = job.RecipientName
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFlow, flow)
	}

	var missing []string
	for name, v := range required {
		if strings.TrimSpace(v) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		return fmt.Errorf("%w: %s", synth.ErrMissingInput, strings.Join(missing, ", "))
	}
	return nil
}

// selectSkills checks selected against the extracted list and returns the
// distinct picks in rank order.
func selectSkills(extracted, selected []string) ([]string, error) {
	picked := make(map[string]bool, len(selected))
	for _, s := range selected {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if !slices.Contains(extracted, s) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSkill, s)
		}
		picked[s] = true
	}
	if len(picked) < models.MinSelectedSkills {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewSkills, len(picked))
	}

	out := make([]string, 0, len(picked))
	for _, s := range extracted {
		if picked[s] {
			out = append(out, s)
		}
	}
	return out, nil
}
