package workflow

import (
	"fmt"

	"github.com/BerylCAtieno/docgen-agent/internal/export"
	"github.com/BerylCAtieno/docgen-agent/internal/session"
)

// Exported is a rendered document ready to stream or embed.
type Exported struct {
	Filename string
	PDF      []byte
	Download *export.Download
}

var exportTargets = map[session.Flow]struct {
	filename string
	layout   export.Layout
}{
	session.FlowMealPlan:    {export.MealPlanFile, export.MealPlanLayout},
	session.FlowResume:      {export.ResumeFile, export.TailoredLayout},
	session.FlowCoverLetter: {export.CoverLetterFile, export.TailoredLayout},
}

// Export renders the flow's current document.
func (w *Workflow) Export(sess *session.Session, flow session.Flow) (*Exported, error) {
	if _, ok := exportTargets[flow]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFlow, flow)
	}

	sess.Lock()
	fs := sess.Flow(flow)
	sess.Unlock()

	if fs.State != session.StateDocumentGenerated || fs.Document == "" {
		return nil, fmt.Errorf("%w: %s", ErrNoDocument, flow)
	}

	return Render(fs.Document, flow)
}

// Render exports text as the document of flow.
func Render(text string, flow session.Flow) (*Exported, error) {
	target, ok := exportTargets[flow]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFlow, flow)
	}
	pdf, err := export.Render(text, target.layout)
	if err != nil {
		return nil, err
	}
	dl, err := export.NewDownload(pdf, target.filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", export.ErrExportFailure, err)
	}
	return &Exported{Filename: target.filename, PDF: pdf, Download: dl}, nil
}
