// Package prompts builds the natural-language instructions sent to the
// generation service. Every builder is pure: identical input gives an
// identical prompt.
package prompts

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BerylCAtieno/docgen-agent/internal/models"
)

// Kind selects one of the prompt templates.
type Kind string

const (
	KindMealPlan        Kind = "meal-plan"
	KindSkillExtraction Kind = "skill-extraction"
	KindResume          Kind = "resume"
	KindCoverLetter     Kind = "cover-letter"
)

var (
	ErrUnknownKind = errors.New("unknown prompt kind")
	ErrWrongInput  = errors.New("input does not match prompt kind")
)

// ResumeInput is the data interpolated into the resume-tailoring prompt.
type ResumeInput struct {
	ResumeText     string
	JobDescription string
	Skills         []string
}

// CoverLetterInput is the data interpolated into the cover-letter prompt.
type CoverLetterInput struct {
	ResumeText     string
	JobDescription string
	Skills         []string
	CompanyName    string
	RecipientName  string
}

// Build dispatches to the template for kind. data must be the matching type:
// models.UserProfile, string, ResumeInput or CoverLetterInput.
func Build(kind Kind, data any) (string, error) {
	switch kind {
	case KindMealPlan:
		p, ok := data.(models.UserProfile)
		if !ok {
			return "", fmt.Errorf("%w: %s wants models.UserProfile, got %T", ErrWrongInput, kind, data)
		}
		return MealPlan(p), nil
	case KindSkillExtraction:
		jd, ok := data.(string)
		if !ok {
			return "", fmt.Errorf("%w: %s wants string, got %T", ErrWrongInput, kind, data)
		}
		return SkillExtraction(jd), nil
	case KindResume:
		in, ok := data.(ResumeInput)
		if !ok {
			return "", fmt.Errorf("%w: %s wants ResumeInput, got %T", ErrWrongInput, kind, data)
		}
		return Resume(in), nil
	case KindCoverLetter:
		in, ok := data.(CoverLetterInput)
		if !ok {
			return "", fmt.Errorf("%w: %s wants CoverLetterInput, got %T", ErrWrongInput, kind, data)
		}
		return CoverLetter(in), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// clean trims free text. Empty input stays as the empty placeholder so the
// template keeps its shape.
func clean(s string) string {
	return strings.TrimSpace(s)
}

func list(items []string) string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if it = clean(it); it != "" {
			out = append(out, it)
		}
	}
	return "[" + strings.Join(out, ", ") + "]"
}
