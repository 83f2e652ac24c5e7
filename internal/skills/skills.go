// Package skills pulls a ranked skill list out of a job description.
package skills

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/BerylCAtieno/docgen-agent/internal/generator"
	"github.com/BerylCAtieno/docgen-agent/internal/models"
	"github.com/BerylCAtieno/docgen-agent/internal/prompts"
)

var (
	ErrEmptyInput    = errors.New("job description is empty")
	ErrNoSkillsFound = errors.New("no skills found in response")
)

// numbered matches "<int>. <text>" once the line is trimmed.
var numbered = regexp.MustCompile(`^\d+\.\s*(.+)$`)

// Extractor pulls ranked skills out of job descriptions.
type Extractor struct {
	gen generator.Generator
}

// NewExtractor returns an Extractor backed by gen.
func NewExtractor(gen generator.Generator) *Extractor {
	return &Extractor{gen: gen}
}

// Extract asks the generator for the top skills of jobDescription and returns
// them in response order, at most models.MaxSkills. The order is the model's
// ranking; it is not checked independently.
func (e *Extractor) Extract(ctx context.Context, jobDescription string) ([]string, error) {
	jd := strings.TrimSpace(jobDescription)
	if jd == "" {
		return nil, ErrEmptyInput
	}

	text, err := e.gen.Generate(ctx, prompts.SkillExtraction(jd))
	if err != nil {
		return nil, fmt.Errorf("extract skills: %w", err)
	}

	found := Parse(text, models.MaxSkills)
	if len(found) == 0 {
		return nil, ErrNoSkillsFound
	}
	return found, nil
}

// Parse collects up to limit numbered-list items from text. Lines that are not
// numbered items are skipped.
func Parse(text string, limit int) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if len(out) >= limit {
			break
		}
		m := numbered.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		if skill := strings.TrimSpace(m[1]); skill != "" {
			out = append(out, skill)
		}
	}
	return out
}
