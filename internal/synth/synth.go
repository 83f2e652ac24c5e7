// Package synth produces the tailored resume, cover letter and meal plan
// text through the generator. It does not judge the generated content.
package synth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/BerylCAtieno/docgen-agent/internal/generator"
	"github.com/BerylCAtieno/docgen-agent/internal/models"
	"github.com/BerylCAtieno/docgen-agent/internal/prompts"
)

var ErrMissingInput = errors.New("missing required input")

// Disclaimer accompanies every generated meal plan.
const Disclaimer = "The information provided by this nutrition agent is intended for general knowledge and " +
	"informational purposes only, and does not constitute medical advice. It is essential to consult with a " +
	"qualified healthcare professional or registered dietitian for any health concerns or before making any " +
	"decisions related to your health or treatment. The generated meal plans are not a substitute for " +
	"professional medical or dietary advice. If you have specific health conditions, allergies, or are taking " +
	"medications, please consult with your doctor or a registered dietitian to ensure the meal plan is " +
	"appropriate for you. If you have diabetes, high blood pressure, high cholesterol, are pregnant, or are " +
	"breastfeeding, it is especially important to consult with your doctor or a registered dietitian before " +
	"making any dietary changes."

// Synthesizer writes the generated documents.
type Synthesizer struct {
	gen generator.Generator
}

// New returns a Synthesizer backed by gen.
func New(gen generator.Generator) *Synthesizer {
	return &Synthesizer{gen: gen}
}

// Resume rewrites resumeText for jobDescription, emphasizing selected skills.
func (s *Synthesizer) Resume(ctx context.Context, resumeText, jobDescription string, selected []string) (string, error) {
	if err := checkRequired(
		field{"resume text", resumeText},
		field{"job description", jobDescription},
		field{"selected skills", strings.Join(selected, "")},
	); err != nil {
		return "", err
	}

	prompt := prompts.Resume(prompts.ResumeInput{
		ResumeText:     resumeText,
		JobDescription: jobDescription,
		Skills:         selected,
	})
	return s.generate(ctx, "resume", prompt)
}

// CoverLetter writes a cover letter addressed to recipientName at companyName.
func (s *Synthesizer) CoverLetter(ctx context.Context, resumeText, jobDescription string, selected []string, companyName, recipientName string) (string, error) {
	if err := checkRequired(
		field{"resume text", resumeText},
		field{"job description", jobDescription},
		field{"selected skills", strings.Join(selected, "")},
		field{"company name", companyName},
		field{"recipient name", recipientName},
	); err != nil {
		return "", err
	}

	prompt := prompts.CoverLetter(prompts.CoverLetterInput{
		ResumeText:     resumeText,
		JobDescription: jobDescription,
		Skills:         selected,
		CompanyName:    companyName,
		RecipientName:  recipientName,
	})
	return s.generate(ctx, "cover letter", prompt)
}

// MealPlan builds a one-week plan for the profile.
func (s *Synthesizer) MealPlan(ctx context.Context, profile models.UserProfile) (string, error) {
	return s.generate(ctx, "meal plan", prompts.MealPlan(profile))
}

func (s *Synthesizer) generate(ctx context.Context, what, prompt string) (string, error) {
	text, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("generate %s: %w", what, err)
	}
	return text, nil
}

type field struct {
	name  string
	value string
}

func checkRequired(fields ...field) error {
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s", ErrMissingInput, f.name)
		}
	}
	return nil
}
