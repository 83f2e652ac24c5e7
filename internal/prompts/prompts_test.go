package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BerylCAtieno/docgen-agent/internal/models"
)

func TestMealPlanContainsGoalAndRestrictions(t *testing.T) {
	p := models.UserProfile{
		Age:                 30,
		PrimaryGoal:         "Weight Loss",
		DietaryRestrictions: []string{"Vegetarian"},
	}

	got, err := Build(KindMealPlan, p)
	require.NoError(t, err)

	assert.Contains(t, got, "Weight Loss")
	assert.Contains(t, got, "Vegetarian")
	assert.Contains(t, got, "- Age: 30\n")
}

func TestMealPlanConditionalFields(t *testing.T) {
	p := models.UserProfile{
		MedicalConditions: []string{models.ConditionDiabetes},
		DiabetesType:      "Type 2",
		TakingInsulin:     "No",
		// Set without selecting Pregnancy: must not leak into the prompt.
		PregnancyTrimester: "Second",
	}

	got := MealPlan(p)

	assert.Contains(t, got, "- Diabetes Type: Type 2\n")
	assert.Contains(t, got, "- Taking Insulin: No\n")
	assert.Contains(t, got, "- Pregnancy Trimester: N/A\n")
	assert.Contains(t, got, "- Breastfeeding Duration: N/A\n")
	assert.Contains(t, got, "- Taking Medication for High Blood Pressure: N/A\n")
}

func TestMealPlanTrimsAndKeepsEmptyFields(t *testing.T) {
	p := models.UserProfile{FoodPreferences: "  love pasta \n", KnownAllergies: "   "}

	got := MealPlan(p)

	assert.Contains(t, got, "- Food Preferences/Dislikes: love pasta\n")
	assert.Contains(t, got, "- Known Allergies: \n")
	assert.Contains(t, got, "- Dietary Restrictions: []\n")
}

func TestMealPlanIsDeterministic(t *testing.T) {
	p := models.UserProfile{Age: 41, Gender: "Female", KitchenEquipment: []string{"Oven", "Blender"}}
	assert.Equal(t, MealPlan(p), MealPlan(p))
	assert.Contains(t, MealPlan(p), "- Kitchen Equipment: [Oven, Blender]\n")
}

func TestSkillExtractionPrompt(t *testing.T) {
	got := SkillExtraction("\n  Senior Go engineer, Kubernetes  \n")

	assert.Contains(t, got, "exactly the top 10 most critical skills")
	assert.Contains(t, got, "numbered list (1-10) without additional commentary")
	assert.True(t, strings.HasSuffix(got, "Job Description:\nSenior Go engineer, Kubernetes\n"))
}

func TestResumePromptSectionsInOrder(t *testing.T) {
	got := Resume(ResumeInput{
		ResumeText:     " my resume ",
		JobDescription: "the job",
		Skills:         []string{"Go", " SQL ", "", "Docker"},
	})

	assert.Contains(t, got, "emphasizing these 3 key skills:\nGo, SQL, Docker\n")
	assert.Contains(t, got, "Original Resume:\nmy resume\n")
	assert.Contains(t, got, "metrics (%, $, numbers)")

	sections := []string{"[Professional Summary]", "[Key Skills]", "[Professional Experience]", "[Education]", "[Optional Sections]"}
	last := -1
	for _, s := range sections {
		idx := strings.Index(got, s)
		require.NotEqual(t, -1, idx, "missing section %s", s)
		assert.Greater(t, idx, last, "section %s out of order", s)
		last = idx
	}
}

func TestCoverLetterPrompt(t *testing.T) {
	got := CoverLetter(CoverLetterInput{
		ResumeText:     "resume",
		JobDescription: "jd",
		Skills:         []string{"Go", "SQL", "Docker"},
		CompanyName:    " Acme ",
		RecipientName:  "Jane Doe",
	})

	assert.Contains(t, got, "Company Name:\nAcme\n")
	assert.Contains(t, got, "Recipient Name:\nJane Doe\n")
	intro := strings.Index(got, "[Introduction]")
	body := strings.Index(got, "[Body]")
	concl := strings.Index(got, "[Conclusion]")
	assert.True(t, intro < body && body < concl)
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		data any
		want error
	}{
		{name: "unknown kind", kind: "poem", data: "x", want: ErrUnknownKind},
		{name: "meal plan wrong type", kind: KindMealPlan, data: "x", want: ErrWrongInput},
		{name: "skills wrong type", kind: KindSkillExtraction, data: 42, want: ErrWrongInput},
		{name: "resume wrong type", kind: KindResume, data: CoverLetterInput{}, want: ErrWrongInput},
		{name: "cover letter wrong type", kind: KindCoverLetter, data: ResumeInput{}, want: ErrWrongInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.kind, tt.data)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
