package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConditional(t *testing.T) {
	p := UserProfile{
		MedicalConditions:  []string{ConditionDiabetes},
		DiabetesType:       "Type 1",
		PregnancyTrimester: "Second",
	}

	assert.True(t, p.HasCondition(ConditionDiabetes))
	assert.False(t, p.HasCondition(ConditionPregnancy))
	assert.Equal(t, "Type 1", p.Conditional(ConditionDiabetes, p.DiabetesType))
	assert.Equal(t, NotApplicable, p.Conditional(ConditionPregnancy, p.PregnancyTrimester))
}
