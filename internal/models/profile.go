package models

// Medical conditions that unlock extra profile questions.
const (
	ConditionDiabetes          = "Diabetes"
	ConditionHighBloodPressure = "High Blood Pressure"
	ConditionHighCholesterol   = "High Cholesterol"
	ConditionPregnancy         = "Pregnancy"
	ConditionBreastfeeding     = "Breastfeeding"
)

// NotApplicable is used for conditional answers whose condition was not selected.
const NotApplicable = "N/A"

// UserProfile is the nutrition form snapshot taken when the user submits it.
type UserProfile struct {
	Age           int    `json:"age"`
	Gender        string `json:"gender"`
	HeightCM      int    `json:"heightCm"`
	WeightKG      int    `json:"weightKg"`
	ActivityLevel string `json:"activityLevel"`
	PrimaryGoal   string `json:"primaryGoal"`

	DietaryRestrictions []string `json:"dietaryRestrictions"`
	FoodPreferences     string   `json:"foodPreferences"`
	MealFrequency       string   `json:"mealFrequency"`
	SnackingHabits      string   `json:"snackingHabits"`
	TimeConstraints     []string `json:"timeConstraints"`

	KnownAllergies    string   `json:"knownAllergies"`
	MedicalConditions []string `json:"medicalConditions"`

	// Only meaningful when the matching condition is listed in MedicalConditions.
	DiabetesType                string `json:"diabetesType,omitempty"`
	TakingInsulin               string `json:"takingInsulin,omitempty"`
	TakingMedicationBP          string `json:"takingMedicationBp,omitempty"`
	TakingMedicationCholesterol string `json:"takingMedicationCholesterol,omitempty"`
	PregnancyTrimester          string `json:"pregnancyTrimester,omitempty"`
	BreastfeedingDuration       string `json:"breastfeedingDuration,omitempty"`

	CurrentMedications string   `json:"currentMedications"`
	MealPrepTime       string   `json:"mealPrepTime"`
	CookingSkill       string   `json:"cookingSkill"`
	KitchenEquipment   []string `json:"kitchenEquipment"`
	PantryStaples      string   `json:"pantryStaples"`
}

// HasCondition reports whether the profile lists the given medical condition.
func (p UserProfile) HasCondition(condition string) bool {
	for _, c := range p.MedicalConditions {
		if c == condition {
			return true
		}
	}
	return false
}

// Conditional returns value when condition is selected, otherwise NotApplicable.
func (p UserProfile) Conditional(condition, value string) string {
	if !p.HasCondition(condition) {
		return NotApplicable
	}
	return value
}
