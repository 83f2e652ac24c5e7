package prompts

import (
	"fmt"
	"strings"

	"github.com/BerylCAtieno/docgen-agent/internal/models"
)

// MealPlan builds the one-week, day-by-day meal-plan prompt. Every profile
// field is embedded; conditional medical answers become "N/A" when their
// condition was not selected.
func MealPlan(p models.UserProfile) string {
	var b strings.Builder
	b.WriteString("You are a world-class nutritionist, and your task is to create a personalized one-week meal plan for a client.\n\n")
	b.WriteString("Client Information:\n")

	field := func(label, value string) {
		fmt.Fprintf(&b, "- %s: %s\n", label, value)
	}
	field("Age", fmt.Sprint(p.Age))
	field("Gender", clean(p.Gender))
	field("Height", fmt.Sprintf("%d cm", p.HeightCM))
	field("Weight", fmt.Sprintf("%d kg", p.WeightKG))
	field("Activity Level", clean(p.ActivityLevel))
	field("Primary Goal", clean(p.PrimaryGoal))
	field("Dietary Restrictions", list(p.DietaryRestrictions))
	field("Food Preferences/Dislikes", clean(p.FoodPreferences))
	field("Meal Frequency", clean(p.MealFrequency))
	field("Snacking Habits", clean(p.SnackingHabits))
	field("Time Constraints", list(p.TimeConstraints))
	field("Known Allergies", clean(p.KnownAllergies))
	field("Medical Conditions", list(p.MedicalConditions))
	field("Diabetes Type", p.Conditional(models.ConditionDiabetes, clean(p.DiabetesType)))
	field("Taking Insulin", p.Conditional(models.ConditionDiabetes, clean(p.TakingInsulin)))
	field("Taking Medication for High Blood Pressure", p.Conditional(models.ConditionHighBloodPressure, clean(p.TakingMedicationBP)))
	field("Taking Medication for High Cholesterol", p.Conditional(models.ConditionHighCholesterol, clean(p.TakingMedicationCholesterol)))
	field("Pregnancy Trimester", p.Conditional(models.ConditionPregnancy, clean(p.PregnancyTrimester)))
	field("Breastfeeding Duration", p.Conditional(models.ConditionBreastfeeding, clean(p.BreastfeedingDuration)))
	field("Current Medications", clean(p.CurrentMedications))
	field("Meal Prep Time", clean(p.MealPrepTime))
	field("Cooking Skill Level", clean(p.CookingSkill))
	field("Kitchen Equipment", list(p.KitchenEquipment))
	field("Pantry Staples", clean(p.PantryStaples))

	b.WriteString(mealPlanInstructions)
	return b.String()
}

const mealPlanInstructions = `
Instructions:
1. Create a detailed one-week meal plan that is tailored to the client's specific needs and preferences.
2. Ensure the meal plan is nutritionally balanced and appropriate for the client's medical conditions (if any).
3. Consider the client's dietary restrictions, food preferences/dislikes, and meal frequency.
4. Take into account the client's time constraints, meal prep time, cooking skill level, and available kitchen equipment.
5. If the client has diabetes, ensure the meal plan is appropriate for their diabetes type and insulin use (if applicable).
6. If the client has high blood pressure, ensure the meal plan is appropriate for managing their condition and medication use (if applicable).
7. If the client has high cholesterol, ensure the meal plan is appropriate for managing their condition and medication use (if applicable).
8. If the client is pregnant, ensure the meal plan is appropriate for their trimester.
9. If the client is breastfeeding, ensure the meal plan is appropriate for their breastfeeding duration.
10. Provide a variety of meals and snacks throughout the week.
11. Provide a list of ingredients for each meal.
12. Provide instructions for each meal.

Output Format:
Present the meal plan in a clear, day-by-day format. For each day, list the meals (breakfast, lunch, dinner, snacks) with their corresponding ingredients and instructions.

Example:
Day 1:
Breakfast: Oatmeal with Berries and Nuts
Ingredients: 1/2 cup rolled oats, 1 cup water, 1/4 cup mixed berries, 1 tbsp chopped nuts
Instructions: Cook oatmeal with water. Top with berries and nuts.
Lunch: ...
...
`
