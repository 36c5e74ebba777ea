package service

import (
	"math/rand"
	"testing"

	"github.com/mansoorceksport/planforge/internal/catalog"
	"github.com/mansoorceksport/planforge/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawInput() RawPlanInput {
	return RawPlanInput{
		Age:               "30",
		Gender:            "male",
		Height:            "180",
		Weight:            "80",
		Goal:              "maintenance",
		ActivityLevel:     "sedentary",
		DietaryPreference: "omnivore",
		FitnessExperience: "beginner",
	}
}

func fixedSeedPlanner() *PlannerService {
	return NewPlannerService(
		catalog.NewFoodTable(),
		catalog.NewExerciseTable(),
		func() *rand.Rand { return rand.New(rand.NewSource(42)) },
	)
}

func TestParseProfile(t *testing.T) {
	input := rawInput()
	input.Allergies = " Dairy, Tree-Nuts ,,"

	profile, err := ParseProfile(input)
	require.NoError(t, err)

	assert.Equal(t, 30, profile.Age)
	assert.Equal(t, 180.0, profile.Height)
	assert.Equal(t, 80.0, profile.Weight)
	assert.Equal(t, []string{"dairy", "tree-nuts"}, profile.Allergies)
}

func TestParseProfileDefaultsExperienceToBeginner(t *testing.T) {
	input := rawInput()
	input.FitnessExperience = ""

	profile, err := ParseProfile(input)
	require.NoError(t, err)
	assert.Equal(t, domain.ExperienceBeginner, profile.FitnessExperience)
}

func TestParseProfileErrors(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*RawPlanInput)
		wantField string
	}{
		{"non-numeric age", func(in *RawPlanInput) { in.Age = "thirty" }, "age"},
		{"empty age", func(in *RawPlanInput) { in.Age = "" }, "age"},
		{"non-numeric height", func(in *RawPlanInput) { in.Height = "tall" }, "height"},
		{"non-numeric weight", func(in *RawPlanInput) { in.Weight = "80kg" }, "weight"},
		{"unknown gender", func(in *RawPlanInput) { in.Gender = "robot" }, "gender"},
		{"unknown goal", func(in *RawPlanInput) { in.Goal = "bulk" }, "goal"},
		{"unknown experience", func(in *RawPlanInput) { in.FitnessExperience = "elite" }, "fitnessExperience"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := rawInput()
			tt.mutate(&input)

			_, err := ParseProfile(input)
			require.Error(t, err)

			var invalid *domain.InvalidInputError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tt.wantField, invalid.Field)
		})
	}
}

func TestGenerateFromRaw(t *testing.T) {
	planner := fixedSeedPlanner()

	plan, err := planner.GenerateFromRaw(rawInput())
	require.NoError(t, err)

	// ULID ids are 26 characters of Crockford base32.
	assert.Len(t, plan.PlanID, 26)
	assert.False(t, plan.CreatedAt.IsZero())

	assert.Equal(t, 2136, plan.NutritionTargets.Calories)
	assert.NotEmpty(t, plan.MealPlan.Breakfast)
	assert.Len(t, plan.WorkoutPlan.Days, 3)
	assert.NotEmpty(t, plan.Recommendations)
}

func TestGenerateFromRawInvalidInput(t *testing.T) {
	planner := fixedSeedPlanner()

	input := rawInput()
	input.DietaryPreference = "fruitarian"

	_, err := planner.GenerateFromRaw(input)
	require.Error(t, err)

	var invalid *domain.InvalidInputError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "dietaryPreference", invalid.Field)
}

func TestGeneratePlanDeterministicWithSeededFactory(t *testing.T) {
	planner := fixedSeedPlanner()

	profile, err := ParseProfile(rawInput())
	require.NoError(t, err)

	first, err := planner.GeneratePlan(profile)
	require.NoError(t, err)
	second, err := planner.GeneratePlan(profile)
	require.NoError(t, err)

	// Ids and timestamps differ per generation; the derived content does not.
	assert.NotEqual(t, first.PlanID, second.PlanID)
	assert.Equal(t, first.NutritionTargets, second.NutritionTargets)
	assert.Equal(t, first.MealPlan, second.MealPlan)
	assert.Equal(t, first.WorkoutPlan, second.WorkoutPlan)
	assert.Equal(t, first.Recommendations, second.Recommendations)
}

func TestGeneratePlanIDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := generatePlanID()
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
