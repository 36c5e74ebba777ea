package service

import (
	"strings"
	"testing"
	"time"

	"github.com/mansoorceksport/planforge/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePlan() *domain.ComprehensivePlan {
	oats := &domain.Food{ID: "oats", Name: "Rolled Oats", Category: domain.FoodCarbs, ServingSize: 100, Calories: 389}
	pushups := &domain.Exercise{ID: "push-ups", Name: "Push-ups"}

	return &domain.ComprehensivePlan{
		PlanID:           "01HTESTPLANID0000000000000",
		CreatedAt:        time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC),
		NutritionTargets: domain.NutritionTargets{Calories: 2136, Protein: 134, Carbs: 240, Fats: 71, Fiber: 30},
		MealPlan: domain.DailyMealPlan{
			Breakfast: []domain.MealPlanItem{
				{Food: oats, Quantity: 137, Calories: 533},
			},
		},
		WorkoutPlan: domain.WeeklyWorkoutPlan{
			Days: []domain.WorkoutDay{
				{
					Day: "Monday", Focus: "Full Body Strength", Duration: "30-40 minutes",
					Exercises: []domain.WorkoutExercise{
						{Exercise: pushups, Sets: 3, Reps: "5-10", Rest: "60s"},
					},
				},
			},
		},
		Recommendations: []string{"Stay hydrated by drinking at least 8-10 glasses of water daily"},
	}
}

func TestRenderPlanText(t *testing.T) {
	text := RenderPlanText(samplePlan())

	assert.Contains(t, text, "# Your Personalized Health & Fitness Plan")
	assert.Contains(t, text, "Generated on: 3/9/2026")
	assert.Contains(t, text, "- Calories: 2136/day")
	assert.Contains(t, text, "- Protein: 134g")
	assert.Contains(t, text, "- Rolled Oats: 137g (533 cal)")
	assert.Contains(t, text, "### Monday - Full Body Strength")
	assert.Contains(t, text, "- Push-ups: 3 sets x 5-10 reps (Rest: 60s)")
	assert.Contains(t, text, "- Stay hydrated by drinking at least 8-10 glasses of water daily")
}

func TestRenderPlanTextSectionOrder(t *testing.T) {
	text := RenderPlanText(samplePlan())

	sections := []string{
		"# Your Personalized Health & Fitness Plan",
		"## Nutrition Targets",
		"## Daily Meal Plan",
		"### Breakfast",
		"### Lunch",
		"### Dinner",
		"### Snacks",
		"## Weekly Workout Plan",
		"## Recommendations",
	}

	last := -1
	for _, section := range sections {
		idx := strings.Index(text, section)
		require.GreaterOrEqual(t, idx, 0, "missing section %q", section)
		assert.Greater(t, idx, last, "section %q out of order", section)
		last = idx
	}
}

func TestExportFileName(t *testing.T) {
	name := ExportFileName(samplePlan())
	assert.Equal(t, "fitness-plan-01HTESTPLANID0000000000000.txt", name)
}
