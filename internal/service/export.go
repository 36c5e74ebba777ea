package service

import (
	"fmt"
	"strings"

	"github.com/mansoorceksport/planforge/internal/domain"
)

// RenderPlanText renders a plan as a plain-text document. Section order is
// part of the export contract: header, nutrition targets, the four meal
// sections, per-day workout sections, recommendations.
func RenderPlanText(plan *domain.ComprehensivePlan) string {
	var b strings.Builder

	b.WriteString("# Your Personalized Health & Fitness Plan\n")
	fmt.Fprintf(&b, "Generated on: %s\n\n", plan.CreatedAt.Format("1/2/2006"))

	b.WriteString("## Nutrition Targets\n")
	fmt.Fprintf(&b, "- Calories: %d/day\n", plan.NutritionTargets.Calories)
	fmt.Fprintf(&b, "- Protein: %dg\n", plan.NutritionTargets.Protein)
	fmt.Fprintf(&b, "- Carbs: %dg\n", plan.NutritionTargets.Carbs)
	fmt.Fprintf(&b, "- Fats: %dg\n\n", plan.NutritionTargets.Fats)

	b.WriteString("## Daily Meal Plan\n")
	writeMealSection(&b, "Breakfast", plan.MealPlan.Breakfast)
	writeMealSection(&b, "Lunch", plan.MealPlan.Lunch)
	writeMealSection(&b, "Dinner", plan.MealPlan.Dinner)
	writeMealSection(&b, "Snacks", plan.MealPlan.Snacks)

	b.WriteString("## Weekly Workout Plan\n")
	for _, day := range plan.WorkoutPlan.Days {
		fmt.Fprintf(&b, "\n### %s - %s\n", day.Day, day.Focus)
		fmt.Fprintf(&b, "Duration: %s\n", day.Duration)
		for _, ex := range day.Exercises {
			fmt.Fprintf(&b, "- %s: %d sets x %s reps (Rest: %s)\n", ex.Exercise.Name, ex.Sets, ex.Reps, ex.Rest)
		}
	}

	b.WriteString("\n## Recommendations\n")
	for _, rec := range plan.Recommendations {
		fmt.Fprintf(&b, "- %s\n", rec)
	}

	return b.String()
}

func writeMealSection(b *strings.Builder, title string, items []domain.MealPlanItem) {
	fmt.Fprintf(b, "### %s\n", title)
	for _, item := range items {
		fmt.Fprintf(b, "- %s: %.0fg (%d cal)\n", item.Food.Name, item.Quantity, item.Calories)
	}
	b.WriteString("\n")
}

// ExportFileName is the suggested download name for a plan export.
func ExportFileName(plan *domain.ComprehensivePlan) string {
	return fmt.Sprintf("fitness-plan-%s.txt", plan.PlanID)
}
