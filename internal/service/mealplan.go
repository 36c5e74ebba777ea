package service

import (
	"math"
	"math/rand"

	"github.com/mansoorceksport/planforge/internal/domain"
)

// Calorie share of the daily target per meal slot. Sums to 1.0.
const (
	breakfastShare = 0.25
	lunchShare     = 0.35
	dinnerShare    = 0.30
	snackShare     = 0.10
)

// minQuantityGrams keeps rounded portions from collapsing to nothing.
const minQuantityGrams = 10

// Category slots to fill per meal, in order.
var (
	breakfastSlots = []string{domain.FoodProtein, domain.FoodCarbs, domain.FoodFruits}
	mainMealSlots  = []string{domain.FoodProtein, domain.FoodCarbs, domain.FoodVegetables, domain.FoodFats}
	snackSlots     = []string{domain.FoodProtein, domain.FoodFruits}
)

// MealService assembles a daily meal plan against the food catalog.
type MealService struct {
	foods domain.FoodCatalog
}

func NewMealService(foods domain.FoodCatalog) *MealService {
	return &MealService{foods: foods}
}

// GenerateMealPlan filters the catalog by diet and allergies, then fills the
// four meal slots so each approximates its calorie share. Food choice within
// a category comes from rng, which callers seed; a fixed seed reproduces the
// same plan.
func (s *MealService) GenerateMealPlan(user domain.UserProfile, targets domain.NutritionTargets, rng *rand.Rand) domain.DailyMealPlan {
	available := s.eligibleFoods(user)

	breakfastCals := int(math.Round(float64(targets.Calories) * breakfastShare))
	lunchCals := int(math.Round(float64(targets.Calories) * lunchShare))
	dinnerCals := int(math.Round(float64(targets.Calories) * dinnerShare))
	snackCals := int(math.Round(float64(targets.Calories) * snackShare))

	plan := domain.DailyMealPlan{
		Breakfast: composeMeal(available, breakfastSlots, breakfastCals, rng),
		Lunch:     composeMeal(available, mainMealSlots, lunchCals, rng),
		Dinner:    composeMeal(available, mainMealSlots, dinnerCals, rng),
		Snacks:    composeMeal(available, snackSlots, snackCals, rng),
	}
	plan.Totals = sumTotals(plan.AllItems())
	return plan
}

// eligibleFoods applies the dietary-tag filter, then narrows the result by
// the allergy set. The two filters intersect: an allergy never re-admits a
// food the diet excluded.
func (s *MealService) eligibleFoods(user domain.UserProfile) []*domain.Food {
	all := s.foods.All()
	eligible := make([]*domain.Food, 0, len(all))

	for _, f := range all {
		if user.DietaryPreference != domain.DietOmnivore {
			// Vegan is a strict subset of vegetarian, so vegetarians accept
			// vegan-tagged foods too.
			ok := f.HasTag(user.DietaryPreference)
			if !ok && user.DietaryPreference == domain.DietVegetarian {
				ok = f.HasTag(domain.DietVegan)
			}
			if !ok {
				continue
			}
		}
		if len(user.Allergies) > 0 && f.ContainsAnyAllergen(user.Allergies) {
			continue
		}
		eligible = append(eligible, f)
	}
	return eligible
}

// composeMeal picks one food per category slot, then allocates the meal's
// calorie budget sequentially: item i of n gets remaining/(n-i), so rounding
// drift lands on the later items.
func composeMeal(available []*domain.Food, slots []string, targetCalories int, rng *rand.Rand) []domain.MealPlanItem {
	var selected []*domain.Food
	for _, category := range slots {
		options := foodsInCategory(available, category)
		if len(options) == 0 {
			continue // slot unmet, plan stays valid
		}
		selected = append(selected, options[rng.Intn(len(options))])
	}

	items := make([]domain.MealPlanItem, 0, len(selected))
	remaining := float64(targetCalories)
	for i, food := range selected {
		share := remaining / float64(len(selected)-i)
		quantity := math.Max(minQuantityGrams, math.Round(share/food.Calories*food.ServingSize))
		scale := quantity / food.ServingSize
		actualCalories := math.Round(scale * food.Calories)

		items = append(items, domain.MealPlanItem{
			Food:     food,
			Quantity: quantity,
			Calories: int(actualCalories),
			Protein:  int(math.Round(scale * food.Protein)),
			Carbs:    int(math.Round(scale * food.Carbs)),
			Fats:     int(math.Round(scale * food.Fats)),
		})
		remaining -= actualCalories
	}
	return items
}

func foodsInCategory(available []*domain.Food, category string) []*domain.Food {
	var out []*domain.Food
	for _, f := range available {
		if f.Category == category {
			out = append(out, f)
		}
	}
	return out
}

func sumTotals(items []domain.MealPlanItem) domain.NutritionTargets {
	var totals domain.NutritionTargets
	var fiber float64
	for _, item := range items {
		totals.Calories += item.Calories
		totals.Protein += item.Protein
		totals.Carbs += item.Carbs
		totals.Fats += item.Fats
		fiber += item.Food.Fiber * item.Quantity / item.Food.ServingSize
	}
	totals.Fiber = int(math.Round(fiber))
	return totals
}
