package service

import (
	"math"

	"github.com/mansoorceksport/planforge/internal/domain"
)

// kcal-per-gram constants for the macro conversions
const (
	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
	kcalPerGramFats    = 9
	fiberPer1000Kcal   = 14
)

// activityMultipliers scales BMR to TDEE.
var activityMultipliers = map[string]float64{
	domain.ActivitySedentary:     1.2,
	domain.ActivityLightlyActive: 1.375,
	domain.ActivityActive:        1.55,
	domain.ActivityVeryActive:    1.725,
}

// goalCalorieOffsets shifts TDEE toward the goal.
var goalCalorieOffsets = map[string]float64{
	domain.GoalWeightLoss:  -500,
	domain.GoalWeightGain:  +500,
	domain.GoalMuscleGain:  +300,
	domain.GoalMaintenance: 0,
}

// macroRatios is the protein/carb/fat split as fractions of target calories.
type macroRatios struct {
	protein float64
	carbs   float64
	fats    float64
}

var defaultRatios = macroRatios{protein: 0.25, carbs: 0.45, fats: 0.30}

var goalRatios = map[string]macroRatios{
	domain.GoalWeightLoss: {protein: 0.35, carbs: 0.35, fats: 0.30},
	domain.GoalMuscleGain: {protein: 0.30, carbs: 0.45, fats: 0.25},
	domain.GoalWeightGain: {protein: 0.25, carbs: 0.50, fats: 0.25},
}

// dietRatios overrides the goal split wholesale for carb-restricted diets.
var dietRatios = map[string]macroRatios{
	domain.DietKeto:    {protein: 0.25, carbs: 0.05, fats: 0.70},
	domain.DietLowCarb: {protein: 0.30, carbs: 0.20, fats: 0.50},
}

// NutritionService derives daily nutrition targets from a user profile.
type NutritionService struct{}

func NewNutritionService() *NutritionService {
	return &NutritionService{}
}

// CalculateTargets computes BMR (Mifflin-St Jeor), TDEE, goal-shifted target
// calories and macro grams. The profile must already be validated; for any
// valid profile this is a total function.
func (s *NutritionService) CalculateTargets(user domain.UserProfile) (domain.NutritionTargets, error) {
	if err := user.Validate(); err != nil {
		return domain.NutritionTargets{}, err
	}

	// Mifflin-St Jeor. Female and "other" genders share the -161 constant;
	// this mirrors the published formula's two branches, not an oversight.
	bmr := 10*user.Weight + 6.25*user.Height - 5*float64(user.Age)
	if user.Gender == domain.GenderMale {
		bmr += 5
	} else {
		bmr -= 161
	}

	tdee := bmr * activityMultipliers[user.ActivityLevel]
	targetCalories := tdee + goalCalorieOffsets[user.Goal]

	ratios := defaultRatios
	if r, ok := goalRatios[user.Goal]; ok {
		ratios = r
	}
	// Diet override always wins over the goal split.
	if r, ok := dietRatios[user.DietaryPreference]; ok {
		ratios = r
	}

	return domain.NutritionTargets{
		Calories: int(math.Round(targetCalories)),
		Protein:  int(math.Round(targetCalories * ratios.protein / kcalPerGramProtein)),
		Carbs:    int(math.Round(targetCalories * ratios.carbs / kcalPerGramCarbs)),
		Fats:     int(math.Round(targetCalories * ratios.fats / kcalPerGramFats)),
		Fiber:    int(math.Round(targetCalories / 1000 * fiberPer1000Kcal)),
	}, nil
}
