package service

import (
	"testing"

	"github.com/mansoorceksport/planforge/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseProfile() domain.UserProfile {
	return domain.UserProfile{
		Age:               30,
		Gender:            domain.GenderMale,
		Height:            180,
		Weight:            80,
		Goal:              domain.GoalMaintenance,
		ActivityLevel:     domain.ActivitySedentary,
		DietaryPreference: domain.DietOmnivore,
		Allergies:         []string{},
		FitnessExperience: domain.ExperienceBeginner,
	}
}

func TestCalculateTargets(t *testing.T) {
	svc := NewNutritionService()

	tests := []struct {
		name   string
		mutate func(*domain.UserProfile)
		want   domain.NutritionTargets
	}{
		{
			// BMR 1780, TDEE 2136, default 25/45/30 split
			name:   "sedentary male maintenance",
			mutate: func(p *domain.UserProfile) {},
			want:   domain.NutritionTargets{Calories: 2136, Protein: 134, Carbs: 240, Fats: 71, Fiber: 30},
		},
		{
			// 2136 - 500 = 1636, weight-loss 35/35/30 split
			name:   "weight loss deficit and high-protein split",
			mutate: func(p *domain.UserProfile) { p.Goal = domain.GoalWeightLoss },
			want:   domain.NutritionTargets{Calories: 1636, Protein: 143, Carbs: 143, Fats: 55, Fiber: 23},
		},
		{
			// 2136 + 500 = 2636, weight-gain 25/50/25 split
			name:   "weight gain surplus",
			mutate: func(p *domain.UserProfile) { p.Goal = domain.GoalWeightGain },
			want:   domain.NutritionTargets{Calories: 2636, Protein: 165, Carbs: 330, Fats: 73, Fiber: 37},
		},
		{
			// BMR 1330.25, TDEE 1829.09, +300 = 2129, muscle-gain 30/45/25 split
			name: "lightly active female muscle gain",
			mutate: func(p *domain.UserProfile) {
				p.Gender = domain.GenderFemale
				p.Age = 28
				p.Height = 165
				p.Weight = 60
				p.Goal = domain.GoalMuscleGain
				p.ActivityLevel = domain.ActivityLightlyActive
			},
			want: domain.NutritionTargets{Calories: 2129, Protein: 160, Carbs: 240, Fats: 59, Fiber: 30},
		},
		{
			// keto split 25/5/70 replaces the weight-loss split entirely
			name: "keto overrides the goal macro split",
			mutate: func(p *domain.UserProfile) {
				p.Goal = domain.GoalWeightLoss
				p.DietaryPreference = domain.DietKeto
			},
			want: domain.NutritionTargets{Calories: 1636, Protein: 102, Carbs: 20, Fats: 127, Fiber: 23},
		},
		{
			name: "low-carb overrides the default split",
			mutate: func(p *domain.UserProfile) {
				p.DietaryPreference = domain.DietLowCarb
			},
			want: domain.NutritionTargets{Calories: 2136, Protein: 160, Carbs: 107, Fats: 119, Fiber: 30},
		},
		{
			// "other" uses the female constant
			name:   "other gender uses the -161 branch",
			mutate: func(p *domain.UserProfile) { p.Gender = domain.GenderOther },
			want:   domain.NutritionTargets{Calories: 1937, Protein: 121, Carbs: 218, Fats: 65, Fiber: 27},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := baseProfile()
			tt.mutate(&profile)

			got, err := svc.CalculateTargets(profile)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculateTargetsMacroEnergyMatchesCalories(t *testing.T) {
	svc := NewNutritionService()

	goals := []string{domain.GoalWeightLoss, domain.GoalWeightGain, domain.GoalMuscleGain, domain.GoalMaintenance}
	for _, goal := range goals {
		profile := baseProfile()
		profile.Goal = goal

		targets, err := svc.CalculateTargets(profile)
		require.NoError(t, err)

		macroKcal := targets.Protein*4 + targets.Carbs*4 + targets.Fats*9
		assert.InDelta(t, targets.Calories, macroKcal, 15, "goal %s", goal)
	}
}

func TestCalculateTargetsRejectsInvalidProfile(t *testing.T) {
	svc := NewNutritionService()

	tests := []struct {
		name      string
		mutate    func(*domain.UserProfile)
		wantField string
	}{
		{"zero age", func(p *domain.UserProfile) { p.Age = 0 }, "age"},
		{"negative weight", func(p *domain.UserProfile) { p.Weight = -1 }, "weight"},
		{"unknown goal", func(p *domain.UserProfile) { p.Goal = "get-shredded" }, "goal"},
		{"unknown activity", func(p *domain.UserProfile) { p.ActivityLevel = "couch" }, "activityLevel"},
		{"unknown diet", func(p *domain.UserProfile) { p.DietaryPreference = "carnivore" }, "dietaryPreference"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := baseProfile()
			tt.mutate(&profile)

			_, err := svc.CalculateTargets(profile)
			require.Error(t, err)

			var invalid *domain.InvalidInputError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tt.wantField, invalid.Field)
		})
	}
}
