package service

import (
	"testing"

	"github.com/mansoorceksport/planforge/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRecommendationsOrder(t *testing.T) {
	svc := NewRecommendationService()

	profile := baseProfile()
	profile.Goal = domain.GoalWeightLoss
	profile.DietaryPreference = domain.DietVegan
	profile.FitnessExperience = domain.ExperienceBeginner

	recs := svc.GenerateRecommendations(profile, domain.NutritionTargets{})

	// 3 goal tips, 2 diet tips, 2 experience tips, 3 universal tips, in that
	// order.
	require.Len(t, recs, 10)
	assert.Equal(t, goalTips[domain.GoalWeightLoss], recs[:3])
	assert.Equal(t, dietTips[domain.DietVegan], recs[3:5])
	assert.Equal(t, experienceTips[domain.ExperienceBeginner], recs[5:7])
	assert.Equal(t, universalTips, recs[7:])
}

func TestGenerateRecommendationsUniversalOnly(t *testing.T) {
	svc := NewRecommendationService()

	// Maintenance, omnivore, intermediate: no bucket contributes tips, only
	// the universal ones remain.
	profile := baseProfile()
	profile.Goal = domain.GoalMaintenance
	profile.DietaryPreference = domain.DietOmnivore
	profile.FitnessExperience = domain.ExperienceIntermediate

	recs := svc.GenerateRecommendations(profile, domain.NutritionTargets{})
	assert.Equal(t, universalTips, recs)
}

func TestGenerateRecommendationsKetoAndAdvanced(t *testing.T) {
	svc := NewRecommendationService()

	profile := baseProfile()
	profile.Goal = domain.GoalMuscleGain
	profile.DietaryPreference = domain.DietKeto
	profile.FitnessExperience = domain.ExperienceAdvanced

	recs := svc.GenerateRecommendations(profile, domain.NutritionTargets{})

	require.Len(t, recs, 10)
	assert.Contains(t, recs, "Monitor ketone levels to ensure you're in ketosis")
	assert.Contains(t, recs, "Consider periodization and deload weeks to prevent overtraining")
}
