package service

import (
	"github.com/mansoorceksport/planforge/internal/domain"
)

var goalTips = map[string][]string{
	domain.GoalWeightLoss: {
		"Focus on creating a sustainable calorie deficit through diet and exercise",
		"Prioritize protein to maintain muscle mass during weight loss",
		"Include plenty of vegetables for satiety and micronutrients",
	},
	domain.GoalMuscleGain: {
		"Eat in a slight calorie surplus to support muscle growth",
		"Consume protein throughout the day, especially post-workout",
		"Focus on progressive overload in your strength training",
	},
	domain.GoalWeightGain: {
		"Eat frequent, nutrient-dense meals to reach your calorie goals",
		"Include healthy fats like nuts, avocados, and olive oil",
		"Consider liquid calories like smoothies if solid food is challenging",
	},
	// maintenance contributes no goal tips
}

var dietTips = map[string][]string{
	domain.DietVegan: {
		"Combine different plant proteins to ensure complete amino acid profiles",
		"Consider B12, iron, and omega-3 supplementation",
	},
	domain.DietKeto: {
		"Monitor ketone levels to ensure you're in ketosis",
		"Increase sodium intake to prevent keto flu symptoms",
	},
}

var experienceTips = map[string][]string{
	domain.ExperienceBeginner: {
		"Start slowly and focus on learning proper form before increasing intensity",
		"Allow adequate rest between workouts for recovery",
	},
	domain.ExperienceAdvanced: {
		"Consider periodization and deload weeks to prevent overtraining",
		"Track your workouts meticulously to ensure progressive overload",
	},
}

var universalTips = []string{
	"Stay hydrated by drinking at least 8-10 glasses of water daily",
	"Aim for 7-9 hours of quality sleep each night for optimal recovery",
	"Consider consulting with healthcare providers before making major changes",
}

// RecommendationService produces the ordered tip list for a profile: goal
// tips, then diet tips, then experience tips, then the universal tips.
type RecommendationService struct{}

func NewRecommendationService() *RecommendationService {
	return &RecommendationService{}
}

func (s *RecommendationService) GenerateRecommendations(user domain.UserProfile, targets domain.NutritionTargets) []string {
	var recs []string
	recs = append(recs, goalTips[user.Goal]...)
	recs = append(recs, dietTips[user.DietaryPreference]...)
	recs = append(recs, experienceTips[user.FitnessExperience]...)
	recs = append(recs, universalTips...)
	return recs
}
