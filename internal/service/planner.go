package service

import (
	cryptorand "crypto/rand"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/mansoorceksport/planforge/internal/domain"
	"github.com/oklog/ulid/v2"
)

// RawPlanInput carries the untyped form fields as submitted by the caller.
// Numeric fields arrive as strings and are parsed here; a parse failure is an
// InvalidInputError naming the field, never a silent NaN.
type RawPlanInput struct {
	Age               string `json:"age"`
	Gender            string `json:"gender"`
	Height            string `json:"height"`
	Weight            string `json:"weight"`
	Goal              string `json:"goal"`
	ActivityLevel     string `json:"activity_level"`
	DietaryPreference string `json:"dietary_preference"`
	Allergies         string `json:"allergies"` // comma-separated free text
	MedicalConditions string `json:"medical_conditions"`
	FitnessExperience string `json:"fitness_experience"`
}

// PlannerService assembles the comprehensive plan from the individual
// generators. Generation is pure and synchronous; the only nondeterminism is
// the injected random source used for meal disambiguation.
type PlannerService struct {
	nutrition *NutritionService
	meals     *MealService
	workouts  *WorkoutService
	recs      *RecommendationService
	newRand   func() *rand.Rand
}

// NewPlannerService wires the generators. newRand produces the random source
// for each generation; pass nil for a time-seeded default, or a fixed-seed
// factory to make generation fully deterministic.
func NewPlannerService(
	foods domain.FoodCatalog,
	exercises domain.ExerciseCatalog,
	newRand func() *rand.Rand,
) *PlannerService {
	if newRand == nil {
		newRand = func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		}
	}
	return &PlannerService{
		nutrition: NewNutritionService(),
		meals:     NewMealService(foods),
		workouts:  NewWorkoutService(exercises),
		recs:      NewRecommendationService(),
		newRand:   newRand,
	}
}

// generatePlanID creates a new ULID string. ULIDs keep the time-ordered
// prefix + random suffix shape of the original plan ids.
func generatePlanID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), cryptorand.Reader).String()
}

// ParseProfile converts raw form input into a validated UserProfile.
// Missing fitness experience defaults to beginner; the allergy text is
// lowercased and comma-split into a set.
func ParseProfile(input RawPlanInput) (domain.UserProfile, error) {
	age, err := strconv.Atoi(strings.TrimSpace(input.Age))
	if err != nil {
		return domain.UserProfile{}, domain.NewInvalidInput("age", input.Age, "not a whole number")
	}
	height, err := strconv.ParseFloat(strings.TrimSpace(input.Height), 64)
	if err != nil {
		return domain.UserProfile{}, domain.NewInvalidInput("height", input.Height, "not a number")
	}
	weight, err := strconv.ParseFloat(strings.TrimSpace(input.Weight), 64)
	if err != nil {
		return domain.UserProfile{}, domain.NewInvalidInput("weight", input.Weight, "not a number")
	}

	experience := input.FitnessExperience
	if experience == "" {
		experience = domain.ExperienceBeginner
	}

	profile := domain.UserProfile{
		Age:               age,
		Gender:            input.Gender,
		Height:            height,
		Weight:            weight,
		Goal:              input.Goal,
		ActivityLevel:     input.ActivityLevel,
		DietaryPreference: input.DietaryPreference,
		Allergies:         parseAllergies(input.Allergies),
		MedicalConditions: input.MedicalConditions,
		FitnessExperience: experience,
	}

	if err := profile.Validate(); err != nil {
		return domain.UserProfile{}, err
	}
	return profile, nil
}

func parseAllergies(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	parts := strings.Split(strings.ToLower(raw), ",")
	allergies := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			allergies = append(allergies, trimmed)
		}
	}
	return allergies
}

// GenerateFromRaw parses and validates raw input, then generates a plan.
func (s *PlannerService) GenerateFromRaw(input RawPlanInput) (*domain.ComprehensivePlan, error) {
	profile, err := ParseProfile(input)
	if err != nil {
		return nil, err
	}
	return s.GeneratePlan(profile)
}

// GeneratePlan runs the full pipeline: nutrition targets, meal plan, workout
// plan, recommendations. Each invocation produces a fresh immutable plan.
func (s *PlannerService) GeneratePlan(user domain.UserProfile) (*domain.ComprehensivePlan, error) {
	targets, err := s.nutrition.CalculateTargets(user)
	if err != nil {
		return nil, err
	}

	mealPlan := s.meals.GenerateMealPlan(user, targets, s.newRand())
	workoutPlan := s.workouts.GenerateWorkoutPlan(user)
	recommendations := s.recs.GenerateRecommendations(user, targets)

	return &domain.ComprehensivePlan{
		User:             user,
		NutritionTargets: targets,
		MealPlan:         mealPlan,
		WorkoutPlan:      workoutPlan,
		Recommendations:  recommendations,
		CreatedAt:        time.Now().UTC(),
		PlanID:           generatePlanID(),
	}, nil
}
