package domain

// Gender values
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// Goal values
const (
	GoalWeightLoss  = "weight-loss"
	GoalWeightGain  = "weight-gain"
	GoalMuscleGain  = "muscle-gain"
	GoalMaintenance = "maintenance"
)

// Activity level values
const (
	ActivitySedentary     = "sedentary"
	ActivityLightlyActive = "lightly-active"
	ActivityActive        = "active"
	ActivityVeryActive    = "very-active"
)

// Dietary preference values
const (
	DietOmnivore      = "omnivore"
	DietVegetarian    = "vegetarian"
	DietVegan         = "vegan"
	DietKeto          = "keto"
	DietPaleo         = "paleo"
	DietMediterranean = "mediterranean"
	DietLowCarb       = "low-carb"
)

// Fitness experience values
const (
	ExperienceBeginner     = "beginner"
	ExperienceIntermediate = "intermediate"
	ExperienceAdvanced     = "advanced"
)

// UserProfile is the immutable input to plan generation. It is created once
// from raw form input and passed by value into the engine.
type UserProfile struct {
	Age               int      `json:"age"`
	Gender            string   `json:"gender"`
	Height            float64  `json:"height"` // cm
	Weight            float64  `json:"weight"` // kg
	Goal              string   `json:"goal"`
	ActivityLevel     string   `json:"activity_level"`
	DietaryPreference string   `json:"dietary_preference"`
	Allergies         []string `json:"allergies"` // lowercase, possibly empty
	MedicalConditions string   `json:"medical_conditions"`
	FitnessExperience string   `json:"fitness_experience"`
}

var validGenders = map[string]bool{
	GenderMale: true, GenderFemale: true, GenderOther: true,
}

var validGoals = map[string]bool{
	GoalWeightLoss: true, GoalWeightGain: true, GoalMuscleGain: true, GoalMaintenance: true,
}

var validActivityLevels = map[string]bool{
	ActivitySedentary: true, ActivityLightlyActive: true, ActivityActive: true, ActivityVeryActive: true,
}

var validDiets = map[string]bool{
	DietOmnivore: true, DietVegetarian: true, DietVegan: true, DietKeto: true,
	DietPaleo: true, DietMediterranean: true, DietLowCarb: true,
}

var validExperiences = map[string]bool{
	ExperienceBeginner: true, ExperienceIntermediate: true, ExperienceAdvanced: true,
}

// Validate rejects out-of-enum and out-of-range fields up front so no
// undefined value ever reaches the calculators.
func (p UserProfile) Validate() error {
	if p.Age <= 0 {
		return NewInvalidInput("age", "", "must be a positive number of years")
	}
	if p.Height <= 0 {
		return NewInvalidInput("height", "", "must be a positive number of centimeters")
	}
	if p.Weight <= 0 {
		return NewInvalidInput("weight", "", "must be a positive number of kilograms")
	}
	if !validGenders[p.Gender] {
		return NewInvalidInput("gender", p.Gender, "unrecognized gender")
	}
	if !validGoals[p.Goal] {
		return NewInvalidInput("goal", p.Goal, "unrecognized goal")
	}
	if !validActivityLevels[p.ActivityLevel] {
		return NewInvalidInput("activityLevel", p.ActivityLevel, "unrecognized activity level")
	}
	if !validDiets[p.DietaryPreference] {
		return NewInvalidInput("dietaryPreference", p.DietaryPreference, "unrecognized dietary preference")
	}
	if !validExperiences[p.FitnessExperience] {
		return NewInvalidInput("fitnessExperience", p.FitnessExperience, "unrecognized fitness experience")
	}
	return nil
}

// HasAllergy checks whether the profile lists an allergy.
func (p UserProfile) HasAllergy(allergen string) bool {
	for _, a := range p.Allergies {
		if a == allergen {
			return true
		}
	}
	return false
}
