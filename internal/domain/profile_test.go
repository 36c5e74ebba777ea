package domain

import (
	"errors"
	"testing"
)

func validProfile() UserProfile {
	return UserProfile{
		Age:               30,
		Gender:            GenderMale,
		Height:            180,
		Weight:            80,
		Goal:              GoalMaintenance,
		ActivityLevel:     ActivitySedentary,
		DietaryPreference: DietOmnivore,
		FitnessExperience: ExperienceBeginner,
	}
}

func TestProfileValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*UserProfile)
		wantField string // empty means valid
	}{
		{"valid profile", func(p *UserProfile) {}, ""},
		{"zero age", func(p *UserProfile) { p.Age = 0 }, "age"},
		{"negative height", func(p *UserProfile) { p.Height = -170 }, "height"},
		{"zero weight", func(p *UserProfile) { p.Weight = 0 }, "weight"},
		{"bad gender", func(p *UserProfile) { p.Gender = "unknown" }, "gender"},
		{"bad goal", func(p *UserProfile) { p.Goal = "shred" }, "goal"},
		{"bad activity", func(p *UserProfile) { p.ActivityLevel = "lazy" }, "activityLevel"},
		{"bad diet", func(p *UserProfile) { p.DietaryPreference = "air" }, "dietaryPreference"},
		{"bad experience", func(p *UserProfile) { p.FitnessExperience = "pro" }, "fitnessExperience"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := validProfile()
			tt.mutate(&profile)

			err := profile.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}

			var invalid *InvalidInputError
			if !errors.As(err, &invalid) {
				t.Fatalf("Validate() = %v, want InvalidInputError", err)
			}
			if invalid.Field != tt.wantField {
				t.Errorf("Validate() field = %q, want %q", invalid.Field, tt.wantField)
			}
		})
	}
}

func TestHasAllergy(t *testing.T) {
	profile := validProfile()
	profile.Allergies = []string{"dairy", "tree-nuts"}

	if !profile.HasAllergy("dairy") {
		t.Error("HasAllergy(dairy) = false, want true")
	}
	if profile.HasAllergy("fish") {
		t.Error("HasAllergy(fish) = true, want false")
	}
}

func TestFoodAllergenAndTagChecks(t *testing.T) {
	salmon := Food{
		ID: "salmon", Category: FoodProtein,
		DietaryTags: []string{DietKeto, DietPaleo},
		Allergens:   []string{"fish"},
	}

	if !salmon.HasTag(DietKeto) {
		t.Error("HasTag(keto) = false, want true")
	}
	if salmon.HasTag(DietVegan) {
		t.Error("HasTag(vegan) = true, want false")
	}
	if !salmon.ContainsAnyAllergen([]string{"dairy", "fish"}) {
		t.Error("ContainsAnyAllergen([dairy fish]) = false, want true")
	}
	if salmon.ContainsAnyAllergen(nil) {
		t.Error("ContainsAnyAllergen(nil) = true, want false")
	}
}
