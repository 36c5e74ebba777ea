package domain

// Food categories
const (
	FoodProtein    = "protein"
	FoodCarbs      = "carbs"
	FoodVegetables = "vegetables"
	FoodFruits     = "fruits"
	FoodFats       = "fats"
)

// Food is a static catalog entry. Nutrient values are per serving.
type Food struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	ServingSize float64  `json:"serving_size"` // grams
	Calories    float64  `json:"calories"`
	Protein     float64  `json:"protein"`
	Carbs       float64  `json:"carbs"`
	Fats        float64  `json:"fats"`
	Fiber       float64  `json:"fiber"`
	DietaryTags []string `json:"dietary_tags"` // diets this food satisfies
	Allergens   []string `json:"allergens"`
}

// HasTag checks whether the food satisfies a dietary preference.
func (f *Food) HasTag(tag string) bool {
	for _, t := range f.DietaryTags {
		if t == tag {
			return true
		}
	}
	return false
}

// ContainsAnyAllergen checks the food's allergens against a user allergy set.
func (f *Food) ContainsAnyAllergen(allergies []string) bool {
	for _, a := range f.Allergens {
		for _, userAllergy := range allergies {
			if a == userAllergy {
				return true
			}
		}
	}
	return false
}

// FoodCatalog exposes the read-only food table. Implementations build their
// indexes once at startup; lookups never block.
type FoodCatalog interface {
	All() []*Food
	GetByID(id string) (*Food, error)
	ByCategory(category string) []*Food
	ByDietaryTag(tag string) []*Food
}
