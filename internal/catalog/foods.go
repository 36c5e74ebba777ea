package catalog

import "github.com/mansoorceksport/planforge/internal/domain"

// foods is the static food table. Nutrient values are per serving.
// Dietary tags list every diet the food satisfies; allergens use the same
// lowercase vocabulary the profile parser produces.
var foods = []*domain.Food{
	// Proteins
	{
		ID: "chicken-breast", Name: "Chicken Breast", Category: domain.FoodProtein,
		ServingSize: 100, Calories: 165, Protein: 31, Carbs: 0, Fats: 3.6, Fiber: 0,
		DietaryTags: []string{domain.DietKeto, domain.DietPaleo, domain.DietMediterranean, domain.DietLowCarb},
		Allergens:   []string{},
	},
	{
		ID: "salmon", Name: "Salmon Fillet", Category: domain.FoodProtein,
		ServingSize: 100, Calories: 208, Protein: 20, Carbs: 0, Fats: 13, Fiber: 0,
		DietaryTags: []string{domain.DietKeto, domain.DietPaleo, domain.DietMediterranean, domain.DietLowCarb},
		Allergens:   []string{"fish"},
	},
	{
		ID: "eggs", Name: "Whole Eggs", Category: domain.FoodProtein,
		ServingSize: 100, Calories: 155, Protein: 13, Carbs: 1.1, Fats: 11, Fiber: 0,
		DietaryTags: []string{domain.DietVegetarian, domain.DietKeto, domain.DietPaleo, domain.DietLowCarb},
		Allergens:   []string{"eggs"},
	},
	{
		ID: "greek-yogurt", Name: "Greek Yogurt", Category: domain.FoodProtein,
		ServingSize: 170, Calories: 100, Protein: 17, Carbs: 6, Fats: 0.7, Fiber: 0,
		DietaryTags: []string{domain.DietVegetarian, domain.DietMediterranean, domain.DietLowCarb},
		Allergens:   []string{"dairy"},
	},
	{
		ID: "tofu", Name: "Firm Tofu", Category: domain.FoodProtein,
		ServingSize: 100, Calories: 76, Protein: 8, Carbs: 1.9, Fats: 4.8, Fiber: 0.3,
		DietaryTags: []string{domain.DietVegan, domain.DietVegetarian, domain.DietKeto, domain.DietLowCarb},
		Allergens:   []string{"soy"},
	},
	{
		ID: "tempeh", Name: "Tempeh", Category: domain.FoodProtein,
		ServingSize: 100, Calories: 192, Protein: 20, Carbs: 7.6, Fats: 11, Fiber: 0,
		DietaryTags: []string{domain.DietVegan, domain.DietVegetarian, domain.DietLowCarb},
		Allergens:   []string{"soy"},
	},
	{
		ID: "lentils", Name: "Cooked Lentils", Category: domain.FoodProtein,
		ServingSize: 100, Calories: 116, Protein: 9, Carbs: 20, Fats: 0.4, Fiber: 7.9,
		DietaryTags: []string{domain.DietVegan, domain.DietVegetarian, domain.DietMediterranean},
		Allergens:   []string{},
	},
	{
		ID: "black-beans", Name: "Black Beans", Category: domain.FoodProtein,
		ServingSize: 100, Calories: 132, Protein: 8.9, Carbs: 24, Fats: 0.5, Fiber: 8.7,
		DietaryTags: []string{domain.DietVegan, domain.DietVegetarian, domain.DietMediterranean},
		Allergens:   []string{},
	},
	{
		ID: "cottage-cheese", Name: "Cottage Cheese", Category: domain.FoodProtein,
		ServingSize: 100, Calories: 98, Protein: 11, Carbs: 3.4, Fats: 4.3, Fiber: 0,
		DietaryTags: []string{domain.DietVegetarian, domain.DietKeto, domain.DietLowCarb},
		Allergens:   []string{"dairy"},
	},
	{
		ID: "lean-beef", Name: "Lean Ground Beef", Category: domain.FoodProtein,
		ServingSize: 100, Calories: 250, Protein: 26, Carbs: 0, Fats: 15, Fiber: 0,
		DietaryTags: []string{domain.DietKeto, domain.DietPaleo, domain.DietLowCarb},
		Allergens:   []string{},
	},

	// Carbs
	{
		ID: "oats", Name: "Rolled Oats", Category: domain.FoodCarbs,
		ServingSize: 40, Calories: 150, Protein: 5, Carbs: 27, Fats: 2.5, Fiber: 4,
		DietaryTags: []string{domain.DietVegan, domain.DietVegetarian, domain.DietMediterranean},
		Allergens:   []string{"gluten"},
	},
	{
		ID: "brown-rice", Name: "Brown Rice", Category: domain.FoodCarbs,
		ServingSize: 100, Calories: 112, Protein: 2.6, Carbs: 24, Fats: 0.9, Fiber: 1.8,
		DietaryTags: []string{domain.DietVegan, domain.DietVegetarian, domain.DietMediterranean},
		Allergens:   []string{},
	},
	{
		ID: "quinoa", Name: "Cooked Quinoa", Category: domain.FoodCarbs,
		ServingSize: 100, Calories: 120, Protein: 4.4, Carbs: 21, Fats: 1.9, Fiber: 2.8,
		DietaryTags: []string{domain.DietVegan, domain.DietVegetarian, domain.DietMediterranean},
		Allergens:   []string{},
	},
	{
		ID: "sweet-potato", Name: "Sweet Potato", Category: domain.FoodCarbs,
		ServingSize: 100, Calories: 86, Protein: 1.6, Carbs: 20, Fats: 0.1, Fiber: 3,
		DietaryTags: []string{domain.DietVegan, domain.DietVegetarian, domain.DietPaleo, domain.DietMediterranean},
		Allergens:   []string{},
	},
	{
		ID: "whole-wheat-bread", Name: "Whole Wheat Bread", Category: domain.FoodCarbs,
		ServingSize: 50, Calories: 130, Protein: 6, Carbs: 22, Fats: 2, Fiber: 3.5,
		DietaryTags: []string{domain.DietVegan, domain.DietVegetarian, domain.DietMediterranean},
		Allergens:   []string{"gluten", "wheat"},
	},

	// Vegetables
	{
		ID: "broccoli", Name: "Broccoli", Category: domain.FoodVegetables,
		ServingSize: 100, Calories: 34, Protein: 2.8, Carbs: 7, Fats: 0.4, Fiber: 2.6,
		DietaryTags: []string{domain.DietVegan, domain.DietVegetarian, domain.DietKeto, domain.DietPaleo, domain.DietMediterranean, domain.DietLowCarb},
		Allergens:   []string{},
	},
	{
		ID: "spinach", Name: "Spinach", Category: domain.FoodVegetables,
		ServingSize: 100, Calories: 23, Protein: 2.9, Carbs: 3.6, Fats: 0.4, Fiber: 2.2,
		DietaryTags: []string{domain.DietVegan, domain.DietVegetarian, domain.DietKeto, domain.DietPaleo, domain.DietMediterranean, domain.DietLowCarb},
		Allergens:   []string{},
	},
	{
		ID: "bell-peppers", Name: "Bell Peppers", Category: domain.FoodVegetables,
		ServingSize: 100, Calories: 31, Protein: 1, Carbs: 6, Fats: 0.3, Fiber: 2.1,
		DietaryTags: []string{domain.DietVegan, domain.DietVegetarian, domain.DietKeto, domain.DietPaleo, domain.DietMediterranean, domain.DietLowCarb},
		Allergens:   []string{},
	},
	{
		ID: "zucchini", Name: "Zucchini", Category: domain.FoodVegetables,
		ServingSize: 100, Calories: 17, Protein: 1.2, Carbs: 3.1, Fats: 0.3, Fiber: 1,
		DietaryTags: []string{domain.DietVegan, domain.DietVegetarian, domain.DietKeto, domain.DietPaleo, domain.DietMediterranean, domain.DietLowCarb},
		Allergens:   []string{},
	},
	{
		ID: "cauliflower", Name: "Cauliflower", Category: domain.FoodVegetables,
		ServingSize: 100, Calories: 25, Protein: 1.9, Carbs: 5, Fats: 0.3, Fiber: 2,
		DietaryTags: []string{domain.DietVegan, domain.DietVegetarian, domain.DietKeto, domain.DietPaleo, domain.DietMediterranean, domain.DietLowCarb},
		Allergens:   []string{},
	},

	// Fruits
	{
		ID: "banana", Name: "Banana", Category: domain.FoodFruits,
		ServingSize: 118, Calories: 105, Protein: 1.3, Carbs: 27, Fats: 0.4, Fiber: 3.1,
		DietaryTags: []string{domain.DietVegan, domain.DietVegetarian, domain.DietPaleo, domain.DietMediterranean},
		Allergens:   []string{},
	},
	{
		ID: "apple", Name: "Apple", Category: domain.FoodFruits,
		ServingSize: 182, Calories: 95, Protein: 0.5, Carbs: 25, Fats: 0.3, Fiber: 4.4,
		DietaryTags: []string{domain.DietVegan, domain.DietVegetarian, domain.DietPaleo, domain.DietMediterranean},
		Allergens:   []string{},
	},
	{
		ID: "blueberries", Name: "Blueberries", Category: domain.FoodFruits,
		ServingSize: 100, Calories: 57, Protein: 0.7, Carbs: 14, Fats: 0.3, Fiber: 2.4,
		DietaryTags: []string{domain.DietVegan, domain.DietVegetarian, domain.DietKeto, domain.DietPaleo, domain.DietMediterranean, domain.DietLowCarb},
		Allergens:   []string{},
	},
	{
		ID: "strawberries", Name: "Strawberries", Category: domain.FoodFruits,
		ServingSize: 100, Calories: 32, Protein: 0.7, Carbs: 7.7, Fats: 0.3, Fiber: 2,
		DietaryTags: []string{domain.DietVegan, domain.DietVegetarian, domain.DietKeto, domain.DietPaleo, domain.DietMediterranean, domain.DietLowCarb},
		Allergens:   []string{},
	},
	{
		ID: "orange", Name: "Orange", Category: domain.FoodFruits,
		ServingSize: 131, Calories: 62, Protein: 1.2, Carbs: 15, Fats: 0.2, Fiber: 3.1,
		DietaryTags: []string{domain.DietVegan, domain.DietVegetarian, domain.DietPaleo, domain.DietMediterranean},
		Allergens:   []string{},
	},

	// Fats
	{
		ID: "olive-oil", Name: "Olive Oil", Category: domain.FoodFats,
		ServingSize: 14, Calories: 119, Protein: 0, Carbs: 0, Fats: 13.5, Fiber: 0,
		DietaryTags: []string{domain.DietVegan, domain.DietVegetarian, domain.DietKeto, domain.DietPaleo, domain.DietMediterranean, domain.DietLowCarb},
		Allergens:   []string{},
	},
	{
		ID: "avocado", Name: "Avocado", Category: domain.FoodFats,
		ServingSize: 100, Calories: 160, Protein: 2, Carbs: 8.5, Fats: 14.7, Fiber: 6.7,
		DietaryTags: []string{domain.DietVegan, domain.DietVegetarian, domain.DietKeto, domain.DietPaleo, domain.DietMediterranean, domain.DietLowCarb},
		Allergens:   []string{},
	},
	{
		ID: "almonds", Name: "Almonds", Category: domain.FoodFats,
		ServingSize: 28, Calories: 164, Protein: 6, Carbs: 6.1, Fats: 14.2, Fiber: 3.5,
		DietaryTags: []string{domain.DietVegan, domain.DietVegetarian, domain.DietKeto, domain.DietPaleo, domain.DietMediterranean, domain.DietLowCarb},
		Allergens:   []string{"tree-nuts"},
	},
	{
		ID: "walnuts", Name: "Walnuts", Category: domain.FoodFats,
		ServingSize: 28, Calories: 185, Protein: 4.3, Carbs: 3.9, Fats: 18.5, Fiber: 1.9,
		DietaryTags: []string{domain.DietVegan, domain.DietVegetarian, domain.DietKeto, domain.DietPaleo, domain.DietMediterranean, domain.DietLowCarb},
		Allergens:   []string{"tree-nuts"},
	},
	{
		ID: "peanut-butter", Name: "Peanut Butter", Category: domain.FoodFats,
		ServingSize: 32, Calories: 188, Protein: 8, Carbs: 6.3, Fats: 16, Fiber: 1.9,
		DietaryTags: []string{domain.DietVegan, domain.DietVegetarian, domain.DietKeto, domain.DietLowCarb},
		Allergens:   []string{"peanuts"},
	},
	{
		ID: "chia-seeds", Name: "Chia Seeds", Category: domain.FoodFats,
		ServingSize: 28, Calories: 138, Protein: 4.7, Carbs: 12, Fats: 8.7, Fiber: 9.8,
		DietaryTags: []string{domain.DietVegan, domain.DietVegetarian, domain.DietKeto, domain.DietPaleo, domain.DietMediterranean, domain.DietLowCarb},
		Allergens:   []string{},
	},
}
