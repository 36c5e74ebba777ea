package catalog

import (
	"testing"

	"github.com/mansoorceksport/planforge/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFoodTableLookups(t *testing.T) {
	table := NewFoodTable()

	t.Run("get by id", func(t *testing.T) {
		food, err := table.GetByID("chicken-breast")
		require.NoError(t, err)
		assert.Equal(t, "Chicken Breast", food.Name)
		assert.Equal(t, domain.FoodProtein, food.Category)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := table.GetByID("unobtainium")
		assert.ErrorIs(t, err, domain.ErrFoodNotFound)
	})

	t.Run("by category covers every slot", func(t *testing.T) {
		for _, category := range []string{
			domain.FoodProtein, domain.FoodCarbs, domain.FoodVegetables,
			domain.FoodFruits, domain.FoodFats,
		} {
			assert.NotEmpty(t, table.ByCategory(category), "category %s", category)
		}
	})

	t.Run("by dietary tag", func(t *testing.T) {
		vegan := table.ByDietaryTag(domain.DietVegan)
		require.NotEmpty(t, vegan)
		ids := make(map[string]bool, len(vegan))
		for _, f := range vegan {
			assert.True(t, f.HasTag(domain.DietVegan))
			ids[f.ID] = true
		}
		assert.True(t, ids["tofu"])
		assert.False(t, ids["chicken-breast"])
	})
}

func TestFoodTableDietCoverage(t *testing.T) {
	table := NewFoodTable()

	// Every restricted diet needs at least a protein source, or the meal
	// composer would produce empty meals.
	diets := []string{
		domain.DietVegetarian, domain.DietVegan, domain.DietKeto,
		domain.DietPaleo, domain.DietMediterranean, domain.DietLowCarb,
	}
	for _, diet := range diets {
		found := false
		for _, f := range table.ByDietaryTag(diet) {
			if f.Category == domain.FoodProtein {
				found = true
				break
			}
		}
		assert.True(t, found, "no protein source for diet %s", diet)
	}
}

func TestFoodAllergenChecks(t *testing.T) {
	table := NewFoodTable()

	salmon, err := table.GetByID("salmon")
	require.NoError(t, err)
	assert.True(t, salmon.ContainsAnyAllergen([]string{"fish"}))
	assert.False(t, salmon.ContainsAnyAllergen([]string{"dairy", "gluten"}))

	rice, err := table.GetByID("brown-rice")
	require.NoError(t, err)
	assert.False(t, rice.ContainsAnyAllergen([]string{"fish", "dairy", "gluten"}))
}

func TestExerciseTableLookups(t *testing.T) {
	table := NewExerciseTable()

	t.Run("get by id", func(t *testing.T) {
		ex, err := table.GetByID("push-ups")
		require.NoError(t, err)
		assert.Equal(t, "Push-ups", ex.Name)
		assert.Equal(t, domain.ExerciseBodyweight, ex.Category)
		assert.NotEmpty(t, ex.Instructions)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := table.GetByID("pogo-jumps")
		assert.ErrorIs(t, err, domain.ErrExerciseNotFound)
	})

	t.Run("by category", func(t *testing.T) {
		barbell := table.ByCategory(domain.ExerciseBarbell)
		require.Len(t, barbell, 3)
		for _, ex := range barbell {
			assert.Equal(t, domain.ExerciseBarbell, ex.Category)
		}
	})

	t.Run("by difficulty", func(t *testing.T) {
		for _, difficulty := range []string{
			domain.ExperienceBeginner, domain.ExperienceIntermediate, domain.ExperienceAdvanced,
		} {
			pool := table.ByDifficulty(difficulty)
			require.NotEmpty(t, pool, "difficulty %s", difficulty)
			for _, ex := range pool {
				assert.Equal(t, difficulty, ex.Difficulty)
			}
		}
	})

	t.Run("by muscle group", func(t *testing.T) {
		chest := table.ByMuscleGroup("chest")
		require.NotEmpty(t, chest)
		ids := make(map[string]bool, len(chest))
		for _, ex := range chest {
			assert.True(t, ex.TargetsMuscleGroup("chest"))
			ids[ex.ID] = true
		}
		assert.True(t, ids["push-ups"])
		assert.True(t, ids["bench-press"])
	})
}
