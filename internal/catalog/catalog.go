// Package catalog holds the static food and exercise reference tables.
// Both tables are compiled in, indexed once at construction, and read-only
// afterwards, so lookups are O(1) and need no locking.
package catalog

import (
	"github.com/mansoorceksport/planforge/internal/domain"
)

// FoodTable implements domain.FoodCatalog over the compiled-in food list.
type FoodTable struct {
	all        []*domain.Food
	byID       map[string]*domain.Food
	byCategory map[string][]*domain.Food
	byTag      map[string][]*domain.Food
}

// NewFoodTable builds the food indexes.
func NewFoodTable() *FoodTable {
	t := &FoodTable{
		all:        foods,
		byID:       make(map[string]*domain.Food, len(foods)),
		byCategory: make(map[string][]*domain.Food),
		byTag:      make(map[string][]*domain.Food),
	}
	for _, f := range foods {
		t.byID[f.ID] = f
		t.byCategory[f.Category] = append(t.byCategory[f.Category], f)
		for _, tag := range f.DietaryTags {
			t.byTag[tag] = append(t.byTag[tag], f)
		}
	}
	return t
}

func (t *FoodTable) All() []*domain.Food {
	return t.all
}

func (t *FoodTable) GetByID(id string) (*domain.Food, error) {
	f, ok := t.byID[id]
	if !ok {
		return nil, domain.ErrFoodNotFound
	}
	return f, nil
}

func (t *FoodTable) ByCategory(category string) []*domain.Food {
	return t.byCategory[category]
}

func (t *FoodTable) ByDietaryTag(tag string) []*domain.Food {
	return t.byTag[tag]
}

// ExerciseTable implements domain.ExerciseCatalog over the compiled-in
// exercise list.
type ExerciseTable struct {
	all           []*domain.Exercise
	byID          map[string]*domain.Exercise
	byCategory    map[string][]*domain.Exercise
	byDifficulty  map[string][]*domain.Exercise
	byMuscleGroup map[string][]*domain.Exercise
}

// NewExerciseTable builds the exercise indexes.
func NewExerciseTable() *ExerciseTable {
	t := &ExerciseTable{
		all:           exercises,
		byID:          make(map[string]*domain.Exercise, len(exercises)),
		byCategory:    make(map[string][]*domain.Exercise),
		byDifficulty:  make(map[string][]*domain.Exercise),
		byMuscleGroup: make(map[string][]*domain.Exercise),
	}
	for _, e := range exercises {
		t.byID[e.ID] = e
		t.byCategory[e.Category] = append(t.byCategory[e.Category], e)
		t.byDifficulty[e.Difficulty] = append(t.byDifficulty[e.Difficulty], e)
		for _, g := range e.MuscleGroups {
			t.byMuscleGroup[g] = append(t.byMuscleGroup[g], e)
		}
	}
	return t
}

func (t *ExerciseTable) All() []*domain.Exercise {
	return t.all
}

func (t *ExerciseTable) GetByID(id string) (*domain.Exercise, error) {
	e, ok := t.byID[id]
	if !ok {
		return nil, domain.ErrExerciseNotFound
	}
	return e, nil
}

func (t *ExerciseTable) ByCategory(category string) []*domain.Exercise {
	return t.byCategory[category]
}

func (t *ExerciseTable) ByDifficulty(difficulty string) []*domain.Exercise {
	return t.byDifficulty[difficulty]
}

func (t *ExerciseTable) ByMuscleGroup(group string) []*domain.Exercise {
	return t.byMuscleGroup[group]
}
