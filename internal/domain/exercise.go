package domain

// Exercise categories
const (
	ExerciseBodyweight = "bodyweight"
	ExerciseDumbbell   = "dumbbell"
	ExerciseBarbell    = "barbell"
	ExerciseCardio     = "cardio"
)

// Exercise is a static catalog entry describing one movement.
type Exercise struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	MuscleGroups []string `json:"muscle_groups"`
	Equipment    []string `json:"equipment"` // empty = none needed
	Difficulty   string   `json:"difficulty"`
	Instructions []string `json:"instructions"`
	Tips         []string `json:"tips"`
	Variations   []string `json:"variations"`
}

// TargetsMuscleGroup checks whether the exercise works a muscle group.
func (e *Exercise) TargetsMuscleGroup(group string) bool {
	for _, g := range e.MuscleGroups {
		if g == group {
			return true
		}
	}
	return false
}

// ExerciseCatalog exposes the read-only exercise table.
type ExerciseCatalog interface {
	All() []*Exercise
	GetByID(id string) (*Exercise, error)
	ByCategory(category string) []*Exercise
	ByDifficulty(difficulty string) []*Exercise
	ByMuscleGroup(group string) []*Exercise
}
