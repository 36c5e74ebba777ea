package domain

import (
	"context"
	"time"
)

// NutritionTargets holds the derived daily targets. Recomputed on every
// generation, never mutated in place.
type NutritionTargets struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"` // grams
	Carbs    int `json:"carbs"`   // grams
	Fats     int `json:"fats"`    // grams
	Fiber    int `json:"fiber"`   // grams
}

// MealPlanItem references a catalog food (shared, not owned) scaled to a
// quantity in grams.
type MealPlanItem struct {
	Food     *Food   `json:"food"`
	Quantity float64 `json:"quantity"` // grams
	Calories int     `json:"calories"`
	Protein  int     `json:"protein"`
	Carbs    int     `json:"carbs"`
	Fats     int     `json:"fats"`
}

// DailyMealPlan groups items into the four meal slots plus aggregate totals.
type DailyMealPlan struct {
	Breakfast []MealPlanItem   `json:"breakfast"`
	Lunch     []MealPlanItem   `json:"lunch"`
	Dinner    []MealPlanItem   `json:"dinner"`
	Snacks    []MealPlanItem   `json:"snacks"`
	Totals    NutritionTargets `json:"totals"`
}

// AllItems flattens the four slots in order.
func (m *DailyMealPlan) AllItems() []MealPlanItem {
	items := make([]MealPlanItem, 0, len(m.Breakfast)+len(m.Lunch)+len(m.Dinner)+len(m.Snacks))
	items = append(items, m.Breakfast...)
	items = append(items, m.Lunch...)
	items = append(items, m.Dinner...)
	items = append(items, m.Snacks...)
	return items
}

// WorkoutExercise is one filled slot in a workout day.
type WorkoutExercise struct {
	Exercise *Exercise `json:"exercise"`
	Sets     int       `json:"sets"`
	Reps     string    `json:"reps"` // range or duration, e.g. "8-12" or "30s"
	Rest     string    `json:"rest"`
	Notes    string    `json:"notes,omitempty"`
}

// WorkoutDay groups exercises under a day label.
type WorkoutDay struct {
	Day       string            `json:"day"`
	Focus     string            `json:"focus"`
	Exercises []WorkoutExercise `json:"exercises"`
	Duration  string            `json:"duration"`
	Warmup    []string          `json:"warmup"`
	Cooldown  []string          `json:"cooldown"`
}

// WeeklyWorkoutPlan aggregates the training days for one week.
type WeeklyWorkoutPlan struct {
	Days     []WorkoutDay `json:"days"`
	RestDays []string     `json:"rest_days"`
	Notes    []string     `json:"notes"`
}

// ComprehensivePlan is the root aggregate returned to the caller. It is
// created fresh on each generation and never mutated afterwards.
type ComprehensivePlan struct {
	User             UserProfile       `json:"user"`
	NutritionTargets NutritionTargets  `json:"nutrition_targets"`
	MealPlan         DailyMealPlan     `json:"meal_plan"`
	WorkoutPlan      WeeklyWorkoutPlan `json:"workout_plan"`
	Recommendations  []string          `json:"recommendations"`
	CreatedAt        time.Time         `json:"created_at"`
	PlanID           string            `json:"plan_id"`
}

// SavedPlan wraps a plan persisted in the external key-value store.
type SavedPlan struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Plan     ComprehensivePlan `json:"plan"`
	SavedAt  time.Time         `json:"saved_at"`
	IsActive bool              `json:"is_active"`
}

// PlanRepository is the persistence contract for saved plans. Operations are
// read-modify-write atomic with respect to a single caller; at most one plan
// is active at a time.
type PlanRepository interface {
	Save(ctx context.Context, plan *SavedPlan) error
	// List returns saved plans, most recently saved last.
	List(ctx context.Context) ([]*SavedPlan, error)
	GetByID(ctx context.Context, id string) (*SavedPlan, error)
	// Delete returns ErrPlanNotFound if the id is unknown.
	Delete(ctx context.Context, id string) error
	// SetActive marks one plan active and clears every other active flag.
	SetActive(ctx context.Context, id string) error
	// GetActive returns ErrNoActivePlan when no plan is marked active.
	GetActive(ctx context.Context) (*SavedPlan, error)
}
