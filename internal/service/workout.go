package service

import (
	"github.com/mansoorceksport/planforge/internal/domain"
)

var defaultWarmup = []string{
	"5-10 minutes light cardio (walking, marching in place)",
	"Dynamic stretching (arm circles, leg swings)",
	"Joint mobility exercises",
}

var defaultCooldown = []string{
	"5-10 minutes light walking",
	"Static stretching for worked muscles",
	"Deep breathing exercises",
}

// slot pool selectors
type poolKind int

const (
	poolDifficulty poolKind = iota // the experience-filtered catalog
	poolDumbbell
	poolBarbell
)

// exerciseSlot is one position in a template day. Resolution prefers the
// named exercise within its pool; when the id is absent it falls back to a
// position in the same pool, and an exhausted pool skips the slot entirely.
type exerciseSlot struct {
	pool        poolKind
	preferredID string
	fallback    int
	sets        int
	reps        string
	rest        string
	notes       string
}

type templateDay struct {
	day      string
	focus    string
	duration string
	slots    []exerciseSlot
}

type weeklyTemplate struct {
	difficulty string
	days       []templateDay
	restDays   []string
	notes      []string
}

// WorkoutService fills one of three hand-authored weekly templates, selected
// by fitness experience, from the exercise catalog.
type WorkoutService struct {
	exercises domain.ExerciseCatalog
}

func NewWorkoutService(exercises domain.ExerciseCatalog) *WorkoutService {
	return &WorkoutService{exercises: exercises}
}

// GenerateWorkoutPlan selects the weekly template for the profile's
// experience level and resolves every exercise slot. Deterministic: the same
// profile always produces the same plan.
func (s *WorkoutService) GenerateWorkoutPlan(user domain.UserProfile) domain.WeeklyWorkoutPlan {
	tpl := templateFor(user.FitnessExperience)

	pools := map[poolKind][]*domain.Exercise{
		poolDifficulty: s.exercises.ByDifficulty(tpl.difficulty),
		poolDumbbell:   s.exercises.ByCategory(domain.ExerciseDumbbell),
		poolBarbell:    s.exercises.ByCategory(domain.ExerciseBarbell),
	}

	days := make([]domain.WorkoutDay, 0, len(tpl.days))
	for _, td := range tpl.days {
		exercises := make([]domain.WorkoutExercise, 0, len(td.slots))
		for _, slot := range td.slots {
			ex := resolveSlot(pools[slot.pool], slot)
			if ex == nil {
				continue // no suitable exercise, skip rather than fail
			}
			exercises = append(exercises, domain.WorkoutExercise{
				Exercise: ex,
				Sets:     slot.sets,
				Reps:     slot.reps,
				Rest:     slot.rest,
				Notes:    slot.notes,
			})
		}
		days = append(days, domain.WorkoutDay{
			Day:       td.day,
			Focus:     td.focus,
			Duration:  td.duration,
			Warmup:    defaultWarmup,
			Cooldown:  defaultCooldown,
			Exercises: exercises,
		})
	}

	return domain.WeeklyWorkoutPlan{
		Days:     days,
		RestDays: tpl.restDays,
		Notes:    tpl.notes,
	}
}

// resolveSlot looks up the preferred exercise by id within the pool, then
// falls back to the slot's position in the same pool. Both misses mean the
// slot stays empty.
func resolveSlot(pool []*domain.Exercise, slot exerciseSlot) *domain.Exercise {
	for _, ex := range pool {
		if ex.ID == slot.preferredID {
			return ex
		}
	}
	if slot.fallback < len(pool) {
		return pool[slot.fallback]
	}
	return nil
}

func templateFor(experience string) weeklyTemplate {
	switch experience {
	case domain.ExperienceIntermediate:
		return intermediateTemplate
	case domain.ExperienceAdvanced:
		return advancedTemplate
	default:
		return beginnerTemplate
	}
}

var beginnerTemplate = weeklyTemplate{
	difficulty: domain.ExperienceBeginner,
	days: []templateDay{
		{
			day: "Monday", focus: "Full Body Strength", duration: "30-40 minutes",
			slots: []exerciseSlot{
				{pool: poolDifficulty, preferredID: "squats", fallback: 0, sets: 3, reps: "8-12", rest: "60s", notes: "Focus on proper form over speed"},
				{pool: poolDifficulty, preferredID: "push-ups", fallback: 1, sets: 3, reps: "5-10", rest: "60s", notes: "Modify on knees if needed"},
				{pool: poolDifficulty, preferredID: "plank", fallback: 2, sets: 3, reps: "20-30s", rest: "60s"},
			},
		},
		{
			day: "Wednesday", focus: "Cardio & Flexibility", duration: "25-35 minutes",
			slots: []exerciseSlot{
				{pool: poolDifficulty, preferredID: "jumping-jacks", fallback: 0, sets: 3, reps: "30s", rest: "30s"},
				{pool: poolDifficulty, preferredID: "mountain-climbers", fallback: 1, sets: 3, reps: "15s", rest: "45s"},
			},
		},
		{
			day: "Friday", focus: "Functional Movement", duration: "30-40 minutes",
			slots: []exerciseSlot{
				{pool: poolDifficulty, preferredID: "lunges", fallback: 0, sets: 3, reps: "6-10 each leg", rest: "60s"},
			},
		},
	},
	restDays: []string{"Tuesday", "Thursday", "Saturday", "Sunday"},
	notes: []string{
		"Start with lighter intensity and focus on learning proper form",
		"Rest days are important for recovery - consider light walking or stretching",
		"Progress gradually by adding reps or time before adding weight",
	},
}

var intermediateTemplate = weeklyTemplate{
	difficulty: domain.ExperienceIntermediate,
	days: []templateDay{
		{
			day: "Monday", focus: "Upper Body", duration: "45-60 minutes",
			slots: []exerciseSlot{
				{pool: poolDifficulty, preferredID: "push-ups", fallback: 0, sets: 4, reps: "12-15", rest: "60s"},
				{pool: poolDumbbell, preferredID: "dumbbell-rows", fallback: 0, sets: 4, reps: "10-12", rest: "60s"},
				{pool: poolDumbbell, preferredID: "dumbbell-press", fallback: 1, sets: 3, reps: "10-12", rest: "60s"},
			},
		},
		{
			day: "Wednesday", focus: "Lower Body", duration: "45-60 minutes",
			slots: []exerciseSlot{
				{pool: poolDumbbell, preferredID: "goblet-squats", fallback: 0, sets: 4, reps: "12-15", rest: "60s"},
				{pool: poolDifficulty, preferredID: "lunges", fallback: 1, sets: 4, reps: "10-12 each leg", rest: "60s"},
			},
		},
		{
			day: "Friday", focus: "HIIT & Core", duration: "30-40 minutes",
			slots: []exerciseSlot{
				{pool: poolDifficulty, preferredID: "burpees", fallback: 0, sets: 4, reps: "8-12", rest: "45s"},
				{pool: poolDifficulty, preferredID: "mountain-climbers", fallback: 1, sets: 4, reps: "20s", rest: "40s"},
			},
		},
	},
	restDays: []string{"Tuesday", "Thursday", "Saturday", "Sunday"},
	notes: []string{
		"Focus on progressive overload - gradually increase weight or reps",
		"Active recovery on rest days with light cardio or yoga",
		"Track your workouts to monitor progress",
	},
}

var advancedTemplate = weeklyTemplate{
	difficulty: domain.ExperienceAdvanced,
	days: []templateDay{
		{
			day: "Monday", focus: "Chest & Triceps", duration: "60-75 minutes",
			slots: []exerciseSlot{
				{pool: poolBarbell, preferredID: "bench-press", fallback: 0, sets: 4, reps: "6-8", rest: "90s", notes: "Use a spotter for heavy sets"},
				{pool: poolDifficulty, preferredID: "dumbbell-press", fallback: 0, sets: 4, reps: "8-10", rest: "75s"},
			},
		},
		{
			day: "Tuesday", focus: "Back & Biceps", duration: "60-75 minutes",
			slots: []exerciseSlot{
				{pool: poolDifficulty, preferredID: "dumbbell-rows", fallback: 0, sets: 4, reps: "8-10", rest: "75s"},
			},
		},
		{
			day: "Thursday", focus: "Legs & Glutes", duration: "60-75 minutes",
			slots: []exerciseSlot{
				{pool: poolBarbell, preferredID: "barbell-squats", fallback: 0, sets: 5, reps: "6-8", rest: "2-3 min", notes: "Focus on depth and control"},
				{pool: poolBarbell, preferredID: "deadlifts", fallback: 1, sets: 4, reps: "5-6", rest: "2-3 min", notes: "Maintain neutral spine throughout"},
			},
		},
	},
	restDays: []string{"Wednesday", "Friday", "Saturday", "Sunday"},
	notes: []string{
		"Periodize your training with deload weeks every 4-6 weeks",
		"Consider working with a trainer for form checks on compound movements",
		"Track all lifts and aim for progressive overload",
	},
}
