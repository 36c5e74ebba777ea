// planfile generates a comprehensive plan from command-line flags and writes
// the plain-text export, without needing the server or Redis.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/mansoorceksport/planforge/internal/catalog"
	"github.com/mansoorceksport/planforge/internal/service"
)

func main() {
	var (
		age        = flag.String("age", "", "age in years")
		gender     = flag.String("gender", "", "male, female or other")
		height     = flag.String("height", "", "height in cm")
		weight     = flag.String("weight", "", "weight in kg")
		goal       = flag.String("goal", "maintenance", "weight-loss, weight-gain, muscle-gain or maintenance")
		activity   = flag.String("activity", "sedentary", "sedentary, lightly-active, active or very-active")
		diet       = flag.String("diet", "omnivore", "dietary preference")
		allergies  = flag.String("allergies", "", "comma-separated allergy list")
		experience = flag.String("experience", "beginner", "beginner, intermediate or advanced")
		seed       = flag.Int64("seed", 0, "random seed for meal selection (0 = nondeterministic)")
		out        = flag.String("out", "", "output file (default fitness-plan-<id>.txt)")
	)
	flag.Parse()

	var newRand func() *rand.Rand
	if *seed != 0 {
		newRand = func() *rand.Rand { return rand.New(rand.NewSource(*seed)) }
	}

	planner := service.NewPlannerService(catalog.NewFoodTable(), catalog.NewExerciseTable(), newRand)

	plan, err := planner.GenerateFromRaw(service.RawPlanInput{
		Age:               *age,
		Gender:            *gender,
		Height:            *height,
		Weight:            *weight,
		Goal:              *goal,
		ActivityLevel:     *activity,
		DietaryPreference: *diet,
		Allergies:         *allergies,
		FitnessExperience: *experience,
	})
	if err != nil {
		log.Fatalf("Failed to generate plan: %v", err)
	}

	path := *out
	if path == "" {
		path = service.ExportFileName(plan)
	}

	if err := os.WriteFile(path, []byte(service.RenderPlanText(plan)), 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", path, err)
	}
	fmt.Printf("Plan %s written to %s\n", plan.PlanID, path)
}
