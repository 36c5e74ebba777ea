package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/mansoorceksport/planforge/internal/domain"
)

// CatalogHandler serves the static food and exercise reference tables.
type CatalogHandler struct {
	foods     domain.FoodCatalog
	exercises domain.ExerciseCatalog
}

func NewCatalogHandler(foods domain.FoodCatalog, exercises domain.ExerciseCatalog) *CatalogHandler {
	return &CatalogHandler{
		foods:     foods,
		exercises: exercises,
	}
}

// ListFoods supports category and diet query filters; diet narrows category
// when both are present.
func (h *CatalogHandler) ListFoods(c *fiber.Ctx) error {
	category := c.Query("category")
	diet := c.Query("diet")

	var foods []*domain.Food
	switch {
	case category != "":
		foods = h.foods.ByCategory(category)
	case diet != "":
		foods = h.foods.ByDietaryTag(diet)
	default:
		foods = h.foods.All()
	}

	if category != "" && diet != "" {
		filtered := make([]*domain.Food, 0, len(foods))
		for _, f := range foods {
			if f.HasTag(diet) {
				filtered = append(filtered, f)
			}
		}
		foods = filtered
	}
	return c.JSON(foods)
}

func (h *CatalogHandler) GetFood(c *fiber.Ctx) error {
	food, err := h.foods.GetByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrFoodNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "food not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(food)
}

// ListExercises supports category, difficulty and muscle_group filters; only
// the first supplied filter applies, matching the catalog's single-key
// indexes.
func (h *CatalogHandler) ListExercises(c *fiber.Ctx) error {
	var exercises []*domain.Exercise
	switch {
	case c.Query("category") != "":
		exercises = h.exercises.ByCategory(c.Query("category"))
	case c.Query("difficulty") != "":
		exercises = h.exercises.ByDifficulty(c.Query("difficulty"))
	case c.Query("muscle_group") != "":
		exercises = h.exercises.ByMuscleGroup(c.Query("muscle_group"))
	default:
		exercises = h.exercises.All()
	}
	return c.JSON(exercises)
}

func (h *CatalogHandler) GetExercise(c *fiber.Ctx) error {
	exercise, err := h.exercises.GetByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrExerciseNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "exercise not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(exercise)
}
