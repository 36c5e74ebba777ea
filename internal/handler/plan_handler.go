package handler

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mansoorceksport/planforge/internal/domain"
	"github.com/mansoorceksport/planforge/internal/service"
	"golang.org/x/sync/errgroup"
)

type PlanHandler struct {
	planner  *service.PlannerService
	planRepo domain.PlanRepository
}

func NewPlanHandler(planner *service.PlannerService, planRepo domain.PlanRepository) *PlanHandler {
	return &PlanHandler{
		planner:  planner,
		planRepo: planRepo,
	}
}

// GeneratePlan turns raw form input into a comprehensive plan. Invalid enum
// or numeric fields are a 400 naming the offending field; generation itself
// never partially fails.
func (h *PlanHandler) GeneratePlan(c *fiber.Ctx) error {
	var input service.RawPlanInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}

	plan, err := h.planner.GenerateFromRaw(input)
	if err != nil {
		var invalid *domain.InvalidInputError
		if errors.As(err, &invalid) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": invalid.Error(),
				"field": invalid.Field,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(plan)
}

type savePlanRequest struct {
	Name string                   `json:"name"`
	Plan domain.ComprehensivePlan `json:"plan"`
}

// SavePlan persists a generated plan under an optional display name.
func (h *PlanHandler) SavePlan(c *fiber.Ctx) error {
	var req savePlanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}
	if req.Plan.PlanID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "plan is missing its id"})
	}

	name := req.Name
	if name == "" {
		name = fmt.Sprintf("Plan %s", time.Now().Format("1/2/2006"))
	}

	saved := &domain.SavedPlan{
		ID:       req.Plan.PlanID,
		Name:     name,
		Plan:     req.Plan,
		SavedAt:  time.Now().UTC(),
		IsActive: false,
	}
	if err := h.planRepo.Save(c.Context(), saved); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": saved.ID})
}

// ListPlans returns every saved plan, most recently saved last.
func (h *PlanHandler) ListPlans(c *fiber.Ctx) error {
	plans, err := h.planRepo.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(plans)
}

// GetPlansOverview returns the saved list and the active plan in one
// response; the two independent reads fan out concurrently.
func (h *PlanHandler) GetPlansOverview(c *fiber.Ctx) error {
	var (
		plans  []*domain.SavedPlan
		active *domain.SavedPlan
	)

	g, ctx := errgroup.WithContext(c.Context())
	g.Go(func() error {
		var err error
		plans, err = h.planRepo.List(ctx)
		return err
	})
	g.Go(func() error {
		p, err := h.planRepo.GetActive(ctx)
		if err != nil {
			if errors.Is(err, domain.ErrNoActivePlan) {
				return nil
			}
			return err
		}
		active = p
		return nil
	})
	if err := g.Wait(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"plans":  plans,
		"active": active,
	})
}

func (h *PlanHandler) GetPlan(c *fiber.Ctx) error {
	id := c.Params("id")
	plan, err := h.planRepo.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrPlanNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "plan not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(plan)
}

func (h *PlanHandler) DeletePlan(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.planRepo.Delete(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrPlanNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "plan not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "deleted"})
}

func (h *PlanHandler) ActivatePlan(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.planRepo.SetActive(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrPlanNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "plan not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "activated"})
}

func (h *PlanHandler) GetActivePlan(c *fiber.Ctx) error {
	plan, err := h.planRepo.GetActive(c.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNoActivePlan) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no active plan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(plan)
}

// ExportPlan renders a saved plan as the plain-text document.
func (h *PlanHandler) ExportPlan(c *fiber.Ctx) error {
	id := c.Params("id")
	saved, err := h.planRepo.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrPlanNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "plan not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	text := service.RenderPlanText(&saved.Plan)
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", service.ExportFileName(&saved.Plan)))
	return c.SendString(text)
}
