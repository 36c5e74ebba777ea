package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mansoorceksport/planforge/internal/domain"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	savedPlansKey = "plans:saved"
	activePlanKey = "plans:active"
)

// RedisPlanRepository implements domain.PlanRepository over Redis. The full
// saved-plan list lives under one key and is rewritten on every mutation,
// which keeps the single-active invariant a plain read-modify-write for the
// single caller this system serves.
type RedisPlanRepository struct {
	client *redis.Client
}

// NewRedisPlanRepository creates a new Redis plan repository.
func NewRedisPlanRepository(client *redis.Client) *RedisPlanRepository {
	return &RedisPlanRepository{
		client: client,
	}
}

// loadPlans reads the stored plan list. A missing key is an empty list.
func (r *RedisPlanRepository) loadPlans(ctx context.Context) ([]*domain.SavedPlan, error) {
	data, err := r.client.Get(ctx, savedPlansKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return []*domain.SavedPlan{}, nil
		}
		return nil, fmt.Errorf("failed to load saved plans: %w", err)
	}

	var plans []*domain.SavedPlan
	if err := json.Unmarshal(data, &plans); err != nil {
		return nil, fmt.Errorf("failed to unmarshal saved plans: %w", err)
	}
	return plans, nil
}

func (r *RedisPlanRepository) storePlans(ctx context.Context, plans []*domain.SavedPlan) error {
	data, err := json.Marshal(plans)
	if err != nil {
		return fmt.Errorf("failed to marshal saved plans: %w", err)
	}
	if err := r.client.Set(ctx, savedPlansKey, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to store saved plans: %w", err)
	}
	return nil
}

// Save appends a plan to the stored list.
func (r *RedisPlanRepository) Save(ctx context.Context, plan *domain.SavedPlan) error {
	tracer := otel.Tracer("redis")
	ctx, span := tracer.Start(ctx, "plans.Save",
		trace.WithAttributes(attribute.String("plan.id", plan.ID)),
	)
	defer span.End()

	plans, err := r.loadPlans(ctx)
	if err != nil {
		span.RecordError(err)
		return err
	}

	plans = append(plans, plan)
	if err := r.storePlans(ctx, plans); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// List returns all saved plans, most recently saved last.
func (r *RedisPlanRepository) List(ctx context.Context) ([]*domain.SavedPlan, error) {
	tracer := otel.Tracer("redis")
	ctx, span := tracer.Start(ctx, "plans.List")
	defer span.End()

	plans, err := r.loadPlans(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttributes(attribute.Int("plan.count", len(plans)))
	return plans, nil
}

// GetByID finds one saved plan, or ErrPlanNotFound.
func (r *RedisPlanRepository) GetByID(ctx context.Context, id string) (*domain.SavedPlan, error) {
	plans, err := r.loadPlans(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range plans {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, domain.ErrPlanNotFound
}

// Delete removes a plan by id, reporting ErrPlanNotFound for unknown ids.
func (r *RedisPlanRepository) Delete(ctx context.Context, id string) error {
	tracer := otel.Tracer("redis")
	ctx, span := tracer.Start(ctx, "plans.Delete",
		trace.WithAttributes(attribute.String("plan.id", id)),
	)
	defer span.End()

	plans, err := r.loadPlans(ctx)
	if err != nil {
		span.RecordError(err)
		return err
	}

	filtered := plans[:0]
	for _, p := range plans {
		if p.ID != id {
			filtered = append(filtered, p)
		}
	}
	if len(filtered) == len(plans) {
		return domain.ErrPlanNotFound
	}
	if err := r.storePlans(ctx, filtered); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// SetActive marks one plan active after clearing every other active flag, so
// at most one plan is ever active.
func (r *RedisPlanRepository) SetActive(ctx context.Context, id string) error {
	tracer := otel.Tracer("redis")
	ctx, span := tracer.Start(ctx, "plans.SetActive",
		trace.WithAttributes(attribute.String("plan.id", id)),
	)
	defer span.End()

	plans, err := r.loadPlans(ctx)
	if err != nil {
		span.RecordError(err)
		return err
	}

	var target *domain.SavedPlan
	for _, p := range plans {
		if p.ID == id {
			target = p
		}
		p.IsActive = false
	}
	if target == nil {
		return domain.ErrPlanNotFound
	}
	target.IsActive = true

	if err := r.storePlans(ctx, plans); err != nil {
		span.RecordError(err)
		return err
	}
	if err := r.client.Set(ctx, activePlanKey, id, 0).Err(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to store active plan id: %w", err)
	}
	return nil
}

// GetActive returns the active plan, or ErrNoActivePlan.
func (r *RedisPlanRepository) GetActive(ctx context.Context) (*domain.SavedPlan, error) {
	id, err := r.client.Get(ctx, activePlanKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, domain.ErrNoActivePlan
		}
		return nil, fmt.Errorf("failed to load active plan id: %w", err)
	}

	plan, err := r.GetByID(ctx, id)
	if err != nil {
		if err == domain.ErrPlanNotFound {
			// The active pointer survived a delete; treat as no active plan.
			return nil, domain.ErrNoActivePlan
		}
		return nil, err
	}
	return plan, nil
}
