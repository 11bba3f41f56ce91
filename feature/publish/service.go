package publish

import (
	"context"
	"fmt"
	"sync"

	"site-server/core/reconcile"
	"site-server/core/storage"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Service mirrors the site root into the storage bucket.
type Service struct {
	client storage.Client
	spec   *reconcile.Spec
	logger *zap.Logger

	plans   singleflight.Group
	applyMu sync.Mutex
}

// ApplyReport describes an executed publish.
type ApplyReport struct {
	Status   string                `json:"status"`
	Executed int                   `json:"executed"`
	Summary  reconcile.PlanSummary `json:"summary"`
}

// NewService creates a new publish service.
func NewService(client storage.Client, spec *reconcile.Spec, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		spec:   spec,
		logger: logger,
	}
}

// Plan compares the root with the bucket without mutating anything.
// Concurrent calls with the same purge flag share one computation, which is
// not cancelled when one of the callers goes away.
func (s *Service) Plan(ctx context.Context, purge bool) (*reconcile.ReconcilePlan, error) {
	key := "plan"
	if purge {
		key = "plan:purge"
	}

	v, err, shared := s.plans.Do(key, func() (any, error) {
		opts := reconcile.ReconcileOptions{DryRun: true, DoPurge: purge}
		return reconcile.ReconcileWithPlan(context.WithoutCancel(ctx), s.spec, s.client, opts)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to plan publish: %w", err)
	}
	if shared {
		s.logger.Debug("Publish plan shared between callers", zap.String("key", key))
	}
	return v.(*reconcile.ReconcilePlan), nil
}

// Apply plans and executes a publish. Only one apply runs at a time.
func (s *Service) Apply(ctx context.Context, purge bool) (*ApplyReport, error) {
	s.applyMu.Lock()
	defer s.applyMu.Unlock()

	opts := reconcile.ReconcileOptions{DoPurge: purge, Confirmed: true}
	plan, err := reconcile.ReconcileWithPlan(ctx, s.spec, s.client, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to plan publish: %w", err)
	}

	s.logger.Info("Applying publish plan",
		zap.String("bucket", s.spec.Storage.Bucket),
		zap.Int("upload_actions", plan.Summary.UploadActions),
		zap.Int("delete_actions", plan.Summary.DeleteActions),
	)

	executed, err := reconcile.ApplyPlan(ctx, s.spec, s.client, plan, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to apply publish after %d actions: %w", executed, err)
	}

	return &ApplyReport{
		Status:   "applied",
		Executed: executed,
		Summary:  plan.Summary,
	}, nil
}
