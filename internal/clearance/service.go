package clearance

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/RMahshie/linkplan/internal/deploy"
	"github.com/RMahshie/linkplan/internal/report"
	"github.com/RMahshie/linkplan/internal/storage"
	"github.com/RMahshie/linkplan/pkg/models"
)

// Service runs the full clearance pipeline: read the deployment file,
// parse it, compute antenna heights and write the report.
type Service interface {
	Run(ctx context.Context) (*models.ClearanceResult, error)
}

type service struct {
	store storage.DeploymentStore
}

// NewService creates a clearance service backed by the given store.
func NewService(store storage.DeploymentStore) Service {
	return &service{store: store}
}

// Run executes one clearance computation. Any stage error aborts the
// run; there is no retry or partial-result reporting.
func (s *service) Run(ctx context.Context) (*models.ClearanceResult, error) {
	runID := uuid.New()
	logger := log.With().Str("runID", runID.String()).Logger()

	logger.Info().Msg("Starting clearance run")

	rc, err := s.store.ReadDeployment(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading deployment: %w", err)
	}
	defer rc.Close()

	cfg, err := deploy.Parse(rc)
	if err != nil {
		return nil, fmt.Errorf("parsing deployment: %w", err)
	}
	logger.Info().
		Float64("buildingA", cfg.BuildingAHeight).
		Float64("buildingB", cfg.BuildingBHeight).
		Float64("pathDistanceM", cfg.PathDistanceM).
		Float64("frequencyMHz", cfg.FrequencyMHz).
		Int("obstructions", len(cfg.Obstructions)).
		Msg("Deployment loaded")

	res := Compute(cfg)
	res.RunID = runID.String()

	// The path-loss diagnostic belongs to the log stream, not the
	// report file.
	logger.Info().Float64("pathLossDB", res.PathLossDB).Msg("Free-space path loss over the full path")

	if err := s.store.WriteReport(ctx, report.Render(res)); err != nil {
		return nil, fmt.Errorf("writing report: %w", err)
	}

	logger.Info().
		Float64("losHeightA", res.LOSHeightA).
		Float64("losHeightB", res.LOSHeightB).
		Float64("nlosHeightA", res.NLOSHeightA).
		Float64("nlosHeightB", res.NLOSHeightB).
		Msg("Clearance report written")

	return res, nil
}
