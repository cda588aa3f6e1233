package usecases

import (
	"context"

	"servicedesk/internal/application/servicerequest/dto"
	"servicedesk/internal/domain/servicerequest"
	"servicedesk/internal/shared/logger"
)

// GetMetricsUseCase derives the workload counters from the active listing on
// every call. Nothing is cached or stored.
type GetMetricsUseCase struct {
	repo   servicerequest.Repository
	logger logger.Interface
}

func NewGetMetricsUseCase(
	repo servicerequest.Repository,
	logger logger.Interface,
) *GetMetricsUseCase {
	return &GetMetricsUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *GetMetricsUseCase) Execute(ctx context.Context) (*dto.MetricsDTO, error) {
	active, err := uc.repo.ListActive(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list active service requests for metrics", "error", err)
		return nil, err
	}

	return dto.FromMetrics(servicerequest.ComputeMetrics(active)), nil
}
