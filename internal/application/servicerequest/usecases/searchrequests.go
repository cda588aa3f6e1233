package usecases

import (
	"context"

	"servicedesk/internal/application/servicerequest/dto"
	"servicedesk/internal/domain/servicerequest"
	"servicedesk/internal/shared/errors"
	"servicedesk/internal/shared/logger"
)

type SearchRequestsQuery struct {
	Query string
}

type SearchRequestsUseCase struct {
	repo   servicerequest.Repository
	logger logger.Interface
}

func NewSearchRequestsUseCase(
	repo servicerequest.Repository,
	logger logger.Interface,
) *SearchRequestsUseCase {
	return &SearchRequestsUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *SearchRequestsUseCase) Execute(ctx context.Context, query SearchRequestsQuery) ([]*dto.ServiceRequestDTO, error) {
	if query.Query == "" {
		return nil, errors.NewValidationError("search query is required")
	}

	requests, err := uc.repo.Search(ctx, query.Query)
	if err != nil {
		uc.logger.Errorw("failed to search service requests", "query", query.Query, "error", err)
		return nil, err
	}

	return dto.FromServiceRequests(requests), nil
}
