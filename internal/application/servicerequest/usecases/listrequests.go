package usecases

import (
	"context"

	"servicedesk/internal/application/servicerequest/dto"
	"servicedesk/internal/domain/servicerequest"
	"servicedesk/internal/shared/errors"
	"servicedesk/internal/shared/logger"
)

// ListScope selects which slice of the workload a listing returns.
type ListScope string

const (
	ScopeAll       ListScope = "all"
	ScopeActive    ListScope = "active"
	ScopeCompleted ListScope = "completed"
)

type ListRequestsQuery struct {
	Scope ListScope
}

type ListRequestsUseCase struct {
	repo   servicerequest.Repository
	logger logger.Interface
}

func NewListRequestsUseCase(
	repo servicerequest.Repository,
	logger logger.Interface,
) *ListRequestsUseCase {
	return &ListRequestsUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *ListRequestsUseCase) Execute(ctx context.Context, query ListRequestsQuery) ([]*dto.ServiceRequestDTO, error) {
	var (
		requests []*servicerequest.ServiceRequest
		err      error
	)

	switch query.Scope {
	case ScopeAll, "":
		requests, err = uc.repo.ListAll(ctx)
	case ScopeActive:
		requests, err = uc.repo.ListActive(ctx)
	case ScopeCompleted:
		requests, err = uc.repo.ListCompleted(ctx)
	default:
		return nil, errors.NewValidationError("invalid list scope")
	}

	if err != nil {
		uc.logger.Errorw("failed to list service requests", "scope", string(query.Scope), "error", err)
		return nil, err
	}

	return dto.FromServiceRequests(requests), nil
}
