package usecases

import (
	"context"

	"servicedesk/internal/application/servicerequest/dto"
	"servicedesk/internal/domain/servicerequest"
	"servicedesk/internal/shared/errors"
	"servicedesk/internal/shared/logger"
)

type GetRequestQuery struct {
	SID string
}

type GetRequestUseCase struct {
	repo   servicerequest.Repository
	logger logger.Interface
}

func NewGetRequestUseCase(
	repo servicerequest.Repository,
	logger logger.Interface,
) *GetRequestUseCase {
	return &GetRequestUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *GetRequestUseCase) Execute(ctx context.Context, query GetRequestQuery) (*dto.ServiceRequestDTO, error) {
	if query.SID == "" {
		return nil, errors.NewValidationError("service request ID is required")
	}

	req, err := uc.repo.GetBySID(ctx, query.SID)
	if err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Errorw("failed to get service request", "sid", query.SID, "error", err)
		}
		return nil, err
	}

	return dto.FromServiceRequest(req), nil
}
