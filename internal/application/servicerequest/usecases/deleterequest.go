package usecases

import (
	"context"

	"servicedesk/internal/domain/servicerequest"
	"servicedesk/internal/shared/errors"
	"servicedesk/internal/shared/logger"
)

type DeleteRequestCommand struct {
	SID string
}

type DeleteRequestUseCase struct {
	repo   servicerequest.Repository
	logger logger.Interface
}

func NewDeleteRequestUseCase(
	repo servicerequest.Repository,
	logger logger.Interface,
) *DeleteRequestUseCase {
	return &DeleteRequestUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *DeleteRequestUseCase) Execute(ctx context.Context, cmd DeleteRequestCommand) error {
	if cmd.SID == "" {
		return errors.NewValidationError("service request ID is required")
	}

	if err := uc.repo.Delete(ctx, cmd.SID); err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Errorw("failed to delete service request", "sid", cmd.SID, "error", err)
		}
		return err
	}

	uc.logger.Infow("service request deleted", "sid", cmd.SID)
	return nil
}
