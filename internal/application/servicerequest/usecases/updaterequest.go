package usecases

import (
	"context"

	"servicedesk/internal/application/servicerequest/dto"
	"servicedesk/internal/domain/servicerequest"
	vo "servicedesk/internal/domain/servicerequest/valueobjects"
	"servicedesk/internal/shared/errors"
	"servicedesk/internal/shared/logger"
)

// UpdateRequestCommand carries a partial update. Nil pointer fields are left
// untouched on the record.
type UpdateRequestCommand struct {
	SID              string
	ProductName      *string
	SerialNumber     *string
	CustomerName     *string
	CustomerContact  *string
	IssueDescription *string
	Status           *string
	Attachments      []string
}

type UpdateRequestUseCase struct {
	repo     servicerequest.Repository
	notifier StatusNotifier
	logger   logger.Interface
}

func NewUpdateRequestUseCase(
	repo servicerequest.Repository,
	notifier StatusNotifier,
	logger logger.Interface,
) *UpdateRequestUseCase {
	return &UpdateRequestUseCase{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
	}
}

func (uc *UpdateRequestUseCase) Execute(ctx context.Context, cmd UpdateRequestCommand) (*dto.ServiceRequestDTO, error) {
	if cmd.SID == "" {
		return nil, errors.NewValidationError("service request ID is required")
	}

	req, err := uc.repo.GetBySID(ctx, cmd.SID)
	if err != nil {
		return nil, err
	}

	previousStatus := req.Status()

	update := servicerequest.Update{
		ProductName:      cmd.ProductName,
		SerialNumber:     cmd.SerialNumber,
		CustomerName:     cmd.CustomerName,
		CustomerContact:  cmd.CustomerContact,
		IssueDescription: cmd.IssueDescription,
		Attachments:      cmd.Attachments,
	}
	if cmd.Status != nil {
		status := vo.Status(*cmd.Status)
		update.Status = &status
	}

	if err := req.ApplyUpdate(update); err != nil {
		uc.logger.Errorw("invalid update service request command", "sid", cmd.SID, "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.repo.Update(ctx, req); err != nil {
		uc.logger.Errorw("failed to update service request", "sid", cmd.SID, "error", err)
		return nil, err
	}

	uc.logger.Infow("service request updated successfully",
		"sid", req.SID(),
		"status", req.Status().String())

	// Notification is best effort; a delivery failure never fails the update.
	if uc.notifier != nil && req.Status() != previousStatus {
		if err := uc.notifier.NotifyStatusChange(req, previousStatus); err != nil {
			uc.logger.Warnw("failed to send status change notification",
				"sid", req.SID(), "error", err)
		}
	}

	return dto.FromServiceRequest(req), nil
}
