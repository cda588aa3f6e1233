package usecases

import (
	"context"

	"servicedesk/internal/application/servicerequest/dto"
	"servicedesk/internal/domain/servicerequest"
	"servicedesk/internal/shared/errors"
	"servicedesk/internal/shared/logger"
)

type AppendAttachmentsCommand struct {
	SID         string
	Attachments []string
}

// AppendAttachmentsUseCase appends the supplied references to the request's
// attachment list as-is. References are stored verbatim; clients normalize
// them through POST /normalize-path before display if they want the servable
// form.
//
// The append is a read-then-write across two repository calls with no lock:
// two concurrent appends to the same request race and the second write wins.
type AppendAttachmentsUseCase struct {
	repo   servicerequest.Repository
	logger logger.Interface
}

func NewAppendAttachmentsUseCase(
	repo servicerequest.Repository,
	logger logger.Interface,
) *AppendAttachmentsUseCase {
	return &AppendAttachmentsUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *AppendAttachmentsUseCase) Execute(ctx context.Context, cmd AppendAttachmentsCommand) (*dto.ServiceRequestDTO, error) {
	if cmd.SID == "" {
		return nil, errors.NewValidationError("service request ID is required")
	}
	if len(cmd.Attachments) == 0 {
		return nil, errors.NewValidationError("attachments must be a non-empty array")
	}

	req, err := uc.repo.GetBySID(ctx, cmd.SID)
	if err != nil {
		return nil, err
	}

	req.AppendAttachments(cmd.Attachments)

	if err := uc.repo.Update(ctx, req); err != nil {
		uc.logger.Errorw("failed to append attachments", "sid", cmd.SID, "error", err)
		return nil, err
	}

	uc.logger.Infow("attachments appended",
		"sid", req.SID(),
		"count", len(cmd.Attachments))

	return dto.FromServiceRequest(req), nil
}
