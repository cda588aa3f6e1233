package usecases

import (
	"context"

	"servicedesk/internal/application/servicerequest/dto"
	"servicedesk/internal/domain/servicerequest"
	vo "servicedesk/internal/domain/servicerequest/valueobjects"
	"servicedesk/internal/shared/errors"
	"servicedesk/internal/shared/id"
	"servicedesk/internal/shared/logger"
)

type CreateRequestCommand struct {
	ProductName      string
	SerialNumber     string
	CustomerName     string
	CustomerContact  string
	IssueDescription string
	Status           string
	Attachments      []string
}

type CreateRequestUseCase struct {
	repo   servicerequest.Repository
	logger logger.Interface
}

func NewCreateRequestUseCase(
	repo servicerequest.Repository,
	logger logger.Interface,
) *CreateRequestUseCase {
	return &CreateRequestUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *CreateRequestUseCase) Execute(ctx context.Context, cmd CreateRequestCommand) (*dto.ServiceRequestDTO, error) {
	uc.logger.Infow("executing create service request use case",
		"product_name", cmd.ProductName,
		"serial_number", cmd.SerialNumber)

	sid, err := id.NewServiceRequestID()
	if err != nil {
		uc.logger.Errorw("failed to generate service request ID", "error", err)
		return nil, errors.NewInternalError("failed to generate identifier")
	}

	req, err := servicerequest.NewServiceRequest(
		sid,
		cmd.ProductName,
		cmd.SerialNumber,
		cmd.CustomerName,
		cmd.CustomerContact,
		cmd.IssueDescription,
		vo.Status(cmd.Status),
		cmd.Attachments,
	)
	if err != nil {
		uc.logger.Errorw("invalid create service request command", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.repo.Save(ctx, req); err != nil {
		uc.logger.Errorw("failed to save service request", "error", err)
		return nil, err
	}

	uc.logger.Infow("service request created successfully", "sid", req.SID())

	return dto.FromServiceRequest(req), nil
}
