package usecases

import (
	"context"

	"servicedesk/internal/application/servicerequest/dto"
	"servicedesk/internal/domain/servicerequest"
	vo "servicedesk/internal/domain/servicerequest/valueobjects"
)

type CreateRequestExecutor interface {
	Execute(ctx context.Context, cmd CreateRequestCommand) (*dto.ServiceRequestDTO, error)
}

type GetRequestExecutor interface {
	Execute(ctx context.Context, query GetRequestQuery) (*dto.ServiceRequestDTO, error)
}

type ListRequestsExecutor interface {
	Execute(ctx context.Context, query ListRequestsQuery) ([]*dto.ServiceRequestDTO, error)
}

type SearchRequestsExecutor interface {
	Execute(ctx context.Context, query SearchRequestsQuery) ([]*dto.ServiceRequestDTO, error)
}

type UpdateRequestExecutor interface {
	Execute(ctx context.Context, cmd UpdateRequestCommand) (*dto.ServiceRequestDTO, error)
}

type DeleteRequestExecutor interface {
	Execute(ctx context.Context, cmd DeleteRequestCommand) error
}

type AddCommentExecutor interface {
	Execute(ctx context.Context, cmd AddCommentCommand) (*dto.CommentDTO, error)
}

type ListCommentsExecutor interface {
	Execute(ctx context.Context, query ListCommentsQuery) ([]*dto.CommentDTO, error)
}

type AppendAttachmentsExecutor interface {
	Execute(ctx context.Context, cmd AppendAttachmentsCommand) (*dto.ServiceRequestDTO, error)
}

type GetMetricsExecutor interface {
	Execute(ctx context.Context) (*dto.MetricsDTO, error)
}

// StatusNotifier is told after a request's status changed. Implementations
// must be safe to call on every update; delivery failures stay internal.
type StatusNotifier interface {
	NotifyStatusChange(req *servicerequest.ServiceRequest, previous vo.Status) error
}
