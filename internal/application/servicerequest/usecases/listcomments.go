package usecases

import (
	"context"

	"servicedesk/internal/application/servicerequest/dto"
	"servicedesk/internal/domain/servicerequest"
	"servicedesk/internal/shared/errors"
	"servicedesk/internal/shared/logger"
	"servicedesk/internal/shared/services/markdown"
)

type ListCommentsQuery struct {
	RequestSID string
}

type ListCommentsUseCase struct {
	repo     servicerequest.Repository
	markdown markdown.Service
	logger   logger.Interface
}

func NewListCommentsUseCase(
	repo servicerequest.Repository,
	markdownService markdown.Service,
	logger logger.Interface,
) *ListCommentsUseCase {
	return &ListCommentsUseCase{
		repo:     repo,
		markdown: markdownService,
		logger:   logger,
	}
}

func (uc *ListCommentsUseCase) Execute(ctx context.Context, query ListCommentsQuery) ([]*dto.CommentDTO, error) {
	if query.RequestSID == "" {
		return nil, errors.NewValidationError("service request ID is required")
	}

	comments, err := uc.repo.FindCommentsByRequestSID(ctx, query.RequestSID)
	if err != nil {
		uc.logger.Errorw("failed to list comments", "request_sid", query.RequestSID, "error", err)
		return nil, err
	}

	result := make([]*dto.CommentDTO, len(comments))
	for i, c := range comments {
		result[i] = dto.FromComment(c)
		if uc.markdown == nil {
			continue
		}
		rendered, err := uc.markdown.ToHTMLSanitized(result[i].Text)
		if err != nil {
			uc.logger.Warnw("failed to render comment markdown", "comment_id", result[i].ID, "error", err)
			continue
		}
		result[i].TextHTML = rendered
	}

	return result, nil
}
