package usecases

import (
	"context"

	"servicedesk/internal/application/servicerequest/dto"
	"servicedesk/internal/domain/servicerequest"
	"servicedesk/internal/shared/errors"
	"servicedesk/internal/shared/id"
	"servicedesk/internal/shared/logger"
	"servicedesk/internal/shared/services/markdown"
)

type AddCommentCommand struct {
	RequestSID  string
	Text        string
	Attachments []string
}

type AddCommentUseCase struct {
	repo     servicerequest.Repository
	markdown markdown.Service
	logger   logger.Interface
}

func NewAddCommentUseCase(
	repo servicerequest.Repository,
	markdownService markdown.Service,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		repo:     repo,
		markdown: markdownService,
		logger:   logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*dto.CommentDTO, error) {
	if cmd.RequestSID == "" {
		return nil, errors.NewValidationError("service request ID is required")
	}

	// Comments only attach to existing requests.
	if _, err := uc.repo.GetBySID(ctx, cmd.RequestSID); err != nil {
		return nil, err
	}

	sid, err := id.NewCommentID()
	if err != nil {
		uc.logger.Errorw("failed to generate comment ID", "error", err)
		return nil, errors.NewInternalError("failed to generate identifier")
	}

	comment, err := servicerequest.NewComment(sid, cmd.RequestSID, cmd.Text, cmd.Attachments)
	if err != nil {
		uc.logger.Errorw("invalid add comment command", "request_sid", cmd.RequestSID, "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.repo.SaveComment(ctx, comment); err != nil {
		uc.logger.Errorw("failed to save comment", "request_sid", cmd.RequestSID, "error", err)
		return nil, err
	}

	uc.logger.Infow("comment added", "sid", comment.SID(), "request_sid", cmd.RequestSID)

	result := dto.FromComment(comment)
	uc.renderHTML(result)
	return result, nil
}

func (uc *AddCommentUseCase) renderHTML(c *dto.CommentDTO) {
	if uc.markdown == nil {
		return
	}
	rendered, err := uc.markdown.ToHTMLSanitized(c.Text)
	if err != nil {
		// The raw text is still served; rendering is an enhancement.
		uc.logger.Warnw("failed to render comment markdown", "comment_id", c.ID, "error", err)
		return
	}
	c.TextHTML = rendered
}
