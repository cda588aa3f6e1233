package usecases

import (
	"context"

	"servicedesk/internal/domain/servicerequest"
	vo "servicedesk/internal/domain/servicerequest/valueobjects"
)

type mockRepository struct {
	SaveFunc                     func(ctx context.Context, r *servicerequest.ServiceRequest) error
	UpdateFunc                   func(ctx context.Context, r *servicerequest.ServiceRequest) error
	DeleteFunc                   func(ctx context.Context, sid string) error
	GetBySIDFunc                 func(ctx context.Context, sid string) (*servicerequest.ServiceRequest, error)
	ListAllFunc                  func(ctx context.Context) ([]*servicerequest.ServiceRequest, error)
	ListActiveFunc               func(ctx context.Context) ([]*servicerequest.ServiceRequest, error)
	ListCompletedFunc            func(ctx context.Context) ([]*servicerequest.ServiceRequest, error)
	SearchFunc                   func(ctx context.Context, query string) ([]*servicerequest.ServiceRequest, error)
	SaveCommentFunc              func(ctx context.Context, c *servicerequest.Comment) error
	FindCommentsByRequestSIDFunc func(ctx context.Context, requestSID string) ([]*servicerequest.Comment, error)
}

func (m *mockRepository) Save(ctx context.Context, r *servicerequest.ServiceRequest) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, r)
	}
	return nil
}

func (m *mockRepository) Update(ctx context.Context, r *servicerequest.ServiceRequest) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, r)
	}
	return nil
}

func (m *mockRepository) Delete(ctx context.Context, sid string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, sid)
	}
	return nil
}

func (m *mockRepository) GetBySID(ctx context.Context, sid string) (*servicerequest.ServiceRequest, error) {
	if m.GetBySIDFunc != nil {
		return m.GetBySIDFunc(ctx, sid)
	}
	return nil, nil
}

func (m *mockRepository) ListAll(ctx context.Context) ([]*servicerequest.ServiceRequest, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockRepository) ListActive(ctx context.Context) ([]*servicerequest.ServiceRequest, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return nil, nil
}

func (m *mockRepository) ListCompleted(ctx context.Context) ([]*servicerequest.ServiceRequest, error) {
	if m.ListCompletedFunc != nil {
		return m.ListCompletedFunc(ctx)
	}
	return nil, nil
}

func (m *mockRepository) Search(ctx context.Context, query string) ([]*servicerequest.ServiceRequest, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query)
	}
	return nil, nil
}

func (m *mockRepository) SaveComment(ctx context.Context, c *servicerequest.Comment) error {
	if m.SaveCommentFunc != nil {
		return m.SaveCommentFunc(ctx, c)
	}
	return nil
}

func (m *mockRepository) FindCommentsByRequestSID(ctx context.Context, requestSID string) ([]*servicerequest.Comment, error) {
	if m.FindCommentsByRequestSIDFunc != nil {
		return m.FindCommentsByRequestSIDFunc(ctx, requestSID)
	}
	return nil, nil
}

type mockNotifier struct {
	NotifyFunc func(req *servicerequest.ServiceRequest, previous vo.Status) error
	calls      int
}

func (m *mockNotifier) NotifyStatusChange(req *servicerequest.ServiceRequest, previous vo.Status) error {
	m.calls++
	if m.NotifyFunc != nil {
		return m.NotifyFunc(req, previous)
	}
	return nil
}

type mockMarkdown struct {
	ToHTMLSanitizedFunc func(markdown string) (string, error)
}

func (m *mockMarkdown) ToHTML(markdown string) (string, error) {
	return markdown, nil
}

func (m *mockMarkdown) Sanitize(htmlContent string) string {
	return htmlContent
}

func (m *mockMarkdown) ToHTMLSanitized(markdown string) (string, error) {
	if m.ToHTMLSanitizedFunc != nil {
		return m.ToHTMLSanitizedFunc(markdown)
	}
	return "<p>" + markdown + "</p>", nil
}
