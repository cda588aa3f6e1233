package servicerequest

import "context"

// Repository is the storage contract shared by the database-backed and
// in-memory implementations. Request listings are ordered by creation time
// descending; comment listings ascending (oldest first).
type Repository interface {
	Save(ctx context.Context, r *ServiceRequest) error
	Update(ctx context.Context, r *ServiceRequest) error
	Delete(ctx context.Context, sid string) error
	GetBySID(ctx context.Context, sid string) (*ServiceRequest, error)
	ListAll(ctx context.Context) ([]*ServiceRequest, error)
	ListActive(ctx context.Context) ([]*ServiceRequest, error)
	ListCompleted(ctx context.Context) ([]*ServiceRequest, error)
	Search(ctx context.Context, query string) ([]*ServiceRequest, error)

	SaveComment(ctx context.Context, c *Comment) error
	FindCommentsByRequestSID(ctx context.Context, requestSID string) ([]*Comment, error)
}
