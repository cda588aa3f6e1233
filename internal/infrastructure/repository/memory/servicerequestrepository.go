package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/cases"

	"servicedesk/internal/domain/servicerequest"
	apperrors "servicedesk/internal/shared/errors"
)

var foldCaser = cases.Fold()

// ServiceRequestRepository is the in-memory implementation of
// servicerequest.Repository. It is safe for concurrent use and intended for
// development and tests; data does not survive a restart.
type ServiceRequestRepository struct {
	mu       sync.RWMutex
	requests map[string]*servicerequest.ServiceRequest
	comments map[string][]*servicerequest.Comment
	nextID   uint
}

func NewServiceRequestRepository() *ServiceRequestRepository {
	return &ServiceRequestRepository{
		requests: make(map[string]*servicerequest.ServiceRequest),
		comments: make(map[string][]*servicerequest.Comment),
		nextID:   1,
	}
}

func (r *ServiceRequestRepository) Save(_ context.Context, req *servicerequest.ServiceRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.requests[req.SID()]; exists {
		return apperrors.NewConflictError("service request already exists")
	}

	if req.ID() == 0 {
		if err := req.SetID(r.nextID); err != nil {
			return err
		}
		r.nextID++
	}

	stored, err := cloneRequest(req)
	if err != nil {
		return err
	}
	r.requests[req.SID()] = stored

	return nil
}

func (r *ServiceRequestRepository) Update(_ context.Context, req *servicerequest.ServiceRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.requests[req.SID()]; !exists {
		return apperrors.NewNotFoundError("service request not found")
	}

	stored, err := cloneRequest(req)
	if err != nil {
		return err
	}
	r.requests[req.SID()] = stored

	return nil
}

// Delete removes the request and all of its comments.
func (r *ServiceRequestRepository) Delete(_ context.Context, sid string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.requests[sid]; !exists {
		return apperrors.NewNotFoundError("service request not found")
	}

	delete(r.requests, sid)
	delete(r.comments, sid)

	return nil
}

func (r *ServiceRequestRepository) GetBySID(_ context.Context, sid string) (*servicerequest.ServiceRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	req, exists := r.requests[sid]
	if !exists {
		return nil, apperrors.NewNotFoundError("service request not found")
	}

	return cloneRequest(req)
}

func (r *ServiceRequestRepository) ListAll(_ context.Context) ([]*servicerequest.ServiceRequest, error) {
	return r.list(func(*servicerequest.ServiceRequest) bool { return true })
}

func (r *ServiceRequestRepository) ListActive(_ context.Context) ([]*servicerequest.ServiceRequest, error) {
	return r.list(func(req *servicerequest.ServiceRequest) bool {
		return req.Status().IsActive()
	})
}

func (r *ServiceRequestRepository) ListCompleted(_ context.Context) ([]*servicerequest.ServiceRequest, error) {
	return r.list(func(req *servicerequest.ServiceRequest) bool {
		return req.Status().IsCompleted()
	})
}

// Search matches the query case-insensitively against product name, serial
// number, customer name and customer contact.
func (r *ServiceRequestRepository) Search(_ context.Context, query string) ([]*servicerequest.ServiceRequest, error) {
	needle := foldCaser.String(query)
	return r.list(func(req *servicerequest.ServiceRequest) bool {
		return strings.Contains(foldCaser.String(req.ProductName()), needle) ||
			strings.Contains(foldCaser.String(req.SerialNumber()), needle) ||
			strings.Contains(foldCaser.String(req.CustomerName()), needle) ||
			strings.Contains(foldCaser.String(req.CustomerContact()), needle)
	})
}

func (r *ServiceRequestRepository) list(match func(*servicerequest.ServiceRequest) bool) ([]*servicerequest.ServiceRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*servicerequest.ServiceRequest, 0)
	for _, req := range r.requests {
		if !match(req) {
			continue
		}
		cloned, err := cloneRequest(req)
		if err != nil {
			return nil, err
		}
		result = append(result, cloned)
	}

	// Newest first; fall back to ID so ordering stays stable when
	// timestamps collide.
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt().Equal(result[j].CreatedAt()) {
			return result[i].ID() > result[j].ID()
		}
		return result[i].CreatedAt().After(result[j].CreatedAt())
	})

	return result, nil
}

func (r *ServiceRequestRepository) SaveComment(_ context.Context, c *servicerequest.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c.ID() == 0 {
		if err := c.SetID(r.nextID); err != nil {
			return err
		}
		r.nextID++
	}

	stored, err := cloneComment(c)
	if err != nil {
		return err
	}
	r.comments[c.RequestSID()] = append(r.comments[c.RequestSID()], stored)

	return nil
}

func (r *ServiceRequestRepository) FindCommentsByRequestSID(
	_ context.Context,
	requestSID string,
) ([]*servicerequest.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.comments[requestSID]
	comments := make([]*servicerequest.Comment, 0, len(stored))
	for _, c := range stored {
		cloned, err := cloneComment(c)
		if err != nil {
			return nil, err
		}
		comments = append(comments, cloned)
	}

	// Oldest first; insertion order already matches creation order but the
	// contract is explicit about it.
	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].CreatedAt().Before(comments[j].CreatedAt())
	})

	return comments, nil
}

// cloneRequest copies an entity so callers can never mutate stored state
// through a shared pointer.
func cloneRequest(req *servicerequest.ServiceRequest) (*servicerequest.ServiceRequest, error) {
	return servicerequest.Reconstruct(
		req.ID(),
		req.SID(),
		req.ProductName(),
		req.SerialNumber(),
		req.CustomerName(),
		req.CustomerContact(),
		req.IssueDescription(),
		req.Status(),
		req.Attachments(),
		req.CreatedAt(),
		req.UpdatedAt(),
	)
}

func cloneComment(c *servicerequest.Comment) (*servicerequest.Comment, error) {
	return servicerequest.ReconstructComment(
		c.ID(),
		c.SID(),
		c.RequestSID(),
		c.Text(),
		c.Attachments(),
		c.CreatedAt(),
	)
}
