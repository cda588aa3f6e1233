package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"servicedesk/internal/domain/servicerequest"
	vo "servicedesk/internal/domain/servicerequest/valueobjects"
	"servicedesk/internal/shared/errors"
	"servicedesk/internal/shared/logger"
)

func TestListRequests_ScopeDispatch(t *testing.T) {
	var called string
	repo := &mockRepository{
		ListAllFunc: func(context.Context) ([]*servicerequest.ServiceRequest, error) {
			called = "all"
			return nil, nil
		},
		ListActiveFunc: func(context.Context) ([]*servicerequest.ServiceRequest, error) {
			called = "active"
			return nil, nil
		},
		ListCompletedFunc: func(context.Context) ([]*servicerequest.ServiceRequest, error) {
			called = "completed"
			return nil, nil
		},
	}
	uc := NewListRequestsUseCase(repo, logger.NewLogger())

	tests := []struct {
		scope ListScope
		want  string
	}{
		{ScopeAll, "all"},
		{"", "all"},
		{ScopeActive, "active"},
		{ScopeCompleted, "completed"},
	}

	for _, tt := range tests {
		called = ""
		_, err := uc.Execute(context.Background(), ListRequestsQuery{Scope: tt.scope})
		require.NoError(t, err)
		assert.Equal(t, tt.want, called)
	}
}

func TestListRequests_InvalidScope(t *testing.T) {
	uc := NewListRequestsUseCase(&mockRepository{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), ListRequestsQuery{Scope: "archived"})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestListRequests_ConvertsEntities(t *testing.T) {
	repo := &mockRepository{
		ListAllFunc: func(context.Context) ([]*servicerequest.ServiceRequest, error) {
			return []*servicerequest.ServiceRequest{
				storedRequest(t, "sr_2", vo.StatusService),
				storedRequest(t, "sr_1", vo.StatusNew),
			}, nil
		},
	}
	uc := NewListRequestsUseCase(repo, logger.NewLogger())

	result, err := uc.Execute(context.Background(), ListRequestsQuery{Scope: ScopeAll})
	require.NoError(t, err)

	require.Len(t, result, 2)
	// repository ordering is preserved as-is
	assert.Equal(t, "sr_2", result[0].ID)
	assert.Equal(t, "service", result[0].Status)
	assert.Equal(t, "sr_1", result[1].ID)
}

func TestSearchRequests_MissingQuery(t *testing.T) {
	uc := NewSearchRequestsUseCase(&mockRepository{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), SearchRequestsQuery{})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestSearchRequests_PassesQueryThrough(t *testing.T) {
	var got string
	repo := &mockRepository{
		SearchFunc: func(_ context.Context, query string) ([]*servicerequest.ServiceRequest, error) {
			got = query
			return []*servicerequest.ServiceRequest{storedRequest(t, "sr_1", vo.StatusNew)}, nil
		},
	}
	uc := NewSearchRequestsUseCase(repo, logger.NewLogger())

	result, err := uc.Execute(context.Background(), SearchRequestsQuery{Query: "pump"})
	require.NoError(t, err)
	assert.Equal(t, "pump", got)
	require.Len(t, result, 1)
}

func TestGetMetrics_CountsActiveByStatus(t *testing.T) {
	repo := &mockRepository{
		ListActiveFunc: func(context.Context) ([]*servicerequest.ServiceRequest, error) {
			return []*servicerequest.ServiceRequest{
				storedRequest(t, "sr_1", vo.StatusNew),
				storedRequest(t, "sr_2", vo.StatusNew),
				storedRequest(t, "sr_3", vo.StatusInspection),
				storedRequest(t, "sr_4", vo.StatusService),
				storedRequest(t, "sr_5", vo.StatusReceived),
			}, nil
		},
	}
	uc := NewGetMetricsUseCase(repo, logger.NewLogger())

	m, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 5, m.TotalActive)
	assert.Equal(t, 2, m.NewComplaints)
	assert.Equal(t, 1, m.UnderInspection)
	assert.Equal(t, 1, m.SentToService)
	assert.Equal(t, 1, m.Received)
}

func TestGetRequest_Success(t *testing.T) {
	repo := &mockRepository{
		GetBySIDFunc: func(_ context.Context, sid string) (*servicerequest.ServiceRequest, error) {
			return storedRequest(t, sid, vo.StatusReceived), nil
		},
	}
	uc := NewGetRequestUseCase(repo, logger.NewLogger())

	result, err := uc.Execute(context.Background(), GetRequestQuery{SID: "sr_1"})
	require.NoError(t, err)
	assert.Equal(t, "sr_1", result.ID)
	assert.Equal(t, "received", result.Status)
}

func TestDeleteRequest_NotFound(t *testing.T) {
	repo := &mockRepository{
		DeleteFunc: func(context.Context, string) error {
			return errors.NewNotFoundError("service request not found")
		},
	}
	uc := NewDeleteRequestUseCase(repo, logger.NewLogger())

	err := uc.Execute(context.Background(), DeleteRequestCommand{SID: "sr_missing"})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
