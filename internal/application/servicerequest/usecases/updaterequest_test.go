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

func storedRequest(t *testing.T, sid string, status vo.Status) *servicerequest.ServiceRequest {
	t.Helper()
	r, err := servicerequest.NewServiceRequest(
		sid, "Hydraulic Pump", "HP-2000", "Acme Corp", "ops@acme.test",
		"pressure drops under load", status, nil,
	)
	require.NoError(t, err)
	require.NoError(t, r.SetID(1))
	return r
}

func TestUpdateRequest_MergesFields(t *testing.T) {
	var updated *servicerequest.ServiceRequest
	repo := &mockRepository{
		GetBySIDFunc: func(_ context.Context, sid string) (*servicerequest.ServiceRequest, error) {
			return storedRequest(t, sid, vo.StatusNew), nil
		},
		UpdateFunc: func(_ context.Context, r *servicerequest.ServiceRequest) error {
			updated = r
			return nil
		},
	}
	uc := NewUpdateRequestUseCase(repo, nil, logger.NewLogger())

	product := "Hydraulic Pump v2"
	result, err := uc.Execute(context.Background(), UpdateRequestCommand{
		SID:         "sr_1",
		ProductName: &product,
	})
	require.NoError(t, err)

	require.NotNil(t, updated)
	assert.Equal(t, "Hydraulic Pump v2", result.ProductName)
	// untouched fields survive the merge
	assert.Equal(t, "HP-2000", result.SerialNumber)
	assert.Equal(t, "new", result.Status)
}

func TestUpdateRequest_NotFound(t *testing.T) {
	repo := &mockRepository{
		GetBySIDFunc: func(context.Context, string) (*servicerequest.ServiceRequest, error) {
			return nil, errors.NewNotFoundError("service request not found")
		},
	}
	uc := NewUpdateRequestUseCase(repo, nil, logger.NewLogger())

	_, err := uc.Execute(context.Background(), UpdateRequestCommand{SID: "sr_missing"})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestUpdateRequest_InvalidStatus(t *testing.T) {
	repo := &mockRepository{
		GetBySIDFunc: func(_ context.Context, sid string) (*servicerequest.ServiceRequest, error) {
			return storedRequest(t, sid, vo.StatusNew), nil
		},
	}
	uc := NewUpdateRequestUseCase(repo, nil, logger.NewLogger())

	bogus := "shipped"
	_, err := uc.Execute(context.Background(), UpdateRequestCommand{SID: "sr_1", Status: &bogus})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestUpdateRequest_NotifiesOnStatusChange(t *testing.T) {
	repo := &mockRepository{
		GetBySIDFunc: func(_ context.Context, sid string) (*servicerequest.ServiceRequest, error) {
			return storedRequest(t, sid, vo.StatusNew), nil
		},
	}
	notifier := &mockNotifier{
		NotifyFunc: func(req *servicerequest.ServiceRequest, previous vo.Status) error {
			assert.Equal(t, vo.StatusNew, previous)
			assert.Equal(t, vo.StatusCompleted, req.Status())
			return nil
		},
	}
	uc := NewUpdateRequestUseCase(repo, notifier, logger.NewLogger())

	status := "completed"
	_, err := uc.Execute(context.Background(), UpdateRequestCommand{SID: "sr_1", Status: &status})
	require.NoError(t, err)
	assert.Equal(t, 1, notifier.calls)
}

func TestUpdateRequest_NoNotificationWithoutStatusChange(t *testing.T) {
	repo := &mockRepository{
		GetBySIDFunc: func(_ context.Context, sid string) (*servicerequest.ServiceRequest, error) {
			return storedRequest(t, sid, vo.StatusNew), nil
		},
	}
	notifier := &mockNotifier{}
	uc := NewUpdateRequestUseCase(repo, notifier, logger.NewLogger())

	product := "Hydraulic Pump v2"
	_, err := uc.Execute(context.Background(), UpdateRequestCommand{SID: "sr_1", ProductName: &product})
	require.NoError(t, err)
	assert.Zero(t, notifier.calls)
}

func TestUpdateRequest_NotifierFailureDoesNotFailUpdate(t *testing.T) {
	repo := &mockRepository{
		GetBySIDFunc: func(_ context.Context, sid string) (*servicerequest.ServiceRequest, error) {
			return storedRequest(t, sid, vo.StatusNew), nil
		},
	}
	notifier := &mockNotifier{
		NotifyFunc: func(*servicerequest.ServiceRequest, vo.Status) error {
			return errors.NewInternalError("smtp down")
		},
	}
	uc := NewUpdateRequestUseCase(repo, notifier, logger.NewLogger())

	status := "inspection"
	result, err := uc.Execute(context.Background(), UpdateRequestCommand{SID: "sr_1", Status: &status})
	require.NoError(t, err)
	assert.Equal(t, "inspection", result.Status)
}
