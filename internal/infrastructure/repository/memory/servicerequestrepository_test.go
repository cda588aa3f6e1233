package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"servicedesk/internal/domain/servicerequest"
	vo "servicedesk/internal/domain/servicerequest/valueobjects"
	apperrors "servicedesk/internal/shared/errors"
)

func newRequest(t *testing.T, sid string, status vo.Status) *servicerequest.ServiceRequest {
	t.Helper()
	req, err := servicerequest.NewServiceRequest(
		sid, "Pump-X", "SN-"+sid, "Acme Corp", "ops@acme.test", "pressure drops under load", status, nil,
	)
	require.NoError(t, err)
	return req
}

func TestSaveAndGetBySID(t *testing.T) {
	repo := NewServiceRequestRepository()
	ctx := context.Background()

	req := newRequest(t, "sr_1", vo.StatusNew)
	require.NoError(t, repo.Save(ctx, req))
	assert.NotZero(t, req.ID())

	got, err := repo.GetBySID(ctx, "sr_1")
	require.NoError(t, err)
	assert.Equal(t, req.SID(), got.SID())
	assert.Equal(t, req.ProductName(), got.ProductName())
	assert.Equal(t, req.Status(), got.Status())
}

func TestSave_DuplicateSID(t *testing.T) {
	repo := NewServiceRequestRepository()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, newRequest(t, "sr_1", vo.StatusNew)))
	err := repo.Save(ctx, newRequest(t, "sr_1", vo.StatusNew))
	require.Error(t, err)
}

func TestGetBySID_NotFound(t *testing.T) {
	repo := NewServiceRequestRepository()

	_, err := repo.GetBySID(context.Background(), "sr_missing")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestUpdate(t *testing.T) {
	repo := NewServiceRequestRepository()
	ctx := context.Background()

	req := newRequest(t, "sr_1", vo.StatusNew)
	require.NoError(t, repo.Save(ctx, req))

	status := vo.StatusInspection
	require.NoError(t, req.ApplyUpdate(servicerequest.Update{Status: &status}))
	require.NoError(t, repo.Update(ctx, req))

	got, err := repo.GetBySID(ctx, "sr_1")
	require.NoError(t, err)
	assert.Equal(t, vo.StatusInspection, got.Status())
}

func TestUpdate_NotFound(t *testing.T) {
	repo := NewServiceRequestRepository()

	err := repo.Update(context.Background(), newRequest(t, "sr_missing", vo.StatusNew))
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestDelete_RemovesRequestAndComments(t *testing.T) {
	repo := NewServiceRequestRepository()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, newRequest(t, "sr_1", vo.StatusNew)))

	c, err := servicerequest.NewComment("cm_1", "sr_1", "inspected on site", nil)
	require.NoError(t, err)
	require.NoError(t, repo.SaveComment(ctx, c))

	require.NoError(t, repo.Delete(ctx, "sr_1"))

	_, err = repo.GetBySID(ctx, "sr_1")
	assert.True(t, apperrors.IsNotFoundError(err))

	comments, err := repo.FindCommentsByRequestSID(ctx, "sr_1")
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestDelete_NotFound(t *testing.T) {
	repo := NewServiceRequestRepository()

	err := repo.Delete(context.Background(), "sr_missing")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestListPartitions(t *testing.T) {
	repo := NewServiceRequestRepository()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, newRequest(t, "sr_new", vo.StatusNew)))
	require.NoError(t, repo.Save(ctx, newRequest(t, "sr_svc", vo.StatusService)))
	require.NoError(t, repo.Save(ctx, newRequest(t, "sr_done", vo.StatusCompleted)))

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	active, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 2)
	for _, req := range active {
		assert.NotEqual(t, vo.StatusCompleted, req.Status())
	}

	completed, err := repo.ListCompleted(ctx)
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, "sr_done", completed[0].SID())
}

func TestListAll_NewestFirst(t *testing.T) {
	repo := NewServiceRequestRepository()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Save(ctx, newRequest(t, fmt.Sprintf("sr_%d", i), vo.StatusNew)))
	}

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 5)

	for i := 1; i < len(all); i++ {
		prev, curr := all[i-1], all[i]
		if prev.CreatedAt().Equal(curr.CreatedAt()) {
			assert.Greater(t, prev.ID(), curr.ID())
		} else {
			assert.True(t, prev.CreatedAt().After(curr.CreatedAt()))
		}
	}
}

func TestSearch_CaseInsensitive(t *testing.T) {
	repo := NewServiceRequestRepository()
	ctx := context.Background()

	req, err := servicerequest.NewServiceRequest(
		"sr_1", "Hydraulic Pump", "HP-2000", "Globex", "field@globex.test",
		"seal leaking near intake", "", nil,
	)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, req))
	require.NoError(t, repo.Save(ctx, newRequest(t, "sr_2", vo.StatusNew)))

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"product name lowercase", "hydraulic", 1},
		{"serial number", "hp-2000", 1},
		{"customer name uppercase", "GLOBEX", 1},
		{"customer contact", "Field@", 1},
		{"matches both", "Pump", 2},
		{"no match", "turbine", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.Search(ctx, tt.query)
			require.NoError(t, err)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestComments_OldestFirst(t *testing.T) {
	repo := NewServiceRequestRepository()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, newRequest(t, "sr_1", vo.StatusNew)))

	for i := 0; i < 3; i++ {
		c, err := servicerequest.ReconstructComment(
			uint(i+1), fmt.Sprintf("cm_%d", i), "sr_1", fmt.Sprintf("note %d", i), nil,
			time.Now().Add(time.Duration(i)*time.Second),
		)
		require.NoError(t, err)
		require.NoError(t, repo.SaveComment(ctx, c))
	}

	comments, err := repo.FindCommentsByRequestSID(ctx, "sr_1")
	require.NoError(t, err)
	require.Len(t, comments, 3)

	for i := 1; i < len(comments); i++ {
		assert.False(t, comments[i].CreatedAt().Before(comments[i-1].CreatedAt()))
	}
}

func TestStoredStateIsIsolatedFromCallers(t *testing.T) {
	repo := NewServiceRequestRepository()
	ctx := context.Background()

	req := newRequest(t, "sr_1", vo.StatusNew)
	require.NoError(t, repo.Save(ctx, req))

	// Mutating the entity after save must not affect stored state.
	status := vo.StatusCompleted
	require.NoError(t, req.ApplyUpdate(servicerequest.Update{Status: &status}))

	got, err := repo.GetBySID(ctx, "sr_1")
	require.NoError(t, err)
	assert.Equal(t, vo.StatusNew, got.Status())

	// Mutating a fetched entity must not affect stored state either.
	require.NoError(t, got.ApplyUpdate(servicerequest.Update{Status: &status}))

	again, err := repo.GetBySID(ctx, "sr_1")
	require.NoError(t, err)
	assert.Equal(t, vo.StatusNew, again.Status())
}
