package servicerequest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "servicedesk/internal/domain/servicerequest/valueobjects"
)

func newValidRequest(t *testing.T) *ServiceRequest {
	t.Helper()
	r, err := NewServiceRequest(
		"sr_test00000001",
		"Pump-X",
		"SN1",
		"Acme",
		"a@x.com",
		"leak",
		"",
		nil,
	)
	require.NoError(t, err)
	return r
}

func TestNewServiceRequest_Defaults(t *testing.T) {
	r := newValidRequest(t)

	assert.Equal(t, vo.StatusNew, r.Status())
	assert.Empty(t, r.Attachments())
	assert.NotNil(t, r.Attachments())
	assert.False(t, r.CreatedAt().IsZero())
	assert.Equal(t, r.CreatedAt(), r.UpdatedAt())
}

func TestNewServiceRequest_ExplicitStatus(t *testing.T) {
	for _, s := range vo.All() {
		r, err := NewServiceRequest("sr_x", "Pump-X", "SN1", "Acme", "a@x.com", "leak", s, nil)
		require.NoError(t, err)
		assert.Equal(t, s, r.Status())
	}
}

func TestNewServiceRequest_ValidationErrors(t *testing.T) {
	tests := []struct {
		name             string
		sid              string
		productName      string
		serialNumber     string
		customerName     string
		customerContact  string
		issueDescription string
		status           vo.Status
		expectedError    string
	}{
		{"empty sid", "", "p", "s", "c", "cc", "d", "", "sid is required"},
		{"empty product name", "sr_x", "", "s", "c", "cc", "d", "", "product name is required"},
		{"empty serial number", "sr_x", "p", "", "c", "cc", "d", "", "serial number is required"},
		{"empty customer name", "sr_x", "p", "s", "", "cc", "d", "", "customer name is required"},
		{"empty customer contact", "sr_x", "p", "s", "c", "", "d", "", "customer contact is required"},
		{"empty issue description", "sr_x", "p", "s", "c", "cc", "", "", "issue description is required"},
		{"invalid status", "sr_x", "p", "s", "c", "cc", "d", vo.Status("bogus"), "invalid status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewServiceRequest(
				tt.sid, tt.productName, tt.serialNumber,
				tt.customerName, tt.customerContact, tt.issueDescription,
				tt.status, nil,
			)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedError)
		})
	}
}

func TestServiceRequest_ApplyUpdate_MergesSuppliedFields(t *testing.T) {
	r := newValidRequest(t)
	createdAt := r.CreatedAt()

	newProduct := "Pump-Y"
	newStatus := vo.StatusInspection
	err := r.ApplyUpdate(Update{
		ProductName: &newProduct,
		Status:      &newStatus,
	})
	require.NoError(t, err)

	assert.Equal(t, "Pump-Y", r.ProductName())
	assert.Equal(t, vo.StatusInspection, r.Status())
	// untouched fields survive
	assert.Equal(t, "SN1", r.SerialNumber())
	assert.Equal(t, "Acme", r.CustomerName())
	assert.Equal(t, "a@x.com", r.CustomerContact())
	assert.Equal(t, "leak", r.IssueDescription())
	assert.Equal(t, createdAt, r.CreatedAt())
	assert.False(t, r.UpdatedAt().Before(createdAt))
}

func TestServiceRequest_ApplyUpdate_RejectsEmptyAndInvalid(t *testing.T) {
	empty := ""
	bogus := vo.Status("bogus")

	tests := []struct {
		name   string
		update Update
	}{
		{"empty product name", Update{ProductName: &empty}},
		{"empty serial number", Update{SerialNumber: &empty}},
		{"empty customer name", Update{CustomerName: &empty}},
		{"empty customer contact", Update{CustomerContact: &empty}},
		{"empty issue description", Update{IssueDescription: &empty}},
		{"invalid status", Update{Status: &bogus}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newValidRequest(t)
			err := r.ApplyUpdate(tt.update)
			require.Error(t, err)
			// prior state untouched on failure
			assert.Equal(t, "Pump-X", r.ProductName())
			assert.Equal(t, vo.StatusNew, r.Status())
		})
	}
}

func TestServiceRequest_AppendAttachments_PreservesOrder(t *testing.T) {
	r := newValidRequest(t)

	r.AppendAttachments([]string{"ref1"})
	r.AppendAttachments([]string{"ref2"})

	assert.Equal(t, []string{"ref1", "ref2"}, r.Attachments())

	// duplicates are kept, not de-duplicated
	r.AppendAttachments([]string{"ref1"})
	assert.Equal(t, []string{"ref1", "ref2", "ref1"}, r.Attachments())
}

func TestServiceRequest_AttachmentsReturnsCopy(t *testing.T) {
	r := newValidRequest(t)
	r.AppendAttachments([]string{"ref1"})

	got := r.Attachments()
	got[0] = "mutated"

	assert.Equal(t, []string{"ref1"}, r.Attachments())
}

func TestReconstruct(t *testing.T) {
	createdAt := time.Now().Add(-time.Hour)
	updatedAt := time.Now()

	r, err := Reconstruct(
		42, "sr_abc", "Pump-X", "SN1", "Acme", "a@x.com", "leak",
		vo.StatusService, []string{"ref1"}, createdAt, updatedAt,
	)
	require.NoError(t, err)
	assert.Equal(t, uint(42), r.ID())
	assert.Equal(t, "sr_abc", r.SID())
	assert.Equal(t, vo.StatusService, r.Status())
	assert.Equal(t, []string{"ref1"}, r.Attachments())
	assert.Equal(t, createdAt, r.CreatedAt())
	assert.Equal(t, updatedAt, r.UpdatedAt())
}

func TestReconstruct_Errors(t *testing.T) {
	now := time.Now()

	_, err := Reconstruct(0, "sr_abc", "p", "s", "c", "cc", "d", vo.StatusNew, nil, now, now)
	require.Error(t, err)

	_, err = Reconstruct(1, "", "p", "s", "c", "cc", "d", vo.StatusNew, nil, now, now)
	require.Error(t, err)

	_, err = Reconstruct(1, "sr_abc", "p", "s", "c", "cc", "d", vo.Status("bogus"), nil, now, now)
	require.Error(t, err)
}

func TestServiceRequest_SetID(t *testing.T) {
	r := newValidRequest(t)

	require.NoError(t, r.SetID(7))
	assert.Equal(t, uint(7), r.ID())

	require.Error(t, r.SetID(8), "second SetID must fail")
	require.Error(t, newValidRequest(t).SetID(0))
}
