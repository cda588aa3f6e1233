package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_IsValid(t *testing.T) {
	tests := []struct {
		name   string
		status Status
		valid  bool
	}{
		{"new", StatusNew, true},
		{"inspection", StatusInspection, true},
		{"service", StatusService, true},
		{"received", StatusReceived, true},
		{"completed", StatusCompleted, true},
		{"empty", Status(""), false},
		{"unknown", Status("archived"), false},
		{"case sensitive", Status("New"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.status.IsValid())
		})
	}
}

func TestStatus_IsActive(t *testing.T) {
	for _, s := range All() {
		if s == StatusCompleted {
			assert.False(t, s.IsActive())
		} else {
			assert.True(t, s.IsActive(), "status %s should be active", s)
		}
	}

	assert.False(t, Status("bogus").IsActive())
}

func TestNewStatus(t *testing.T) {
	s, err := NewStatus("inspection")
	require.NoError(t, err)
	assert.Equal(t, StatusInspection, s)

	_, err = NewStatus("unknown")
	require.Error(t, err)
}

func TestAll_CoversEnumeration(t *testing.T) {
	all := All()
	require.Len(t, all, 5)
	for _, s := range all {
		assert.True(t, s.IsValid())
	}
}
