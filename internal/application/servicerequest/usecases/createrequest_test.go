package usecases

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"servicedesk/internal/domain/servicerequest"
	"servicedesk/internal/shared/errors"
	"servicedesk/internal/shared/logger"
)

func validCreateCommand() CreateRequestCommand {
	return CreateRequestCommand{
		ProductName:      "Hydraulic Pump",
		SerialNumber:     "HP-2000",
		CustomerName:     "Acme Corp",
		CustomerContact:  "ops@acme.test",
		IssueDescription: "pressure drops under load",
	}
}

func TestCreateRequest_Success(t *testing.T) {
	var saved *servicerequest.ServiceRequest
	repo := &mockRepository{
		SaveFunc: func(_ context.Context, r *servicerequest.ServiceRequest) error {
			saved = r
			return r.SetID(1)
		},
	}
	uc := NewCreateRequestUseCase(repo, logger.NewLogger())

	result, err := uc.Execute(context.Background(), validCreateCommand())
	require.NoError(t, err)

	require.NotNil(t, saved)
	assert.True(t, strings.HasPrefix(result.ID, "sr_"))
	assert.Equal(t, "new", result.Status)
	assert.Equal(t, "Hydraulic Pump", result.ProductName)
	assert.NotNil(t, result.Attachments)
	assert.Empty(t, result.Attachments)
}

func TestCreateRequest_ExplicitStatus(t *testing.T) {
	uc := NewCreateRequestUseCase(&mockRepository{}, logger.NewLogger())

	cmd := validCreateCommand()
	cmd.Status = "inspection"

	result, err := uc.Execute(context.Background(), cmd)
	require.NoError(t, err)
	assert.Equal(t, "inspection", result.Status)
}

func TestCreateRequest_ValidationErrors(t *testing.T) {
	uc := NewCreateRequestUseCase(&mockRepository{}, logger.NewLogger())

	tests := []struct {
		name   string
		mutate func(*CreateRequestCommand)
	}{
		{"missing product name", func(c *CreateRequestCommand) { c.ProductName = "" }},
		{"missing serial number", func(c *CreateRequestCommand) { c.SerialNumber = "" }},
		{"missing customer name", func(c *CreateRequestCommand) { c.CustomerName = "" }},
		{"missing customer contact", func(c *CreateRequestCommand) { c.CustomerContact = "" }},
		{"missing issue description", func(c *CreateRequestCommand) { c.IssueDescription = "" }},
		{"invalid status", func(c *CreateRequestCommand) { c.Status = "shipped" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := validCreateCommand()
			tt.mutate(&cmd)

			_, err := uc.Execute(context.Background(), cmd)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestCreateRequest_RepositoryError(t *testing.T) {
	repo := &mockRepository{
		SaveFunc: func(context.Context, *servicerequest.ServiceRequest) error {
			return errors.NewInternalError("db down")
		},
	}
	uc := NewCreateRequestUseCase(repo, logger.NewLogger())

	_, err := uc.Execute(context.Background(), validCreateCommand())
	require.Error(t, err)
	assert.False(t, errors.IsValidationError(err))
}
