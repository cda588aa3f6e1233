package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"servicedesk/internal/domain/servicerequest"
	vo "servicedesk/internal/domain/servicerequest/valueobjects"
	"servicedesk/internal/infrastructure/persistence/models"
)

// ServiceRequestMapper handles the conversion between domain entities and
// persistence models.
type ServiceRequestMapper interface {
	// ToModel converts a service request domain entity to a persistence model.
	ToModel(r *servicerequest.ServiceRequest) *models.ServiceRequestModel

	// ToDomain converts a service request persistence model to a domain entity.
	ToDomain(model *models.ServiceRequestModel) (*servicerequest.ServiceRequest, error)

	// CommentToModel converts a comment domain entity to a persistence model.
	CommentToModel(c *servicerequest.Comment) *models.CommentModel

	// CommentToDomain converts a comment persistence model to a domain entity.
	CommentToDomain(model *models.CommentModel) (*servicerequest.Comment, error)
}

// ServiceRequestMapperImpl is the concrete implementation of ServiceRequestMapper.
type ServiceRequestMapperImpl struct{}

// NewServiceRequestMapper creates a new ServiceRequestMapper.
func NewServiceRequestMapper() ServiceRequestMapper {
	return &ServiceRequestMapperImpl{}
}

// ToModel converts a service request domain entity to a persistence model.
func (m *ServiceRequestMapperImpl) ToModel(r *servicerequest.ServiceRequest) *models.ServiceRequestModel {
	return &models.ServiceRequestModel{
		ID:               r.ID(),
		SID:              r.SID(),
		ProductName:      r.ProductName(),
		SerialNumber:     r.SerialNumber(),
		CustomerName:     r.CustomerName(),
		CustomerContact:  r.CustomerContact(),
		IssueDescription: r.IssueDescription(),
		Status:           r.Status().String(),
		Attachments:      marshalAttachments(r.Attachments()),
		CreatedAt:        r.CreatedAt().UnixMilli(),
		UpdatedAt:        r.UpdatedAt().UnixMilli(),
	}
}

// ToDomain converts a service request persistence model to a domain entity.
// Comments are loaded separately by the repository.
func (m *ServiceRequestMapperImpl) ToDomain(model *models.ServiceRequestModel) (*servicerequest.ServiceRequest, error) {
	status, err := vo.NewStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid status on service request (id=%d): %w", model.ID, err)
	}

	attachments, err := unmarshalAttachments(model.Attachments)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal service request attachments (id=%d): %w", model.ID, err)
	}

	return servicerequest.Reconstruct(
		model.ID,
		model.SID,
		model.ProductName,
		model.SerialNumber,
		model.CustomerName,
		model.CustomerContact,
		model.IssueDescription,
		status,
		attachments,
		convertMillisToTime(model.CreatedAt),
		convertMillisToTime(model.UpdatedAt),
	)
}

// CommentToModel converts a comment domain entity to a persistence model.
func (m *ServiceRequestMapperImpl) CommentToModel(c *servicerequest.Comment) *models.CommentModel {
	return &models.CommentModel{
		ID:          c.ID(),
		SID:         c.SID(),
		RequestSID:  c.RequestSID(),
		Text:        c.Text(),
		Attachments: marshalAttachments(c.Attachments()),
		CreatedAt:   c.CreatedAt().UnixMilli(),
	}
}

// CommentToDomain converts a comment persistence model to a domain entity.
func (m *ServiceRequestMapperImpl) CommentToDomain(model *models.CommentModel) (*servicerequest.Comment, error) {
	attachments, err := unmarshalAttachments(model.Attachments)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal comment attachments (id=%d): %w", model.ID, err)
	}

	return servicerequest.ReconstructComment(
		model.ID,
		model.SID,
		model.RequestSID,
		model.Text,
		attachments,
		convertMillisToTime(model.CreatedAt),
	)
}

func marshalAttachments(attachments []string) datatypes.JSON {
	if attachments == nil {
		attachments = []string{}
	}
	data, _ := json.Marshal(attachments)
	return datatypes.JSON(data)
}

func unmarshalAttachments(data datatypes.JSON) ([]string, error) {
	if len(data) == 0 {
		return []string{}, nil
	}
	var attachments []string
	if err := json.Unmarshal(data, &attachments); err != nil {
		return nil, err
	}
	if attachments == nil {
		attachments = []string{}
	}
	return attachments, nil
}

func convertMillisToTime(millis int64) time.Time {
	return time.Unix(0, millis*int64(time.Millisecond))
}
