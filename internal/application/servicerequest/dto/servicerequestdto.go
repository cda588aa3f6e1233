package dto

import (
	"time"

	"servicedesk/internal/domain/servicerequest"
)

// ServiceRequestDTO is the wire representation of a service request. The
// public identifier is exposed as "id"; the internal numeric key never leaves
// the process.
type ServiceRequestDTO struct {
	ID               string    `json:"id"`
	ProductName      string    `json:"productName"`
	SerialNumber     string    `json:"serialNumber"`
	CustomerName     string    `json:"customerName"`
	CustomerContact  string    `json:"customerContact"`
	IssueDescription string    `json:"issueDescription"`
	Status           string    `json:"status"`
	Attachments      []string  `json:"attachments"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// CommentDTO is the wire representation of a comment. TextHTML carries the
// sanitized markdown rendering of Text.
type CommentDTO struct {
	ID          string    `json:"id"`
	RequestID   string    `json:"requestId"`
	Text        string    `json:"text"`
	TextHTML    string    `json:"textHtml,omitempty"`
	Attachments []string  `json:"attachments"`
	CreatedAt   time.Time `json:"createdAt"`
}

// MetricsDTO carries the derived active-workload counters.
type MetricsDTO struct {
	TotalActive     int `json:"totalActive"`
	NewComplaints   int `json:"newComplaints"`
	UnderInspection int `json:"underInspection"`
	SentToService   int `json:"sentToService"`
	Received        int `json:"received"`
}

// FromServiceRequest converts a domain entity to its DTO.
func FromServiceRequest(r *servicerequest.ServiceRequest) *ServiceRequestDTO {
	return &ServiceRequestDTO{
		ID:               r.SID(),
		ProductName:      r.ProductName(),
		SerialNumber:     r.SerialNumber(),
		CustomerName:     r.CustomerName(),
		CustomerContact:  r.CustomerContact(),
		IssueDescription: r.IssueDescription(),
		Status:           r.Status().String(),
		Attachments:      r.Attachments(),
		CreatedAt:        r.CreatedAt(),
		UpdatedAt:        r.UpdatedAt(),
	}
}

// FromServiceRequests converts a listing, preserving order.
func FromServiceRequests(requests []*servicerequest.ServiceRequest) []*ServiceRequestDTO {
	dtos := make([]*ServiceRequestDTO, len(requests))
	for i, r := range requests {
		dtos[i] = FromServiceRequest(r)
	}
	return dtos
}

// FromComment converts a comment entity to its DTO. Rendering of TextHTML is
// done by the use case, not here.
func FromComment(c *servicerequest.Comment) *CommentDTO {
	return &CommentDTO{
		ID:          c.SID(),
		RequestID:   c.RequestSID(),
		Text:        c.Text(),
		Attachments: c.Attachments(),
		CreatedAt:   c.CreatedAt(),
	}
}

// FromMetrics converts the derived metrics value to its DTO.
func FromMetrics(m servicerequest.Metrics) *MetricsDTO {
	return &MetricsDTO{
		TotalActive:     m.TotalActive,
		NewComplaints:   m.NewComplaints,
		UnderInspection: m.UnderInspection,
		SentToService:   m.SentToService,
		Received:        m.Received,
	}
}
