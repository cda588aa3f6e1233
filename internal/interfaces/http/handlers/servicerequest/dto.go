package servicerequest

import (
	"servicedesk/internal/application/servicerequest/usecases"
)

// CreateServiceRequestRequest is the payload for POST /service-requests.
type CreateServiceRequestRequest struct {
	ProductName      string   `json:"productName" binding:"required"`
	SerialNumber     string   `json:"serialNumber" binding:"required"`
	CustomerName     string   `json:"customerName" binding:"required"`
	CustomerContact  string   `json:"customerContact" binding:"required"`
	IssueDescription string   `json:"issueDescription" binding:"required"`
	Status           string   `json:"status" binding:"omitempty,oneof=new inspection service received completed"`
	Attachments      []string `json:"attachments"`
}

func (r *CreateServiceRequestRequest) ToCommand() usecases.CreateRequestCommand {
	return usecases.CreateRequestCommand{
		ProductName:      r.ProductName,
		SerialNumber:     r.SerialNumber,
		CustomerName:     r.CustomerName,
		CustomerContact:  r.CustomerContact,
		IssueDescription: r.IssueDescription,
		Status:           r.Status,
		Attachments:      r.Attachments,
	}
}

// UpdateServiceRequestRequest is the payload for PATCH /service-requests/:id.
// Absent fields leave the record untouched.
type UpdateServiceRequestRequest struct {
	ProductName      *string  `json:"productName"`
	SerialNumber     *string  `json:"serialNumber"`
	CustomerName     *string  `json:"customerName"`
	CustomerContact  *string  `json:"customerContact"`
	IssueDescription *string  `json:"issueDescription"`
	Status           *string  `json:"status" binding:"omitempty,oneof=new inspection service received completed"`
	Attachments      []string `json:"attachments"`
}

func (r *UpdateServiceRequestRequest) ToCommand(sid string) usecases.UpdateRequestCommand {
	return usecases.UpdateRequestCommand{
		SID:              sid,
		ProductName:      r.ProductName,
		SerialNumber:     r.SerialNumber,
		CustomerName:     r.CustomerName,
		CustomerContact:  r.CustomerContact,
		IssueDescription: r.IssueDescription,
		Status:           r.Status,
		Attachments:      r.Attachments,
	}
}

// AddCommentRequest is the payload for POST /service-requests/:id/comments.
type AddCommentRequest struct {
	Text        string   `json:"text" binding:"required"`
	Attachments []string `json:"attachments"`
}

// AppendAttachmentsRequest is the payload for
// POST /service-requests/:id/attachments. The array must be non-empty.
type AppendAttachmentsRequest struct {
	Attachments []string `json:"attachments" binding:"required,min=1,dive,required"`
}
