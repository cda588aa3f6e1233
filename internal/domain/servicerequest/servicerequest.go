package servicerequest

import (
	"fmt"
	"time"

	vo "servicedesk/internal/domain/servicerequest/valueobjects"
)

// ServiceRequest is a customer's product service case moving through the
// repair workflow. The numeric id is the storage key; the sid is the opaque
// identifier exposed to clients.
type ServiceRequest struct {
	id               uint
	sid              string
	productName      string
	serialNumber     string
	customerName     string
	customerContact  string
	issueDescription string
	status           vo.Status
	attachments      []string
	createdAt        time.Time
	updatedAt        time.Time
}

// NewServiceRequest creates a request with the given fields. An empty status
// defaults to new; attachments may be nil.
func NewServiceRequest(
	sid string,
	productName string,
	serialNumber string,
	customerName string,
	customerContact string,
	issueDescription string,
	status vo.Status,
	attachments []string,
) (*ServiceRequest, error) {
	if len(sid) == 0 {
		return nil, fmt.Errorf("sid is required")
	}
	if len(productName) == 0 {
		return nil, fmt.Errorf("product name is required")
	}
	if len(serialNumber) == 0 {
		return nil, fmt.Errorf("serial number is required")
	}
	if len(customerName) == 0 {
		return nil, fmt.Errorf("customer name is required")
	}
	if len(customerContact) == 0 {
		return nil, fmt.Errorf("customer contact is required")
	}
	if len(issueDescription) == 0 {
		return nil, fmt.Errorf("issue description is required")
	}

	if status == "" {
		status = vo.StatusNew
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	if attachments == nil {
		attachments = []string{}
	}

	now := time.Now()
	return &ServiceRequest{
		sid:              sid,
		productName:      productName,
		serialNumber:     serialNumber,
		customerName:     customerName,
		customerContact:  customerContact,
		issueDescription: issueDescription,
		status:           status,
		attachments:      attachments,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

// Reconstruct rebuilds a request from persisted state.
func Reconstruct(
	id uint,
	sid string,
	productName string,
	serialNumber string,
	customerName string,
	customerContact string,
	issueDescription string,
	status vo.Status,
	attachments []string,
	createdAt, updatedAt time.Time,
) (*ServiceRequest, error) {
	if id == 0 {
		return nil, fmt.Errorf("service request ID cannot be zero")
	}
	if len(sid) == 0 {
		return nil, fmt.Errorf("sid is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	if attachments == nil {
		attachments = []string{}
	}

	return &ServiceRequest{
		id:               id,
		sid:              sid,
		productName:      productName,
		serialNumber:     serialNumber,
		customerName:     customerName,
		customerContact:  customerContact,
		issueDescription: issueDescription,
		status:           status,
		attachments:      attachments,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}, nil
}

func (r *ServiceRequest) ID() uint {
	return r.id
}

func (r *ServiceRequest) SID() string {
	return r.sid
}

func (r *ServiceRequest) ProductName() string {
	return r.productName
}

func (r *ServiceRequest) SerialNumber() string {
	return r.serialNumber
}

func (r *ServiceRequest) CustomerName() string {
	return r.customerName
}

func (r *ServiceRequest) CustomerContact() string {
	return r.customerContact
}

func (r *ServiceRequest) IssueDescription() string {
	return r.issueDescription
}

func (r *ServiceRequest) Status() vo.Status {
	return r.status
}

func (r *ServiceRequest) Attachments() []string {
	attachmentsCopy := make([]string, len(r.attachments))
	copy(attachmentsCopy, r.attachments)
	return attachmentsCopy
}

func (r *ServiceRequest) CreatedAt() time.Time {
	return r.createdAt
}

func (r *ServiceRequest) UpdatedAt() time.Time {
	return r.updatedAt
}

func (r *ServiceRequest) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("service request ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("service request ID cannot be zero")
	}
	r.id = id
	return nil
}

// Update holds a partial set of fields to merge onto an existing request.
// Nil pointers leave the current value untouched; a non-nil Attachments slice
// replaces the stored list wholesale.
type Update struct {
	ProductName      *string
	SerialNumber     *string
	CustomerName     *string
	CustomerContact  *string
	IssueDescription *string
	Status           *vo.Status
	Attachments      []string
}

// ApplyUpdate merges the supplied fields onto the request and refreshes
// updatedAt. Untouched fields are never cleared.
func (r *ServiceRequest) ApplyUpdate(u Update) error {
	if u.ProductName != nil {
		if len(*u.ProductName) == 0 {
			return fmt.Errorf("product name cannot be empty")
		}
		r.productName = *u.ProductName
	}
	if u.SerialNumber != nil {
		if len(*u.SerialNumber) == 0 {
			return fmt.Errorf("serial number cannot be empty")
		}
		r.serialNumber = *u.SerialNumber
	}
	if u.CustomerName != nil {
		if len(*u.CustomerName) == 0 {
			return fmt.Errorf("customer name cannot be empty")
		}
		r.customerName = *u.CustomerName
	}
	if u.CustomerContact != nil {
		if len(*u.CustomerContact) == 0 {
			return fmt.Errorf("customer contact cannot be empty")
		}
		r.customerContact = *u.CustomerContact
	}
	if u.IssueDescription != nil {
		if len(*u.IssueDescription) == 0 {
			return fmt.Errorf("issue description cannot be empty")
		}
		r.issueDescription = *u.IssueDescription
	}
	if u.Status != nil {
		if !u.Status.IsValid() {
			return fmt.Errorf("invalid status: %s", *u.Status)
		}
		r.status = *u.Status
	}
	if u.Attachments != nil {
		r.attachments = append([]string{}, u.Attachments...)
	}

	r.updatedAt = time.Now()
	return nil
}

// AppendAttachments concatenates refs after the existing list, preserving
// order with no de-duplication, and refreshes updatedAt.
func (r *ServiceRequest) AppendAttachments(refs []string) {
	r.attachments = append(r.attachments, refs...)
	r.updatedAt = time.Now()
}

func (r *ServiceRequest) Validate() error {
	if len(r.productName) == 0 {
		return fmt.Errorf("product name is required")
	}
	if len(r.serialNumber) == 0 {
		return fmt.Errorf("serial number is required")
	}
	if len(r.customerName) == 0 {
		return fmt.Errorf("customer name is required")
	}
	if len(r.customerContact) == 0 {
		return fmt.Errorf("customer contact is required")
	}
	if len(r.issueDescription) == 0 {
		return fmt.Errorf("issue description is required")
	}
	if !r.status.IsValid() {
		return fmt.Errorf("invalid status: %s", r.status)
	}
	return nil
}
