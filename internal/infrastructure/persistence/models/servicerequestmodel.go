package models

import "gorm.io/datatypes"

type ServiceRequestModel struct {
	ID               uint           `gorm:"primaryKey"`
	SID              string         `gorm:"uniqueIndex;size:50;not null"`
	ProductName      string         `gorm:"size:200;not null"`
	SerialNumber     string         `gorm:"size:100;not null;index"`
	CustomerName     string         `gorm:"size:200;not null;index"`
	CustomerContact  string         `gorm:"size:200;not null"`
	IssueDescription string         `gorm:"type:text;not null"`
	Status           string         `gorm:"size:20;not null;index"`
	Attachments      datatypes.JSON `gorm:"type:json"`
	CreatedAt        int64          `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt        int64          `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (ServiceRequestModel) TableName() string {
	return "service_requests"
}

type CommentModel struct {
	ID          uint           `gorm:"primaryKey"`
	SID         string         `gorm:"uniqueIndex;size:50;not null"`
	RequestSID  string         `gorm:"size:50;not null;index"`
	Text        string         `gorm:"type:text;not null"`
	Attachments datatypes.JSON `gorm:"type:json"`
	CreatedAt   int64          `gorm:"autoCreateTime:milli;not null;index"`
}

func (CommentModel) TableName() string {
	return "service_request_comments"
}
