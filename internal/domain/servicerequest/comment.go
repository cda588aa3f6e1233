package servicerequest

import (
	"fmt"
	"time"
)

// Comment is a note attached to a service request. Comments are immutable
// after creation.
type Comment struct {
	id          uint
	sid         string
	requestSID  string
	text        string
	attachments []string
	createdAt   time.Time
}

func NewComment(
	sid string,
	requestSID string,
	text string,
	attachments []string,
) (*Comment, error) {
	if len(sid) == 0 {
		return nil, fmt.Errorf("sid is required")
	}
	if len(requestSID) == 0 {
		return nil, fmt.Errorf("service request ID is required")
	}
	if len(text) == 0 {
		return nil, fmt.Errorf("text cannot be empty")
	}

	if attachments == nil {
		attachments = []string{}
	}

	return &Comment{
		sid:         sid,
		requestSID:  requestSID,
		text:        text,
		attachments: attachments,
		createdAt:   time.Now(),
	}, nil
}

func ReconstructComment(
	id uint,
	sid string,
	requestSID string,
	text string,
	attachments []string,
	createdAt time.Time,
) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	if len(sid) == 0 {
		return nil, fmt.Errorf("sid is required")
	}
	if len(requestSID) == 0 {
		return nil, fmt.Errorf("service request ID is required")
	}

	if attachments == nil {
		attachments = []string{}
	}

	return &Comment{
		id:          id,
		sid:         sid,
		requestSID:  requestSID,
		text:        text,
		attachments: attachments,
		createdAt:   createdAt,
	}, nil
}

func (c *Comment) ID() uint {
	return c.id
}

func (c *Comment) SID() string {
	return c.sid
}

func (c *Comment) RequestSID() string {
	return c.requestSID
}

func (c *Comment) Text() string {
	return c.text
}

func (c *Comment) Attachments() []string {
	attachmentsCopy := make([]string, len(c.attachments))
	copy(attachmentsCopy, c.attachments)
	return attachmentsCopy
}

func (c *Comment) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}
