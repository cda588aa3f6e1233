package valueobjects

import "fmt"

// Status is the workflow state of a service request. The workflow is linear in
// presentation (new → inspection → service → received → completed) but any
// status is reachable from any other; operators routinely move requests
// backwards when a repair bounces.
type Status string

const (
	StatusNew        Status = "new"
	StatusInspection Status = "inspection"
	StatusService    Status = "service"
	StatusReceived   Status = "received"
	StatusCompleted  Status = "completed"
)

var validStatuses = map[Status]bool{
	StatusNew:        true,
	StatusInspection: true,
	StatusService:    true,
	StatusReceived:   true,
	StatusCompleted:  true,
}

// All lists every status in workflow order.
func All() []Status {
	return []Status{
		StatusNew,
		StatusInspection,
		StatusService,
		StatusReceived,
		StatusCompleted,
	}
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func (s Status) IsCompleted() bool {
	return s == StatusCompleted
}

// IsActive reports whether a request in this status still counts toward the
// active workload.
func (s Status) IsActive() bool {
	return validStatuses[s] && s != StatusCompleted
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", fmt.Errorf("invalid status: %s", s)
	}
	return st, nil
}
