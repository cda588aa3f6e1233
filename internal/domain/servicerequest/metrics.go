package servicerequest

import vo "servicedesk/internal/domain/servicerequest/valueobjects"

// Metrics is a derived summary of the active workload. It is computed from a
// listing on demand and never stored.
type Metrics struct {
	TotalActive     int
	NewComplaints   int
	UnderInspection int
	SentToService   int
	Received        int
}

// ComputeMetrics counts active requests per status. Completed requests are
// ignored even if present in the input.
func ComputeMetrics(requests []*ServiceRequest) Metrics {
	var m Metrics
	for _, req := range requests {
		switch req.Status() {
		case vo.StatusNew:
			m.NewComplaints++
		case vo.StatusInspection:
			m.UnderInspection++
		case vo.StatusService:
			m.SentToService++
		case vo.StatusReceived:
			m.Received++
		default:
			continue
		}
		m.TotalActive++
	}
	return m
}
