package stack

// Known health status values. The API may introduce new values; anything
// unrecognized gets the neutral "unknown" treatment downstream instead of
// breaking the dashboard.
const (
	StatusHealthy   = "healthy"
	StatusDegraded  = "degraded"
	StatusUnhealthy = "unhealthy"
	StatusUnknown   = "unknown"
	StatusError     = "error"
)

// Report is one aggregated snapshot of downstream service health. A new
// report is produced on every poll cycle and fully replaces the previous
// one; reports are never merged, so a failed poll can't leave stale
// per-service data on screen.
type Report struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Services  map[string]string `json:"services,omitempty"`
	Error     string            `json:"error,omitempty"`
}
