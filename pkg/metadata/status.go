package metadata

type Status string

const (
	StatusAvailable Status = "Available"
	StatusAssigned  Status = "Assigned"
	StatusDamaged   Status = "Damaged"
	StatusRetired   Status = "Retired"
	StatusOther     Status = "Other"
)

// FilterAll is the status filter wildcard: no filtering on status.
const FilterAll = "All"

// NewStatus folds an arbitrary status string into the known set. Unknown
// values classify as StatusOther; the raw string stays on the asset itself so
// exports and exact-match filters are unaffected.
func NewStatus(value string) Status {
	status := Status(value)
	if !status.isValid() {
		return StatusOther
	}
	return status
}

func (s Status) isValid() bool {
	switch s {
	case StatusAvailable, StatusAssigned, StatusDamaged, StatusRetired:
		return true
	default:
		return false
	}
}

func (s Status) String() string {
	return string(s)
}
