package bookings

// Status is the booking lifecycle state. The normal progression is
// pending -> confirmed -> in_progress -> completed, with cancelled
// reachable from any non-terminal state.
type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// IsValid checks if the booking status is one of the enumerated values
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether no further transitions are expected
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}
