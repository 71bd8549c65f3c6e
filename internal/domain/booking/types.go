package booking

type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusActive     Status = "active"
	StatusInspection Status = "inspection"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusActive, StatusInspection, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) IsCancelled() bool {
	return s == StatusCancelled
}

// IsOpen reports whether the booking still occupies its vehicle's calendar.
func (s Status) IsOpen() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusActive, StatusInspection:
		return true
	default:
		return false
	}
}
