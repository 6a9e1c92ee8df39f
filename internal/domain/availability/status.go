package availability

// ===============================
// Day Status
// ===============================

type Status string

const (
	StatusAvailable Status = "available"
	StatusLimited   Status = "limited"
	StatusBusy      Status = "busy"
)

const (
	busyThreshold    = 20
	limitedThreshold = 50
)

// statusFor classifies a day by its availability percentage.
// First match wins: <20 busy, <50 limited, otherwise available.
func statusFor(percentage int) Status {
	if percentage < busyThreshold {
		return StatusBusy
	}
	if percentage < limitedThreshold {
		return StatusLimited
	}
	return StatusAvailable
}
