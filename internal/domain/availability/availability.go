package availability

// Booking is the read-only slice of an order the engine cares about:
// the scheduled calendar date (YYYY-MM-DD) and slot time (HH:MM).
type Booking struct {
	ScheduledDate string
	ScheduledTime string
}

type TimeSlot struct {
	Time           string `json:"time"`
	DisplayTime    string `json:"display_time"`
	MaxCapacity    int    `json:"max_capacity"`
	BookedCount    int    `json:"booked_count"`
	AvailableSpots int    `json:"available_spots"`
	Available      bool   `json:"available"`
}

type DayAvailability struct {
	Date                   string     `json:"date"`
	Status                 Status     `json:"status"`
	AvailabilityPercentage int        `json:"availability_percentage"`
	TotalSlots             int        `json:"total_slots"`
	AvailableSlots         int        `json:"available_slots"`
	TimeSlots              []TimeSlot `json:"time_slots"`
}
