package availability

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// Bakery counter hours: slots every 30 minutes, 09:00 through 20:30.
const (
	openingHour = 9
	closingHour = 20
)

const (
	baseCapacity    = 8
	weekendCapacity = 12
	peakFactor      = 0.7
)

// SlotTimes returns the bookable slot starts in chronological order:
// both :00 and :30 are emitted for every hour, closing hour included.
func SlotTimes() []string {
	times := make([]string, 0, (closingHour-openingHour+1)*2)
	for hour := openingHour; hour <= closingHour; hour++ {
		for minute := 0; minute < 60; minute += 30 {
			times = append(times, fmt.Sprintf("%02d:%02d", hour, minute))
		}
	}
	return times
}

// IsSlotTime reports whether hm is one of the bookable slot starts.
func IsSlotTime(hm string) bool {
	for _, t := range SlotTimes() {
		if t == hm {
			return true
		}
	}
	return false
}

// SlotCapacity is a pure function of (day-of-week, hour). Weekends get a
// higher base, then peak lunch (12-14) and dinner (18-20) hours are scaled
// down by the peak factor, truncating toward zero.
func SlotCapacity(day time.Weekday, hour int) int {
	capacity := baseCapacity
	if day == time.Saturday || day == time.Sunday {
		capacity = weekendCapacity
	}

	if (hour >= 12 && hour <= 14) || (hour >= 18 && hour <= closingHour) {
		capacity = int(math.Floor(float64(capacity) * peakFactor))
	}

	return capacity
}

// DisplayTime renders a 24-hour HH:MM slot time on the 12-hour clock,
// e.g. "09:00" -> "9:00 AM".
func DisplayTime(hm string) string {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return hm
	}
	return t.Format("3:04 PM")
}

// ComputeDay derives the full availability report for one calendar date
// from a snapshot of existing bookings. Bookings whose date differs from
// the queried date are ignored; times are matched by exact string equality.
// The result is recomputed from scratch on every call and never cached.
func ComputeDay(date string, day time.Weekday, bookings []Booking) DayAvailability {
	booked := make(map[string]int)
	for _, b := range bookings {
		if b.ScheduledDate == date {
			booked[b.ScheduledTime]++
		}
	}

	times := SlotTimes()
	slots := make([]TimeSlot, 0, len(times))
	availableCount := 0

	for _, hm := range times {
		hour, _ := strconv.Atoi(hm[:2])

		maxCapacity := SlotCapacity(day, hour)
		bookedCount := booked[hm]

		spots := maxCapacity - bookedCount
		if spots < 0 {
			spots = 0
		}

		available := bookedCount < maxCapacity
		if available {
			availableCount++
		}

		slots = append(slots, TimeSlot{
			Time:           hm,
			DisplayTime:    DisplayTime(hm),
			MaxCapacity:    maxCapacity,
			BookedCount:    bookedCount,
			AvailableSpots: spots,
			Available:      available,
		})
	}

	percentage := int(math.Round(float64(availableCount) / float64(len(slots)) * 100))

	return DayAvailability{
		Date:                   date,
		Status:                 statusFor(percentage),
		AvailabilityPercentage: percentage,
		TotalSlots:             len(slots),
		AvailableSlots:         availableCount,
		TimeSlots:              slots,
	}
}
