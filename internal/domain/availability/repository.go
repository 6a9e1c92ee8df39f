package availability

import "context"

// Repository supplies the booking snapshot the engine derives from.
// The engine only ever reads, it never mutates the order collection.
type Repository interface {
	// ListBookingsForDate returns the scheduled (non-cancelled) bookings
	// whose date equals the given YYYY-MM-DD string.
	ListBookingsForDate(
		ctx context.Context,
		date string,
	) ([]Booking, error)
}
