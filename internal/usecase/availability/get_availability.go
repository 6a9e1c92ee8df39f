package availability

import (
	"context"
	"time"

	domain "github.com/SweetDelights01/bakery-storefront/internal/domain/availability"
	"github.com/SweetDelights01/bakery-storefront/internal/httperr"
)

type GetAvailability struct {
	repo domain.Repository
	loc  *time.Location
}

func NewGetAvailability(repo domain.Repository, loc *time.Location) *GetAvailability {
	return &GetAvailability{repo: repo, loc: loc}
}

// Execute derives the availability report for a single YYYY-MM-DD date.
// The booking snapshot is re-read on every call, so back-to-back calls
// observe orders created in between.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	date string,
) (*domain.DayAvailability, error) {

	if date == "" {
		return nil, httperr.ErrBusiness("date_required")
	}

	parsed, err := time.ParseInLocation("2006-01-02", date, uc.loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	bookings, err := uc.repo.ListBookingsForDate(ctx, date)
	if err != nil {
		return nil, err
	}

	day := domain.ComputeDay(date, parsed.Weekday(), bookings)
	return &day, nil
}
