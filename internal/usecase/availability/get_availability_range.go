package availability

import (
	"context"
	"time"

	domain "github.com/SweetDelights01/bakery-storefront/internal/domain/availability"
	"github.com/SweetDelights01/bakery-storefront/internal/httperr"
)

type GetAvailabilityRange struct {
	single *GetAvailability
	loc    *time.Location
}

func NewGetAvailabilityRange(single *GetAvailability, loc *time.Location) *GetAvailabilityRange {
	return &GetAvailabilityRange{single: single, loc: loc}
}

// Execute computes one report per calendar day in the inclusive range,
// keyed by date string. A reversed range yields an empty map, not an
// error: the loop simply never runs.
func (uc *GetAvailabilityRange) Execute(
	ctx context.Context,
	startDate string,
	endDate string,
) (map[string]domain.DayAvailability, error) {

	if startDate == "" || endDate == "" {
		return nil, httperr.ErrBusiness("date_required")
	}

	start, err := time.ParseInLocation("2006-01-02", startDate, uc.loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	end, err := time.ParseInLocation("2006-01-02", endDate, uc.loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	out := make(map[string]domain.DayAvailability)

	for cur := start; !cur.After(end); cur = cur.AddDate(0, 0, 1) {
		dateStr := cur.Format("2006-01-02")

		day, err := uc.single.Execute(ctx, dateStr)
		if err != nil {
			return nil, err
		}

		out[dateStr] = *day
	}

	return out, nil
}
