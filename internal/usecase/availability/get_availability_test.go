package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/SweetDelights01/bakery-storefront/internal/domain/availability"
	"github.com/SweetDelights01/bakery-storefront/internal/httperr"
)

type fakeRepo struct {
	bookings []domain.Booking
	err      error
	calls    int
}

func (f *fakeRepo) ListBookingsForDate(_ context.Context, date string) ([]domain.Booking, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}

	var out []domain.Booking
	for _, b := range f.bookings {
		if b.ScheduledDate == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func TestGetAvailability_RequiresDate(t *testing.T) {
	uc := NewGetAvailability(&fakeRepo{}, time.UTC)

	_, err := uc.Execute(context.Background(), "")
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "date_required"))
}

func TestGetAvailability_RejectsMalformedDate(t *testing.T) {
	uc := NewGetAvailability(&fakeRepo{}, time.UTC)

	for _, bad := range []string{"2026-13-01", "03/10/2026", "not-a-date"} {
		_, err := uc.Execute(context.Background(), bad)
		require.Error(t, err, "input %q", bad)
		assert.True(t, httperr.IsBusiness(err, "invalid_date"))
	}
}

func TestGetAvailability_PropagatesRepoError(t *testing.T) {
	repoErr := errors.New("connection refused")
	uc := NewGetAvailability(&fakeRepo{err: repoErr}, time.UTC)

	_, err := uc.Execute(context.Background(), "2026-03-10")
	assert.ErrorIs(t, err, repoErr)
}

func TestGetAvailability_ComputesFromSnapshot(t *testing.T) {
	repo := &fakeRepo{bookings: []domain.Booking{
		{ScheduledDate: "2026-03-10", ScheduledTime: "10:00"},
		{ScheduledDate: "2026-03-10", ScheduledTime: "10:00"},
		{ScheduledDate: "2026-03-11", ScheduledTime: "10:00"},
	}}
	uc := NewGetAvailability(repo, time.UTC)

	// 2026-03-10 is a Tuesday
	day, err := uc.Execute(context.Background(), "2026-03-10")
	require.NoError(t, err)

	assert.Equal(t, "2026-03-10", day.Date)
	assert.Equal(t, 24, day.TotalSlots)
	assert.Equal(t, domain.StatusAvailable, day.Status)

	for _, slot := range day.TimeSlots {
		if slot.Time == "10:00" {
			assert.Equal(t, 2, slot.BookedCount)
			assert.Equal(t, 8, slot.MaxCapacity)
			assert.Equal(t, 6, slot.AvailableSpots)
		}
	}
}

func TestGetAvailability_FreshSnapshotPerCall(t *testing.T) {
	repo := &fakeRepo{}
	uc := NewGetAvailability(repo, time.UTC)

	first, err := uc.Execute(context.Background(), "2026-03-10")
	require.NoError(t, err)
	assert.Equal(t, 100, first.AvailabilityPercentage)

	// a booking lands between the two calls
	repo.bookings = make([]domain.Booking, 5)
	for i := range repo.bookings {
		repo.bookings[i] = domain.Booking{ScheduledDate: "2026-03-10", ScheduledTime: "13:00"}
	}

	second, err := uc.Execute(context.Background(), "2026-03-10")
	require.NoError(t, err)
	assert.Equal(t, 23, second.AvailableSlots)
	assert.Equal(t, 2, repo.calls)
}

func TestGetAvailabilityRange_SingleDayMatchesSingleCall(t *testing.T) {
	repo := &fakeRepo{bookings: []domain.Booking{
		{ScheduledDate: "2026-03-10", ScheduledTime: "09:30"},
	}}
	single := NewGetAvailability(repo, time.UTC)
	ranged := NewGetAvailabilityRange(single, time.UTC)

	got, err := ranged.Execute(context.Background(), "2026-03-10", "2026-03-10")
	require.NoError(t, err)
	require.Len(t, got, 1)

	want, err := single.Execute(context.Background(), "2026-03-10")
	require.NoError(t, err)
	assert.Equal(t, *want, got["2026-03-10"])
}

func TestGetAvailabilityRange_InclusiveKeys(t *testing.T) {
	single := NewGetAvailability(&fakeRepo{}, time.UTC)
	ranged := NewGetAvailabilityRange(single, time.UTC)

	got, err := ranged.Execute(context.Background(), "2026-03-10", "2026-03-13")
	require.NoError(t, err)
	require.Len(t, got, 4)

	for _, d := range []string{"2026-03-10", "2026-03-11", "2026-03-12", "2026-03-13"} {
		day, ok := got[d]
		require.True(t, ok, "missing %s", d)
		assert.Equal(t, d, day.Date)
	}
}

func TestGetAvailabilityRange_ReversedRangeIsEmpty(t *testing.T) {
	single := NewGetAvailability(&fakeRepo{}, time.UTC)
	ranged := NewGetAvailabilityRange(single, time.UTC)

	got, err := ranged.Execute(context.Background(), "2026-03-13", "2026-03-10")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGetAvailabilityRange_Validation(t *testing.T) {
	single := NewGetAvailability(&fakeRepo{}, time.UTC)
	ranged := NewGetAvailabilityRange(single, time.UTC)

	_, err := ranged.Execute(context.Background(), "", "2026-03-10")
	assert.True(t, httperr.IsBusiness(err, "date_required"))

	_, err = ranged.Execute(context.Background(), "2026-03-10", "nope")
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))
}
