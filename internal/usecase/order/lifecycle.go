package order

import (
	"context"
	"time"

	"github.com/SweetDelights01/bakery-storefront/internal/audit"
	domain "github.com/SweetDelights01/bakery-storefront/internal/domain/order"
	"github.com/SweetDelights01/bakery-storefront/internal/httperr"
	"github.com/SweetDelights01/bakery-storefront/internal/models"
)

// ======================================================
// CONFIRM / COMPLETE / CANCEL
// ======================================================

type ChangeStatus struct {
	repo  domain.Repository
	audit Dispatcher
	loc   *time.Location

	now func() time.Time
}

func NewChangeStatus(
	repo domain.Repository,
	audit Dispatcher,
	loc *time.Location,
) *ChangeStatus {
	return &ChangeStatus{
		repo:  repo,
		audit: audit,
		loc:   loc,
		now:   func() time.Time { return time.Now().In(loc) },
	}
}

func (uc *ChangeStatus) Confirm(ctx context.Context, orderID uint) (*models.Order, error) {
	return uc.apply(ctx, orderID, "order_confirmed", domain.Confirm)
}

func (uc *ChangeStatus) Complete(ctx context.Context, orderID uint) (*models.Order, error) {
	return uc.apply(ctx, orderID, "order_completed", domain.Complete)
}

func (uc *ChangeStatus) Cancel(ctx context.Context, orderID uint) (*models.Order, error) {
	return uc.apply(ctx, orderID, "order_cancelled", domain.Cancel)
}

func (uc *ChangeStatus) apply(
	ctx context.Context,
	orderID uint,
	action string,
	transition func(*models.Order, time.Time) error,
) (*models.Order, error) {

	o, err := uc.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, httperr.ErrBusiness("order_not_found")
	}

	if err := transition(o, uc.now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateOrder(ctx, o); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		OrderID: &o.ID,
		Action:  action,
		Entity:  "order",
	})

	return o, nil
}
