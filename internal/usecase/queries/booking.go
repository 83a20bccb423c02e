package queries

import (
	"context"
	"time"

	"studio-booking/internal/domain/catalog"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingView struct {
	ID          uuid.UUID  `json:"id"`
	GroupID     *uuid.UUID `json:"group_id,omitempty"`
	ServiceID   string     `json:"service_id"`
	ServiceName string     `json:"service_name"`
	Start       time.Time  `json:"start"`
	End         time.Time  `json:"end"`
	ChargeCents int64      `json:"charge_cents"`
	PaymentRef  string     `json:"payment_ref"`
	CreatedAt   time.Time  `json:"created_at"`
}

type BookingQueries interface {
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	cat   *catalog.Catalog
	reads shared.BookingReads
}

func NewBookingQueries(cat *catalog.Catalog, reads shared.BookingReads) BookingQueries {
	return &bookingQueriesImpl{cat: cat, reads: reads}
}

func (q *bookingQueriesImpl) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*BookingView, error) {
	bookings, err := q.reads.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	views := make([]*BookingView, 0, len(bookings))
	for _, b := range bookings {
		name := b.ServiceID()
		if svc, ok := q.cat.Service(b.ServiceID()); ok {
			name = svc.Name
		}
		views = append(views, &BookingView{
			ID:          b.ID(),
			GroupID:     b.GroupID(),
			ServiceID:   b.ServiceID(),
			ServiceName: name,
			Start:       b.Interval().Start(),
			End:         b.Interval().End(),
			ChargeCents: b.ChargeCents(),
			PaymentRef:  b.PaymentRef(),
			CreatedAt:   b.CreatedAt(),
		})
	}
	return views, nil
}
