package response

import (
	"time"

	"studio-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
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

func NewBookingResponses(views []*queries.BookingView) ([]BookingResponse, error) {
	out := make([]BookingResponse, 0, len(views))
	if err := copier.Copy(&out, &views); err != nil {
		return nil, err
	}
	return out, nil
}
