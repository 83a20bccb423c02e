package response

import (
	"time"

	"studio-booking/internal/domain/hold"

	"github.com/google/uuid"
)

type HoldResponse struct {
	ID          uuid.UUID `json:"id"`
	GroupID     uuid.UUID `json:"group_id"`
	ServiceID   string    `json:"service_id"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	ChargeCents int64     `json:"charge_cents"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type BundleHoldResponse struct {
	GroupID    uuid.UUID      `json:"group_id"`
	BundleID   string         `json:"bundle_id"`
	TotalCents int64          `json:"total_cents"`
	ExpiresAt  time.Time      `json:"expires_at"`
	Holds      []HoldResponse `json:"holds"`
}

func NewHoldResponse(h *hold.Hold) HoldResponse {
	return HoldResponse{
		ID:          h.ID(),
		GroupID:     h.GroupID(),
		ServiceID:   h.ServiceID(),
		Start:       h.Interval().Start(),
		End:         h.Interval().End(),
		ChargeCents: h.ChargeCents(),
		ExpiresAt:   h.ExpiresAt(),
	}
}

func NewBundleHoldResponse(bundleID string, holds []*hold.Hold) BundleHoldResponse {
	resp := BundleHoldResponse{
		GroupID:   holds[0].GroupID(),
		BundleID:  bundleID,
		ExpiresAt: holds[0].ExpiresAt(),
		Holds:     make([]HoldResponse, 0, len(holds)),
	}
	for _, h := range holds {
		resp.TotalCents += h.ChargeCents()
		resp.Holds = append(resp.Holds, NewHoldResponse(h))
	}
	return resp
}
