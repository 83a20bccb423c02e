package response

import "studio-booking/internal/usecase/queries"

type AvailabilityResponse struct {
	ServiceID string             `json:"service_id"`
	Day       string             `json:"day"`
	Slots     []queries.SlotView `json:"slots"`
}
