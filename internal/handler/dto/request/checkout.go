package request

import "github.com/google/uuid"

// Kind selects what RefID points at: "single" names a hold id, "bundle" a
// group id.
type CheckoutRequest struct {
	Kind  string    `json:"kind" binding:"required,oneof=single bundle"`
	RefID uuid.UUID `json:"ref_id" binding:"required"`
}
