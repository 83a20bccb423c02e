package request

import "time"

type CreateHoldRequest struct {
	ServiceID string    `json:"service_id" binding:"required"`
	Start     time.Time `json:"start" binding:"required"`
}

type BundleSelection struct {
	ServiceID string    `json:"service_id" binding:"required"`
	Start     time.Time `json:"start" binding:"required"`
}

// Selections bind positionally to the bundle's member services.
type CreateBundleHoldRequest struct {
	BundleID   string            `json:"bundle_id" binding:"required"`
	Selections []BundleSelection `json:"selections" binding:"required,min=1,dive"`
}
