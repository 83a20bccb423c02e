package response

import "github.com/google/uuid"

type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	CustomerID  uuid.UUID `json:"customer_id"`
}
