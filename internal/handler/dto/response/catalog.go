package response

import "studio-booking/internal/domain/catalog"

type ServiceResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	DurationMin   int    `json:"duration_min"`
	BufferMin     int    `json:"buffer_min"`
	PriceCents    int64  `json:"price_cents"`
	CreditTarget  bool   `json:"credit_target"`
	DiscountCents int64  `json:"discount_cents,omitempty"`
}

type BundleResponse struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	ServiceIDs []string `json:"service_ids"`
	PriceCents int64    `json:"price_cents"`
}

func NewServiceResponses(cat *catalog.Catalog) []ServiceResponse {
	credit := cat.Credit()
	services := cat.Services()
	out := make([]ServiceResponse, 0, len(services))
	for _, svc := range services {
		resp := ServiceResponse{
			ID:          svc.ID,
			Name:        svc.Name,
			DurationMin: int(svc.Duration.Minutes()),
			BufferMin:   int(svc.Buffer.Minutes()),
			PriceCents:  svc.PriceCents,
		}
		if credit.ServiceID == svc.ID {
			resp.CreditTarget = true
			resp.DiscountCents = credit.DiscountCents
		}
		out = append(out, resp)
	}
	return out
}

func NewBundleResponses(cat *catalog.Catalog) []BundleResponse {
	bundles := cat.Bundles()
	out := make([]BundleResponse, 0, len(bundles))
	for _, b := range bundles {
		out = append(out, BundleResponse{
			ID:         b.ID,
			Name:       b.Name,
			ServiceIDs: b.ServiceIDs,
			PriceCents: b.PriceCents,
		})
	}
	return out
}
