package pricing

import (
	"studio-booking/internal/domain/catalog"
	"studio-booking/internal/domain/customer"
)

// Quote is the authoritative charge for one service visit. The charge is
// fixed into the hold at creation; confirmation never re-prices.
type Quote struct {
	ServiceID     string
	BaseCents     int64
	ChargeCents   int64
	CreditApplied bool
}

type Quoter struct {
	cat *catalog.Catalog
}

func NewQuoter(cat *catalog.Catalog) *Quoter {
	return &Quoter{cat: cat}
}

// ServiceQuote resolves the rate for one service. The credit-discounted rate
// applies only when the service is the credit plan's target and the customer
// is identified with a positive balance. The credit itself is consumed at
// confirmation, not here.
func (q *Quoter) ServiceQuote(svc catalog.Service, cust *customer.Customer) Quote {
	quote := Quote{
		ServiceID:   svc.ID,
		BaseCents:   svc.PriceCents,
		ChargeCents: svc.PriceCents,
	}

	credit := q.cat.Credit()
	if credit.ServiceID == svc.ID && cust != nil && cust.HasCredit() {
		quote.ChargeCents = credit.DiscountCents
		quote.CreditApplied = true
	}
	return quote
}

// BundleQuote is the bundle's fixed total, independent of member rates.
func (q *Quoter) BundleQuote(b catalog.Bundle) int64 {
	return b.PriceCents
}
