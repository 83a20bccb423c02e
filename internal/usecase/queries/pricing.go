package queries

import (
	"context"

	"studio-booking/internal/domain/catalog"
	"studio-booking/internal/domain/customer"
	"studio-booking/internal/domain/pricing"
	"studio-booking/internal/infra"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrUnknownBundle = errs.New("unknown bundle")

type ServiceQuoteView struct {
	ServiceID     string `json:"service_id"`
	BaseCents     int64  `json:"base_cents"`
	ChargeCents   int64  `json:"charge_cents"`
	CreditApplied bool   `json:"credit_applied"`
}

type BundleQuoteView struct {
	BundleID    string `json:"bundle_id"`
	ChargeCents int64  `json:"charge_cents"`
}

type PricingQueries interface {
	// QuoteService prices one visit. The customer id is optional; without it
	// the credit discount can never apply.
	QuoteService(ctx context.Context, serviceID string, customerID *uuid.UUID) (*ServiceQuoteView, error)
	QuoteBundle(ctx context.Context, bundleID string) (*BundleQuoteView, error)
}

type pricingQueriesImpl struct {
	cat       *catalog.Catalog
	quoter    *pricing.Quoter
	customers shared.CustomerReads
}

func NewPricingQueries(cat *catalog.Catalog, quoter *pricing.Quoter, customers shared.CustomerReads) PricingQueries {
	return &pricingQueriesImpl{cat: cat, quoter: quoter, customers: customers}
}

func (q *pricingQueriesImpl) QuoteService(ctx context.Context, serviceID string, customerID *uuid.UUID) (*ServiceQuoteView, error) {
	svc, ok := q.cat.Service(serviceID)
	if !ok {
		return nil, ErrUnknownService
	}

	var cust *customer.Customer
	if customerID != nil {
		found, err := q.customers.FindByID(ctx, *customerID)
		switch {
		case err == nil:
			cust = found
		case infra.IsKind(err, infra.KindNotFound):
			// Stale token for a removed customer: quote the base rate.
		default:
			return nil, errs.Mark(err, ErrStoreFailure)
		}
	}

	quote := q.quoter.ServiceQuote(svc, cust)
	return &ServiceQuoteView{
		ServiceID:     quote.ServiceID,
		BaseCents:     quote.BaseCents,
		ChargeCents:   quote.ChargeCents,
		CreditApplied: quote.CreditApplied,
	}, nil
}

func (q *pricingQueriesImpl) QuoteBundle(_ context.Context, bundleID string) (*BundleQuoteView, error) {
	b, ok := q.cat.Bundle(bundleID)
	if !ok {
		return nil, ErrUnknownBundle
	}
	return &BundleQuoteView{BundleID: b.ID, ChargeCents: q.quoter.BundleQuote(b)}, nil
}
