//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"studio-booking/internal/domain/catalog"
	"studio-booking/internal/domain/customer"
	"studio-booking/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCustomer(t *testing.T, credits int) *customer.Customer {
	t.Helper()
	return customer.Reconstruct(uuid.New(), "ada@example.com", "Ada", credits, time.Now())
}

func TestServiceQuote(t *testing.T) {
	cat := catalog.Default()
	quoter := pricing.NewQuoter(cat)

	sauna, ok := cat.Service("sauna")
	require.True(t, ok)
	massage, ok := cat.Service("massage")
	require.True(t, ok)

	cases := []struct {
		name        string
		svc         catalog.Service
		cust        *customer.Customer
		wantCharge  int64
		wantApplied bool
	}{
		{
			name:        "credit service with positive balance",
			svc:         sauna,
			cust:        testCustomer(t, 3),
			wantCharge:  2000,
			wantApplied: true,
		},
		{
			name:       "credit service with exhausted balance",
			svc:        sauna,
			cust:       testCustomer(t, 0),
			wantCharge: 2500,
		},
		{
			name:       "credit service for anonymous caller",
			svc:        sauna,
			cust:       nil,
			wantCharge: 2500,
		},
		{
			name:       "non-credit service never discounts",
			svc:        massage,
			cust:       testCustomer(t, 3),
			wantCharge: 4000,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			quote := quoter.ServiceQuote(tc.svc, tc.cust)
			assert.Equal(t, tc.svc.ID, quote.ServiceID)
			assert.Equal(t, tc.svc.PriceCents, quote.BaseCents)
			assert.Equal(t, tc.wantCharge, quote.ChargeCents)
			assert.Equal(t, tc.wantApplied, quote.CreditApplied)
		})
	}
}

func TestBundleQuote(t *testing.T) {
	cat := catalog.Default()
	quoter := pricing.NewQuoter(cat)

	b, ok := cat.Bundle("revive-ritual")
	require.True(t, ok)

	// The bundle rate is fixed; 5800 undercuts the 6500 member total.
	assert.Equal(t, int64(5800), quoter.BundleQuote(b))
}
