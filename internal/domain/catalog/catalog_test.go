//go:build unit

package catalog_test

import (
	"testing"
	"time"

	"studio-booking/internal/domain/catalog"
	"studio-booking/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validServices() []catalog.Service {
	return []catalog.Service{
		{ID: "sauna", Name: "Sauna", Duration: time.Hour, PriceCents: 2500, Buffer: 30 * time.Minute},
		{ID: "massage", Name: "Massage", Duration: 45 * time.Minute, PriceCents: 4000, Buffer: 15 * time.Minute},
	}
}

func validHours() schedule.WeeklyHours {
	return schedule.WeeklyHours{time.Monday: {Open: "09:00", Close: "17:00"}}
}

func TestCatalogNew(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		bundles := []catalog.Bundle{
			{ID: "duo", Name: "Duo", ServiceIDs: []string{"sauna", "massage"}, PriceCents: 5800},
		}
		credit := catalog.CreditPlan{ServiceID: "sauna", DiscountCents: 2000, PackSize: 10}

		cat, err := catalog.New(validServices(), bundles, validHours(), credit)
		require.NoError(t, err)

		svc, ok := cat.Service("sauna")
		require.True(t, ok)
		assert.Equal(t, int64(2500), svc.PriceCents)

		b, ok := cat.Bundle("duo")
		require.True(t, ok)
		assert.Equal(t, []string{"sauna", "massage"}, b.ServiceIDs)

		assert.Len(t, cat.Services(), 2)
		assert.Len(t, cat.Bundles(), 1)
		assert.Equal(t, "sauna", cat.Credit().ServiceID)
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name     string
			services []catalog.Service
			bundles  []catalog.Bundle
			credit   catalog.CreditPlan
			errIs    error
		}{
			{
				name:     "empty service id",
				services: []catalog.Service{{ID: "", Duration: time.Hour}},
				errIs:    catalog.ErrEmptyServiceID,
			},
			{
				name: "duplicate service",
				services: []catalog.Service{
					{ID: "sauna", Duration: time.Hour},
					{ID: "sauna", Duration: time.Hour},
				},
				errIs: catalog.ErrDuplicateService,
			},
			{
				name:     "non-positive duration",
				services: []catalog.Service{{ID: "sauna", Duration: 0}},
				errIs:    catalog.ErrInvalidDuration,
			},
			{
				name:     "negative price",
				services: []catalog.Service{{ID: "sauna", Duration: time.Hour, PriceCents: -1}},
				errIs:    catalog.ErrNegativePrice,
			},
			{
				name:     "bundle without members",
				services: validServices(),
				bundles:  []catalog.Bundle{{ID: "duo"}},
				errIs:    catalog.ErrEmptyBundle,
			},
			{
				name:     "bundle referencing unknown service",
				services: validServices(),
				bundles:  []catalog.Bundle{{ID: "duo", ServiceIDs: []string{"yoga"}}},
				errIs:    catalog.ErrUnknownMember,
			},
			{
				name:     "credit plan referencing unknown service",
				services: validServices(),
				credit:   catalog.CreditPlan{ServiceID: "yoga", DiscountCents: 2000},
				errIs:    catalog.ErrUnknownCreditTarget,
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := catalog.New(tc.services, tc.bundles, validHours(), tc.credit)
				assert.ErrorIs(t, err, tc.errIs)
			})
		}
	})
}

func TestCatalogDefault(t *testing.T) {
	cat := catalog.Default()

	require.NotNil(t, cat)
	assert.Len(t, cat.Services(), 3)
	assert.Len(t, cat.Bundles(), 1)
	assert.Equal(t, "sauna", cat.Credit().ServiceID)

	// Sunday is closed in the standing schedule.
	_, sundayOpen := cat.Hours()[time.Sunday]
	assert.False(t, sundayOpen)
}
