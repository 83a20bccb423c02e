//go:build unit

package hold_test

import (
	"testing"
	"time"

	"studio-booking/internal/domain/hold"
	"studio-booking/internal/domain/schedule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	now = time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)
	ttl = 12 * time.Minute
)

func testInterval(t *testing.T, start time.Time) schedule.Interval {
	t.Helper()
	ival, err := schedule.NewInterval(start, time.Hour, 30*time.Minute)
	require.NoError(t, err)
	return ival
}

func TestNewSingle(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		customerID := uuid.New()
		h, err := hold.NewSingle("sauna", testInterval(t, now.Add(time.Hour)), &customerID, 2500, now, ttl)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, h.ID())
		assert.Equal(t, h.ID(), h.GroupID(), "a single hold is its own group")
		assert.Equal(t, 1, h.GroupSize())
		assert.Equal(t, hold.KindSingle, h.Kind())
		assert.Nil(t, h.BundleID())
		assert.Equal(t, "sauna", h.ServiceID())
		assert.Equal(t, &customerID, h.CustomerID())
		assert.Equal(t, int64(2500), h.ChargeCents())
		assert.Equal(t, now.Add(ttl), h.ExpiresAt())
	})

	t.Run("anonymous hold", func(t *testing.T) {
		h, err := hold.NewSingle("sauna", testInterval(t, now), nil, 2500, now, ttl)
		require.NoError(t, err)
		assert.Nil(t, h.CustomerID())
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name      string
			serviceID string
			charge    int64
			ttl       time.Duration
			errIs     error
		}{
			{name: "missing service id", serviceID: "", charge: 2500, ttl: ttl, errIs: hold.ErrMissingServiceID},
			{name: "negative charge", serviceID: "sauna", charge: -1, ttl: ttl, errIs: hold.ErrNegativeCharge},
			{name: "zero ttl", serviceID: "sauna", charge: 2500, ttl: 0, errIs: hold.ErrInvalidTTL},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := hold.NewSingle(tc.serviceID, testInterval(t, now), nil, tc.charge, now, tc.ttl)
				assert.ErrorIs(t, err, tc.errIs)
			})
		}
	})
}

func TestNewGroup(t *testing.T) {
	members := []hold.Member{
		{ServiceID: "sauna", Interval: testInterval(t, now.Add(time.Hour)), ChargeCents: 5800},
		{ServiceID: "massage", Interval: testInterval(t, now.Add(3 * time.Hour))},
	}

	t.Run("members share group identity and expiry", func(t *testing.T) {
		holds, err := hold.NewGroup("revive-ritual", members, nil, now, ttl)
		require.NoError(t, err)
		require.Len(t, holds, 2)

		assert.Equal(t, holds[0].GroupID(), holds[1].GroupID())
		assert.NotEqual(t, holds[0].ID(), holds[1].ID())
		for _, h := range holds {
			assert.Equal(t, 2, h.GroupSize())
			assert.Equal(t, hold.KindBundleMember, h.Kind())
			require.NotNil(t, h.BundleID())
			assert.Equal(t, "revive-ritual", *h.BundleID())
			assert.Equal(t, now.Add(ttl), h.ExpiresAt())
		}
		assert.Equal(t, int64(5800), holds[0].ChargeCents())
		assert.Equal(t, int64(0), holds[1].ChargeCents())
	})

	t.Run("empty group", func(t *testing.T) {
		_, err := hold.NewGroup("revive-ritual", nil, nil, now, ttl)
		assert.ErrorIs(t, err, hold.ErrEmptyGroup)
	})

	t.Run("member without service id", func(t *testing.T) {
		bad := []hold.Member{{ServiceID: "", Interval: testInterval(t, now)}}
		_, err := hold.NewGroup("revive-ritual", bad, nil, now, ttl)
		assert.ErrorIs(t, err, hold.ErrMissingServiceID)
	})
}

func TestIsLive(t *testing.T) {
	h, err := hold.NewSingle("sauna", testInterval(t, now), nil, 2500, now, ttl)
	require.NoError(t, err)

	assert.True(t, h.IsLive(now))
	assert.True(t, h.IsLive(now.Add(ttl-time.Second)))
	// Expiry is exclusive: at the instant itself the hold is already dead.
	assert.False(t, h.IsLive(now.Add(ttl)))
	assert.False(t, h.IsLive(now.Add(ttl+time.Second)))
}
