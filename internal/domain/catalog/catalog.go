package catalog

import (
	"errors"
	"time"

	"studio-booking/internal/domain/schedule"
)

var (
	ErrEmptyServiceID      = errors.New("service id cannot be empty")
	ErrDuplicateService    = errors.New("duplicate service id")
	ErrDuplicateBundle     = errors.New("duplicate bundle id")
	ErrInvalidDuration     = errors.New("service duration must be positive")
	ErrNegativePrice       = errors.New("price cannot be negative")
	ErrEmptyBundle         = errors.New("bundle must reference at least one service")
	ErrUnknownMember       = errors.New("bundle references unknown service")
	ErrUnknownCreditTarget = errors.New("credit plan references unknown service")
)

type Service struct {
	ID         string
	Name       string
	Duration   time.Duration
	PriceCents int64
	Buffer     time.Duration
}

type Bundle struct {
	ID         string
	Name       string
	ServiceIDs []string
	PriceCents int64
}

// CreditPlan marks one service as payable with prepaid credits at a
// discounted per-visit rate. PackSize is the number of credits granted when a
// pack is purchased.
type CreditPlan struct {
	ServiceID     string
	DiscountCents int64
	PackSize      int
}

// Catalog is the studio's immutable offering. It is validated once at
// construction and injected wherever pricing or scheduling needs it; nothing
// mutates it at runtime.
type Catalog struct {
	services     map[string]Service
	serviceOrder []string
	bundles      map[string]Bundle
	bundleOrder  []string
	hours        schedule.WeeklyHours
	credit       CreditPlan
}

func New(services []Service, bundles []Bundle, hours schedule.WeeklyHours, credit CreditPlan) (*Catalog, error) {
	c := &Catalog{
		services: make(map[string]Service, len(services)),
		bundles:  make(map[string]Bundle, len(bundles)),
		hours:    hours,
		credit:   credit,
	}

	for _, svc := range services {
		if svc.ID == "" {
			return nil, ErrEmptyServiceID
		}
		if _, dup := c.services[svc.ID]; dup {
			return nil, ErrDuplicateService
		}
		if svc.Duration <= 0 {
			return nil, ErrInvalidDuration
		}
		if svc.PriceCents < 0 {
			return nil, ErrNegativePrice
		}
		c.services[svc.ID] = svc
		c.serviceOrder = append(c.serviceOrder, svc.ID)
	}

	for _, b := range bundles {
		if _, dup := c.bundles[b.ID]; dup {
			return nil, ErrDuplicateBundle
		}
		if len(b.ServiceIDs) == 0 {
			return nil, ErrEmptyBundle
		}
		if b.PriceCents < 0 {
			return nil, ErrNegativePrice
		}
		for _, id := range b.ServiceIDs {
			if _, ok := c.services[id]; !ok {
				return nil, ErrUnknownMember
			}
		}
		c.bundles[b.ID] = b
		c.bundleOrder = append(c.bundleOrder, b.ID)
	}

	if credit.ServiceID != "" {
		if _, ok := c.services[credit.ServiceID]; !ok {
			return nil, ErrUnknownCreditTarget
		}
	}

	return c, nil
}

func (c *Catalog) Service(id string) (Service, bool) {
	svc, ok := c.services[id]
	return svc, ok
}

func (c *Catalog) Bundle(id string) (Bundle, bool) {
	b, ok := c.bundles[id]
	return b, ok
}

func (c *Catalog) Services() []Service {
	out := make([]Service, 0, len(c.serviceOrder))
	for _, id := range c.serviceOrder {
		out = append(out, c.services[id])
	}
	return out
}

func (c *Catalog) Bundles() []Bundle {
	out := make([]Bundle, 0, len(c.bundleOrder))
	for _, id := range c.bundleOrder {
		out = append(out, c.bundles[id])
	}
	return out
}

func (c *Catalog) Hours() schedule.WeeklyHours { return c.hours }
func (c *Catalog) Credit() CreditPlan          { return c.credit }
