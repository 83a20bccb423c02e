package commands

import (
	"context"

	"studio-booking/internal/domain/catalog"
	"studio-booking/internal/domain/hold"
	"studio-booking/internal/infra"
	"studio-booking/internal/pkg/clock"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrPaymentsDisabled    = errs.New("payments are not configured")
	ErrUnknownCheckoutKind = errs.New("unknown checkout kind")
	ErrInvalidWebhook      = errs.New("webhook verification failed")
)

const (
	CheckoutKindSingle = "single"
	CheckoutKindBundle = "bundle"
)

type CheckoutParams struct {
	Kind        string
	RefID       uuid.UUID
	AmountCents int64
	Description string
}

type CheckoutSession struct {
	ID  string
	URL string
}

// WebhookEvent is a verified completed-checkout notification. PaymentRef is
// the provider's session id and becomes the booking's payment reference.
type WebhookEvent struct {
	Kind       string
	RefID      uuid.UUID
	PaymentRef string
}

// PaymentGateway opens a hosted checkout for a hold or group. The gateway's
// webhook is the collaborator that later drives confirmation.
type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, p CheckoutParams) (*CheckoutSession, error)
	// VerifyEvent authenticates a webhook delivery. A nil event with a nil
	// error means the delivery is valid but not a completed checkout.
	VerifyEvent(payload []byte, signature string) (*WebhookEvent, error)
}

type CheckoutCommands interface {
	Start(ctx context.Context, kind string, refID uuid.UUID) (*CheckoutSession, error)
}

type checkoutCommandsImpl struct {
	holds   shared.HoldReads
	gateway PaymentGateway
	cat     *catalog.Catalog
	clock   clock.Clock
}

func NewCheckoutCommands(holds shared.HoldReads, gateway PaymentGateway, cat *catalog.Catalog, clk clock.Clock) CheckoutCommands {
	return &checkoutCommandsImpl{holds: holds, gateway: gateway, cat: cat, clock: clk}
}

func (c *checkoutCommandsImpl) Start(ctx context.Context, kind string, refID uuid.UUID) (*CheckoutSession, error) {
	amount, description, err := c.resolve(ctx, kind, refID)
	if err != nil {
		return nil, err
	}

	session, err := c.gateway.CreateCheckoutSession(ctx, CheckoutParams{
		Kind:        kind,
		RefID:       refID,
		AmountCents: amount,
		Description: description,
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (c *checkoutCommandsImpl) resolve(ctx context.Context, kind string, refID uuid.UUID) (int64, string, error) {
	now := c.clock.Now()

	switch kind {
	case CheckoutKindSingle:
		h, err := c.holds.LiveByID(ctx, refID, now)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return 0, "", ErrHoldExpired
			}
			return 0, "", errs.Mark(err, ErrStoreFailure)
		}
		if h.Kind() != hold.KindSingle {
			return 0, "", ErrWrongKind
		}
		name := h.ServiceID()
		if svc, ok := c.cat.Service(h.ServiceID()); ok {
			name = svc.Name
		}
		return h.ChargeCents(), name, nil

	case CheckoutKindBundle:
		holds, err := c.holds.LiveByGroup(ctx, refID, now)
		if err != nil {
			return 0, "", errs.Mark(err, ErrStoreFailure)
		}
		if len(holds) == 0 {
			return 0, "", ErrHoldExpired
		}
		var total int64
		for _, h := range holds {
			total += h.ChargeCents()
		}
		name := "bundle"
		if bid := holds[0].BundleID(); bid != nil {
			if b, ok := c.cat.Bundle(*bid); ok {
				name = b.Name
			}
		}
		return total, name, nil

	default:
		return 0, "", ErrUnknownCheckoutKind
	}
}
