package payment

import (
	"context"
	"encoding/json"

	"studio-booking/internal/pkg/config"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

// StripeGateway implements the payment port over Stripe hosted checkout.
// The hold or group id travels in session metadata and comes back on the
// completion webhook, which is the only path into confirmation.
type StripeGateway struct {
	api *client.API
	cfg config.StripeConfig
}

func NewStripeGateway(cfg config.Config) commands.PaymentGateway {
	g := &StripeGateway{cfg: cfg.Stripe}
	if cfg.Stripe.SecretKey != "" {
		g.api = &client.API{}
		g.api.Init(cfg.Stripe.SecretKey, nil)
	}
	return g
}

func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, p commands.CheckoutParams) (*commands.CheckoutSession, error) {
	if g.api == nil {
		return nil, commands.ErrPaymentsDisabled
	}

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(g.cfg.SuccessURL),
		CancelURL:  stripe.String(g.cfg.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(g.cfg.Currency),
					UnitAmount: stripe.Int64(p.AmountCents),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(p.Description),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	params.Context = ctx
	params.AddMetadata("kind", p.Kind)
	params.AddMetadata("ref_id", p.RefID.String())

	sess, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create checkout session")
	}
	return &commands.CheckoutSession{ID: sess.ID, URL: sess.URL}, nil
}

func (g *StripeGateway) VerifyEvent(payload []byte, signature string) (*commands.WebhookEvent, error) {
	if g.api == nil {
		return nil, commands.ErrPaymentsDisabled
	}

	event, err := webhook.ConstructEvent(payload, signature, g.cfg.WebhookSecret)
	if err != nil {
		return nil, errs.Mark(err, commands.ErrInvalidWebhook)
	}
	if event.Type != "checkout.session.completed" {
		return nil, nil
	}

	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return nil, errs.Mark(err, commands.ErrInvalidWebhook)
	}

	refID, err := uuid.Parse(sess.Metadata["ref_id"])
	if err != nil {
		return nil, errs.Mark(err, commands.ErrInvalidWebhook)
	}
	return &commands.WebhookEvent{
		Kind:       sess.Metadata["kind"],
		RefID:      refID,
		PaymentRef: sess.ID,
	}, nil
}
