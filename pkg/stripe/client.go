package stripe

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/balance"
	"github.com/stripe/stripe-go/v81/paymentintent"
)

type PaymentIntent = stripe.PaymentIntent

// Client charges card tenders taken at the till. Cards are authorized first
// and captured once the sale is on record.
type Client interface {
	// AuthorizeCard creates and confirms a manual-capture PaymentIntent for
	// amount in major units.
	AuthorizeCard(ctx context.Context, amount float64, paymentMethodID, description string, metadata map[string]string) (*PaymentIntent, error)
	CapturePaymentIntent(ctx context.Context, paymentIntentID string) (*PaymentIntent, error)
	// CancelPaymentIntent releases an authorization that was never captured.
	CancelPaymentIntent(ctx context.Context, paymentIntentID string) error
	Ping(ctx context.Context) error
}

type stripeClient struct {
	currency string
}

func NewStripeClient(apiKey string, currency string) Client {
	stripe.Key = apiKey

	return &stripeClient{currency: currency}
}

// ToMinorUnits converts a major-unit amount to the integer minor units Stripe expects.
func ToMinorUnits(amount float64) int64 {
	return decimal.NewFromFloat(amount).Shift(2).Round(0).IntPart()
}

func (s *stripeClient) AuthorizeCard(ctx context.Context, amount float64, paymentMethodID, description string, metadata map[string]string) (*PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Params:             stripe.Params{Context: ctx},
		Amount:             stripe.Int64(ToMinorUnits(amount)),
		Currency:           stripe.String(s.currency),
		Description:        stripe.String(description),
		PaymentMethod:      stripe.String(paymentMethodID),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		CaptureMethod:      stripe.String(string(stripe.PaymentIntentCaptureMethodManual)),
		Confirm:            stripe.Bool(true),
	}

	for key, value := range metadata {
		params.AddMetadata(key, value)
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		return nil, err
	}

	return intent, nil
}

func (s *stripeClient) CapturePaymentIntent(ctx context.Context, paymentIntentID string) (*PaymentIntent, error) {
	params := &stripe.PaymentIntentCaptureParams{Params: stripe.Params{Context: ctx}}

	intent, err := paymentintent.Capture(paymentIntentID, params)
	if err != nil {
		return nil, err
	}

	return intent, nil
}

func (s *stripeClient) CancelPaymentIntent(ctx context.Context, paymentIntentID string) error {
	params := &stripe.PaymentIntentCancelParams{
		Params:             stripe.Params{Context: ctx},
		CancellationReason: stripe.String(string(stripe.PaymentIntentCancellationReasonAbandoned)),
	}

	_, err := paymentintent.Cancel(paymentIntentID, params)

	return err
}

// Ping reads the account balance to prove the key and network path work.
func (s *stripeClient) Ping(ctx context.Context) error {
	_, err := balance.Get(&stripe.BalanceParams{Params: stripe.Params{Context: ctx}})

	return err
}
