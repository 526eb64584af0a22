package stripe_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	posStripe "github.com/aaravmahajanofficial/pos-admin/pkg/stripe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v81"
)

func useBackend(t *testing.T, handler http.HandlerFunc) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	stripe.SetBackend(stripe.APIBackend, stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(server.URL),
		MaxNetworkRetries: stripe.Int64(0),
	}))
	t.Cleanup(func() { stripe.SetBackend(stripe.APIBackend, nil) })
}

func TestToMinorUnits(t *testing.T) {
	assert.Equal(t, int64(95200), posStripe.ToMinorUnits(952))
	assert.Equal(t, int64(1999), posStripe.ToMinorUnits(19.99))
	assert.Equal(t, int64(101), posStripe.ToMinorUnits(1.005))
	assert.Equal(t, int64(0), posStripe.ToMinorUnits(0))
}

func TestAuthorizeCard(t *testing.T) {
	t.Run("Success - confirms a manual capture intent", func(t *testing.T) {
		// Arrange
		useBackend(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/payment_intents", r.URL.Path)
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "95200", r.PostForm.Get("amount"))
			assert.Equal(t, "inr", r.PostForm.Get("currency"))
			assert.Equal(t, "true", r.PostForm.Get("confirm"))
			assert.Equal(t, "manual", r.PostForm.Get("capture_method"))
			assert.Equal(t, "pm_card_visa", r.PostForm.Get("payment_method"))
			assert.Equal(t, "S-1", r.PostForm.Get("metadata[sale_number]"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"pi_123","object":"payment_intent","amount":95200,"status":"requires_capture"}`))
		})
		client := posStripe.NewStripeClient("sk_test_123", "inr")

		// Act
		intent, err := client.AuthorizeCard(t.Context(), 952, "pm_card_visa", "POS sale S-1", map[string]string{"sale_number": "S-1"})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "pi_123", intent.ID)
		assert.Equal(t, stripe.PaymentIntentStatusRequiresCapture, intent.Status)
	})

	t.Run("Failure - card declined", func(t *testing.T) {
		useBackend(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusPaymentRequired)
			_, _ = w.Write([]byte(`{"error":{"type":"card_error","code":"card_declined","message":"Your card was declined."}}`))
		})
		client := posStripe.NewStripeClient("sk_test_123", "inr")

		intent, err := client.AuthorizeCard(t.Context(), 10, "pm_card_chargeDeclined", "POS sale", nil)

		assert.Nil(t, intent)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "declined")
	})
}

func TestCapturePaymentIntent(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		useBackend(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/payment_intents/pi_123/capture", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"pi_123","object":"payment_intent","status":"succeeded"}`))
		})
		client := posStripe.NewStripeClient("sk_test_123", "inr")

		intent, err := client.CapturePaymentIntent(t.Context(), "pi_123")

		require.NoError(t, err)
		assert.Equal(t, stripe.PaymentIntentStatusSucceeded, intent.Status)
	})

	t.Run("Failure - authorization expired", func(t *testing.T) {
		useBackend(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":{"type":"invalid_request_error","code":"payment_intent_unexpected_state","message":"This PaymentIntent could not be captured."}}`))
		})
		client := posStripe.NewStripeClient("sk_test_123", "inr")

		intent, err := client.CapturePaymentIntent(t.Context(), "pi_123")

		assert.Nil(t, intent)
		require.Error(t, err)
	})
}

func TestCancelPaymentIntent(t *testing.T) {
	useBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/payment_intents/pi_123/cancel", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pi_123","object":"payment_intent","status":"canceled"}`))
	})
	client := posStripe.NewStripeClient("sk_test_123", "inr")

	require.NoError(t, client.CancelPaymentIntent(t.Context(), "pi_123"))
}

func TestPing(t *testing.T) {
	useBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/balance", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"object":"balance","available":[],"pending":[]}`))
	})
	client := posStripe.NewStripeClient("sk_test_123", "inr")

	require.NoError(t, client.Ping(t.Context()))
}
