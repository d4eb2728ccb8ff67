package payments

import (
	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

func Init(secretKey string) {
	stripe.Key = secretKey
}

// CreateIntent asks the processor for a payment intent over the given
// amount (smallest currency unit) and returns its client secret. Each
// call carries a fresh idempotency key so transport retries cannot
// create duplicate intents.
func CreateIntent(amount int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.IdempotencyKey = stripe.String(uuid.NewString())

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", err
	}
	return pi.ClientSecret, nil
}
