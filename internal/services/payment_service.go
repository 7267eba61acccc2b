package services

import (
	"fmt"

	"skyward/aerodesk/internal/logging"
	"skyward/aerodesk/internal/metrics"
	"skyward/aerodesk/internal/models/dtos"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
)

// PaymentService creates hosted checkout sessions. The card flow never
// touches this server; we only mint the redirect URL.
type PaymentService struct {
	metricsReg *metrics.MetricsRegistry
	domainURL  string
}

// NewPaymentService creates a new payment service. The Stripe key is
// process-global per the client library.
func NewPaymentService(apiKey, domainURL string, metricsReg *metrics.MetricsRegistry) *PaymentService {
	stripe.Key = apiKey
	return &PaymentService{
		metricsReg: metricsReg,
		domainURL:  domainURL,
	}
}

// CreateCheckout opens a hosted checkout session for the booking total.
// unitAmount is in cents; quantity is the passenger count so the line
// item reads "<flight> x N".
func (s *PaymentService) CreateCheckout(productName string, unitAmount int64, quantity int) (*dtos.CheckoutResponse, error) {
	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(string(stripe.CurrencyUSD)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(productName),
					},
					UnitAmount: stripe.Int64(unitAmount),
				},
				Quantity: stripe.Int64(int64(quantity)),
			},
		},
		SuccessURL: stripe.String(s.domainURL + "/payment/success"),
		CancelURL:  stripe.String(s.domainURL + "/payment/cancel"),
	}

	sess, err := session.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	if s.metricsReg != nil {
		s.metricsReg.CheckoutSessionsTotal.Inc()
	}
	logging.Info("Checkout session created", "product", productName, "amount_cents", unitAmount, "quantity", quantity)

	return &dtos.CheckoutResponse{CheckoutURL: sess.URL}, nil
}
