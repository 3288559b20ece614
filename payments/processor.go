package payments

import (
	"os"

	stripe "github.com/stripe/stripe-go/v82"
	checkoutSession "github.com/stripe/stripe-go/v82/checkout/session"
	"github.com/stripe/stripe-go/v82/customer"
	"github.com/stripe/stripe-go/v82/invoice"
	stripeSubscription "github.com/stripe/stripe-go/v82/subscription"
)

// Processor is the payment-provider surface the reconciler needs. Production
// uses the Stripe-backed implementation below, tests plug in a fake.
type Processor interface {
	CreateCustomer(email string, name string) (string, error)
	CreateCheckoutSession(customerID string, priceID string, clientReferenceID string, trialDays int64) (*stripe.CheckoutSession, error)
	ListSubscriptions(customerID string) ([]*stripe.Subscription, error)
	GetSubscription(subscriptionID string) (*stripe.Subscription, error)
	UpdateCancelAtPeriodEnd(subscriptionID string, cancel bool) (*stripe.Subscription, error)
	ListInvoices(customerID string) ([]*stripe.Invoice, error)
}

// StripeProcessor talks to Stripe through the official client.
type StripeProcessor struct{}

func NewStripeProcessor() *StripeProcessor {
	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	return &StripeProcessor{}
}

func (p *StripeProcessor) CreateCustomer(email string, name string) (string, error) {
	params := &stripe.CustomerParams{
		Email: stripe.String(email),
		Name:  stripe.String(name),
	}
	cust, err := customer.New(params)
	if err != nil {
		return "", err
	}
	return cust.ID, nil
}

func (p *StripeProcessor) CreateCheckoutSession(customerID string, priceID string, clientReferenceID string, trialDays int64) (*stripe.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Customer:           stripe.String(customerID),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(priceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL:        stripe.String(os.Getenv("FRONTEND_URL") + "/billing/success"),
		CancelURL:         stripe.String(os.Getenv("FRONTEND_URL") + "/billing/canceled"),
		ClientReferenceID: stripe.String(clientReferenceID),
	}
	if trialDays > 0 {
		params.SubscriptionData = &stripe.CheckoutSessionSubscriptionDataParams{
			TrialPeriodDays: stripe.Int64(trialDays),
		}
	}
	return checkoutSession.New(params)
}

func (p *StripeProcessor) ListSubscriptions(customerID string) ([]*stripe.Subscription, error) {
	params := &stripe.SubscriptionListParams{
		Customer: stripe.String(customerID),
		Status:   stripe.String("all"),
	}
	var subscriptions []*stripe.Subscription
	iter := stripeSubscription.List(params)
	for iter.Next() {
		subscriptions = append(subscriptions, iter.Subscription())
	}
	return subscriptions, iter.Err()
}

func (p *StripeProcessor) GetSubscription(subscriptionID string) (*stripe.Subscription, error) {
	return stripeSubscription.Get(subscriptionID, nil)
}

func (p *StripeProcessor) UpdateCancelAtPeriodEnd(subscriptionID string, cancel bool) (*stripe.Subscription, error) {
	return stripeSubscription.Update(subscriptionID, &stripe.SubscriptionParams{
		CancelAtPeriodEnd: stripe.Bool(cancel),
	})
}

func (p *StripeProcessor) ListInvoices(customerID string) ([]*stripe.Invoice, error) {
	params := &stripe.InvoiceListParams{
		Customer: stripe.String(customerID),
	}
	var invoices []*stripe.Invoice
	iter := invoice.List(params)
	for iter.Next() {
		invoices = append(invoices, iter.Invoice())
	}
	return invoices, iter.Err()
}
