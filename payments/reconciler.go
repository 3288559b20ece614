package payments

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/devalexsantos/advlink-sub000/models"
	"github.com/devalexsantos/advlink-sub000/utils"

	stripe "github.com/stripe/stripe-go/v82"
	"gorm.io/gorm"
)

// TrialPeriodDays is the free trial attached to the first subscription of an
// account that never used one before.
const TrialPeriodDays = 7

var (
	ErrNoActiveSubscription  = errors.New("no active subscription for this account")
	ErrNoPendingCancellation = errors.New("no subscription pending cancellation for this account")
)

// Reconciler keeps users.subscription_active consistent with the payment
// provider and answers the billing questions the handlers need. Clients are
// injected so tests can substitute fakes.
type Reconciler struct {
	db        *gorm.DB
	processor Processor
}

func NewReconciler(db *gorm.DB, processor Processor) *Reconciler {
	return &Reconciler{db: db, processor: processor}
}

// IsActiveStatus says whether a subscription in this status allows the
// owner's page to stay published. past_due keeps the page up while the
// provider retries the charge.
func IsActiveStatus(status stripe.SubscriptionStatus) bool {
	switch status {
	case stripe.SubscriptionStatusActive, stripe.SubscriptionStatusTrialing, stripe.SubscriptionStatusPastDue:
		return true
	default:
		return false
	}
}

// EnsureCustomer returns the account's Stripe customer reference, creating
// it on first use. The reference is written at most once: a concurrent
// first-time call that loses the race keeps the winner's reference.
func (r *Reconciler) EnsureCustomer(user *models.User) (string, error) {
	if user.StripeCustomerId != "" {
		return user.StripeCustomerId, nil
	}

	customerID, err := r.processor.CreateCustomer(user.Email, user.Name)
	if err != nil {
		return "", err
	}

	result := r.db.Model(&models.User{}).
		Where("id = ? AND (stripe_customer_id IS NULL OR stripe_customer_id = '')", user.ID).
		Update("stripe_customer_id", customerID)
	if result.Error != nil {
		return "", result.Error
	}
	if result.RowsAffected == 0 {
		// someone else created the customer first, keep theirs
		var current models.User
		if err := r.db.First(&current, "id = ?", user.ID).Error; err != nil {
			return "", err
		}
		user.StripeCustomerId = current.StripeCustomerId
		return current.StripeCustomerId, nil
	}

	user.StripeCustomerId = customerID
	return customerID, nil
}

// TrialEligible is true when the account never had a customer record, or
// when none of the customer's past subscriptions ever entered a trial.
// Read-only, recomputed from provider history every time.
func (r *Reconciler) TrialEligible(user *models.User) (bool, error) {
	if user.StripeCustomerId == "" {
		return true, nil
	}

	subscriptions, err := r.processor.ListSubscriptions(user.StripeCustomerId)
	if err != nil {
		return false, err
	}

	for _, subscription := range subscriptions {
		if subscription.TrialStart != 0 {
			return false, nil
		}
	}
	return true, nil
}

// StartCheckout creates a hosted checkout session for the single
// subscription price, attaching the trial only when the account still
// qualifies for one.
func (r *Reconciler) StartCheckout(user *models.User, forceNoTrial bool) (string, error) {
	if _, err := r.EnsureCustomer(user); err != nil {
		return "", err
	}

	var trialDays int64
	if !forceNoTrial {
		eligible, err := r.TrialEligible(user)
		if err != nil {
			return "", err
		}
		if eligible {
			trialDays = TrialPeriodDays
		}
	}

	session, err := r.processor.CreateCheckoutSession(
		user.StripeCustomerId,
		os.Getenv("STRIPE_PRICE_ID"),
		user.ID,
		trialDays,
	)
	if err != nil {
		return "", err
	}

	return session.URL, nil
}

// ReconcileEvent applies one provider lifecycle notification. Safe to call
// more than once for the same event; delivery order is not trusted, the
// provider's current view of the subscription wins over the event payload.
func (r *Reconciler) ReconcileEvent(event stripe.Event) error {
	switch event.Type {
	case "checkout.session.completed":
		return r.reconcileCheckoutCompleted(event)
	case "customer.subscription.created", "customer.subscription.updated":
		return r.reconcileSubscriptionChanged(event)
	case "customer.subscription.deleted":
		return r.reconcileSubscriptionDeleted(event)
	default:
		// not ours, acknowledged without action
		return nil
	}
}

func (r *Reconciler) reconcileCheckoutCompleted(event stripe.Event) error {
	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		return fmt.Errorf("error parsing CheckoutSession: %w", err)
	}

	if session.Customer == nil {
		return errors.New("checkout session without customer")
	}
	customerID := session.Customer.ID

	user, err := r.findUserForSession(customerID, &session)
	if err != nil {
		return fmt.Errorf("no local account for customer %s: %w", customerID, err)
	}

	updates := map[string]interface{}{"subscription_active": true}
	if user.StripeCustomerId == "" {
		updates["stripe_customer_id"] = customerID
	}
	return r.db.Model(user).Updates(updates).Error
}

// findUserForSession binds a provider customer to a local account: stored
// reference first, then the checkout email, then the client reference id the
// checkout was created with.
func (r *Reconciler) findUserForSession(customerID string, session *stripe.CheckoutSession) (*models.User, error) {
	var user models.User

	err := r.db.First(&user, "stripe_customer_id = ?", customerID).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if session.CustomerDetails != nil && session.CustomerDetails.Email != "" {
		err = r.db.First(&user, "email = ?", session.CustomerDetails.Email).Error
		if err == nil {
			return &user, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	if session.ClientReferenceID != "" {
		err = r.db.First(&user, "id = ?", session.ClientReferenceID).Error
		if err == nil {
			return &user, nil
		}
	}

	return nil, gorm.ErrRecordNotFound
}

func (r *Reconciler) reconcileSubscriptionChanged(event stripe.Event) error {
	var subscription stripe.Subscription
	if err := json.Unmarshal(event.Data.Raw, &subscription); err != nil {
		return fmt.Errorf("error parsing Subscription: %w", err)
	}

	if subscription.Customer == nil {
		return errors.New("subscription event without customer")
	}

	// The event may be stale or redelivered. Re-fetch the subscription so a
	// late "canceled" event cannot overwrite a newer active state.
	status := subscription.Status
	if current, err := r.processor.GetSubscription(subscription.ID); err == nil {
		status = current.Status
	} else {
		utils.LogError(err, "Could not refresh subscription status, falling back to the event payload")
	}

	return r.setActiveForCustomer(subscription.Customer.ID, IsActiveStatus(status))
}

func (r *Reconciler) reconcileSubscriptionDeleted(event stripe.Event) error {
	var subscription stripe.Subscription
	if err := json.Unmarshal(event.Data.Raw, &subscription); err != nil {
		return fmt.Errorf("error parsing Subscription: %w", err)
	}

	if subscription.Customer == nil {
		return errors.New("subscription event without customer")
	}
	customerID := subscription.Customer.ID

	// A delete for an old subscription may arrive after a newer one was
	// created. The customer's full list is authoritative: stay active when
	// any live subscription remains.
	active := false
	if subscriptions, err := r.processor.ListSubscriptions(customerID); err == nil {
		for _, s := range subscriptions {
			if IsActiveStatus(s.Status) {
				active = true
				break
			}
		}
	} else {
		utils.LogError(err, "Could not list subscriptions after deletion, deactivating per the event")
	}

	return r.setActiveForCustomer(customerID, active)
}

func (r *Reconciler) setActiveForCustomer(customerID string, active bool) error {
	return r.db.Model(&models.User{}).
		Where("stripe_customer_id = ?", customerID).
		Update("subscription_active", active).Error
}

// Cancel requests cancellation at period end for the account's live
// subscription. The stated reason is recorded as a side channel and never
// fails the cancellation itself.
func (r *Reconciler) Cancel(user *models.User, reason string, details string) error {
	target, err := r.liveSubscription(user)
	if err != nil {
		return err
	}
	if !target.CancelAtPeriodEnd {
		if _, err := r.processor.UpdateCancelAtPeriodEnd(target.ID, true); err != nil {
			return err
		}
	}

	feedback := models.CancellationFeedback{
		UserID:  user.ID,
		Reason:  reason,
		Details: details,
	}
	if err := r.db.Create(&feedback).Error; err != nil {
		utils.LogErrorWithUser(user.ID, err, "Error recording cancellation feedback")
	}

	return nil
}

// Reactivate clears a pending cancellation, restoring automatic renewal.
func (r *Reconciler) Reactivate(user *models.User) error {
	if user.StripeCustomerId == "" {
		return ErrNoPendingCancellation
	}

	subscriptions, err := r.processor.ListSubscriptions(user.StripeCustomerId)
	if err != nil {
		return err
	}

	for _, subscription := range subscriptions {
		if IsActiveStatus(subscription.Status) && subscription.CancelAtPeriodEnd {
			_, err := r.processor.UpdateCancelAtPeriodEnd(subscription.ID, false)
			return err
		}
	}
	return ErrNoPendingCancellation
}

// BillingStatus is the read side consumed by the frontend billing screen.
type BillingStatus struct {
	Active            bool   `json:"active"`
	Status            string `json:"status"`
	CancelAtPeriodEnd bool   `json:"cancelAtPeriodEnd"`
	TrialEligible     bool   `json:"trialEligible"`
}

// Status summarizes the account's subscription as the provider sees it.
func (r *Reconciler) Status(user *models.User) (BillingStatus, error) {
	if user.StripeCustomerId == "" {
		return BillingStatus{Status: "none", TrialEligible: true}, nil
	}

	subscriptions, err := r.processor.ListSubscriptions(user.StripeCustomerId)
	if err != nil {
		return BillingStatus{}, err
	}

	status := BillingStatus{Status: "none", TrialEligible: true}
	for _, subscription := range subscriptions {
		if subscription.TrialStart != 0 {
			status.TrialEligible = false
		}
		if IsActiveStatus(subscription.Status) {
			status.Active = true
			status.Status = string(subscription.Status)
			status.CancelAtPeriodEnd = subscription.CancelAtPeriodEnd
		} else if status.Status == "none" {
			status.Status = string(subscription.Status)
		}
	}
	return status, nil
}

// Invoices lists the account's invoices at the provider, empty when the
// account never reached checkout.
func (r *Reconciler) Invoices(user *models.User) ([]*stripe.Invoice, error) {
	if user.StripeCustomerId == "" {
		return []*stripe.Invoice{}, nil
	}
	return r.processor.ListInvoices(user.StripeCustomerId)
}

func (r *Reconciler) liveSubscription(user *models.User) (*stripe.Subscription, error) {
	if user.StripeCustomerId == "" {
		return nil, ErrNoActiveSubscription
	}

	subscriptions, err := r.processor.ListSubscriptions(user.StripeCustomerId)
	if err != nil {
		return nil, err
	}

	for _, subscription := range subscriptions {
		if IsActiveStatus(subscription.Status) {
			return subscription, nil
		}
	}
	return nil, ErrNoActiveSubscription
}
