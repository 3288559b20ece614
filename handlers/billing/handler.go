package billing

import (
	"errors"
	"net/http"
	"os"

	"github.com/devalexsantos/advlink-sub000/db"
	"github.com/devalexsantos/advlink-sub000/models"
	"github.com/devalexsantos/advlink-sub000/payments"
	"github.com/devalexsantos/advlink-sub000/utils"
	mailsmodels "github.com/devalexsantos/advlink-sub000/utils/mails-models"

	"github.com/gin-gonic/gin"
)

func reconciler() *payments.Reconciler {
	return payments.NewReconciler(db.DB, payments.NewStripeProcessor())
}

func connectedUser(c *gin.Context) (*models.User, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return nil, false
	}
	var user models.User
	if err := db.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return nil, false
	}
	return &user, true
}

// @Summary Start a subscription checkout
// @Description Create a Stripe Checkout session for the subscription. A trial is attached only if the account never started one.
// @Tags billing
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string "url: Checkout URL"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 502 {object} map[string]string "error: Payment provider unavailable"
// @Router /billing/checkout [post]
func Checkout(c *gin.Context) {
	user, ok := connectedUser(c)
	if !ok {
		return
	}

	url, err := reconciler().StartCheckout(user, false)
	if err != nil {
		utils.LogErrorWithUser(user.ID, err, "Error starting the checkout in Checkout")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Payment provider unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

// @Summary Get the subscription status
// @Description Return the current subscription state of the connected user
// @Tags billing
// @Produce json
// @Security BearerAuth
// @Success 200 {object} payments.BillingStatus
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Router /billing/status [get]
func Status(c *gin.Context) {
	user, ok := connectedUser(c)
	if !ok {
		return
	}

	status, err := reconciler().Status(user)
	if err != nil {
		utils.LogErrorWithUser(user.ID, err, "Error fetching the billing status in Status")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Payment provider unavailable"})
		return
	}

	c.JSON(http.StatusOK, status)
}

// @Summary Cancel the subscription
// @Description Schedule the cancellation at the end of the current period and record the feedback
// @Tags billing
// @Accept json
// @Produce json
// @Param feedback body models.CancellationInput true "Cancellation reason"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: Cancellation scheduled"
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 409 {object} map[string]string "error: No active subscription"
// @Router /billing/cancel [post]
func Cancel(c *gin.Context) {
	user, ok := connectedUser(c)
	if !ok {
		return
	}

	var input models.CancellationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if err := reconciler().Cancel(user, input.Reason, input.Details); err != nil {
		if errors.Is(err, payments.ErrNoActiveSubscription) {
			c.JSON(http.StatusConflict, gin.H{"error": "No active subscription to cancel"})
			return
		}
		utils.LogErrorWithUser(user.ID, err, "Error cancelling the subscription in Cancel")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Payment provider unavailable"})
		return
	}

	if adminEmail := os.Getenv("ADMIN_EMAIL"); adminEmail != "" {
		mailsmodels.CancellationNotice(adminEmail, user.Email, input.Reason, input.Details)
	}

	utils.LogSuccessWithUser(user.ID, "Cancellation scheduled in Cancel")
	c.JSON(http.StatusOK, gin.H{"message": "Cancellation scheduled at the end of the current period"})
}

// @Summary Reactivate the subscription
// @Description Remove a pending cancellation so the subscription renews again
// @Tags billing
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: Subscription reactivated"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 409 {object} map[string]string "error: No pending cancellation"
// @Router /billing/reactivate [post]
func Reactivate(c *gin.Context) {
	user, ok := connectedUser(c)
	if !ok {
		return
	}

	if err := reconciler().Reactivate(user); err != nil {
		if errors.Is(err, payments.ErrNoPendingCancellation) {
			c.JSON(http.StatusConflict, gin.H{"error": "No pending cancellation to remove"})
			return
		}
		utils.LogErrorWithUser(user.ID, err, "Error reactivating the subscription in Reactivate")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Payment provider unavailable"})
		return
	}

	utils.LogSuccessWithUser(user.ID, "Subscription reactivated in Reactivate")
	c.JSON(http.StatusOK, gin.H{"message": "Subscription reactivated"})
}

// @Summary List the invoices
// @Description Return the connected user's Stripe invoices
// @Tags billing
// @Produce json
// @Security BearerAuth
// @Success 200 {array} object
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Router /billing/invoices [get]
func Invoices(c *gin.Context) {
	user, ok := connectedUser(c)
	if !ok {
		return
	}

	invoices, err := reconciler().Invoices(user)
	if err != nil {
		utils.LogErrorWithUser(user.ID, err, "Error fetching the invoices in Invoices")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Payment provider unavailable"})
		return
	}

	c.JSON(http.StatusOK, invoices)
}
