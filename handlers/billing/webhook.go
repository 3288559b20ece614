package billing

import (
	"io"
	"net/http"
	"os"

	"github.com/devalexsantos/advlink-sub000/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v82/webhook"
)

// @Summary Stripe webhook
// @Description Receive Stripe events and reconcile the local subscription state
// @Tags billing
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "message: Event processed"
// @Failure 400 {object} map[string]string "error: Invalid signature"
// @Router /webhooks/stripe [post]
func StripeWebhook(c *gin.Context) {
	const MaxBodyBytes = int64(65536)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodyBytes)

	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Unable to read the request body"})
		return
	}

	secret := os.Getenv("STRIPE_WEBHOOK_SECRET")
	if secret == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Webhook secret not configured"})
		return
	}

	sig := c.GetHeader("Stripe-Signature")
	event, err := webhook.ConstructEvent(payload, sig, secret)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Stripe signature verification failed"})
		return
	}

	if err := reconciler().ReconcileEvent(event); err != nil {
		utils.LogError(err, "Error reconciling the event in StripeWebhook")
		// Stripe retries on non-2xx, which is what we want on a transient
		// reconciliation failure.
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error processing the event"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Event processed"})
}
