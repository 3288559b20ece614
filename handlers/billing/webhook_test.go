package billing

import (
	"bytes"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/devalexsantos/advlink-sub000/testutils"

	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

func TestStripeWebhook_MissingSecretIs500(t *testing.T) {
	os.Unsetenv("STRIPE_WEBHOOK_SECRET")

	r := testutils.SetupTestRouter()
	r.POST("/webhooks/stripe", StripeWebhook)

	req, _ := http.NewRequest(http.MethodPost, "/webhooks/stripe", bytes.NewBufferString(`{}`))
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestStripeWebhook_InvalidSignatureIs400(t *testing.T) {
	os.Setenv("STRIPE_WEBHOOK_SECRET", "whsec_test")
	defer os.Unsetenv("STRIPE_WEBHOOK_SECRET")

	r := testutils.SetupTestRouter()
	r.POST("/webhooks/stripe", StripeWebhook)

	req, _ := http.NewRequest(http.MethodPost, "/webhooks/stripe", bytes.NewBufferString(`{"type":"checkout.session.completed"}`))
	req.Header.Set("Stripe-Signature", "t=1,v1=bad")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
