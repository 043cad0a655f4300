package paymentControllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeProvider struct {
	amount int64
	secret string
	err    error
}

func (f *fakeProvider) CreateIntent(_ context.Context, amountMinor int64, _ string) (string, error) {
	f.amount = amountMinor
	return f.secret, f.err
}

func intentRouter(p IntentProvider) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/create-payment-intent", CreatePaymentIntentHandler(p))
	return r
}

func postIntent(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/create-payment-intent", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCreatePaymentIntentConvertsToMinorUnits(t *testing.T) {
	provider := &fakeProvider{secret: "pi_123_secret_456"}
	w := postIntent(intentRouter(provider), `{"price": 19.99}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(1999), provider.amount)
	assert.Contains(t, w.Body.String(), "pi_123_secret_456")
}

func TestCreatePaymentIntentValidation(t *testing.T) {
	provider := &fakeProvider{secret: "unused"}
	w := postIntent(intentRouter(provider), `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, provider.amount)
}

func TestCreatePaymentIntentProviderFailure(t *testing.T) {
	provider := &fakeProvider{err: errors.New("stripe error: amount too small")}
	w := postIntent(intentRouter(provider), `{"price": 1}`)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}
