package paymentControllers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// IntentProvider authorizes a charge with the external card provider and
// hands back the opaque secret the client needs to complete payment.
// Card authorization itself never happens in this service.
type IntentProvider interface {
	CreateIntent(ctx context.Context, amountMinor int64, currency string) (clientSecret string, err error)
}

const stripeIntentURL = "https://api.stripe.com/v1/payment_intents"

// StripeProvider talks to the Stripe payment-intents endpoint using the
// secret key from the environment.
type StripeProvider struct {
	client *http.Client
}

func NewStripeProvider() *StripeProvider {
	return &StripeProvider{client: &http.Client{Timeout: 30 * time.Second}}
}

type stripeIntentResponse struct {
	ClientSecret string `json:"client_secret"`
	Error        *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (p *StripeProvider) CreateIntent(ctx context.Context, amountMinor int64, currency string) (string, error) {
	secretKey := os.Getenv("STRIPE_SECRET_KEY")
	if secretKey == "" {
		return "", fmt.Errorf("stripe configuration missing")
	}

	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amountMinor, 10))
	form.Set("currency", currency)
	form.Set("payment_method_types[]", "card")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, stripeIntentURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+secretKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach Stripe: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	var intentResp stripeIntentResponse
	if err := json.Unmarshal(body, &intentResp); err != nil {
		return "", fmt.Errorf("failed to parse Stripe response: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		if intentResp.Error != nil {
			return "", fmt.Errorf("stripe error: %s", intentResp.Error.Message)
		}
		return "", fmt.Errorf("stripe API error (%d): %s", resp.StatusCode, string(body))
	}
	if intentResp.ClientSecret == "" {
		return "", fmt.Errorf("stripe returned empty client secret")
	}

	return intentResp.ClientSecret, nil
}

type CreateIntentInput struct {
	Price float64 `json:"price" binding:"required,gt=0"`
}

// POST /create-payment-intent
// Frames the price in the provider's minor unit (cents) and passes the
// opaque secret straight through.
func CreatePaymentIntentHandler(provider IntentProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateIntentInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "price is required"})
			return
		}

		amount := int64(math.Round(input.Price * 100))
		clientSecret, err := provider.CreateIntent(c.Request.Context(), amount, "usd")
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
	}
}
