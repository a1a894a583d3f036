package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"doctors-portal-server/config"

	"github.com/sirupsen/logrus"
)

// StripeClient creates card payment intents against the Stripe REST API.
// The API takes form-encoded bodies, so no SDK is needed.
type StripeClient struct {
	secretKey  string
	baseURL    string
	httpClient *http.Client
	log        *logrus.Logger
}

func NewStripeClient(cfg config.StripeConfig, log *logrus.Logger) *StripeClient {
	return &StripeClient{
		secretKey:  cfg.SecretKey,
		baseURL:    "https://api.stripe.com",
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        log,
	}
}

// WithBaseURL overrides the Stripe API base URL (for testing).
func (c *StripeClient) WithBaseURL(baseURL string) *StripeClient {
	if baseURL != "" {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
	return c
}

type paymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Error        *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// CreatePaymentIntent requests a card payment intent for the given amount
// in minor currency units and returns its client secret.
func (c *StripeClient) CreatePaymentIntent(ctx context.Context, amount int64, currency string) (string, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amount, 10))
	form.Set("currency", currency)
	form.Set("payment_method_types[]", "card")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("payment: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("payment: stripe request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("payment: read response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		// The body may not be Stripe JSON at all (proxy error pages),
		// so decoding is best-effort here.
		msg := "unknown error"
		var intent paymentIntent
		if err := json.Unmarshal(body, &intent); err == nil && intent.Error != nil {
			msg = intent.Error.Message
		}
		c.log.Warnf("Stripe payment intent failed (status %d): %s", resp.StatusCode, msg)
		return "", fmt.Errorf("payment: stripe returned status %d: %s", resp.StatusCode, msg)
	}

	var intent paymentIntent
	if err := json.Unmarshal(body, &intent); err != nil {
		return "", fmt.Errorf("payment: decode response: %w", err)
	}

	return intent.ClientSecret, nil
}
