package dto

// CreatePaymentIntentRequest mirrors the service payload the client
// already holds; only the price participates in the amount computation.
type CreatePaymentIntentRequest struct {
	Price float64 `json:"price"`
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}
