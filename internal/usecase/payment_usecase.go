package usecase

import (
	"context"
	"math"

	"github.com/sirupsen/logrus"
)

// PaymentGateway is the external payment-intent oracle. The Stripe client
// in internal/infrastructure/payment implements it.
type PaymentGateway interface {
	CreatePaymentIntent(ctx context.Context, amount int64, currency string) (string, error)
}

type PaymentUsecase interface {
	// CreateIntent converts the price to minor currency units and returns
	// the gateway client secret. The price is passed through unvalidated.
	CreateIntent(ctx context.Context, price float64) (string, error)
}

type paymentUsecase struct {
	log      *logrus.Logger
	gateway  PaymentGateway
	currency string
}

func NewPaymentUsecase(log *logrus.Logger, gateway PaymentGateway, currency string) PaymentUsecase {
	return &paymentUsecase{
		log:      log,
		gateway:  gateway,
		currency: currency,
	}
}

func (u *paymentUsecase) CreateIntent(ctx context.Context, price float64) (string, error) {
	// Round rather than truncate: 19.99 is not exactly representable and
	// truncation would drop a cent.
	amount := int64(math.Round(price * 100))

	secret, err := u.gateway.CreatePaymentIntent(ctx, amount, u.currency)
	if err != nil {
		u.log.Warnf("Failed to create payment intent for amount %d: %+v", amount, err)
		return "", err
	}
	return secret, nil
}
