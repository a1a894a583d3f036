package repository

import (
	"context"

	"doctors-portal-server/internal/domain/entity"
)

type PaymentRepository interface {
	Insert(ctx context.Context, payment *entity.Payment) error
}
