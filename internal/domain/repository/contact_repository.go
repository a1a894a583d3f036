package repository

import (
	"context"

	"doctors-portal-server/internal/domain/entity"
)

type ContactRepository interface {
	Insert(ctx context.Context, message *entity.ContactMessage) error
}
