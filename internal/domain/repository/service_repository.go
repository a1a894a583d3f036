package repository

import (
	"context"

	"doctors-portal-server/internal/domain/entity"
)

type ServiceRepository interface {
	FindAll(ctx context.Context) ([]entity.Service, error)
	// FindNames returns services projected to the name field only.
	FindNames(ctx context.Context) ([]entity.Service, error)
}
