package service

import (
	"context"
	"encoding/json"
	"time"

	"doctors-portal-server/internal/domain/entity"
	"doctors-portal-server/internal/domain/repository"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	catalogCacheKey = "catalog:services"
	catalogCacheTTL = 5 * time.Minute
)

// CatalogCacheService is a read-through Redis cache in front of the
// service collection. The catalog is only ever mutated out of band,
// so a short TTL is the whole invalidation story.
type CatalogCacheService struct {
	serviceRepo repository.ServiceRepository
	redisClient *redis.Client
	log         *logrus.Logger
}

func NewCatalogCacheService(serviceRepo repository.ServiceRepository, redisClient *redis.Client, log *logrus.Logger) *CatalogCacheService {
	return &CatalogCacheService{
		serviceRepo: serviceRepo,
		redisClient: redisClient,
		log:         log,
	}
}

// Services returns the full catalog, from Redis when possible.
// Cache failures degrade to a direct store read, never to an error.
func (s *CatalogCacheService) Services(ctx context.Context) ([]entity.Service, error) {
	if s.redisClient != nil {
		cached, err := s.redisClient.Get(ctx, catalogCacheKey).Bytes()
		if err == nil {
			var services []entity.Service
			if err := json.Unmarshal(cached, &services); err == nil {
				return services, nil
			}
			s.log.Warnf("Failed to decode cached catalog, falling back to store: %+v", err)
		} else if err != redis.Nil {
			s.log.Warnf("Failed to read catalog cache: %+v", err)
		}
	}

	services, err := s.serviceRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	s.store(ctx, services)
	return services, nil
}

func (s *CatalogCacheService) store(ctx context.Context, services []entity.Service) {
	if s.redisClient == nil {
		return
	}
	encoded, err := json.Marshal(services)
	if err != nil {
		return
	}
	if err := s.redisClient.Set(ctx, catalogCacheKey, encoded, catalogCacheTTL).Err(); err != nil {
		s.log.Warnf("Failed to write catalog cache: %+v", err)
	}
}
