package usecase

import (
	"context"

	"doctors-portal-server/internal/delivery/dto"
	"doctors-portal-server/internal/domain/entity"
	"doctors-portal-server/internal/domain/repository"
	"doctors-portal-server/internal/service"

	"github.com/sirupsen/logrus"
)

type CatalogUsecase interface {
	ListServices(ctx context.Context) ([]entity.Service, error)
	ListSpecialties(ctx context.Context) ([]dto.SpecialtyResponse, error)
	// Availability returns every service with its slot list reduced to the
	// slots not yet booked on the given date. The store is never mutated.
	Availability(ctx context.Context, date string) ([]entity.Service, error)
}

type catalogUsecase struct {
	log         *logrus.Logger
	serviceRepo repository.ServiceRepository
	bookingRepo repository.BookingRepository
	catalog     *service.CatalogCacheService
}

func NewCatalogUsecase(
	log *logrus.Logger,
	serviceRepo repository.ServiceRepository,
	bookingRepo repository.BookingRepository,
	catalog *service.CatalogCacheService,
) CatalogUsecase {
	return &catalogUsecase{
		log:         log,
		serviceRepo: serviceRepo,
		bookingRepo: bookingRepo,
		catalog:     catalog,
	}
}

func (u *catalogUsecase) ListServices(ctx context.Context) ([]entity.Service, error) {
	services, err := u.services(ctx)
	if err != nil {
		u.log.Warnf("Failed to list services: %+v", err)
		return nil, err
	}
	return services, nil
}

func (u *catalogUsecase) ListSpecialties(ctx context.Context) ([]dto.SpecialtyResponse, error) {
	services, err := u.serviceRepo.FindNames(ctx)
	if err != nil {
		u.log.Warnf("Failed to list specialties: %+v", err)
		return nil, err
	}

	specialties := make([]dto.SpecialtyResponse, 0, len(services))
	for _, svc := range services {
		specialties = append(specialties, dto.SpecialtyResponse{Name: svc.Name})
	}
	return specialties, nil
}

func (u *catalogUsecase) Availability(ctx context.Context, date string) ([]entity.Service, error) {
	services, err := u.services(ctx)
	if err != nil {
		u.log.Warnf("Failed to load services for availability: %+v", err)
		return nil, err
	}

	bookings, err := u.bookingRepo.FindByDate(ctx, date)
	if err != nil {
		u.log.Warnf("Failed to load bookings for %s: %+v", date, err)
		return nil, err
	}

	// Slot matching is exact string equality on treatment name and slot
	// label; no normalization.
	taken := make(map[string]map[string]struct{})
	for _, b := range bookings {
		if taken[b.Treatment] == nil {
			taken[b.Treatment] = make(map[string]struct{})
		}
		taken[b.Treatment][b.Slot] = struct{}{}
	}

	for i := range services {
		booked := taken[services[i].Name]
		if len(booked) == 0 {
			continue
		}
		open := make([]string, 0, len(services[i].Slots))
		for _, slot := range services[i].Slots {
			if _, ok := booked[slot]; !ok {
				open = append(open, slot)
			}
		}
		services[i].Slots = open
	}

	return services, nil
}

func (u *catalogUsecase) services(ctx context.Context) ([]entity.Service, error) {
	if u.catalog != nil {
		return u.catalog.Services(ctx)
	}
	return u.serviceRepo.FindAll(ctx)
}
