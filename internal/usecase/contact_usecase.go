package usecase

import (
	"context"
	"time"

	"doctors-portal-server/internal/delivery/dto"
	"doctors-portal-server/internal/domain/entity"
	"doctors-portal-server/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type ContactUsecase interface {
	Submit(ctx context.Context, req *dto.ContactRequest) (*entity.ContactMessage, error)
}

type contactUsecase struct {
	log         *logrus.Logger
	contactRepo repository.ContactRepository
}

func NewContactUsecase(log *logrus.Logger, contactRepo repository.ContactRepository) ContactUsecase {
	return &contactUsecase{
		log:         log,
		contactRepo: contactRepo,
	}
}

func (u *contactUsecase) Submit(ctx context.Context, req *dto.ContactRequest) (*entity.ContactMessage, error) {
	message := &entity.ContactMessage{
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		CreatedAt: time.Now().UTC(),
	}

	if err := u.contactRepo.Insert(ctx, message); err != nil {
		u.log.Warnf("Failed to store contact message from %s: %+v", req.Email, err)
		return nil, err
	}
	return message, nil
}
