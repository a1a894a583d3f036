package usecase

import (
	"context"
	"errors"

	"doctors-portal-server/internal/delivery/dto"
	"doctors-portal-server/internal/domain/entity"
	"doctors-portal-server/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var ErrDoctorNotFound = errors.New("doctor not found")

type DoctorUsecase interface {
	CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*entity.Doctor, error)
	ListDoctors(ctx context.Context) ([]entity.Doctor, error)
	DeleteDoctor(ctx context.Context, email string) error
}

type doctorUsecase struct {
	log        *logrus.Logger
	doctorRepo repository.DoctorRepository
}

func NewDoctorUsecase(log *logrus.Logger, doctorRepo repository.DoctorRepository) DoctorUsecase {
	return &doctorUsecase{
		log:        log,
		doctorRepo: doctorRepo,
	}
}

func (u *doctorUsecase) CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*entity.Doctor, error) {
	doctor := &entity.Doctor{
		Name:      req.Name,
		Email:     req.Email,
		Specialty: req.Specialty,
		Image:     req.Image,
	}

	id, err := u.doctorRepo.Insert(ctx, doctor)
	if err != nil {
		u.log.Warnf("Failed to insert doctor %s: %+v", req.Email, err)
		return nil, err
	}
	doctor.ID = id
	return doctor, nil
}

func (u *doctorUsecase) ListDoctors(ctx context.Context) ([]entity.Doctor, error) {
	doctors, err := u.doctorRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}
	return doctors, nil
}

func (u *doctorUsecase) DeleteDoctor(ctx context.Context, email string) error {
	deleted, err := u.doctorRepo.DeleteByEmail(ctx, email)
	if err != nil {
		u.log.Warnf("Failed to delete doctor %s: %+v", email, err)
		return err
	}
	if deleted == 0 {
		return ErrDoctorNotFound
	}
	return nil
}
