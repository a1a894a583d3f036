package usecase

import (
	"context"
	"errors"
	"testing"

	"doctors-portal-server/internal/delivery/dto"
	"doctors-portal-server/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockDoctorRepo struct {
	doctors []entity.Doctor
	err     error
}

func (m *mockDoctorRepo) Insert(_ context.Context, doctor *entity.Doctor) (primitive.ObjectID, error) {
	if m.err != nil {
		return primitive.NilObjectID, m.err
	}
	id := primitive.NewObjectID()
	stored := *doctor
	stored.ID = id
	m.doctors = append(m.doctors, stored)
	return id, nil
}

func (m *mockDoctorRepo) FindAll(_ context.Context) ([]entity.Doctor, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.doctors, nil
}

func (m *mockDoctorRepo) DeleteByEmail(_ context.Context, email string) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	for i, d := range m.doctors {
		if d.Email == email {
			m.doctors = append(m.doctors[:i], m.doctors[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func TestCreateDoctor_AssignsID(t *testing.T) {
	repo := &mockDoctorRepo{}
	uc := NewDoctorUsecase(logrus.New(), repo)

	doctor, err := uc.CreateDoctor(context.Background(), &dto.CreateDoctorRequest{
		Name:      "Dr. Smith",
		Email:     "smith@clinic.com",
		Specialty: "Orthodontics",
	})
	require.NoError(t, err)

	assert.False(t, doctor.ID.IsZero())
	assert.Equal(t, "smith@clinic.com", doctor.Email)
	assert.Len(t, repo.doctors, 1)
}

func TestListDoctors(t *testing.T) {
	repo := &mockDoctorRepo{doctors: []entity.Doctor{
		{Name: "Dr. Smith", Email: "smith@clinic.com"},
		{Name: "Dr. Jones", Email: "jones@clinic.com"},
	}}
	uc := NewDoctorUsecase(logrus.New(), repo)

	doctors, err := uc.ListDoctors(context.Background())
	require.NoError(t, err)
	assert.Len(t, doctors, 2)
}

func TestDeleteDoctor_RemovesRecord(t *testing.T) {
	repo := &mockDoctorRepo{doctors: []entity.Doctor{
		{Name: "Dr. Smith", Email: "smith@clinic.com"},
	}}
	uc := NewDoctorUsecase(logrus.New(), repo)

	require.NoError(t, uc.DeleteDoctor(context.Background(), "smith@clinic.com"))
	assert.Empty(t, repo.doctors)
}

func TestDeleteDoctor_UnknownEmailIsNotFound(t *testing.T) {
	uc := NewDoctorUsecase(logrus.New(), &mockDoctorRepo{})

	err := uc.DeleteDoctor(context.Background(), "nobody@clinic.com")
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestDeleteDoctor_RepoFailureIsNotMaskedAsNotFound(t *testing.T) {
	repoErr := errors.New("connection reset")
	uc := NewDoctorUsecase(logrus.New(), &mockDoctorRepo{err: repoErr})

	err := uc.DeleteDoctor(context.Background(), "smith@clinic.com")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrDoctorNotFound)
}
