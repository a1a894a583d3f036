package usecase

import (
	"context"
	"testing"

	"doctors-portal-server/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// mockServiceRepo serves a fixed catalog.
type mockServiceRepo struct {
	services []entity.Service
	err      error
}

func (m *mockServiceRepo) FindAll(_ context.Context) ([]entity.Service, error) {
	if m.err != nil {
		return nil, m.err
	}
	// Hand out copies: availability mutates slot lists in place.
	out := make([]entity.Service, len(m.services))
	copy(out, m.services)
	return out, nil
}

func (m *mockServiceRepo) FindNames(_ context.Context) ([]entity.Service, error) {
	if m.err != nil {
		return nil, m.err
	}
	names := make([]entity.Service, 0, len(m.services))
	for _, svc := range m.services {
		names = append(names, entity.Service{Name: svc.Name})
	}
	return names, nil
}

// mockBookingRepo implements repository.BookingRepository over a slice.
type mockBookingRepo struct {
	bookings  []entity.Booking
	insertErr error
	findErr   error
}

func (m *mockBookingRepo) FindByKey(_ context.Context, treatment, date, patient string) (*entity.Booking, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	for i := range m.bookings {
		b := m.bookings[i]
		if b.Treatment == treatment && b.Date == date && b.Patient == patient {
			return &b, nil
		}
	}
	return nil, nil
}

func (m *mockBookingRepo) FindByDate(_ context.Context, date string) ([]entity.Booking, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	var out []entity.Booking
	for _, b := range m.bookings {
		if b.Date == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *mockBookingRepo) FindByPatient(_ context.Context, patient string) ([]entity.Booking, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	var out []entity.Booking
	for _, b := range m.bookings {
		if b.Patient == patient {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *mockBookingRepo) FindByID(_ context.Context, id primitive.ObjectID) (*entity.Booking, error) {
	for i := range m.bookings {
		if m.bookings[i].ID == id {
			return &m.bookings[i], nil
		}
	}
	return nil, nil
}

func (m *mockBookingRepo) Insert(_ context.Context, booking *entity.Booking) (primitive.ObjectID, error) {
	if m.insertErr != nil {
		return primitive.NilObjectID, m.insertErr
	}
	id := primitive.NewObjectID()
	stored := *booking
	stored.ID = id
	m.bookings = append(m.bookings, stored)
	return id, nil
}

func (m *mockBookingRepo) MarkPaid(_ context.Context, id primitive.ObjectID, transactionID string) (*entity.Booking, error) {
	for i := range m.bookings {
		if m.bookings[i].ID == id {
			m.bookings[i].Paid = true
			m.bookings[i].TransactionID = transactionID
			return &m.bookings[i], nil
		}
	}
	return nil, nil
}

func newCatalogFixture(bookings []entity.Booking) CatalogUsecase {
	services := []entity.Service{
		{Name: "Teeth Cleaning", Price: 80, Slots: []string{"9:00-9:30", "9:30-10:00", "10:00-10:30"}},
		{Name: "Root Canal", Price: 300, Slots: []string{"9:00-9:30", "11:00-11:30"}},
	}
	return NewCatalogUsecase(
		logrus.New(),
		&mockServiceRepo{services: services},
		&mockBookingRepo{bookings: bookings},
		nil,
	)
}

func TestAvailability_SubtractsBookedSlots(t *testing.T) {
	uc := newCatalogFixture([]entity.Booking{
		{Treatment: "Teeth Cleaning", Date: "2024-01-01", Slot: "9:30-10:00", Patient: "a@x.com"},
		{Treatment: "Teeth Cleaning", Date: "2024-01-01", Slot: "10:00-10:30", Patient: "b@x.com"},
		{Treatment: "Root Canal", Date: "2024-01-02", Slot: "9:00-9:30", Patient: "c@x.com"},
	})

	services, err := uc.Availability(context.Background(), "2024-01-01")
	require.NoError(t, err)
	require.Len(t, services, 2)

	assert.Equal(t, []string{"9:00-9:30"}, services[0].Slots)
	// Root Canal's only booking is on a different date.
	assert.Equal(t, []string{"9:00-9:30", "11:00-11:30"}, services[1].Slots)
}

func TestAvailability_NoBookingsLeavesSlotsIntact(t *testing.T) {
	uc := newCatalogFixture(nil)

	services, err := uc.Availability(context.Background(), "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, []string{"9:00-9:30", "9:30-10:00", "10:00-10:30"}, services[0].Slots)
}

func TestAvailability_MatchingIsExactStringEquality(t *testing.T) {
	uc := newCatalogFixture([]entity.Booking{
		// Different case: must not match "Teeth Cleaning".
		{Treatment: "teeth cleaning", Date: "2024-01-01", Slot: "9:00-9:30", Patient: "a@x.com"},
	})

	services, err := uc.Availability(context.Background(), "2024-01-01")
	require.NoError(t, err)
	assert.Len(t, services[0].Slots, 3)
}

func TestAvailability_FullyBookedServiceHasEmptySlots(t *testing.T) {
	uc := newCatalogFixture([]entity.Booking{
		{Treatment: "Root Canal", Date: "2024-01-01", Slot: "9:00-9:30", Patient: "a@x.com"},
		{Treatment: "Root Canal", Date: "2024-01-01", Slot: "11:00-11:30", Patient: "b@x.com"},
	})

	services, err := uc.Availability(context.Background(), "2024-01-01")
	require.NoError(t, err)
	assert.NotNil(t, services[1].Slots)
	assert.Empty(t, services[1].Slots)
}

func TestListSpecialties_ProjectsNamesOnly(t *testing.T) {
	uc := newCatalogFixture(nil)

	specialties, err := uc.ListSpecialties(context.Background())
	require.NoError(t, err)
	require.Len(t, specialties, 2)
	assert.Equal(t, "Teeth Cleaning", specialties[0].Name)
	assert.Equal(t, "Root Canal", specialties[1].Name)
}
