package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"doctors-portal-server/internal/delivery/dto"
	"doctors-portal-server/internal/delivery/http/middleware"
	"doctors-portal-server/internal/domain/entity"
	"doctors-portal-server/internal/usecase"
	"doctors-portal-server/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// mockBookingUsecase returns canned answers and records calls.
type mockBookingUsecase struct {
	created     *dto.CreateBookingResponse
	bookings    []entity.Booking
	booking     *entity.Booking
	err         error
	listPatient string
}

func (m *mockBookingUsecase) CreateBooking(_ context.Context, _ *dto.CreateBookingRequest) (*dto.CreateBookingResponse, error) {
	return m.created, m.err
}

func (m *mockBookingUsecase) ListByPatient(_ context.Context, patient string) ([]entity.Booking, error) {
	m.listPatient = patient
	return m.bookings, m.err
}

func (m *mockBookingUsecase) GetByID(_ context.Context, _ string) (*entity.Booking, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.booking, nil
}

func (m *mockBookingUsecase) MarkPaid(_ context.Context, _ string, _ *dto.MarkPaidRequest) (*entity.Booking, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.booking, nil
}

func withIdentity(req *http.Request, email string) *http.Request {
	ctx := context.WithValue(req.Context(), middleware.UserEmailKey, email)
	return req.WithContext(ctx)
}

func TestCreateBooking_Success(t *testing.T) {
	uc := &mockBookingUsecase{created: &dto.CreateBookingResponse{
		Success: true,
		Result:  &mongo.InsertOneResult{InsertedID: primitive.NewObjectID()},
	}}
	h := NewBookingHandler(uc, validator.NewValidator())

	body := `{"treatment":"Teeth Cleaning","date":"2024-01-01","slot":"9:00-9:30","patient":"a@x.com"}`
	req := httptest.NewRequest(http.MethodPost, "/booking", strings.NewReader(body))
	w := httptest.NewRecorder()

	h.Create(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Contains(t, resp, "result")
}

func TestCreateBooking_DuplicateEchoesBooking(t *testing.T) {
	existing := &entity.Booking{Treatment: "Teeth Cleaning", Date: "2024-01-01", Patient: "a@x.com"}
	uc := &mockBookingUsecase{created: &dto.CreateBookingResponse{Success: false, Booking: existing}}
	h := NewBookingHandler(uc, validator.NewValidator())

	body := `{"treatment":"Teeth Cleaning","date":"2024-01-01","slot":"9:00-9:30","patient":"a@x.com"}`
	req := httptest.NewRequest(http.MethodPost, "/booking", strings.NewReader(body))
	w := httptest.NewRecorder()

	h.Create(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Contains(t, resp, "booking")
}

func TestCreateBooking_MissingFieldsFailValidation(t *testing.T) {
	h := NewBookingHandler(&mockBookingUsecase{}, validator.NewValidator())

	req := httptest.NewRequest(http.MethodPost, "/booking", strings.NewReader(`{"treatment":"Teeth Cleaning"}`))
	w := httptest.NewRecorder()

	h.Create(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListByPatient_SelfMatch(t *testing.T) {
	uc := &mockBookingUsecase{bookings: []entity.Booking{{Treatment: "Teeth Cleaning", Patient: "a@x.com"}}}
	h := NewBookingHandler(uc, validator.NewValidator())

	req := withIdentity(httptest.NewRequest(http.MethodGet, "/booking?patient=a@x.com", nil), "a@x.com")
	w := httptest.NewRecorder()

	h.ListByPatient(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "a@x.com", uc.listPatient)
}

func TestListByPatient_MismatchIs403(t *testing.T) {
	h := NewBookingHandler(&mockBookingUsecase{}, validator.NewValidator())

	req := withIdentity(httptest.NewRequest(http.MethodGet, "/booking?patient=b@x.com", nil), "a@x.com")
	w := httptest.NewRecorder()

	h.ListByPatient(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body["message"])
}

func TestGetByID_NotFound(t *testing.T) {
	h := NewBookingHandler(&mockBookingUsecase{err: usecase.ErrBookingNotFound}, validator.NewValidator())

	router := mux.NewRouter()
	router.HandleFunc("/booking/{id}", h.GetByID).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, "/booking/"+primitive.NewObjectID().Hex(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMarkPaid_ReturnsUpdatedBooking(t *testing.T) {
	updated := &entity.Booking{
		ID:            primitive.NewObjectID(),
		Treatment:     "Root Canal",
		Paid:          true,
		TransactionID: "txn_123",
	}
	h := NewBookingHandler(&mockBookingUsecase{booking: updated}, validator.NewValidator())

	router := mux.NewRouter()
	router.HandleFunc("/booking/{id}", h.MarkPaid).Methods(http.MethodPatch)

	body := `{"transactionId":"txn_123","price":300}`
	req := httptest.NewRequest(http.MethodPatch, "/booking/"+updated.ID.Hex(), strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp entity.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Paid)
	assert.Equal(t, "txn_123", resp.TransactionID)
}
