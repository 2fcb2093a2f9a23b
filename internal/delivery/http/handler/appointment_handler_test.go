package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"medifind/internal/delivery/dto"
	deliveryHttp "medifind/internal/delivery/http"
	"medifind/internal/delivery/http/handler"
	"medifind/internal/delivery/http/middleware"
	"medifind/internal/domain/entity"
	"medifind/internal/repository"
	"medifind/internal/usecase"
	"medifind/pkg/response"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func setupTestRouter() *mux.Router {
	log := logrus.New()
	log.SetOutput(io.Discard)

	doctors := []entity.Doctor{
		{ID: "1", Name: "Dr. A", Specialization: "Cardiologist", ConsultationFee: 50, AvailableSlots: []string{"10:00 AM"}},
		{ID: "2", Name: "Dr. B", Specialization: "Dermatologist", ConsultationFee: 120, AvailableSlots: []string{"09:30 AM"}},
	}

	appointmentUsecase := usecase.NewAppointmentUsecase(log, repository.NewAppointmentRepository())
	doctorUsecase := usecase.NewDoctorUsecase(log, repository.NewDoctorRepository(doctors))

	router := deliveryHttp.NewRouter(
		handler.NewAppointmentHandler(appointmentUsecase),
		handler.NewDoctorHandler(doctorUsecase),
		middleware.NewCORSMiddleware(),
		middleware.NewLoggingMiddleware(log),
	)
	return router.Setup()
}

func postAppointment(t *testing.T, router *mux.Router, req *dto.CreateAppointmentRequest) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(req)
	assert.NoError(t, err)

	rr := httptest.NewRecorder()
	httpReq := httptest.NewRequest(http.MethodPost, "/appointments", bytes.NewReader(body))
	httpReq.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rr, httpReq)
	return rr
}

func listAppointments(t *testing.T, router *mux.Router) []dto.AppointmentResponse {
	t.Helper()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/appointments", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	var appointments []dto.AppointmentResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &appointments))
	return appointments
}

func validBooking() *dto.CreateAppointmentRequest {
	return &dto.CreateAppointmentRequest{
		DoctorID:        "1",
		DoctorName:      "Dr. A",
		PatientName:     "Jane Doe",
		Email:           "j@x.com",
		Phone:           "555-0100",
		Date:            "2025-01-01",
		TimeSlot:        "10:00 AM",
		ConsultationFee: 50,
	}
}

func TestCreateAppointment(t *testing.T) {
	t.Run("Valid Booking", func(t *testing.T) {
		router := setupTestRouter()

		rr := postAppointment(t, router, validBooking())
		assert.Equal(t, http.StatusCreated, rr.Code)

		var appointment dto.AppointmentResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &appointment))
		assert.NotEmpty(t, appointment.ID)
		assert.Equal(t, "confirmed", appointment.Status)
		assert.Equal(t, float64(50), appointment.ConsultationFee)
		assert.Equal(t, "Jane Doe", appointment.PatientName)
		assert.Equal(t, "10:00 AM", appointment.TimeSlot)
	})

	t.Run("Unparsable Body Yields 500 And Stores Nothing", func(t *testing.T) {
		router := setupTestRouter()

		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/appointments", bytes.NewReader([]byte("{not json")))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)

		var errResp response.ErrorResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errResp))
		assert.NotEmpty(t, errResp.Error)

		assert.Empty(t, listAppointments(t, router), "no partial record may be stored")
	})

	t.Run("Unvalidated Fields Accepted", func(t *testing.T) {
		router := setupTestRouter()

		// Server performs no shape validation; a malformed email is stored.
		booking := validBooking()
		booking.Email = "not-an-email"

		rr := postAppointment(t, router, booking)
		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("CreatedAt Non-Decreasing", func(t *testing.T) {
		router := setupTestRouter()

		var previous time.Time
		for i := 0; i < 3; i++ {
			rr := postAppointment(t, router, validBooking())
			assert.Equal(t, http.StatusCreated, rr.Code)

			var appointment dto.AppointmentResponse
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &appointment))
			assert.False(t, appointment.CreatedAt.Before(previous))
			previous = appointment.CreatedAt
		}
	})
}

func TestGetAllAppointments(t *testing.T) {
	t.Run("Empty Store Returns Empty Array", func(t *testing.T) {
		router := setupTestRouter()

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/appointments", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, "[]", rr.Body.String())
	})

	t.Run("Returns All In Submission Order", func(t *testing.T) {
		router := setupTestRouter()

		const n = 4
		for i := 0; i < n; i++ {
			booking := validBooking()
			booking.PatientName = fmt.Sprintf("Patient %d", i)
			rr := postAppointment(t, router, booking)
			assert.Equal(t, http.StatusCreated, rr.Code)
		}

		appointments := listAppointments(t, router)
		assert.Len(t, appointments, n)
		for i, appointment := range appointments {
			assert.Equal(t, fmt.Sprintf("Patient %d", i), appointment.PatientName)
		}
	})
}
