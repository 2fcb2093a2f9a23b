package usecase

import (
	"context"
	"testing"

	"medifind/internal/delivery/dto"
	"medifind/internal/repository"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newBookingRequest(patient string) *dto.CreateAppointmentRequest {
	return &dto.CreateAppointmentRequest{
		DoctorID:        "1",
		DoctorName:      "Sarah Johnson",
		PatientName:     patient,
		Email:           "jane@example.com",
		Phone:           "555-0100",
		Date:            "2025-01-01",
		TimeSlot:        "10:00 AM",
		Reason:          "Checkup",
		ConsultationFee: 150,
	}
}

func TestCreateAppointment(t *testing.T) {
	ctx := context.Background()
	u := NewAppointmentUsecase(logrus.New(), repository.NewAppointmentRepository())

	t.Run("Created Confirmed", func(t *testing.T) {
		appointment, err := u.CreateAppointment(ctx, newBookingRequest("Jane Doe"))

		assert.NoError(t, err)
		assert.NotEmpty(t, appointment.ID)
		assert.Equal(t, "confirmed", appointment.Status)
		assert.False(t, appointment.CreatedAt.IsZero())
	})

	t.Run("Echoes Submitted Fields", func(t *testing.T) {
		appointment, err := u.CreateAppointment(ctx, newBookingRequest("John Doe"))

		assert.NoError(t, err)
		assert.Equal(t, "1", appointment.DoctorID)
		assert.Equal(t, "Sarah Johnson", appointment.DoctorName)
		assert.Equal(t, "John Doe", appointment.PatientName)
		assert.Equal(t, "10:00 AM", appointment.TimeSlot)
		assert.Equal(t, "Checkup", appointment.Reason)
		assert.Equal(t, float64(150), appointment.ConsultationFee)
	})

	t.Run("CreatedAt Non-Decreasing", func(t *testing.T) {
		first, err := u.CreateAppointment(ctx, newBookingRequest("Jane Doe"))
		assert.NoError(t, err)
		second, err := u.CreateAppointment(ctx, newBookingRequest("John Doe"))
		assert.NoError(t, err)

		assert.False(t, second.CreatedAt.Before(first.CreatedAt))
	})
}

func TestGetAllAppointments(t *testing.T) {
	ctx := context.Background()
	u := NewAppointmentUsecase(logrus.New(), repository.NewAppointmentRepository())

	t.Run("Empty", func(t *testing.T) {
		appointments, err := u.GetAllAppointments(ctx)
		assert.NoError(t, err)
		assert.NotNil(t, appointments, "listing must be an empty slice, not nil")
		assert.Len(t, appointments, 0)
	})

	t.Run("Submission Order", func(t *testing.T) {
		names := []string{"Jane Doe", "John Doe", "Mary Major"}
		for _, name := range names {
			_, err := u.CreateAppointment(ctx, newBookingRequest(name))
			assert.NoError(t, err)
		}

		appointments, err := u.GetAllAppointments(ctx)
		assert.NoError(t, err)
		assert.Len(t, appointments, len(names))
		for i, name := range names {
			assert.Equal(t, name, appointments[i].PatientName)
		}
	})
}
