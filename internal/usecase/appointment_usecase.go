package usecase

import (
	"context"
	"time"

	"medifind/internal/converter"
	"medifind/internal/delivery/dto"
	"medifind/internal/domain/entity"
	"medifind/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetAllAppointments(ctx context.Context) ([]dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
	}
}

// CreateAppointment records a new appointment and returns the stored record.
// Every appointment is created confirmed. doctorName and consultationFee are
// stored as the client sent them, not re-derived from the catalog: existing
// clients rely on their submitted values being echoed back.
func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	appointment := &entity.Appointment{
		DoctorID:        req.DoctorID,
		DoctorName:      req.DoctorName,
		PatientName:     req.PatientName,
		Email:           req.Email,
		Phone:           req.Phone,
		Date:            req.Date,
		TimeSlot:        req.TimeSlot,
		Reason:          req.Reason,
		ConsultationFee: req.ConsultationFee,
		Status:          entity.AppointmentStatusConfirmed,
		CreatedAt:       time.Now().UTC(),
	}

	if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	u.log.WithFields(logrus.Fields{
		"appointment_id": appointment.ID,
		"doctor_id":      appointment.DoctorID,
	}).Info("Appointment created")

	return converter.AppointmentToResponse(appointment), nil
}

// GetAllAppointments returns every stored appointment in insertion order.
func (u *appointmentUsecase) GetAllAppointments(ctx context.Context) ([]dto.AppointmentResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}

	return converter.AppointmentsToResponses(appointments), nil
}
