package converter

import (
	"medifind/internal/delivery/dto"
	"medifind/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:              appointment.ID,
		DoctorID:        appointment.DoctorID,
		DoctorName:      appointment.DoctorName,
		PatientName:     appointment.PatientName,
		Email:           appointment.Email,
		Phone:           appointment.Phone,
		Date:            appointment.Date,
		TimeSlot:        appointment.TimeSlot,
		Reason:          appointment.Reason,
		ConsultationFee: appointment.ConsultationFee,
		Status:          string(appointment.Status),
		CreatedAt:       appointment.CreatedAt,
	}
}

// AppointmentsToResponses converts a slice of Appointment entities to slice of AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		responses[i] = *AppointmentToResponse(&appointment)
	}
	return responses
}
