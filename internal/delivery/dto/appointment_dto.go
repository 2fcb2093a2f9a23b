package dto

import "time"

// Request DTOs

// CreateAppointmentRequest carries the booking form payload. The validate
// tags are enforced by the client form before submission; the server accepts
// the body as-is, matching the behavior the web client was built against.
type CreateAppointmentRequest struct {
	DoctorID        string  `json:"doctorId" validate:"required"`
	DoctorName      string  `json:"doctorName" validate:"required"`
	PatientName     string  `json:"patientName" validate:"required"`
	Email           string  `json:"email" validate:"required,email"`
	Phone           string  `json:"phone" validate:"required"`
	Date            string  `json:"date" validate:"required"`
	TimeSlot        string  `json:"timeSlot" validate:"required"`
	Reason          string  `json:"reason" validate:"omitempty"`
	ConsultationFee float64 `json:"consultationFee" validate:"gte=0"`
}

// Response DTOs

type AppointmentResponse struct {
	ID              string    `json:"id"`
	DoctorID        string    `json:"doctorId"`
	DoctorName      string    `json:"doctorName"`
	PatientName     string    `json:"patientName"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Date            string    `json:"date"`
	TimeSlot        string    `json:"timeSlot"`
	Reason          string    `json:"reason,omitempty"`
	ConsultationFee float64   `json:"consultationFee"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}
