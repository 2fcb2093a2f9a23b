package entity

import "time"

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a patient booking transaction.
// JSON field names are camelCase: they are the wire contract the existing
// web client depends on.
type Appointment struct {
	ID              string            `json:"id"`
	DoctorID        string            `json:"doctorId"`
	DoctorName      string            `json:"doctorName"`
	PatientName     string            `json:"patientName"`
	Email           string            `json:"email"`
	Phone           string            `json:"phone"`
	Date            string            `json:"date"`
	TimeSlot        string            `json:"timeSlot"`
	Reason          string            `json:"reason,omitempty"`
	ConsultationFee float64           `json:"consultationFee"`
	Status          AppointmentStatus `json:"status"`
	CreatedAt       time.Time         `json:"createdAt"`
}

// IsConfirmed checks if the appointment is confirmed
func (a *Appointment) IsConfirmed() bool {
	return a.Status == AppointmentStatusConfirmed
}

// IsCancelled checks if the appointment is cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}
