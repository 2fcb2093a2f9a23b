package repository

import (
	"context"

	"medifind/internal/domain/entity"
)

// AppointmentRepository owns every appointment created during the process
// lifetime. Records are append-only: no operation mutates or deletes them.
type AppointmentRepository interface {
	// Create assigns the appointment a fresh identifier and stores it.
	Create(ctx context.Context, appointment *entity.Appointment) error
	// FindAll returns all stored appointments in insertion order.
	FindAll(ctx context.Context) ([]entity.Appointment, error)
	// Count returns the number of stored appointments.
	Count(ctx context.Context) (int, error)
}
