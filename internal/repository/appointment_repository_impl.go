package repository

import (
	"context"
	"sync"

	"medifind/internal/domain/entity"
	domainRepo "medifind/internal/domain/repository"

	"github.com/google/uuid"
)

// appointmentRepository keeps all appointments in process memory. State is
// lost on restart; that boundary is part of the store's contract.
type appointmentRepository struct {
	mu           sync.Mutex
	appointments []entity.Appointment
}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

// Create mints the identifier inside the locked section so concurrent
// submissions can never collide on an id.
func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	appointment.ID = uuid.NewString()
	r.appointments = append(r.appointments, *appointment)
	return nil
}

func (r *appointmentRepository) FindAll(ctx context.Context) ([]entity.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	appointments := make([]entity.Appointment, len(r.appointments))
	copy(appointments, r.appointments)
	return appointments, nil
}

func (r *appointmentRepository) Count(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.appointments), nil
}
