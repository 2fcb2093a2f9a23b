package repository

import (
	"context"

	"medifind/internal/domain/entity"
	domainRepo "medifind/internal/domain/repository"
)

// doctorRepository is a read-only catalog built once at construction.
// Lookups are served from an index by id; listing preserves seed order.
type doctorRepository struct {
	doctors []entity.Doctor
	byID    map[string]int
}

func NewDoctorRepository(doctors []entity.Doctor) domainRepo.DoctorRepository {
	byID := make(map[string]int, len(doctors))
	for i, doctor := range doctors {
		byID[doctor.ID] = i
	}
	return &doctorRepository{
		doctors: doctors,
		byID:    byID,
	}
}

func (r *doctorRepository) FindAll(ctx context.Context) ([]entity.Doctor, error) {
	doctors := make([]entity.Doctor, len(r.doctors))
	copy(doctors, r.doctors)
	return doctors, nil
}

func (r *doctorRepository) FindByID(ctx context.Context, id string) (*entity.Doctor, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	doctor := r.doctors[i]
	return &doctor, nil
}
