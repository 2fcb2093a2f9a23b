package repository

import (
	"context"

	"medifind/internal/domain/entity"
)

type DoctorRepository interface {
	FindAll(ctx context.Context) ([]entity.Doctor, error)
	// FindByID returns (nil, nil) when no doctor has the given id.
	FindByID(ctx context.Context, id string) (*entity.Doctor, error)
}
