package usecase

import (
	"context"
	"errors"
	"strings"

	"medifind/internal/converter"
	"medifind/internal/delivery/dto"
	"medifind/internal/domain/entity"
	"medifind/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var ErrDoctorNotFound = errors.New("doctor not found")

type DoctorUsecase interface {
	GetAllDoctors(ctx context.Context) ([]dto.DoctorResponse, error)
	GetDoctor(ctx context.Context, doctorID string) (*dto.DoctorResponse, error)
	SearchDoctors(ctx context.Context, search, specialization string) ([]dto.DoctorResponse, error)
}

type doctorUsecase struct {
	log        *logrus.Logger
	doctorRepo repository.DoctorRepository
}

func NewDoctorUsecase(log *logrus.Logger, doctorRepo repository.DoctorRepository) DoctorUsecase {
	return &doctorUsecase{
		log:        log,
		doctorRepo: doctorRepo,
	}
}

func (u *doctorUsecase) GetAllDoctors(ctx context.Context) ([]dto.DoctorResponse, error) {
	doctors, err := u.doctorRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find doctors: %+v", err)
		return nil, err
	}

	return converter.DoctorsToResponses(doctors), nil
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, doctorID string) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) SearchDoctors(ctx context.Context, search, specialization string) ([]dto.DoctorResponse, error) {
	doctors, err := u.doctorRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find doctors: %+v", err)
		return nil, err
	}

	return converter.DoctorsToResponses(FilterDoctors(doctors, search, specialization)), nil
}

// FilterDoctors narrows doctors to those whose name contains search
// (case-insensitive) and whose specialization matches exactly. An empty
// search matches every name; an empty specialization matches every category.
func FilterDoctors(doctors []entity.Doctor, search, specialization string) []entity.Doctor {
	search = strings.ToLower(search)

	filtered := make([]entity.Doctor, 0, len(doctors))
	for _, doctor := range doctors {
		if !strings.Contains(strings.ToLower(doctor.Name), search) {
			continue
		}
		if specialization != "" && doctor.Specialization != specialization {
			continue
		}
		filtered = append(filtered, doctor)
	}
	return filtered
}
