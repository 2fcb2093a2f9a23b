package converter

import (
	"medifind/internal/delivery/dto"
	"medifind/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:              doctor.ID,
		Name:            doctor.Name,
		Specialization:  doctor.Specialization,
		ProfileImage:    doctor.ProfileImage,
		Rating:          doctor.Rating,
		ReviewCount:     doctor.ReviewCount,
		Location:        doctor.Location,
		Experience:      doctor.Experience,
		IsAvailable:     doctor.IsAvailable,
		Bio:             doctor.Bio,
		Qualifications:  doctor.Qualifications,
		Languages:       doctor.Languages,
		ConsultationFee: doctor.ConsultationFee,
		AvailableSlots:  doctor.AvailableSlots,
	}
}

// DoctorsToResponses converts a slice of Doctor entities to slice of DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i, doctor := range doctors {
		responses[i] = *DoctorToResponse(&doctor)
	}
	return responses
}
