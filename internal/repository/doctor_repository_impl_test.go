package repository

import (
	"context"
	"testing"

	"medifind/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func testDoctors() []entity.Doctor {
	return []entity.Doctor{
		{ID: "1", Name: "Sarah Johnson", Specialization: "Cardiologist", AvailableSlots: []string{"10:00 AM"}},
		{ID: "2", Name: "Michael Chen", Specialization: "Dermatologist", AvailableSlots: []string{"09:30 AM"}},
	}
}

func TestDoctorRepositoryFindAll(t *testing.T) {
	repo := NewDoctorRepository(testDoctors())

	doctors, err := repo.FindAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, doctors, 2)
	assert.Equal(t, "Sarah Johnson", doctors[0].Name)
	assert.Equal(t, "Michael Chen", doctors[1].Name)
}

func TestDoctorRepositoryFindByID(t *testing.T) {
	ctx := context.Background()
	repo := NewDoctorRepository(testDoctors())

	t.Run("Known ID", func(t *testing.T) {
		doctor, err := repo.FindByID(ctx, "2")
		assert.NoError(t, err)
		assert.NotNil(t, doctor)
		assert.Equal(t, "Michael Chen", doctor.Name)
	})

	t.Run("Unknown ID", func(t *testing.T) {
		doctor, err := repo.FindByID(ctx, "999")
		assert.NoError(t, err)
		assert.Nil(t, doctor, "unknown id should yield nil, not an error")
	})
}
