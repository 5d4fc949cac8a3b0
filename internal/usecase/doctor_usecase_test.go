package usecase

import (
	"context"
	"testing"

	"clinic-appointment-service/internal/delivery/dto"
	"clinic-appointment-service/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestCreateDoctorDefaultsToActive(t *testing.T) {
	doctorRepo := &mockDoctorRepository{}
	u := NewDoctorUsecase(logrus.New(), doctorRepo, &stubAuditService{})

	resp, err := u.CreateDoctor(context.Background(), &dto.CreateDoctorRequest{
		FullName:       "Dr. Budi Santoso",
		Specialization: "Dermatology",
	})

	assert.NoError(t, err)
	assert.True(t, resp.IsActive)
	assert.Equal(t, "Dermatology", resp.Specialization)
	assert.NotEqual(t, uuid.Nil, resp.ID)
}

func TestCreateDoctorExplicitlyInactive(t *testing.T) {
	doctorRepo := &mockDoctorRepository{}
	u := NewDoctorUsecase(logrus.New(), doctorRepo, &stubAuditService{})

	inactive := false
	resp, err := u.CreateDoctor(context.Background(), &dto.CreateDoctorRequest{
		FullName:       "Dr. Budi Santoso",
		Specialization: "Dermatology",
		IsActive:       &inactive,
	})

	assert.NoError(t, err)
	assert.False(t, resp.IsActive)
}

func TestUpdateDoctorDeactivation(t *testing.T) {
	doctorID := uuid.New()
	active := true
	doctorRepo := &mockDoctorRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Doctor, error) {
			return &entity.Doctor{
				ID:             doctorID,
				FullName:       "Dr. Budi Santoso",
				Specialization: "Dermatology",
				IsActive:       &active,
			}, nil
		},
	}
	audit := &stubAuditService{}
	u := NewDoctorUsecase(logrus.New(), doctorRepo, audit)

	inactive := false
	resp, err := u.UpdateDoctor(context.Background(), doctorID, &dto.UpdateDoctorRequest{IsActive: &inactive})

	assert.NoError(t, err)
	assert.False(t, resp.IsActive)
	// Untouched fields are preserved
	assert.Equal(t, "Dr. Budi Santoso", resp.FullName)
	assert.Equal(t, 1, doctorRepo.UpdateCalls)
	assert.Contains(t, audit.Actions, entity.AuditActionDoctorUpdate)
}

func TestUpdateDoctorPartialFields(t *testing.T) {
	doctorID := uuid.New()
	active := true
	doctorRepo := &mockDoctorRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Doctor, error) {
			return &entity.Doctor{
				ID:             doctorID,
				FullName:       "Dr. Budi Santoso",
				Specialization: "Dermatology",
				IsActive:       &active,
			}, nil
		},
	}
	u := NewDoctorUsecase(logrus.New(), doctorRepo, &stubAuditService{})

	newSpecialization := "Pediatrics"
	resp, err := u.UpdateDoctor(context.Background(), doctorID, &dto.UpdateDoctorRequest{
		Specialization: &newSpecialization,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Pediatrics", resp.Specialization)
	assert.Equal(t, "Dr. Budi Santoso", resp.FullName)
	assert.True(t, resp.IsActive)
}

func TestUpdateDoctorNotFound(t *testing.T) {
	doctorRepo := &mockDoctorRepository{}
	u := NewDoctorUsecase(logrus.New(), doctorRepo, &stubAuditService{})

	name := "Dr. Nobody"
	_, err := u.UpdateDoctor(context.Background(), uuid.New(), &dto.UpdateDoctorRequest{FullName: &name})
	assert.ErrorIs(t, err, ErrDoctorNotFound)
	assert.Equal(t, 0, doctorRepo.UpdateCalls)
}

func TestGetDoctorNotFound(t *testing.T) {
	u := NewDoctorUsecase(logrus.New(), &mockDoctorRepository{}, &stubAuditService{})

	_, err := u.GetDoctor(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}
