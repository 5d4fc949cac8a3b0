package usecase

import (
	"context"
	"testing"

	"clinic-appointment-service/internal/delivery/dto"
	"clinic-appointment-service/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func registerRequest(email string) *dto.RegisterPatientRequest {
	return &dto.RegisterPatientRequest{
		FirstName: "Siti",
		LastName:  "Rahma",
		Email:     email,
		Phone:     "081234567890",
		Age:       34,
	}
}

func TestRegisterPatientSuccess(t *testing.T) {
	patientRepo := &mockPatientRepository{}
	audit := &stubAuditService{}
	u := NewPatientUsecase(logrus.New(), patientRepo, audit)

	resp, err := u.RegisterPatient(context.Background(), registerRequest("siti.rahma@example.com"))

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.NotEqual(t, uuid.Nil, resp.ID)
	assert.Equal(t, "siti.rahma@example.com", resp.Email)
	assert.Equal(t, 1, patientRepo.CreateCalls)
	assert.Contains(t, audit.Actions, entity.AuditActionPatientRegister)
}

func TestRegisterPatientDuplicateEmail(t *testing.T) {
	patientRepo := &mockPatientRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*entity.Patient, error) {
			return &entity.Patient{ID: uuid.New(), Email: email}, nil
		},
	}
	u := NewPatientUsecase(logrus.New(), patientRepo, &stubAuditService{})

	_, err := u.RegisterPatient(context.Background(), registerRequest("taken@example.com"))
	assert.ErrorIs(t, err, ErrPatientEmailExists)
	assert.Equal(t, 0, patientRepo.CreateCalls)
}

func TestRegisterPatientDuplicateEmailRaceLostAtStore(t *testing.T) {
	// The pre-check misses a concurrent insert; the unique index catches it
	patientRepo := &mockPatientRepository{
		CreateFunc: func(ctx context.Context, patient *entity.Patient) error {
			return gorm.ErrDuplicatedKey
		},
	}
	u := NewPatientUsecase(logrus.New(), patientRepo, &stubAuditService{})

	_, err := u.RegisterPatient(context.Background(), registerRequest("raced@example.com"))
	assert.ErrorIs(t, err, ErrPatientEmailExists)
}

func TestGetPatient(t *testing.T) {
	patientID := uuid.New()
	patientRepo := &mockPatientRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
			if id == patientID {
				return &entity.Patient{ID: patientID, Email: "known@example.com"}, nil
			}
			return nil, nil
		},
	}
	u := NewPatientUsecase(logrus.New(), patientRepo, &stubAuditService{})

	resp, err := u.GetPatient(context.Background(), patientID)
	assert.NoError(t, err)
	assert.Equal(t, patientID, resp.ID)

	_, err = u.GetPatient(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrPatientNotFound)
}
