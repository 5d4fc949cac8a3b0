package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"clinic-appointment-service/internal/delivery/dto"
	"clinic-appointment-service/pkg/validator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type mockPatientUsecase struct {
	RegisterPatientFunc func(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.PatientResponse, error)
	GetPatientFunc      func(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error)
}

func (m *mockPatientUsecase) RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.PatientResponse, error) {
	return m.RegisterPatientFunc(ctx, req)
}

func (m *mockPatientUsecase) GetPatient(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error) {
	return m.GetPatientFunc(ctx, id)
}

func registerBody(t *testing.T, age int) *bytes.Buffer {
	t.Helper()
	body, err := json.Marshal(dto.RegisterPatientRequest{
		FirstName: "Siti",
		LastName:  "Rahma",
		Email:     "siti.rahma@example.com",
		Age:       age,
	})
	assert.NoError(t, err)
	return bytes.NewBuffer(body)
}

// Age zero is a valid value, not a missing field.
func TestRegisterPatientAgeZeroAccepted(t *testing.T) {
	h := NewPatientHandler(&mockPatientUsecase{
		RegisterPatientFunc: func(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.PatientResponse, error) {
			assert.Equal(t, 0, req.Age)
			return &dto.PatientResponse{ID: uuid.New(), Email: req.Email, Age: req.Age}, nil
		},
	}, validator.NewValidator())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/patients", registerBody(t, 0))
	rec := httptest.NewRecorder()

	h.RegisterPatient(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRegisterPatientAgeOutOfRange(t *testing.T) {
	h := NewPatientHandler(&mockPatientUsecase{}, validator.NewValidator())

	for _, age := range []int{-1, 151} {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/patients", registerBody(t, age))
		rec := httptest.NewRecorder()

		h.RegisterPatient(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}
}
