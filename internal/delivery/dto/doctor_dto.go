package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateDoctorRequest struct {
	FullName       string `json:"full_name" validate:"required,max=255"`
	Specialization string `json:"specialization" validate:"required,max=255"`
	// Defaults to active when omitted
	IsActive *bool `json:"is_active"`
}

// UpdateDoctorRequest updates only the provided fields. Deactivation does
// not touch existing appointments; it only blocks future scheduling.
type UpdateDoctorRequest struct {
	FullName       *string `json:"full_name" validate:"omitempty,max=255"`
	Specialization *string `json:"specialization" validate:"omitempty,max=255"`
	IsActive       *bool   `json:"is_active"`
}

// Response DTOs

type DoctorResponse struct {
	ID             uuid.UUID `json:"id"`
	FullName       string    `json:"full_name"`
	Specialization string    `json:"specialization"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}
