package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// ScheduleAppointmentRequest carries the start datetime as a string so the
// scheduler can distinguish offset-carrying input from naive input, which
// is normalized as UTC. Duration bounds are enforced by the scheduler, not
// by struct validation, so the caller gets the typed duration error even
// for a zero or missing duration.
type ScheduleAppointmentRequest struct {
	PatientID       uuid.UUID `json:"patient_id" validate:"required"`
	DoctorID        uuid.UUID `json:"doctor_id" validate:"required"`
	StartDatetime   string    `json:"start_datetime" validate:"required"`
	DurationMinutes int       `json:"duration_minutes"`
	Reason          string    `json:"reason" validate:"omitempty,max=500"`
}

// Response DTOs

type AppointmentResponse struct {
	ID              uuid.UUID `json:"id"`
	PatientID       uuid.UUID `json:"patient_id"`
	DoctorID        uuid.UUID `json:"doctor_id"`
	StartDatetime   time.Time `json:"start_datetime"`
	DurationMinutes int       `json:"duration_minutes"`
	EndDatetime     time.Time `json:"end_datetime"`
	Reason          string    `json:"reason,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
