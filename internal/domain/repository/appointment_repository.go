package repository

import (
	"context"
	"time"

	"clinic-appointment-service/internal/domain/entity"

	"github.com/google/uuid"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)

	// FindByDoctorID returns every appointment for the doctor, ordered by
	// start time. The conflict scan reads the full set on purpose: an
	// appointment can span a day boundary, so a day-window pre-filter
	// would miss candidates.
	FindByDoctorID(ctx context.Context, doctorID uuid.UUID) ([]entity.Appointment, error)

	// FindByDateRange returns appointments with start <= start_datetime < end,
	// optionally filtered by doctor, ordered by start time.
	FindByDateRange(ctx context.Context, start, end time.Time, doctorID *uuid.UUID) ([]entity.Appointment, error)
}
