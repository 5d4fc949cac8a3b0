package repository

import (
	"context"

	"clinic-appointment-service/internal/domain/entity"

	"github.com/google/uuid"
)

type DoctorRepository interface {
	Create(ctx context.Context, doctor *entity.Doctor) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error)
	Update(ctx context.Context, doctor *entity.Doctor) error
}
