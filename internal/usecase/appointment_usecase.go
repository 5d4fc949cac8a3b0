package usecase

import (
	"context"
	"errors"
	"time"

	"clinic-appointment-service/internal/converter"
	"clinic-appointment-service/internal/delivery/dto"
	"clinic-appointment-service/internal/domain/entity"
	"clinic-appointment-service/internal/domain/repository"
	"clinic-appointment-service/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDurationOutOfRange   = errors.New("duration must be between 15 and 180 minutes")
	ErrInvalidStartDatetime = errors.New("invalid start datetime format")
	ErrScheduledInPast      = errors.New("appointment must be scheduled in the future")
	ErrSchedulingConflict   = errors.New("doctor has a conflicting appointment at this time")
	ErrDoctorInactive       = errors.New("doctor is not active")
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrInvalidDate          = errors.New("invalid date format, use YYYY-MM-DD")
)

type AppointmentUsecase interface {
	Schedule(ctx context.Context, req *dto.ScheduleAppointmentRequest) (*dto.AppointmentResponse, error)
	GetAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
	ListByDate(ctx context.Context, date string, doctorID *uuid.UUID) (*dto.AppointmentListResponse, error)
}

type appointmentUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	doctorRepo      repository.DoctorRepository
	locker          service.DoctorLocker
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	doctorRepo repository.DoctorRepository,
	locker service.DoctorLocker,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
		locker:          locker,
		auditService:    auditService,
	}
}

// Schedule admits a new appointment. Each step is a hard gate; the first
// failure short-circuits with zero writes. The insert in the final step is
// the only mutation.
//
// Flow:
// 1. Validate duration bounds
// 2. Normalize start datetime (naive input treated as UTC), compute end
// 3. Reject starts that are not strictly in the future
// 4. Acquire the doctor's schedule lock - serializes check-then-insert
// 5. Fetch doctor: must exist and be active
// 6. Scan the doctor's existing appointments for a half-open overlap
// 7. Insert the appointment
func (u *appointmentUsecase) Schedule(ctx context.Context, req *dto.ScheduleAppointmentRequest) (*dto.AppointmentResponse, error) {
	// Step 1: duration bounds
	if err := validateDuration(req.DurationMinutes); err != nil {
		return nil, err
	}

	// Step 2: normalize start, derive end
	start, err := normalizeStart(req.StartDatetime)
	if err != nil {
		return nil, err
	}
	end := start.Add(time.Duration(req.DurationMinutes) * time.Minute)

	// Step 3: future-only, against a single per-request now
	now := time.Now().UTC()
	if err := validateFuture(start, now); err != nil {
		return nil, err
	}

	// Step 4: serialize check-then-insert for this doctor. Without the
	// lock, two concurrent requests could both pass the conflict scan
	// before either insert commits.
	unlock, err := u.locker.Lock(ctx, req.DoctorID)
	if err != nil {
		if !errors.Is(err, service.ErrScheduleLockTimeout) {
			u.log.Warnf("Failed to acquire schedule lock for doctor %s: %+v", req.DoctorID, err)
		}
		return nil, err
	}
	defer unlock()

	// Step 5: doctor must exist and be active
	doctor, err := u.doctorRepo.FindByID(ctx, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", req.DoctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	if !doctor.Active() {
		return nil, ErrDoctorInactive
	}

	// Step 6: conflict scan over ALL of the doctor's appointments. No day
	// pre-filter: an appointment can span a day boundary.
	existing, err := u.appointmentRepo.FindByDoctorID(ctx, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to load appointments for doctor %s: %+v", req.DoctorID, err)
		return nil, err
	}
	if conflict := findConflict(existing, start, end); conflict != nil {
		u.log.Infof("Scheduling conflict for doctor %s: candidate %s-%s overlaps appointment %s",
			req.DoctorID, start.Format(time.RFC3339), end.Format(time.RFC3339), conflict.ID)
		return nil, ErrSchedulingConflict
	}

	// Step 7: the sole write. Patient existence is enforced here by the
	// store's foreign key, not re-checked beforehand.
	appointment := &entity.Appointment{
		PatientID:       req.PatientID,
		DoctorID:        req.DoctorID,
		StartDatetime:   start,
		DurationMinutes: req.DurationMinutes,
		Reason:          req.Reason,
	}
	if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, ErrPatientNotFound
		}
		u.log.Warnf("Failed to insert appointment for doctor %s: %+v", req.DoctorID, err)
		return nil, err
	}

	u.auditService.LogCreate(ctx, entity.AuditActionAppointmentSchedule, "appointment", appointment.ID.String(), appointment)
	u.log.Infof("Appointment scheduled: id=%s, doctor=%s, patient=%s, start=%s, duration=%dm",
		appointment.ID, appointment.DoctorID, appointment.PatientID,
		start.Format(time.RFC3339), appointment.DurationMinutes)

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

// ListByDate returns the appointments starting within the UTC day window
// [date 00:00, +24h), optionally filtered by doctor, ascending by start
// time. Pure read: identical arguments against unchanged state yield
// identical results.
func (u *appointmentUsecase) ListByDate(ctx context.Context, date string, doctorID *uuid.UUID) (*dto.AppointmentListResponse, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	dayStart := day.UTC()
	dayEnd := dayStart.Add(24 * time.Hour)

	appointments, err := u.appointmentRepo.FindByDateRange(ctx, dayStart, dayEnd, doctorID)
	if err != nil {
		u.log.Warnf("Failed to list appointments for %s: %+v", date, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}
