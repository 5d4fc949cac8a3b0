package usecase

import (
	"context"
	"time"

	"clinic-appointment-service/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Mock AppointmentRepository ---

type mockAppointmentRepository struct {
	CreateFunc          func(ctx context.Context, appointment *entity.Appointment) error
	FindByIDFunc        func(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)
	FindByDoctorIDFunc  func(ctx context.Context, doctorID uuid.UUID) ([]entity.Appointment, error)
	FindByDateRangeFunc func(ctx context.Context, start, end time.Time, doctorID *uuid.UUID) ([]entity.Appointment, error)

	CreateCalls int
}

func (m *mockAppointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	m.CreateCalls++
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, appointment)
	}
	appointment.ID = uuid.New()
	appointment.CreatedAt = time.Now().UTC()
	return nil
}

func (m *mockAppointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockAppointmentRepository) FindByDoctorID(ctx context.Context, doctorID uuid.UUID) ([]entity.Appointment, error) {
	if m.FindByDoctorIDFunc != nil {
		return m.FindByDoctorIDFunc(ctx, doctorID)
	}
	return nil, nil
}

func (m *mockAppointmentRepository) FindByDateRange(ctx context.Context, start, end time.Time, doctorID *uuid.UUID) ([]entity.Appointment, error) {
	if m.FindByDateRangeFunc != nil {
		return m.FindByDateRangeFunc(ctx, start, end, doctorID)
	}
	return nil, nil
}

// --- Mock DoctorRepository ---

type mockDoctorRepository struct {
	CreateFunc   func(ctx context.Context, doctor *entity.Doctor) error
	FindByIDFunc func(ctx context.Context, id uuid.UUID) (*entity.Doctor, error)
	UpdateFunc   func(ctx context.Context, doctor *entity.Doctor) error

	FindByIDCalls int
	UpdateCalls   int
}

func (m *mockDoctorRepository) Create(ctx context.Context, doctor *entity.Doctor) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, doctor)
	}
	doctor.ID = uuid.New()
	doctor.CreatedAt = time.Now().UTC()
	return nil
}

func (m *mockDoctorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error) {
	m.FindByIDCalls++
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockDoctorRepository) Update(ctx context.Context, doctor *entity.Doctor) error {
	m.UpdateCalls++
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, doctor)
	}
	return nil
}

// --- Mock PatientRepository ---

type mockPatientRepository struct {
	CreateFunc      func(ctx context.Context, patient *entity.Patient) error
	FindByIDFunc    func(ctx context.Context, id uuid.UUID) (*entity.Patient, error)
	FindByEmailFunc func(ctx context.Context, email string) (*entity.Patient, error)

	CreateCalls int
}

func (m *mockPatientRepository) Create(ctx context.Context, patient *entity.Patient) error {
	m.CreateCalls++
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, patient)
	}
	patient.ID = uuid.New()
	patient.CreatedAt = time.Now().UTC()
	return nil
}

func (m *mockPatientRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockPatientRepository) FindByEmail(ctx context.Context, email string) (*entity.Patient, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

// --- Mock AuditLogRepository ---

type mockAuditLogRepository struct {
	CreateFunc  func(ctx context.Context, log *entity.AuditLog) error
	FindAllFunc func(ctx context.Context) ([]entity.AuditLog, error)

	CreateCalls int
}

func (m *mockAuditLogRepository) Create(ctx context.Context, log *entity.AuditLog) error {
	m.CreateCalls++
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, log)
	}
	return nil
}

func (m *mockAuditLogRepository) FindAll(ctx context.Context) ([]entity.AuditLog, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

// --- Stub DoctorLocker ---

type stubDoctorLocker struct {
	LockFunc func(ctx context.Context, doctorID uuid.UUID) (func(), error)

	LockCalls   int
	UnlockCalls int
}

func (s *stubDoctorLocker) Lock(ctx context.Context, doctorID uuid.UUID) (func(), error) {
	s.LockCalls++
	if s.LockFunc != nil {
		return s.LockFunc(ctx, doctorID)
	}
	return func() { s.UnlockCalls++ }, nil
}

// --- Stub AuditService ---

type stubAuditService struct {
	Actions []string
}

func (s *stubAuditService) LogCreate(ctx context.Context, action string, entityName string, entityID string, newValue interface{}) {
	s.Actions = append(s.Actions, action)
}

func (s *stubAuditService) LogUpdate(ctx context.Context, action string, entityName string, entityID string, oldValue, newValue interface{}) {
	s.Actions = append(s.Actions, action)
}
