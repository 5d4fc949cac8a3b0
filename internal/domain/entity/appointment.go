package entity

import (
	"time"

	"github.com/google/uuid"
)

// Appointment duration bounds in minutes
const (
	MinDurationMinutes = 15
	MaxDurationMinutes = 180
)

// Appointment represents a scheduled encounter between a patient and a
// doctor. The end time is never stored; it is always recomputed from
// start + duration.
type Appointment struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID       uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID        uuid.UUID `gorm:"type:uuid;not null;index" json:"doctor_id"`
	StartDatetime   time.Time `gorm:"not null;index" json:"start_datetime"`
	DurationMinutes int       `gorm:"not null" json:"duration_minutes"`
	Reason          string    `gorm:"type:varchar(500)" json:"reason,omitempty"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  Doctor  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// EndDatetime returns start + duration.
func (a *Appointment) EndDatetime() time.Time {
	return a.StartDatetime.Add(time.Duration(a.DurationMinutes) * time.Minute)
}

// Overlaps reports whether the half-open interval [start, end) overlaps
// this appointment's [start, end). Back-to-back appointments do not
// overlap: one ending exactly when the other starts is allowed.
func (a *Appointment) Overlaps(start, end time.Time) bool {
	return start.Before(a.EndDatetime()) && a.StartDatetime.Before(end)
}
