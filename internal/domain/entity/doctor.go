package entity

import (
	"time"

	"github.com/google/uuid"
)

// Doctor represents a healthcare provider who can receive appointments.
// Deactivating a doctor blocks future scheduling only; existing
// appointments are untouched.
type Doctor struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	FullName       string    `gorm:"type:varchar(255);not null" json:"full_name"`
	Specialization string    `gorm:"type:varchar(255);not null" json:"specialization"`
	IsActive       *bool     `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Appointments []Appointment `gorm:"foreignKey:DoctorID" json:"appointments,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// Active reports whether the doctor is eligible for new appointments.
func (d *Doctor) Active() bool {
	return d.IsActive != nil && *d.IsActive
}
