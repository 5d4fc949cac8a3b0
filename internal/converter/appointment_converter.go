package converter

import (
	"clinic-appointment-service/internal/delivery/dto"
	"clinic-appointment-service/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse
// DTO. The end datetime is recomputed from start + duration; it is never
// stored.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:              appointment.ID,
		PatientID:       appointment.PatientID,
		DoctorID:        appointment.DoctorID,
		StartDatetime:   appointment.StartDatetime,
		DurationMinutes: appointment.DurationMinutes,
		EndDatetime:     appointment.EndDatetime(),
		Reason:          appointment.Reason,
		CreatedAt:       appointment.CreatedAt,
	}
}

// AppointmentsToResponses converts a slice of Appointment entities to slice
// of AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
