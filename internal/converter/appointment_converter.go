package converter

import (
	"github.com/br70-Solution/voxia-app/internal/delivery/dto"
	"github.com/br70-Solution/voxia-app/internal/domain/entity"
)

func AppointmentRequestToEntity(req *dto.CreateAppointmentRequest) *entity.Appointment {
	return &entity.Appointment{
		ID:        idOrNew(req.ID),
		PatientID: req.PatientID,
		Date:      req.Date,
		Duration:  req.Duration,
		Type:      req.Type,
		Status:    req.Status,
		Notes:     req.Notes,
	}
}

func ApplyAppointmentUpdate(appointment *entity.Appointment, req *dto.UpdateAppointmentRequest) {
	set(&appointment.PatientID, req.PatientID)
	set(&appointment.Date, req.Date)
	set(&appointment.Duration, req.Duration)
	set(&appointment.Type, req.Type)
	set(&appointment.Status, req.Status)
	set(&appointment.Notes, req.Notes)
}

func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:        appointment.ID,
		PatientID: appointment.PatientID,
		Date:      appointment.Date,
		Duration:  appointment.Duration,
		Type:      appointment.Type,
		Status:    appointment.Status,
		Notes:     appointment.Notes,
	}
}

func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
