package handler

import (
	"github.com/br70-Solution/voxia-app/internal/delivery/dto"
	"github.com/br70-Solution/voxia-app/internal/usecase"
	"github.com/br70-Solution/voxia-app/pkg/validator"
)

type AppointmentHandler struct {
	*crudHandler[dto.CreateAppointmentRequest, dto.UpdateAppointmentRequest, dto.AppointmentResponse]
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		crudHandler: &crudHandler[dto.CreateAppointmentRequest, dto.UpdateAppointmentRequest, dto.AppointmentResponse]{
			usecase:   appointmentUsecase,
			validator: validator,
			name:      "Appointment",
			plural:    "appointments",
		},
	}
}
