package handler

import (
	"github.com/br70-Solution/voxia-app/internal/delivery/dto"
	"github.com/br70-Solution/voxia-app/internal/usecase"
	"github.com/br70-Solution/voxia-app/pkg/validator"
)

type PatientDeviceHandler struct {
	*crudHandler[dto.CreatePatientDeviceRequest, dto.UpdatePatientDeviceRequest, dto.PatientDeviceResponse]
}

func NewPatientDeviceHandler(patientDeviceUsecase usecase.PatientDeviceUsecase, validator *validator.CustomValidator) *PatientDeviceHandler {
	return &PatientDeviceHandler{
		crudHandler: &crudHandler[dto.CreatePatientDeviceRequest, dto.UpdatePatientDeviceRequest, dto.PatientDeviceResponse]{
			usecase:   patientDeviceUsecase,
			validator: validator,
			name:      "Patient device",
			plural:    "patient devices",
		},
	}
}
