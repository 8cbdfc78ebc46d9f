package handler

import (
	"github.com/br70-Solution/voxia-app/internal/delivery/dto"
	"github.com/br70-Solution/voxia-app/internal/usecase"
	"github.com/br70-Solution/voxia-app/pkg/validator"
)

type PatientHandler struct {
	*crudHandler[dto.CreatePatientRequest, dto.UpdatePatientRequest, dto.PatientResponse]
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		crudHandler: &crudHandler[dto.CreatePatientRequest, dto.UpdatePatientRequest, dto.PatientResponse]{
			usecase:   patientUsecase,
			validator: validator,
			name:      "Patient",
			plural:    "patients",
			search:    patientUsecase.Search,
		},
	}
}
