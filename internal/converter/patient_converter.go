package converter

import (
	"github.com/br70-Solution/voxia-app/internal/delivery/dto"
	"github.com/br70-Solution/voxia-app/internal/domain/entity"
)

func PatientRequestToEntity(req *dto.CreatePatientRequest) *entity.Patient {
	patient := &entity.Patient{
		ID:                  idOrNew(req.ID),
		FirstName:           req.FirstName,
		LastName:            req.LastName,
		Age:                 req.Age,
		DateOfBirth:         req.DateOfBirth,
		Gender:              req.Gender,
		Phone:               req.Phone,
		Email:               req.Email,
		Address:             req.Address,
		MedicalHistory:      req.MedicalHistory,
		AudiologicalHistory: req.AudiologicalHistory,
		CreatedAt:           req.CreatedAt,
		LastVisit:           req.LastVisit,
	}
	if patient.CreatedAt == "" {
		patient.CreatedAt = entity.Now()
	}
	return patient
}

func ApplyPatientUpdate(patient *entity.Patient, req *dto.UpdatePatientRequest) {
	set(&patient.FirstName, req.FirstName)
	set(&patient.LastName, req.LastName)
	set(&patient.Age, req.Age)
	set(&patient.DateOfBirth, req.DateOfBirth)
	set(&patient.Gender, req.Gender)
	set(&patient.Phone, req.Phone)
	set(&patient.Email, req.Email)
	set(&patient.Address, req.Address)
	set(&patient.MedicalHistory, req.MedicalHistory)
	set(&patient.AudiologicalHistory, req.AudiologicalHistory)
	set(&patient.CreatedAt, req.CreatedAt)
	set(&patient.LastVisit, req.LastVisit)
}

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:                  patient.ID,
		FirstName:           patient.FirstName,
		LastName:            patient.LastName,
		Age:                 patient.Age,
		DateOfBirth:         patient.DateOfBirth,
		Gender:              patient.Gender,
		Phone:               patient.Phone,
		Email:               patient.Email,
		Address:             patient.Address,
		MedicalHistory:      patient.MedicalHistory,
		AudiologicalHistory: patient.AudiologicalHistory,
		CreatedAt:           patient.CreatedAt,
		LastVisit:           patient.LastVisit,
	}
}

func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i])
	}
	return responses
}
