package repository

import (
	"github.com/br70-Solution/voxia-app/internal/domain/entity"
	domainRepo "github.com/br70-Solution/voxia-app/internal/domain/repository"
)

type patientDeviceRepository struct {
	crudRepository[entity.PatientDevice]
}

func NewPatientDeviceRepository() domainRepo.PatientDeviceRepository {
	return &patientDeviceRepository{crudRepository[entity.PatientDevice]{order: "date_installed, id"}}
}
