package repository

import (
	"github.com/br70-Solution/voxia-app/internal/domain/entity"
	domainRepo "github.com/br70-Solution/voxia-app/internal/domain/repository"
)

type patientRepository struct {
	crudRepository[entity.Patient]
}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{crudRepository[entity.Patient]{order: "created_at, id"}}
}
