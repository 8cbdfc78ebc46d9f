package repository

import (
	"github.com/br70-Solution/voxia-app/internal/domain/entity"
	domainRepo "github.com/br70-Solution/voxia-app/internal/domain/repository"
)

type appointmentRepository struct {
	crudRepository[entity.Appointment]
}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{crudRepository[entity.Appointment]{order: "date, id"}}
}
