package usecase

import (
	"errors"

	"github.com/br70-Solution/voxia-app/internal/converter"
	"github.com/br70-Solution/voxia-app/internal/delivery/dto"
	"github.com/br70-Solution/voxia-app/internal/domain/entity"
	"github.com/br70-Solution/voxia-app/internal/domain/repository"
	"github.com/br70-Solution/voxia-app/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrAppointmentNotFound = errors.New("appointment not found")

type AppointmentUsecase interface {
	CrudUsecase[dto.CreateAppointmentRequest, dto.UpdateAppointmentRequest, dto.AppointmentResponse]
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	lists *service.ListCache,
) AppointmentUsecase {
	return &crudUsecase[entity.Appointment, dto.CreateAppointmentRequest, dto.UpdateAppointmentRequest, dto.AppointmentResponse]{
		db:          db,
		log:         log,
		repo:        appointmentRepo,
		lists:       lists,
		collection:  service.CollectionAppointments,
		notFound:    ErrAppointmentNotFound,
		newEntity:   converter.AppointmentRequestToEntity,
		apply:       converter.ApplyAppointmentUpdate,
		toResponse:  converter.AppointmentToResponse,
		toResponses: converter.AppointmentsToResponses,
	}
}
