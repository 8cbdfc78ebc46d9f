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

var ErrPatientDeviceNotFound = errors.New("patient device not found")

type PatientDeviceUsecase interface {
	CrudUsecase[dto.CreatePatientDeviceRequest, dto.UpdatePatientDeviceRequest, dto.PatientDeviceResponse]
}

func NewPatientDeviceUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientDeviceRepo repository.PatientDeviceRepository,
	lists *service.ListCache,
) PatientDeviceUsecase {
	return &crudUsecase[entity.PatientDevice, dto.CreatePatientDeviceRequest, dto.UpdatePatientDeviceRequest, dto.PatientDeviceResponse]{
		db:          db,
		log:         log,
		repo:        patientDeviceRepo,
		lists:       lists,
		collection:  service.CollectionPatientDevices,
		notFound:    ErrPatientDeviceNotFound,
		newEntity:   converter.PatientDeviceRequestToEntity,
		apply:       converter.ApplyPatientDeviceUpdate,
		toResponse:  converter.PatientDeviceToResponse,
		toResponses: converter.PatientDevicesToResponses,
	}
}
