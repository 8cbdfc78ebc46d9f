package usecase

import (
	"context"
	"errors"

	"github.com/br70-Solution/voxia-app/internal/analytics"
	"github.com/br70-Solution/voxia-app/internal/converter"
	"github.com/br70-Solution/voxia-app/internal/delivery/dto"
	"github.com/br70-Solution/voxia-app/internal/domain/entity"
	"github.com/br70-Solution/voxia-app/internal/domain/repository"
	"github.com/br70-Solution/voxia-app/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrPatientNotFound = errors.New("patient not found")

type PatientUsecase interface {
	CrudUsecase[dto.CreatePatientRequest, dto.UpdatePatientRequest, dto.PatientResponse]
	// Search matches first, last or full name, ignoring case.
	Search(ctx context.Context, term string) ([]dto.PatientResponse, error)
}

type patientUsecase struct {
	*crudUsecase[entity.Patient, dto.CreatePatientRequest, dto.UpdatePatientRequest, dto.PatientResponse]
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	lists *service.ListCache,
) PatientUsecase {
	return &patientUsecase{
		crudUsecase: &crudUsecase[entity.Patient, dto.CreatePatientRequest, dto.UpdatePatientRequest, dto.PatientResponse]{
			db:          db,
			log:         log,
			repo:        patientRepo,
			lists:       lists,
			collection:  service.CollectionPatients,
			notFound:    ErrPatientNotFound,
			newEntity:   converter.PatientRequestToEntity,
			apply:       converter.ApplyPatientUpdate,
			toResponse:  converter.PatientToResponse,
			toResponses: converter.PatientsToResponses,
			cascades: []string{
				service.CollectionAudiograms,
				service.CollectionPatientDevices,
				service.CollectionAppointments,
				service.CollectionInvoices,
			},
		},
	}
}

func (u *patientUsecase) Search(ctx context.Context, term string) ([]dto.PatientResponse, error) {
	patients, err := u.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.SearchPatients(patients, term), nil
}
