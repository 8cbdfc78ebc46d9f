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

var ErrHearingAidNotFound = errors.New("hearing aid not found")

type HearingAidUsecase interface {
	CrudUsecase[dto.CreateHearingAidRequest, dto.UpdateHearingAidRequest, dto.HearingAidResponse]
}

// NewHearingAidUsecase manages the device catalog. Removing a model also
// removes the fittings that used it.
func NewHearingAidUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	hearingAidRepo repository.HearingAidRepository,
	lists *service.ListCache,
) HearingAidUsecase {
	return &crudUsecase[entity.HearingAid, dto.CreateHearingAidRequest, dto.UpdateHearingAidRequest, dto.HearingAidResponse]{
		db:          db,
		log:         log,
		repo:        hearingAidRepo,
		lists:       lists,
		collection:  service.CollectionHearingAids,
		notFound:    ErrHearingAidNotFound,
		newEntity:   converter.HearingAidRequestToEntity,
		apply:       converter.ApplyHearingAidUpdate,
		toResponse:  converter.HearingAidToResponse,
		toResponses: converter.HearingAidsToResponses,
		cascades:    []string{service.CollectionPatientDevices},
	}
}
