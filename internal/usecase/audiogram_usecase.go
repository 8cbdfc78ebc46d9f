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

var ErrAudiogramNotFound = errors.New("audiogram not found")

type AudiogramUsecase interface {
	CrudUsecase[dto.CreateAudiogramRequest, dto.UpdateAudiogramRequest, dto.AudiogramResponse]
}

func NewAudiogramUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	audiogramRepo repository.AudiogramRepository,
	lists *service.ListCache,
) AudiogramUsecase {
	return &crudUsecase[entity.Audiogram, dto.CreateAudiogramRequest, dto.UpdateAudiogramRequest, dto.AudiogramResponse]{
		db:          db,
		log:         log,
		repo:        audiogramRepo,
		lists:       lists,
		collection:  service.CollectionAudiograms,
		notFound:    ErrAudiogramNotFound,
		newEntity:   converter.AudiogramRequestToEntity,
		apply:       converter.ApplyAudiogramUpdate,
		toResponse:  converter.AudiogramToResponse,
		toResponses: converter.AudiogramsToResponses,
	}
}
