package repository

import (
	"github.com/br70-Solution/voxia-app/internal/domain/entity"
	domainRepo "github.com/br70-Solution/voxia-app/internal/domain/repository"
)

type audiogramRepository struct {
	crudRepository[entity.Audiogram]
}

func NewAudiogramRepository() domainRepo.AudiogramRepository {
	return &audiogramRepository{crudRepository[entity.Audiogram]{order: "date, id"}}
}
