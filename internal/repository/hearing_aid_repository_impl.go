package repository

import (
	"github.com/br70-Solution/voxia-app/internal/domain/entity"
	domainRepo "github.com/br70-Solution/voxia-app/internal/domain/repository"
)

type hearingAidRepository struct {
	crudRepository[entity.HearingAid]
}

func NewHearingAidRepository() domainRepo.HearingAidRepository {
	return &hearingAidRepository{crudRepository[entity.HearingAid]{order: "brand, model, id"}}
}
