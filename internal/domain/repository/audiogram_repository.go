package repository

import "github.com/br70-Solution/voxia-app/internal/domain/entity"

type AudiogramRepository interface {
	CrudRepository[entity.Audiogram]
}
