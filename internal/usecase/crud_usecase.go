package usecase

import (
	"context"

	"github.com/br70-Solution/voxia-app/internal/domain/repository"
	"github.com/br70-Solution/voxia-app/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// CrudUsecase is the operation set every collection exposes over the API.
// C is the create request, U the partial update request and R the response.
type CrudUsecase[C any, U any, R any] interface {
	Create(ctx context.Context, req *C) (*R, error)
	GetAll(ctx context.Context) ([]R, error)
	GetByID(ctx context.Context, id string) (*R, error)
	Update(ctx context.Context, id string, req *U) (*R, error)
	Delete(ctx context.Context, id string) error
}

// crudUsecase implements CrudUsecase for entity E. Entity usecases embed it
// and supply the conversions.
type crudUsecase[E any, C any, U any, R any] struct {
	db          *gorm.DB
	log         *logrus.Logger
	repo        repository.CrudRepository[E]
	lists       *service.ListCache
	collection  string
	notFound    error
	newEntity   func(*C) *E
	apply       func(*E, *U)
	toResponse  func(*E) *R
	toResponses func([]E) []R
	// cascades lists the collections losing rows when a record is deleted.
	cascades []string
}

func (u *crudUsecase[E, C, U, R]) Create(ctx context.Context, req *C) (*R, error) {
	return u.save(ctx, u.newEntity(req))
}

// save creates the record or replaces the one with the same id.
func (u *crudUsecase[E, C, U, R]) save(ctx context.Context, record *E) (*R, error) {
	if err := u.repo.Upsert(u.db.WithContext(ctx), record); err != nil {
		u.log.Warnf("Failed to save %s record: %+v", u.collection, err)
		return nil, translateError(err)
	}

	u.lists.Invalidate(ctx, u.collection)
	return u.toResponse(record), nil
}

func (u *crudUsecase[E, C, U, R]) GetAll(ctx context.Context) ([]R, error) {
	return service.CachedList(ctx, u.lists, u.collection, func() ([]R, error) {
		records, err := u.repo.FindAll(u.db.WithContext(ctx))
		if err != nil {
			u.log.Warnf("Failed to find %s: %+v", u.collection, err)
			return nil, err
		}
		return u.toResponses(records), nil
	})
}

func (u *crudUsecase[E, C, U, R]) GetByID(ctx context.Context, id string) (*R, error) {
	record, err := u.repo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find %s record %s: %+v", u.collection, id, err)
		return nil, err
	}
	if record == nil {
		return nil, u.notFound
	}

	return u.toResponse(record), nil
}

func (u *crudUsecase[E, C, U, R]) Update(ctx context.Context, id string, req *U) (*R, error) {
	return u.update(ctx, id, func(record *E) error {
		u.apply(record, req)
		return nil
	})
}

// update loads the record, lets mutate change it and stores the result.
// Fields mutate leaves alone keep their stored value.
func (u *crudUsecase[E, C, U, R]) update(ctx context.Context, id string, mutate func(*E) error) (*R, error) {
	db := u.db.WithContext(ctx)

	record, err := u.repo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find %s record %s: %+v", u.collection, id, err)
		return nil, err
	}
	if record == nil {
		return nil, u.notFound
	}

	if err := mutate(record); err != nil {
		return nil, err
	}

	if err := u.repo.Update(db, record); err != nil {
		u.log.Warnf("Failed to update %s record %s: %+v", u.collection, id, err)
		return nil, translateError(err)
	}

	u.lists.Invalidate(ctx, u.collection)
	return u.toResponse(record), nil
}

func (u *crudUsecase[E, C, U, R]) Delete(ctx context.Context, id string) error {
	affected, err := u.repo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete %s record %s: %+v", u.collection, id, err)
		return translateError(err)
	}
	if affected == 0 {
		return u.notFound
	}

	u.lists.Invalidate(ctx, append([]string{u.collection}, u.cascades...)...)
	return nil
}
