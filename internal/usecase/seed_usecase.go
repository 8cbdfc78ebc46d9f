package usecase

import (
	"context"

	"github.com/br70-Solution/voxia-app/internal/converter"
	"github.com/br70-Solution/voxia-app/internal/delivery/dto"
	"github.com/br70-Solution/voxia-app/internal/domain/entity"
	"github.com/br70-Solution/voxia-app/internal/domain/repository"
	"github.com/br70-Solution/voxia-app/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// DefaultSeedPassword is given to seeded users that carry no password.
const DefaultSeedPassword = "password"

type SeedUsecase interface {
	// Seed replaces, in one transaction, every table whose group is present
	// in req. Deleting patients or hearing aids cascades to their children.
	Seed(ctx context.Context, req *dto.SeedRequest) (*dto.SeedResponse, error)
	// SeedIfEmpty seeds only when no user exists yet and reports whether it did.
	SeedIfEmpty(ctx context.Context, req *dto.SeedRequest) (bool, error)
}

type seedUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	userRepo          repository.UserRepository
	patientRepo       repository.PatientRepository
	audiogramRepo     repository.AudiogramRepository
	hearingAidRepo    repository.HearingAidRepository
	patientDeviceRepo repository.PatientDeviceRepository
	appointmentRepo   repository.AppointmentRepository
	invoiceRepo       repository.InvoiceRepository
	expenseRepo       repository.ExpenseRepository
	stockItemRepo     repository.StockItemRepository
	lists             *service.ListCache
	bcryptCost        int
}

func NewSeedUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	patientRepo repository.PatientRepository,
	audiogramRepo repository.AudiogramRepository,
	hearingAidRepo repository.HearingAidRepository,
	patientDeviceRepo repository.PatientDeviceRepository,
	appointmentRepo repository.AppointmentRepository,
	invoiceRepo repository.InvoiceRepository,
	expenseRepo repository.ExpenseRepository,
	stockItemRepo repository.StockItemRepository,
	lists *service.ListCache,
	bcryptCost int,
) SeedUsecase {
	return &seedUsecase{
		db:                db,
		log:               log,
		userRepo:          userRepo,
		patientRepo:       patientRepo,
		audiogramRepo:     audiogramRepo,
		hearingAidRepo:    hearingAidRepo,
		patientDeviceRepo: patientDeviceRepo,
		appointmentRepo:   appointmentRepo,
		invoiceRepo:       invoiceRepo,
		expenseRepo:       expenseRepo,
		stockItemRepo:     stockItemRepo,
		lists:             lists,
		bcryptCost:        bcryptCost,
	}
}

// seedStep clears one table and inserts its new rows.
type seedStep struct {
	collection string
	run        func(tx *gorm.DB) (int, error)
}

func replaceStep[C any, E any](collection string, repo repository.CrudRepository[E], reqs []C, convert func(*C) (*E, error)) seedStep {
	return seedStep{
		collection: collection,
		run: func(tx *gorm.DB) (int, error) {
			records := make([]E, 0, len(reqs))
			for i := range reqs {
				record, err := convert(&reqs[i])
				if err != nil {
					return 0, err
				}
				records = append(records, *record)
			}

			if err := repo.DeleteAll(tx); err != nil {
				return 0, err
			}
			if err := repo.CreateInBatches(tx, records); err != nil {
				return 0, err
			}
			return len(records), nil
		},
	}
}

func infallible[C any, E any](convert func(*C) *E) func(*C) (*E, error) {
	return func(req *C) (*E, error) {
		return convert(req), nil
	}
}

func (u *seedUsecase) seedUser(req *dto.CreateUserRequest) (*entity.User, error) {
	user := converter.UserRequestToEntity(req)
	password := req.Password
	if password == "" {
		password = DefaultSeedPassword
	}

	hashed, err := hashPassword(password, u.bcryptCost)
	if err != nil {
		return nil, err
	}
	user.Password = hashed
	return user, nil
}

// steps returns the present groups, parents before children.
func (u *seedUsecase) steps(req *dto.SeedRequest) []seedStep {
	var steps []seedStep
	if req.Users != nil {
		steps = append(steps, replaceStep[dto.CreateUserRequest, entity.User](service.CollectionUsers, u.userRepo, req.Users, u.seedUser))
	}
	if req.Patients != nil {
		steps = append(steps, replaceStep[dto.CreatePatientRequest, entity.Patient](service.CollectionPatients, u.patientRepo, req.Patients, infallible(converter.PatientRequestToEntity)))
	}
	if req.HearingAids != nil {
		steps = append(steps, replaceStep[dto.CreateHearingAidRequest, entity.HearingAid](service.CollectionHearingAids, u.hearingAidRepo, req.HearingAids, infallible(converter.HearingAidRequestToEntity)))
	}
	if req.Audiograms != nil {
		steps = append(steps, replaceStep[dto.CreateAudiogramRequest, entity.Audiogram](service.CollectionAudiograms, u.audiogramRepo, req.Audiograms, infallible(converter.AudiogramRequestToEntity)))
	}
	if req.PatientDevices != nil {
		steps = append(steps, replaceStep[dto.CreatePatientDeviceRequest, entity.PatientDevice](service.CollectionPatientDevices, u.patientDeviceRepo, req.PatientDevices, infallible(converter.PatientDeviceRequestToEntity)))
	}
	if req.Appointments != nil {
		steps = append(steps, replaceStep[dto.CreateAppointmentRequest, entity.Appointment](service.CollectionAppointments, u.appointmentRepo, req.Appointments, infallible(converter.AppointmentRequestToEntity)))
	}
	if req.Invoices != nil {
		steps = append(steps, replaceStep[dto.CreateInvoiceRequest, entity.Invoice](service.CollectionInvoices, u.invoiceRepo, req.Invoices, infallible(converter.InvoiceRequestToEntity)))
	}
	if req.Expenses != nil {
		steps = append(steps, replaceStep[dto.CreateExpenseRequest, entity.Expense](service.CollectionExpenses, u.expenseRepo, req.Expenses, infallible(converter.ExpenseRequestToEntity)))
	}
	if req.StockItems != nil {
		steps = append(steps, replaceStep[dto.CreateStockItemRequest, entity.StockItem](service.CollectionStockItems, u.stockItemRepo, req.StockItems, infallible(converter.StockItemRequestToEntity)))
	}
	return steps
}

func (u *seedUsecase) Seed(ctx context.Context, req *dto.SeedRequest) (*dto.SeedResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	replaced := make(map[string]int)
	for _, step := range u.steps(req) {
		count, err := step.run(tx)
		if err != nil {
			u.log.Warnf("Failed to seed %s: %+v", step.collection, err)
			return nil, translateError(err)
		}
		replaced[step.collection] = count
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	// Cascades may have emptied collections that were not in the request.
	u.lists.Invalidate(ctx, service.AllCollections...)

	return &dto.SeedResponse{Replaced: replaced}, nil
}

func (u *seedUsecase) SeedIfEmpty(ctx context.Context, req *dto.SeedRequest) (bool, error) {
	count, err := u.userRepo.Count(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to count users: %+v", err)
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	if _, err := u.Seed(ctx, req); err != nil {
		return false, err
	}
	return true, nil
}
