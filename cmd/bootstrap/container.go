package bootstrap

import (
	"net/http"

	"github.com/br70-Solution/voxia-app/config"
	deliveryHttp "github.com/br70-Solution/voxia-app/internal/delivery/http"
	"github.com/br70-Solution/voxia-app/internal/delivery/http/handler"
	"github.com/br70-Solution/voxia-app/internal/delivery/http/middleware"
	"github.com/br70-Solution/voxia-app/internal/infrastructure/cache"
	"github.com/br70-Solution/voxia-app/internal/repository"
	"github.com/br70-Solution/voxia-app/internal/service"
	"github.com/br70-Solution/voxia-app/internal/usecase"
	"github.com/br70-Solution/voxia-app/pkg/jwt"
	"github.com/br70-Solution/voxia-app/pkg/validator"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Container holds the wired application layers.
type Container struct {
	Handler   http.Handler
	Seed      usecase.SeedUsecase
	Report    usecase.ReportUsecase
	StockItem usecase.StockItemUsecase
}

// NewContainer wires repositories, usecases, handlers and the router.
// listStore backs the list cache, sessionStore holds issued token ids.
func NewContainer(cfg *config.Config, db *gorm.DB, log *logrus.Logger, listStore, sessionStore cache.Cache) *Container {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	lists := service.NewListCache(listStore, cfg.Redis.CacheTTL, log)
	sessions := cache.NewSessionStore(sessionStore)

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	patientRepo := repository.NewPatientRepository()
	audiogramRepo := repository.NewAudiogramRepository()
	hearingAidRepo := repository.NewHearingAidRepository()
	patientDeviceRepo := repository.NewPatientDeviceRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	invoiceRepo := repository.NewInvoiceRepository()
	expenseRepo := repository.NewExpenseRepository()
	stockItemRepo := repository.NewStockItemRepository()

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, jwtService, sessions, lists)
	userUsecase := usecase.NewUserUsecase(db, log, userRepo, lists, cfg.Auth.BcryptCost)
	patientUsecase := usecase.NewPatientUsecase(db, log, patientRepo, lists)
	audiogramUsecase := usecase.NewAudiogramUsecase(db, log, audiogramRepo, lists)
	hearingAidUsecase := usecase.NewHearingAidUsecase(db, log, hearingAidRepo, lists)
	patientDeviceUsecase := usecase.NewPatientDeviceUsecase(db, log, patientDeviceRepo, lists)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, lists)
	invoiceUsecase := usecase.NewInvoiceUsecase(db, log, invoiceRepo, patientUsecase, lists)
	expenseUsecase := usecase.NewExpenseUsecase(db, log, expenseRepo, lists)
	stockItemUsecase := usecase.NewStockItemUsecase(db, log, stockItemRepo, lists)
	seedUsecase := usecase.NewSeedUsecase(
		db, log,
		userRepo, patientRepo, audiogramRepo, hearingAidRepo, patientDeviceRepo,
		appointmentRepo, invoiceRepo, expenseRepo, stockItemRepo,
		lists, cfg.Auth.BcryptCost,
	)
	reportUsecase := usecase.NewReportUsecase(
		log,
		userUsecase, patientUsecase, audiogramUsecase, hearingAidUsecase, patientDeviceUsecase,
		appointmentUsecase, invoiceUsecase, expenseUsecase, stockItemUsecase,
	)

	// Initialize handlers
	handlers := deliveryHttp.Handlers{
		Auth:          handler.NewAuthHandler(authUsecase, customValidator),
		User:          handler.NewUserHandler(userUsecase, customValidator),
		Patient:       handler.NewPatientHandler(patientUsecase, customValidator),
		Audiogram:     handler.NewAudiogramHandler(audiogramUsecase, customValidator),
		HearingAid:    handler.NewHearingAidHandler(hearingAidUsecase, customValidator),
		PatientDevice: handler.NewPatientDeviceHandler(patientDeviceUsecase, customValidator),
		Appointment:   handler.NewAppointmentHandler(appointmentUsecase, customValidator),
		Invoice:       handler.NewInvoiceHandler(invoiceUsecase, reportUsecase, customValidator),
		Expense:       handler.NewExpenseHandler(expenseUsecase, customValidator),
		StockItem:     handler.NewStockItemHandler(stockItemUsecase, customValidator),
		Seed:          handler.NewSeedHandler(seedUsecase),
		Report:        handler.NewReportHandler(reportUsecase),
	}

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, sessions, cfg.Auth.Enabled)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.CORSOrigin)

	// Initialize router
	router := deliveryHttp.NewRouter(log, handlers, authMiddleware, corsMiddleware)

	return &Container{
		Handler:   router.Setup(),
		Seed:      seedUsecase,
		Report:    reportUsecase,
		StockItem: stockItemUsecase,
	}
}
