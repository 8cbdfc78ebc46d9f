package http

import (
	"net/http"

	"github.com/br70-Solution/voxia-app/internal/delivery/http/handler"
	"github.com/br70-Solution/voxia-app/internal/delivery/http/middleware"
	"github.com/br70-Solution/voxia-app/internal/service"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Auth          *handler.AuthHandler
	User          *handler.UserHandler
	Patient       *handler.PatientHandler
	Audiogram     *handler.AudiogramHandler
	HearingAid    *handler.HearingAidHandler
	PatientDevice *handler.PatientDeviceHandler
	Appointment   *handler.AppointmentHandler
	Invoice       *handler.InvoiceHandler
	Expense       *handler.ExpenseHandler
	StockItem     *handler.StockItemHandler
	Seed          *handler.SeedHandler
	Report        *handler.ReportHandler
}

type Router struct {
	router         *mux.Router
	log            *logrus.Logger
	handlers       Handlers
	authMiddleware *middleware.AuthMiddleware
	corsMiddleware *middleware.CORSMiddleware
}

func NewRouter(
	log *logrus.Logger,
	handlers Handlers,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:         mux.NewRouter(),
		log:            log,
		handlers:       handlers,
		authMiddleware: authMiddleware,
		corsMiddleware: corsMiddleware,
	}
}

type crudRoutes interface {
	GetAll(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

func registerCrud(r *mux.Router, collection string, h crudRoutes) {
	r.HandleFunc("/"+collection, h.GetAll).Methods(http.MethodGet)
	r.HandleFunc("/"+collection, h.Create).Methods(http.MethodPost)
	r.HandleFunc("/"+collection+"/{id}", h.GetByID).Methods(http.MethodGet)
	r.HandleFunc("/"+collection+"/{id}", h.Update).Methods(http.MethodPut)
	r.HandleFunc("/"+collection+"/{id}", h.Delete).Methods(http.MethodDelete)
}

func (r *Router) Setup() *mux.Router {
	r.router.Use(middleware.RequestID)
	r.router.Use(middleware.Logger(r.log))
	r.router.Use(r.corsMiddleware.Handle)

	api := r.router.PathPrefix("/api").Subrouter()

	// Preflight requests get their headers from the CORS middleware.
	api.PathPrefix("/").Methods(http.MethodOptions).HandlerFunc(func(w http.ResponseWriter, req *http.Request) {})

	// Public routes
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)
	api.HandleFunc("/login", r.handlers.Auth.Login).Methods(http.MethodPost)
	api.HandleFunc("/refresh-token", r.handlers.Auth.RefreshToken).Methods(http.MethodPost)

	protected := api.PathPrefix("").Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	protected.HandleFunc("/logout", r.handlers.Auth.Logout).Methods(http.MethodPost)
	protected.HandleFunc("/me", r.handlers.Auth.GetCurrentUser).Methods(http.MethodGet)

	// User management: creating and removing accounts is admin only,
	// UserHandler.Update checks ownership itself.
	users := r.handlers.User
	protected.HandleFunc("/users", users.GetAll).Methods(http.MethodGet)
	protected.Handle("/users", middleware.RequireAdminFunc(users.Create)).Methods(http.MethodPost)
	protected.HandleFunc("/users/{id}", users.GetByID).Methods(http.MethodGet)
	protected.HandleFunc("/users/{id}", users.Update).Methods(http.MethodPut)
	protected.Handle("/users/{id}", middleware.RequireAdminFunc(users.Delete)).Methods(http.MethodDelete)

	// Read models are registered before the /{id} routes they would shadow.
	protected.HandleFunc("/dashboard", r.handlers.Report.Dashboard).Methods(http.MethodGet)
	protected.HandleFunc("/statistics", r.handlers.Report.Statistics).Methods(http.MethodGet)
	protected.HandleFunc("/"+service.CollectionStockItems+"/summary", r.handlers.StockItem.Summary).Methods(http.MethodGet)
	protected.HandleFunc("/"+service.CollectionInvoices+"/summary", r.handlers.Invoice.Summary).Methods(http.MethodGet)
	protected.HandleFunc("/"+service.CollectionExpenses+"/summary", r.handlers.Expense.Summary).Methods(http.MethodGet)
	protected.HandleFunc("/"+service.CollectionInvoices+"/{id}/pdf", r.handlers.Invoice.PDF).Methods(http.MethodGet)
	protected.HandleFunc("/"+service.CollectionStockItems+"/{id}/restock", r.handlers.StockItem.Restock).Methods(http.MethodPost)

	registerCrud(protected, service.CollectionPatients, r.handlers.Patient)
	registerCrud(protected, service.CollectionAudiograms, r.handlers.Audiogram)
	registerCrud(protected, service.CollectionHearingAids, r.handlers.HearingAid)
	registerCrud(protected, service.CollectionPatientDevices, r.handlers.PatientDevice)
	registerCrud(protected, service.CollectionAppointments, r.handlers.Appointment)
	registerCrud(protected, service.CollectionInvoices, r.handlers.Invoice)
	registerCrud(protected, service.CollectionExpenses, r.handlers.Expense)
	registerCrud(protected, service.CollectionStockItems, r.handlers.StockItem)

	// Admin routes
	admin := api.PathPrefix("").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/seed", r.handlers.Seed.Seed).Methods(http.MethodPost)
	admin.HandleFunc("/export", r.handlers.Report.Export).Methods(http.MethodGet)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
