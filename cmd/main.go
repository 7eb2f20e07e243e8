package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	approveAppointmentHandler "github.com/kerem-haeger/PetGroom-BookingService/internal/api/handlers/approve_appointment"
	bookAppointmentHandler "github.com/kerem-haeger/PetGroom-BookingService/internal/api/handlers/book_appointment"
	cancelAppointmentHandler "github.com/kerem-haeger/PetGroom-BookingService/internal/api/handlers/cancel_appointment"
	cancelPetAppointmentsHandler "github.com/kerem-haeger/PetGroom-BookingService/internal/api/handlers/cancel_pet_appointments"
	editAppointmentHandler "github.com/kerem-haeger/PetGroom-BookingService/internal/api/handlers/edit_appointment"
	getAppointmentHandler "github.com/kerem-haeger/PetGroom-BookingService/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/kerem-haeger/PetGroom-BookingService/internal/api/handlers/get_available_slots"
	getClientAppointmentsHandler "github.com/kerem-haeger/PetGroom-BookingService/internal/api/handlers/get_client_appointments"
	getPendingAppointmentsHandler "github.com/kerem-haeger/PetGroom-BookingService/internal/api/handlers/get_pending_appointments"
	getScheduleHandler "github.com/kerem-haeger/PetGroom-BookingService/internal/api/handlers/get_schedule"
	getServicesHandler "github.com/kerem-haeger/PetGroom-BookingService/internal/api/handlers/get_services"
	manageServicesHandler "github.com/kerem-haeger/PetGroom-BookingService/internal/api/handlers/manage_services"
	reassignAppointmentHandler "github.com/kerem-haeger/PetGroom-BookingService/internal/api/handlers/reassign_appointment"
	rejectAppointmentHandler "github.com/kerem-haeger/PetGroom-BookingService/internal/api/handlers/reject_appointment"
	timeOffHandler "github.com/kerem-haeger/PetGroom-BookingService/internal/api/handlers/time_off"
	"github.com/kerem-haeger/PetGroom-BookingService/internal/api/middleware"
	"github.com/kerem-haeger/PetGroom-BookingService/internal/audit"
	"github.com/kerem-haeger/PetGroom-BookingService/internal/config"
	appointmentRepo "github.com/kerem-haeger/PetGroom-BookingService/internal/infra/storage/appointment"
	calendarRepo "github.com/kerem-haeger/PetGroom-BookingService/internal/infra/storage/calendar"
	catalogRepo "github.com/kerem-haeger/PetGroom-BookingService/internal/infra/storage/catalog"
	timeoffRepo "github.com/kerem-haeger/PetGroom-BookingService/internal/infra/storage/timeoff"
	voucherRepo "github.com/kerem-haeger/PetGroom-BookingService/internal/infra/storage/voucher"
	identityServiceClient "github.com/kerem-haeger/PetGroom-BookingService/internal/integrations/identityservice"
	petServiceClient "github.com/kerem-haeger/PetGroom-BookingService/internal/integrations/petservice"
	"github.com/kerem-haeger/PetGroom-BookingService/internal/jobs"
	appointmentsService "github.com/kerem-haeger/PetGroom-BookingService/internal/service/appointments"
	catalogService "github.com/kerem-haeger/PetGroom-BookingService/internal/service/catalog"
	timeoffService "github.com/kerem-haeger/PetGroom-BookingService/internal/service/timeoff"
	approveAppointmentUC "github.com/kerem-haeger/PetGroom-BookingService/internal/usecase/approve_appointment"
	bookAppointmentUC "github.com/kerem-haeger/PetGroom-BookingService/internal/usecase/book_appointment"
	cancelAppointmentUC "github.com/kerem-haeger/PetGroom-BookingService/internal/usecase/cancel_appointment"
	cancelPetAppointmentsUC "github.com/kerem-haeger/PetGroom-BookingService/internal/usecase/cancel_pet_appointments"
	editAppointmentUC "github.com/kerem-haeger/PetGroom-BookingService/internal/usecase/edit_appointment"
	getAvailableSlotsUC "github.com/kerem-haeger/PetGroom-BookingService/internal/usecase/get_available_slots"
	reassignAppointmentUC "github.com/kerem-haeger/PetGroom-BookingService/internal/usecase/reassign_appointment"
	rejectAppointmentUC "github.com/kerem-haeger/PetGroom-BookingService/internal/usecase/reject_appointment"
	"github.com/kerem-haeger/PetGroom-BookingService/pkg/dbmetrics"
	"github.com/kerem-haeger/PetGroom-BookingService/pkg/logger"
	"github.com/kerem-haeger/PetGroom-BookingService/pkg/metrics"
	"github.com/kerem-haeger/PetGroom-BookingService/pkg/simpletxmanager"
	"github.com/kerem-haeger/PetGroom-BookingService/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting PetGroom-BookingService...")
	log.Info("Configuration loaded from config.toml")

	location, err := cfg.Business.Location()
	if err != nil {
		log.Fatal("Failed to resolve business timezone: %v", err)
	}
	log.Info("Business timezone: %s", location)

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	identityClient := identityServiceClient.NewClient(
		cfg.IdentityService.URL,
		time.Duration(cfg.IdentityService.Timeout)*time.Second,
		log,
	)
	petClient := petServiceClient.NewClient(
		cfg.PetService.URL,
		time.Duration(cfg.PetService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (IdentityService=%s timeout=%ds, PetService=%s timeout=%ds)",
		cfg.IdentityService.URL, cfg.IdentityService.Timeout, cfg.PetService.URL, cfg.PetService.Timeout)

	var (
		appointmentRepository *appointmentRepo.Repository
		calendarRepository    *calendarRepo.Repository
		catalogRepository     *catalogRepo.Repository
		timeOffRepository     *timeoffRepo.Repository
		voucherRepository     *voucherRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		calendarRepository = calendarRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		timeOffRepository = timeoffRepo.NewRepository(wrappedDB)
		voucherRepository = voucherRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		calendarRepository = calendarRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		timeOffRepository = timeoffRepo.NewRepository(db)
		voucherRepository = voucherRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Audit trail. A nil publisher silently drops events, so disabled audit
	// needs no branching downstream.
	var events *audit.Publisher
	if cfg.Audit.Enabled {
		events = audit.NewPublisher(strings.Split(cfg.Audit.Brokers, ","), cfg.Audit.Topic, log)
		defer events.Close()
		log.Info("Audit publisher initialized (brokers=%s, topic=%s)", cfg.Audit.Brokers, cfg.Audit.Topic)
	}

	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		calendarRepository,
		identityClient,
		log,
	)
	catalogSvc := catalogService.NewService(
		catalogRepository,
		identityClient,
		log,
	)
	timeOffSvc := timeoffService.NewService(
		timeOffRepository,
		identityClient,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		catalogRepository,
		calendarRepository,
		timeOffRepository,
		identityClient,
		log,
	)
	bookAppointmentUseCase := bookAppointmentUC.NewUseCase(
		appointmentRepository,
		catalogRepository,
		calendarRepository,
		timeOffRepository,
		voucherRepository,
		petClient,
		identityClient,
		txMgr,
		events,
		log,
	)
	approveAppointmentUseCase := approveAppointmentUC.NewUseCase(
		appointmentRepository,
		calendarRepository,
		timeOffRepository,
		identityClient,
		txMgr,
		events,
		log,
	)
	rejectAppointmentUseCase := rejectAppointmentUC.NewUseCase(
		appointmentRepository,
		identityClient,
		txMgr,
		events,
		log,
	)
	reassignAppointmentUseCase := reassignAppointmentUC.NewUseCase(
		appointmentRepository,
		calendarRepository,
		timeOffRepository,
		identityClient,
		txMgr,
		events,
		log,
	)
	editAppointmentUseCase := editAppointmentUC.NewUseCase(
		appointmentRepository,
		catalogRepository,
		calendarRepository,
		timeOffRepository,
		petClient,
		identityClient,
		txMgr,
		events,
		log,
	)
	cancelAppointmentUseCase := cancelAppointmentUC.NewUseCase(
		appointmentRepository,
		calendarRepository,
		identityClient,
		txMgr,
		events,
		log,
	)
	cancelPetAppointmentsUseCase := cancelPetAppointmentsUC.NewUseCase(
		appointmentRepository,
		calendarRepository,
		txMgr,
		events,
		log,
	)

	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, location, log)
	bookAppointment := bookAppointmentHandler.NewHandler(bookAppointmentUseCase, log)
	approveAppointment := approveAppointmentHandler.NewHandler(approveAppointmentUseCase, log)
	rejectAppointment := rejectAppointmentHandler.NewHandler(rejectAppointmentUseCase, log)
	reassignAppointment := reassignAppointmentHandler.NewHandler(reassignAppointmentUseCase, log)
	editAppointment := editAppointmentHandler.NewHandler(editAppointmentUseCase, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(cancelAppointmentUseCase, log)
	cancelPetAppointments := cancelPetAppointmentsHandler.NewHandler(cancelPetAppointmentsUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	getClientAppointments := getClientAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getPendingAppointments := getPendingAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getSchedule := getScheduleHandler.NewHandler(appointmentsSvc, location, log)
	getServices := getServicesHandler.NewHandler(catalogSvc, log)
	manageServices := manageServicesHandler.NewHandler(catalogSvc, log)
	timeOff := timeOffHandler.NewHandler(timeOffSvc, log)

	// Background sweep: approved appointments whose end time has passed
	// become completed.
	sweeper := jobs.NewCompletionSweeper(appointmentRepository, cfg.Jobs.CompletionSchedule, log)
	sweeper.Start()
	log.Info("Completion sweeper started (schedule=%q)", cfg.Jobs.CompletionSchedule)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (no authentication)
	// ============================================================

	// Catalog reads
	api.HandleFunc("/services", getServices.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId}", getServices.HandleGet).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId}/price", getServices.HandlePrice).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId}/prices", getServices.HandlePrices).Methods(http.MethodGet)

	// Availability
	api.HandleFunc("/services/{serviceId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId}/available-slots/range",
		getAvailableSlots.HandleRange).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (require X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Appointments ---
	protected.HandleFunc("/appointments", bookAppointment.Handle).Methods(http.MethodPost)

	// Registered before the {appointmentId} route so "pending" is not
	// swallowed as an id.
	protected.HandleFunc("/appointments/pending", getPendingAppointments.Handle).Methods(http.MethodGet)

	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}/overlapping", getAppointment.HandleOverlapping).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}", editAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{appointmentId}/approve", approveAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{appointmentId}/reject", rejectAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{appointmentId}/reassign", reassignAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPost)

	// --- Client history ---
	protected.HandleFunc("/users/{userId}/appointments", getClientAppointments.Handle).Methods(http.MethodGet)

	// --- Staff schedule ---
	protected.HandleFunc("/schedule", getSchedule.Handle).Methods(http.MethodGet)

	// --- Catalog administration (managers) ---
	protected.HandleFunc("/services", manageServices.HandleCreate).Methods(http.MethodPost)
	protected.HandleFunc("/services/{serviceId}", manageServices.HandleUpdate).Methods(http.MethodPut)
	protected.HandleFunc("/services/{serviceId}/active", manageServices.HandleSetActive).Methods(http.MethodPatch)
	protected.HandleFunc("/services/{serviceId}/prices", manageServices.HandleSetPrice).Methods(http.MethodPut)

	// --- Time off ---
	protected.HandleFunc("/time-off", timeOff.HandleCreate).Methods(http.MethodPost)
	protected.HandleFunc("/time-off/{requestId}/decide", timeOff.HandleDecide).Methods(http.MethodPost)

	// ============================================================
	// INTERNAL ROUTES (service-to-service)
	// ============================================================

	internal := r.PathPrefix("/internal/v1").Subrouter()
	internal.Use(middleware.Auth)
	internal.HandleFunc("/pets/{petId}/cancel-appointments", cancelPetAppointments.Handle).Methods(http.MethodPost)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	sweeper.Stop()
	log.Info("Completion sweeper stopped")

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
