// File: clinicore/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinicore/config"
	"clinicore/cron"
	"clinicore/database"
	appointmentRepo "clinicore/database/repository/appointment"
	availabilityRepo "clinicore/database/repository/availability"
	consultationRepo "clinicore/database/repository/consultation"
	doctorRepo "clinicore/database/repository/doctor"
	patientRepo "clinicore/database/repository/patient"
	schedulerRepo "clinicore/database/repository/scheduler"
	userRepoPkg "clinicore/database/repository/user"
	"clinicore/handlers"
	"clinicore/middleware"
	"clinicore/routes"
	"clinicore/services/consultation"
	"clinicore/services/report"
	"clinicore/services/scheduling"
	"clinicore/services/user"
	"clinicore/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	availRepo := availabilityRepo.NewMongoAvailabilityRepo()
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()
	schedRepo := schedulerRepo.NewMongoSchedulerRepo()
	docRepo := doctorRepo.NewMongoDoctorRepo()
	patRepo := patientRepo.NewMongoPatientRepo()
	usrRepo := userRepoPkg.NewMongoUserRepo()
	consRepo := consultationRepo.NewMongoConsultationRepo()

	for name, ensure := range map[string]func() error{
		"availabilities": availRepo.EnsureIndexes,
		"appointments":   apptRepo.EnsureIndexes,
		"doctors":        docRepo.EnsureIndexes,
		"patients":       patRepo.EnsureIndexes,
		"users":          usrRepo.EnsureIndexes,
		"consultations":  consRepo.EnsureIndexes,
	} {
		if err := ensure(); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure %s indexes: %v", name, err)
		}
	}

	// payment gateway.
	var gateway scheduling.PaymentGateway
	if config.AppConfig.PaymentMode == "stripe" {
		gateway = scheduling.NewStripeGateway(logger)
	} else {
		gateway = scheduling.NewSimulatedGateway(logger)
	}

	// reminder queue.
	reminderClient := cron.NewReminderClient(logger)
	defer reminderClient.Close()
	cron.InitReminderWorker(logger)

	// services.
	schedulingService := &scheduling.DefaultSchedulingService{
		Slots:        availRepo,
		Appointments: apptRepo,
		Scheduler:    schedRepo,
		Doctors:      docRepo,
		Gateway:      gateway,
		Cache:        utils.GetCacheClient(),
		Reminders:    reminderClient,
	}

	userService := &user.DefaultUserService{
		Repo:     usrRepo,
		Patients: patRepo,
		Doctors:  docRepo,
	}

	consultationService := &consultation.DefaultConsultationService{
		Repo:         consRepo,
		Appointments: apptRepo,
	}

	reportService := &report.DefaultReportService{
		Appointments: apptRepo,
	}

	// handlers.
	appointmentHandler := handlers.NewAppointmentHandler(schedulingService, logger)
	authHandler := handlers.NewAuthHandler(userService)
	doctorHandler := handlers.NewDoctorHandler(schedulingService, docRepo, logger)
	consultationHandler := handlers.NewConsultationHandler(consultationService, docRepo, logger)
	adminHandler := handlers.NewAdminHandler(reportService, userService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		RegisterHandler:               authHandler.RegisterHandler,
		LoginHandler:                  authHandler.LoginHandler,
		RegisterPatientProfileHandler: authHandler.RegisterPatientProfileHandler,
		RegisterDoctorProfileHandler:  authHandler.RegisterDoctorProfileHandler,

		ListSpecialtiesHandler:   appointmentHandler.ListSpecialtiesHandler,
		ListDoctorsHandler:       appointmentHandler.ListDoctorsHandler,
		ListSlotsHandler:         appointmentHandler.ListSlotsHandler,
		HoldSlotHandler:          appointmentHandler.HoldSlotHandler,
		CreateAppointmentHandler: appointmentHandler.CreateAppointmentHandler,
		PayAppointmentHandler:    appointmentHandler.PayAppointmentHandler,

		SeedAvailabilitiesHandler: doctorHandler.SeedAvailabilitiesHandler,

		RecordConsultationHandler: consultationHandler.RecordConsultationHandler,
		GetConsultationHandler:    consultationHandler.GetConsultationHandler,

		AppointmentReportHandler: adminHandler.AppointmentReportHandler,
		ListPatientsHandler:      adminHandler.ListPatientsHandler,
		ListDoctorsAdminHandler:  adminHandler.ListDoctorsHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
