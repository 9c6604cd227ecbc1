package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"healthhub/config"
	"healthhub/database"
	"healthhub/handlers"
	"healthhub/middleware"
	"healthhub/routes"
	"healthhub/services/directory"
	"healthhub/services/guidance"
	"healthhub/services/notification"
	"healthhub/services/scheduling"
	"healthhub/services/telemedicine"
	"healthhub/services/user"
	"healthhub/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.FirebaseInit()

	loc, err := time.LoadLocation(config.AppConfig.FacilityTimezone)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid facility timezone %q: %v", config.AppConfig.FacilityTimezone, err)
	}

	// In-memory store seeded with the facility's demo data set.
	store := database.NewMemoryStore()
	store.Seed(loc)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// services.
	schedulingService := &scheduling.DefaultSchedulingService{
		Store: store,
		Loc:   loc,
	}

	var push notification.PushSender
	if utils.FCMClient != nil {
		push = notification.FCMPushSender{}
	}
	notificationService := &notification.DefaultNotificationService{
		Store: store,
		Push:  push,
	}

	directoryService := &directory.DefaultDirectoryService{Store: store}
	telemedicineService := &telemedicine.DefaultTelemedicineService{Store: store}
	userService := &user.DefaultUserService{Store: store}

	var guidanceService guidance.GuidanceService
	if config.AppConfig.GeminiAPIKey != "" {
		gen, err := guidance.NewGeminiClient(config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize gemini client: %v", err)
		}
		guidanceService = &guidance.DefaultGuidanceService{Gen: gen}
	} else {
		logger.Sugar().Warn("main: GEMINI_API_KEY not set; guidance endpoint will report unavailable")
		guidanceService = &guidance.DefaultGuidanceService{}
	}

	appointmentHandler := handlers.NewAppointmentHandler(schedulingService, logger)
	vaccineHandler := handlers.NewVaccineHandler(store, notificationService, logger)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	directoryHandler := handlers.NewDirectoryHandler(directoryService)
	telemedicineHandler := handlers.NewTelemedicineHandler(telemedicineService)
	userHandler := handlers.NewUserHandler(userService)
	guidanceHandler := handlers.NewGuidanceHandler(guidanceService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Directory endpoints.
		ListSpecialistsHandler: directoryHandler.ListSpecialistsHandler,
		GetSpecialistHandler:   directoryHandler.GetSpecialistHandler,
		ListHospitalsHandler:   directoryHandler.ListHospitalsHandler,
		GetHospitalHandler:     directoryHandler.GetHospitalHandler,

		// Scheduling endpoints.
		GetAvailableSlotsHandler: appointmentHandler.GetAvailableSlotsHandler,
		BookAppointmentHandler:   appointmentHandler.BookAppointmentHandler,
		ListAppointmentsHandler:  appointmentHandler.ListAppointmentsHandler,
		CancelAppointmentHandler: appointmentHandler.CancelAppointmentHandler,
		ToggleReminderHandler:    appointmentHandler.ToggleReminderHandler,

		// Vaccine endpoints.
		ListVaccinesHandler: vaccineHandler.ListVaccinesHandler,
		JoinWaitlistHandler: vaccineHandler.JoinWaitlistHandler,

		// Notification endpoints.
		ListNotificationsHandler: notificationHandler.ListNotificationsHandler,
		UnreadCountHandler:       notificationHandler.UnreadCountHandler,
		MarkReadHandler:          notificationHandler.MarkReadHandler,
		MarkAllReadHandler:       notificationHandler.MarkAllReadHandler,

		// Telemedicine endpoints.
		ListSessionsHandler:        telemedicineHandler.ListSessionsHandler,
		UpdateSessionStatusHandler: telemedicineHandler.UpdateSessionStatusHandler,

		// Profile & history endpoints.
		GetProfileHandler:     userHandler.GetProfileHandler,
		UpdateProfileHandler:  userHandler.UpdateProfileHandler,
		MedicalHistoryHandler: userHandler.MedicalHistoryHandler,
		TreatmentsHandler:     userHandler.TreatmentsHandler,

		// Guidance endpoint.
		GuidanceChatHandler: guidanceHandler.GuidanceChatHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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
