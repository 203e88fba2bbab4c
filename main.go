package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"reservas/config"
	"reservas/cron"
	"reservas/database"
	deletionRepoPkg "reservas/database/repository/deletion"
	notificationRepoPkg "reservas/database/repository/notification"
	reservationRepoPkg "reservas/database/repository/reservation"
	scheduleRepoPkg "reservas/database/repository/schedule"
	spaceRepoPkg "reservas/database/repository/space"
	userRepoPkg "reservas/database/repository/user"
	"reservas/handlers"
	"reservas/routes"
	"reservas/services/chatbot"
	"reservas/services/email"
	"reservas/services/notification"
	"reservas/services/reservation"
	"reservas/services/schedule"
	"reservas/services/scheduling"
	"reservas/services/space"
	"reservas/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitChatContextCache()
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetChatContextClient()},
		database.MongoClient,
	)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	spaceRepo := spaceRepoPkg.NewMongoSpaceRepo()
	reservationRepo := reservationRepoPkg.NewMongoReservationRepo()
	scheduleRepo := scheduleRepoPkg.NewMongoScheduleRepo()
	notificationRepo := notificationRepoPkg.NewMongoNotificationRepo()
	deletionRepo := deletionRepoPkg.NewMongoDeletionRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	// the conflict engine everything else validates against.
	engine := &scheduling.Engine{
		Reservations: reservationRepo,
		Schedules:    scheduleRepo,
		Logger:       logger,
	}

	// services.
	notificationService := notification.NewDefaultNotificationService(notificationRepo, logger)
	mailer := email.NewLogSender(logger)

	spaceService := &space.DefaultSpaceService{
		Repo:   spaceRepo,
		Logger: logger,
	}

	reservationService := &reservation.DefaultReservationService{
		Repo:      reservationRepo,
		Spaces:    spaceRepo,
		Users:     userRepo,
		Deletions: deletionRepo,
		Engine:    engine,
		Notifier:  notificationService,
		Mailer:    mailer,
		Logger:    logger,
	}

	scheduleService := &schedule.DefaultScheduleService{
		Repo:   scheduleRepo,
		Spaces: spaceRepo,
		Logger: logger,
	}

	// NLU extractor is optional: without an API key the chatbot runs on the
	// rule-based resolver alone.
	var extractor chatbot.SlotExtractor
	if key := config.AppConfig.GeminiAPIKey; key != "" {
		nluTimeout := time.Duration(config.AppConfig.NLUTimeoutSeconds) * time.Second
		g, err := chatbot.NewGeminiExtractor(key, nluTimeout)
		if err != nil {
			logger.Sugar().Warnf("main: NLU extractor unavailable, using rules only: %v", err)
		} else {
			extractor = g
		}
	}

	resolver := &chatbot.HybridResolver{
		Extractor:     extractor,
		MinConfidence: config.AppConfig.NLUMinConfidence,
		Logger:        logger,
	}

	chatService := &chatbot.Service{
		Spaces:   spaceRepo,
		Engine:   engine,
		Resolver: resolver,
		DayStart: config.AppConfig.DayStart,
		DayEnd:   config.AppConfig.DayEnd,
		Logger:   logger,
	}

	ctxStore := chatbot.NewRedisContextStore(
		utils.GetChatContextClient(),
		time.Duration(config.AppConfig.ChatContextTTLMinutes)*time.Minute,
		logger,
	)

	// Background reminder worker.
	cron.InitReminderWorker(reservationService)
	sweepEnqueuer := cron.NewSweepEnqueuer()

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Chatbot endpoints.
		ChatHandler:      handlers.ChatHandler(chatService, ctxStore, logger),
		ChatResetHandler: handlers.ChatResetHandler(ctxStore),

		// Space endpoints.
		ListSpacesHandler:     handlers.ListSpacesHandler(spaceService),
		GetSpaceHandler:       handlers.GetSpaceHandler(spaceService),
		SpacesByFloorHandler:  handlers.SpacesByFloorHandler(spaceService),
		SpaceOccupancyHandler: handlers.SpaceOccupancyHandler(spaceService, engine, config.AppConfig.DayStart, config.AppConfig.DayEnd),
		CreateSpaceHandler:    handlers.CreateSpaceHandler(spaceService),

		// Reservation endpoints.
		CreateReservationHandler:   handlers.CreateReservationHandler(reservationService),
		MyReservationsHandler:      handlers.MyReservationsHandler(reservationService),
		GetReservationHandler:      handlers.GetReservationHandler(reservationService),
		UpdateReservationHandler:   handlers.UpdateReservationHandler(reservationService),
		CancelReservationHandler:   handlers.CancelReservationHandler(reservationService),
		PendingReservationsHandler: handlers.PendingReservationsHandler(reservationService),
		AllReservationsHandler:     handlers.AllReservationsHandler(reservationService),
		ApproveReservationHandler:  handlers.ApproveReservationHandler(reservationService),
		RejectReservationHandler:   handlers.RejectReservationHandler(reservationService),
		DeleteReservationHandler:   handlers.DeleteReservationHandler(reservationService),
		RunRemindersHandler:        handlers.RunRemindersHandler(sweepEnqueuer),

		// Class schedule endpoints.
		ListSchedulesHandler:  handlers.ListSchedulesHandler(scheduleService),
		CreateScheduleHandler: handlers.CreateScheduleHandler(scheduleService),
		UpdateScheduleHandler: handlers.UpdateScheduleHandler(scheduleService),
		DeleteScheduleHandler: handlers.DeleteScheduleHandler(scheduleService),

		// Notification endpoints.
		MyNotificationsHandler:      handlers.MyNotificationsHandler(notificationService),
		MarkNotificationReadHandler: handlers.MarkNotificationReadHandler(notificationService),
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
