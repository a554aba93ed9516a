// File: concierge/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"concierge/config"
	"concierge/cron"
	"concierge/database"
	appointmentRepo "concierge/database/repository/appointment"
	noteRepo "concierge/database/repository/note"
	scheduleRepo "concierge/database/repository/schedule"
	"concierge/handlers"
	"concierge/middleware"
	"concierge/routes"
	"concierge/services/concierge"
	"concierge/services/scheduling"
	"concierge/services/tasks"
	"concierge/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/spf13/viper"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()
	if err := apptRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure appointment indexes: %v", err)
	}
	schedRepo := scheduleRepo.NewMongoScheduleRepo()
	notesRepo := noteRepo.NewMongoNoteRepo()

	// services.
	schedulingService := &scheduling.DefaultSchedulingService{
		Repo:         apptRepo,
		ScheduleRepo: schedRepo,
		CutoffHours:  config.AppConfig.SlotCutoffHours,
		Reminders:    tasks.NewReminderScheduler(),
	}
	cron.InitReminderWorker(cron.LogNotifier{})

	memoryStore := concierge.NewRedisMemoryStore(utils.GetMemoryClient())
	ctxStore := concierge.NewRedisContextStore(utils.GetChatContextClient(), 30*time.Minute)

	dispatcher := &concierge.Dispatcher{
		Notes:           &concierge.MongoNoteSink{Repo: notesRepo},
		Nav:             concierge.LogNavigator{},
		Memories:        memoryStore,
		Handoff:         concierge.LogHandoff{},
		NavigationDelay: 2 * time.Second,
	}

	geminiClient, err := concierge.NewGeminiClient(
		config.AppConfig.GeminiAPIKey,
		config.AppConfig.GeminiModel,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize Gemini client: %v", err)
	}

	content := &concierge.StaticSiteContent{
		OfficeInfo:   config.AppConfig.OfficeInfo,
		ProjectList:  viper.GetStringSlice("PROJECTS"),
		CulturalList: viper.GetStringSlice("CULTURAL_PROJECTS"),
	}

	conciergeService := concierge.NewDefaultConciergeService(
		geminiClient,
		ctxStore,
		memoryStore,
		content,
		dispatcher,
		time.Duration(config.AppConfig.ModelTimeoutSeconds)*time.Second,
	)

	// handlers.
	handlerBundle := &routes.HandlerBundle{
		Chat:        handlers.NewChatHandler(conciergeService),
		Appointment: handlers.NewAppointmentHandler(schedulingService),
		Schedule:    handlers.NewScheduleHandler(schedulingService),
	}

	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetChatContextClient(), utils.GetMemoryClient()},
		database.MongoClient,
	)

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
