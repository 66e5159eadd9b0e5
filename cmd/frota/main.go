package main

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/gstransportes/frota/internal/pkg/config"
	"github.com/gstransportes/frota/internal/pkg/database"
	"github.com/gstransportes/frota/internal/pkg/filestore"
	"github.com/gstransportes/frota/internal/pkg/health"
	"github.com/gstransportes/frota/internal/pkg/logger"
	"github.com/gstransportes/frota/internal/pkg/middleware"
	"github.com/gstransportes/frota/internal/utils"
	"github.com/labstack/echo/v4"

	natspkg "github.com/gstransportes/frota/internal/pkg/nats"
	wspkg "github.com/gstransportes/frota/internal/pkg/websocket"

	checklistHTTP "github.com/gstransportes/frota/services/checklists/handler/http"
	checklistRepo "github.com/gstransportes/frota/services/checklists/repository"
	checklistUC "github.com/gstransportes/frota/services/checklists/usecase"
	dashboardHTTP "github.com/gstransportes/frota/services/dashboard/handler/http"
	dashboardRepo "github.com/gstransportes/frota/services/dashboard/repository"
	dashboardUC "github.com/gstransportes/frota/services/dashboard/usecase"
	notificationGW "github.com/gstransportes/frota/services/notifications/gateway"
	notificationHTTP "github.com/gstransportes/frota/services/notifications/handler/http"
	notificationNATS "github.com/gstransportes/frota/services/notifications/handler/nats"
	notificationRepo "github.com/gstransportes/frota/services/notifications/repository"
	notificationUC "github.com/gstransportes/frota/services/notifications/usecase"
	occurrenceHTTP "github.com/gstransportes/frota/services/occurrences/handler/http"
	occurrenceRepo "github.com/gstransportes/frota/services/occurrences/repository"
	occurrenceUC "github.com/gstransportes/frota/services/occurrences/usecase"
	tireHTTP "github.com/gstransportes/frota/services/tires/handler/http"
	tireRepo "github.com/gstransportes/frota/services/tires/repository"
	tireUC "github.com/gstransportes/frota/services/tires/usecase"
	truckHTTP "github.com/gstransportes/frota/services/trucks/handler/http"
	truckRepo "github.com/gstransportes/frota/services/trucks/repository"
	truckUC "github.com/gstransportes/frota/services/trucks/usecase"
	userHTTP "github.com/gstransportes/frota/services/users/handler/http"
	userRepo "github.com/gstransportes/frota/services/users/repository"
	userUC "github.com/gstransportes/frota/services/users/usecase"
)

const appName = "frota"

func main() {
	configs := config.InitConfig(".env")

	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment))

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		logger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()
	db := postgresClient.GetDB()

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		logger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	store, err := filestore.NewLocalStore(configs.Uploads)
	if err != nil {
		logger.Fatal("Failed to initialize file store", logger.Err(err))
	}

	wsManager := wspkg.NewManager()

	// Repositories
	users := userRepo.NewUserRepo(db)
	trucks := truckRepo.NewTruckRepo(db)
	tires := tireRepo.NewTireRepo(db)
	checklists := checklistRepo.NewChecklistRepo(db)
	occurrences := occurrenceRepo.NewOccurrenceRepo(db)
	notifications := notificationRepo.NewNotificationRepo(db)
	dashboards := dashboardRepo.NewDashboardRepo(db)

	// Usecases
	notificationUsecase := notificationUC.NewNotificationUC(notifications, notificationGW.NewNotificationGW(natsClient))
	userUsecase := userUC.NewUserUC(configs.JWT, users)
	truckUsecase := truckUC.NewTruckUC(trucks)
	tireUsecase := tireUC.NewTireUC(tires)
	checklistUsecase := checklistUC.NewChecklistUC(checklists, notificationUsecase)
	occurrenceUsecase := occurrenceUC.NewOccurrenceUC(occurrences, notificationUsecase)
	dashboardUsecase := dashboardUC.NewDashboardUC(dashboards)

	// NATS consumer pushing persisted broadcasts to live connections
	consumer := notificationNATS.NewNatsHandler(natsClient, wsManager)
	if err := consumer.InitConsumers(); err != nil {
		logger.Fatal("Failed to initialize NATS consumers", logger.Err(err))
	}

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware())
	e.Use(logger.EchoMiddleware(zapLogger))

	healthService := health.NewHealthService()
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
	health.RegisterHealthEndpoints(e, appName, healthService)
	e.Static(configs.Uploads.BaseURL, store.Dir())

	userHandler := userHTTP.NewUserHandler(userUsecase)

	auth := e.Group("/auth", middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RedisClient: redisClient.GetClient(),
		Key:         "ratelimit:auth",
		Limit:       10,
		Period:      time.Minute,
	}))
	userHandler.RegisterAuthRoutes(auth)

	api := e.Group("", middleware.JWTAuthMiddleware(configs.JWT))
	userHandler.RegisterRoutes(api.Group("/users"))
	truckHTTP.NewTruckHandler(truckUsecase).RegisterRoutes(api.Group("/trucks"))
	tireHTTP.NewTireHandler(tireUsecase).RegisterRoutes(api.Group("/tires"))
	checklistHTTP.NewChecklistHandler(checklistUsecase, store).RegisterRoutes(api.Group("/checklists"))
	occurrenceHTTP.NewOccurrenceHandler(occurrenceUsecase, store).RegisterRoutes(api.Group("/occurrences"))
	notificationHTTP.NewNotificationHandler(notificationUsecase).RegisterRoutes(api.Group("/notifications"))
	dashboardHTTP.NewDashboardHandler(dashboardUsecase).RegisterRoutes(api.Group("/dashboard"))

	api.GET("/ws", func(c echo.Context) error {
		userID, ok := c.Get(middleware.ContextUserID).(uuid.UUID)
		if !ok {
			return utils.UnauthorizedResponse(c, "")
		}
		role, _ := c.Get(middleware.ContextRole).(string)
		return wsManager.HandleConnection(c, userID.String(), role)
	})

	logger.Info("Starting server",
		logger.String("app", appName),
		logger.Int("port", configs.Server.Port))

	if err := e.Start(fmt.Sprintf(":%d", configs.Server.Port)); err != nil {
		logger.Fatal("Failed to start server",
			logger.String("app", appName),
			logger.Err(err))
	}
}
