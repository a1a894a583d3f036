package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"doctors-portal-server/config"
	deliveryHttp "doctors-portal-server/internal/delivery/http"
	"doctors-portal-server/internal/delivery/http/handler"
	"doctors-portal-server/internal/delivery/http/middleware"
	"doctors-portal-server/internal/infrastructure/cache"
	"doctors-portal-server/internal/infrastructure/database"
	"doctors-portal-server/internal/infrastructure/payment"
	"doctors-portal-server/internal/repository"
	"doctors-portal-server/internal/service"
	"doctors-portal-server/internal/usecase"
	"doctors-portal-server/pkg/jwt"
	"doctors-portal-server/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	MongoClient *mongo.Client
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	setupLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	client, db, err := database.NewMongoConnection(cfg.Mongo)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	app.MongoClient = client

	indexCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := database.EnsureIndexes(indexCtx, db); err != nil {
		return nil, fmt.Errorf("failed to ensure indexes: %w", err)
	}
	logrus.Info("Database indexes ensured")

	// Redis is optional: without it the catalog cache is simply disabled.
	if cfg.Redis.Host != "" {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = redisClient
	} else {
		logrus.Warn("Redis not configured, catalog cache disabled")
	}

	app.Server = initializeServer(cfg, db, app.RedisClient)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *mongo.Database, redisClient *redis.Client) *http.Server {
	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()
	log := logrus.StandardLogger()

	// Repositories
	serviceRepo := repository.NewServiceRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	userRepo := repository.NewUserRepository(db)
	doctorRepo := repository.NewDoctorRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	contactRepo := repository.NewContactRepository(db)

	// External collaborators
	stripeClient := payment.NewStripeClient(cfg.Stripe, log)
	notifier := service.NewNotificationService(cfg.SMTP, log)
	catalogCache := service.NewCatalogCacheService(serviceRepo, redisClient, log)

	// Usecases
	catalogUsecase := usecase.NewCatalogUsecase(log, serviceRepo, bookingRepo, catalogCache)
	bookingUsecase := usecase.NewBookingUsecase(log, bookingRepo, paymentRepo, notifier)
	userUsecase := usecase.NewUserUsecase(log, userRepo, jwtService)
	doctorUsecase := usecase.NewDoctorUsecase(log, doctorRepo)
	paymentUsecase := usecase.NewPaymentUsecase(log, stripeClient, cfg.Stripe.Currency)
	contactUsecase := usecase.NewContactUsecase(log, contactRepo)

	// Handlers
	catalogHandler := handler.NewCatalogHandler(catalogUsecase)
	bookingHandler := handler.NewBookingHandler(bookingUsecase, customValidator)
	userHandler := handler.NewUserHandler(userUsecase)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, customValidator)
	paymentHandler := handler.NewPaymentHandler(paymentUsecase)
	contactHandler := handler.NewContactHandler(contactUsecase, customValidator)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService)
	roleMiddleware := middleware.NewRoleMiddleware(userUsecase)
	corsMiddleware := middleware.NewCORSMiddleware()

	router := deliveryHttp.NewRouter(
		catalogHandler,
		bookingHandler,
		userHandler,
		doctorHandler,
		paymentHandler,
		contactHandler,
		authMiddleware,
		roleMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close(ctx)

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close(ctx context.Context) {
	if app.MongoClient != nil {
		if err := app.MongoClient.Disconnect(ctx); err != nil {
			logrus.Errorf("Failed to disconnect from MongoDB: %v", err)
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
