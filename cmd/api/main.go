package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/estate-cms/internal/api/http"
	"github.com/spec-kit/estate-cms/internal/api/http/handlers"
	"github.com/spec-kit/estate-cms/internal/auth"
	"github.com/spec-kit/estate-cms/internal/config"
	"github.com/spec-kit/estate-cms/internal/events"
	"github.com/spec-kit/estate-cms/internal/observability"
	"github.com/spec-kit/estate-cms/internal/persistence"
	"github.com/spec-kit/estate-cms/internal/ratelimit"
	"github.com/spec-kit/estate-cms/internal/repository"
	"github.com/spec-kit/estate-cms/internal/service"
	"github.com/spec-kit/estate-cms/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	projectRepo := repository.NewProjectRepository(pool)
	blogRepo := repository.NewBlogRepository(pool)
	leadRepo := repository.NewLeadRepository(pool)
	testimonialRepo := repository.NewTestimonialRepository(pool)
	amenityRepo := repository.NewAmenityRepository(pool)

	dispatcher := events.NewInMemoryDispatcher(logger)

	authService := service.NewAuthService(*cfg, userRepo)
	userService := service.NewUserService(userRepo, cfg.Auth.BcryptCost)
	projectService := service.NewProjectService(projectRepo, amenityRepo)
	blogService := service.NewBlogService(blogRepo)
	leadService := service.NewLeadService(leadRepo, projectRepo, dispatcher)
	testimonialService := service.NewTestimonialService(testimonialRepo, dispatcher)
	amenityService := service.NewAmenityService(amenityRepo)
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)

	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewMiddleware(authService.TokenManager(), cfg.Auth.CookieName)

	var limiterStore ratelimit.Store
	if cfg.RateLimit.Backend == "redis" {
		limiterStore = ratelimit.NewRedisStore(redis.Client)
	} else {
		limiterStore = ratelimit.NewMemoryStore(cfg.RateLimit.CleanupInterval())
	}
	leadLimiter := ratelimit.Middleware(limiterStore, ratelimit.Limit{
		Max:    cfg.RateLimit.LeadMaxHits,
		Window: cfg.RateLimit.LeadWindow(),
	}, logger)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService, *cfg),
		Projects:       handlers.NewProjectsHandler(projectService),
		Blogs:          handlers.NewBlogsHandler(blogService),
		Leads:          handlers.NewLeadsHandler(leadService),
		Testimonials:   handlers.NewTestimonialsHandler(testimonialService),
		Amenities:      handlers.NewAmenitiesHandler(amenityService),
		Users:          handlers.NewUsersHandler(userService),
		Stats:          handlers.NewStatsHandler(metrics),
		AuthMiddleware: authMiddleware,
		LeadLimiter:    leadLimiter,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
