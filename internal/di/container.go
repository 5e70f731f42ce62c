package di

import (
	"github.com/redis/go-redis/v9"

	"github.com/Kenji-One/tikd-api/internal/gateway"
	"github.com/Kenji-One/tikd-api/internal/handler"
	"github.com/Kenji-One/tikd-api/internal/repository"
	"github.com/Kenji-One/tikd-api/internal/service"
	"github.com/Kenji-One/tikd-api/internal/stream"
	"github.com/Kenji-One/tikd-api/internal/uploads"
	"github.com/Kenji-One/tikd-api/pkg/config"
	"github.com/Kenji-One/tikd-api/pkg/database"
)

// Container holds all dependencies for the API service
type Container struct {
	// Infrastructure
	DB        *database.PostgresDB
	Redis     *redis.Client
	Publisher stream.ViewPublisher

	// Repositories
	OrgRepo     repository.OrganizationRepository
	EventRepo   repository.EventRepository
	LinkRepo    repository.TrackingLinkRepository
	RevenueRepo repository.RevenueRepository
	CouponRepo  repository.CouponRepository
	ViewCounter repository.ViewCounter

	// Services
	OrgService       service.OrganizationService
	EventService     service.EventService
	LinkService      service.TrackingLinkService
	AnalyticsService service.AnalyticsService
	CheckoutService  service.CheckoutService

	// Handlers
	HealthHandler    *handler.HealthHandler
	OrgHandler       *handler.OrganizationHandler
	EventHandler     *handler.EventHandler
	LinkHandler      *handler.TrackingLinkHandler
	AnalyticsHandler *handler.AnalyticsHandler
	CheckoutHandler  *handler.CheckoutHandler
	UploadHandler    *handler.UploadHandler
}

// ContainerConfig contains configuration for building the container
type ContainerConfig struct {
	Config    *config.Config
	DB        *database.PostgresDB
	Redis     *redis.Client
	Publisher stream.ViewPublisher
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *ContainerConfig) *Container {
	c := &Container{
		DB:        cfg.DB,
		Redis:     cfg.Redis,
		Publisher: cfg.Publisher,
	}

	// Initialize repositories
	c.OrgRepo = repository.NewPostgresOrganizationRepository(cfg.DB.Pool)
	c.EventRepo = repository.NewPostgresEventRepository(cfg.DB.Pool)
	c.LinkRepo = repository.NewPostgresTrackingLinkRepository(cfg.DB.Pool)
	c.RevenueRepo = repository.NewPostgresRevenueRepository(cfg.DB.Pool)
	c.CouponRepo = repository.NewPostgresCouponRepository(cfg.DB.Pool)
	c.ViewCounter = repository.NewRedisViewCounter(cfg.Redis)

	// Initialize services
	c.OrgService = service.NewOrganizationService(c.OrgRepo)
	c.EventService = service.NewEventService(c.EventRepo)
	c.LinkService = service.NewTrackingLinkService(c.LinkRepo, c.ViewCounter, c.Publisher)
	c.AnalyticsService = service.NewAnalyticsService(c.OrgRepo, c.RevenueRepo)
	c.CheckoutService = service.NewCheckoutService(
		c.CouponRepo,
		gateway.NewStripeGateway(&cfg.Config.Stripe),
		&cfg.Config.Pricing,
	)

	// Initialize handlers
	c.HealthHandler = handler.NewHealthHandler(c.DB, c.Redis, cfg.Config.App.Version)
	c.OrgHandler = handler.NewOrganizationHandler(c.OrgService)
	c.EventHandler = handler.NewEventHandler(c.EventService)
	c.LinkHandler = handler.NewTrackingLinkHandler(c.LinkService)
	c.AnalyticsHandler = handler.NewAnalyticsHandler(c.AnalyticsService)
	c.CheckoutHandler = handler.NewCheckoutHandler(c.CheckoutService)
	c.UploadHandler = handler.NewUploadHandler(uploads.NewSigner(&cfg.Config.Cloudinary))

	return c
}
