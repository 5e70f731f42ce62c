package di

import (
	"github.com/gin-gonic/gin"

	"github.com/Kenji-One/tikd-api/pkg/config"
	"github.com/Kenji-One/tikd-api/pkg/middleware"
)

// SetupRouter builds the gin engine with all middleware and routes
func (c *Container) SetupRouter(cfg *config.Config) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS())
	r.Use(middleware.JWT(&middleware.JWTConfig{
		Secret:       cfg.JWT.Secret,
		SkipPaths:    []string{"/health", "/ready"},
		SkipPrefixes: []string{"/t/"},
	}))

	// Public redirect
	r.GET("/t/:code", c.LinkHandler.Redirect)

	// Health
	r.GET("/health", c.HealthHandler.Health)
	r.GET("/ready", c.HealthHandler.Ready)

	v1 := r.Group("/api/v1")
	{
		orgs := v1.Group("/organizations")
		{
			orgs.GET("/:id", c.OrgHandler.GetByID)
			orgs.PATCH("/:id", c.OrgHandler.Update)
			orgs.GET("/:id/members", c.OrgHandler.ListMembers)
			orgs.GET("/:id/analytics/summary", c.AnalyticsHandler.Summary)
			orgs.GET("/:id/tracking-links/members", c.LinkHandler.MemberStats)
		}

		events := v1.Group("/events")
		{
			events.POST("", c.EventHandler.Create)
			events.GET("", c.EventHandler.List)
			events.GET("/:id", c.EventHandler.GetByID)
			events.PATCH("/:id", c.EventHandler.Update)
			events.POST("/:id/publish", c.EventHandler.Publish)
			events.POST("/:id/unpublish", c.EventHandler.Unpublish)
			events.DELETE("/:id", c.EventHandler.Delete)
		}

		links := v1.Group("/tracking-links")
		{
			links.POST("", c.LinkHandler.Create)
			links.GET("", c.LinkHandler.List)
		}

		v1.POST("/checkout/payment-intents", c.CheckoutHandler.CreatePaymentIntent)
		v1.GET("/uploads/sign", c.UploadHandler.Sign)
	}

	return r
}
