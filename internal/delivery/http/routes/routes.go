package routes

import (
	"net/http"

	"jobmatch/internal/delivery/http/handler"
	"jobmatch/internal/delivery/http/middleware"
	v1 "jobmatch/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
)

type Registry struct {
	health          *handler.HealthHandler
	recommendations *handler.JobRecommendationHandler
	auth            *middleware.AuthMiddleware
	metrics         http.Handler
}

func NewRegistry(health *handler.HealthHandler, recommendations *handler.JobRecommendationHandler, auth *middleware.AuthMiddleware, metrics http.Handler) *Registry {
	return &Registry{health: health, recommendations: recommendations, auth: auth, metrics: metrics}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	if r.health != nil {
		r.health.RegisterRoutes(app)
	}
	if r.metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(r.metrics))
	}

	api := app.Group("/api")
	v1.Register(api.Group("/v1"), r.auth.Middleware(), r.recommendations)
}
