package v1

import (
	"jobmatch/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

// Register mounts the versioned API. Every route here requires a valid
// access token.
func Register(r fiber.Router, auth fiber.Handler, recommendations *handler.JobRecommendationHandler) {
	if r == nil || recommendations == nil {
		return
	}

	protected := r.Group("", auth)
	recommendations.RegisterRoutes(protected)
}
