package handler

import (
	"context"
	"time"

	"jobmatch/internal/delivery/http/dto"
	"jobmatch/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// OptionalPinger is a dependency that may have been switched off at startup.
type OptionalPinger interface {
	Pinger
	Enabled() bool
}

const (
	stateUp       = "up"
	stateDown     = "down"
	stateDisabled = "disabled"
)

// HealthHandler reports database and cache reachability. Only a database
// failure makes the service unhealthy; the cache is optional.
type HealthHandler struct {
	db    Pinger
	cache Pinger
}

func NewHealthHandler(db, cache Pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	out := dto.HealthResponse{Database: stateDown, Cache: stateDisabled}
	if h.db != nil && h.db.Ping(ctx) == nil {
		out.Database = stateUp
	}
	if cacheEnabled(h.cache) {
		out.Cache = stateUp
		if h.cache.Ping(ctx) != nil {
			out.Cache = stateDown
		}
	}

	if out.Database != stateUp {
		return response.Error(c, fiber.StatusServiceUnavailable, response.MessageServiceUnavailable, out)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func cacheEnabled(p Pinger) bool {
	if p == nil {
		return false
	}
	if o, ok := p.(OptionalPinger); ok {
		return o.Enabled()
	}
	return true
}
