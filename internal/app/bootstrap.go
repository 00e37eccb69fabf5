package app

import (
	"context"
	"fmt"
	"strings"

	"jobmatch/internal/config"
	"jobmatch/internal/delivery/http/handler"
	"jobmatch/internal/delivery/http/middleware"
	"jobmatch/internal/delivery/http/routes"
	"jobmatch/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	registerGlobalMiddleware(f, c.Log)
	routes.NewRegistry(
		handler.NewHealthHandler(c.DB, c.Cache),
		handler.NewJobRecommendationHandler(c.Recommendations),
		middleware.NewAuthMiddleware(jwt.NewHMACService(c.Config.JWT.AccessSecret)),
		c.Metrics.Handler(),
	).Register(f)

	return &App{Fiber: f, Container: c}
}

// Bootstrap connects every dependency, runs migrations when enabled and
// builds the HTTP app. The returned cleanup releases the dependencies.
func Bootstrap(ctx context.Context, cfg config.Config, log *zap.Logger) (*App, func() error, error) {
	c, err := NewContainer(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}

	if cfg.Database.AutoMigrate {
		if err := c.Migrate(ctx); err != nil {
			_ = c.Close()
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
	}

	return New(c), c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, log *zap.Logger) {
	app.Use(middleware.NewAccessLogMiddleware(log).Middleware())
	app.Use(middleware.NewErrorMiddleware(log).Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
