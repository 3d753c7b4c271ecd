package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"resume-scorer/internal/config"
	"resume-scorer/internal/delivery/http/handler"
	"resume-scorer/internal/delivery/http/middleware"
	"resume-scorer/internal/delivery/http/routes"
	"resume-scorer/internal/logger"
	"resume-scorer/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// multipartOverhead leaves room for form boundaries and headers on top of
// the largest accepted file.
const multipartOverhead = 64 << 10

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	cfg := c.Config
	f := fiber.New(fiber.Config{
		AppName:   cfg.App.AppName,
		BodyLimit: cfg.Analysis.MaxUploadBytes + multipartOverhead,
	})

	registerGlobalMiddleware(f)
	registerRoutes(f, c)

	return &App{Fiber: f, Container: c}
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	logger.Init(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	c, err := NewContainer(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	hubCtx, stopHub := context.WithCancel(context.Background())
	go c.Hub.Run(hubCtx)

	app := New(c)
	cleanup := func() error {
		stopHub()
		return c.Close()
	}
	return app, cleanup, nil
}

func registerGlobalMiddleware(app *fiber.App) {
	if app == nil {
		return
	}

	accessMw := middleware.NewAccessLogMiddleware(logger.Named("http"))
	errMw := middleware.NewErrorMiddleware(logger.Named("http"))
	app.Use(accessMw.Middleware())
	app.Use(errMw.Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil || c == nil {
		return
	}

	// Interfaces stay nil for disabled backends so health reports them as such.
	var db, redis handler.Pinger
	if c.DB != nil {
		db = c.DB
	}
	if c.Cache != nil {
		redis = c.Cache
	}
	health := handler.NewHealthHandler(func() int { return len(c.Catalog.Profiles()) }, c.Skills.Len(), db, redis)

	var auth *middleware.AuthMiddleware
	if c.JWT != nil {
		auth = middleware.NewAuthMiddleware(c.JWT)
	}

	routes.NewRegistry(routes.Handlers{
		Health:   health,
		Analysis: handler.NewAnalysisHandler(c.Analyses, int64(c.Config.Analysis.MaxUploadBytes)),
		Export:   handler.NewExportHandler(c.Export),
		WS:       ws.NewHandler(c.Hub, logger.Named("ws")),
		Auth:     auth,
	}).Register(app)
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
