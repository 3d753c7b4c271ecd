package routes

import (
	"resume-scorer/internal/delivery/http/handler"
	"resume-scorer/internal/delivery/http/middleware"
	"resume-scorer/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health   *handler.HealthHandler
	analysis *handler.AnalysisHandler
	export   *handler.ExportHandler
	ws       *ws.Handler
	auth     *middleware.AuthMiddleware
}

type Handlers struct {
	Health   *handler.HealthHandler
	Analysis *handler.AnalysisHandler
	Export   *handler.ExportHandler
	WS       *ws.Handler
	Auth     *middleware.AuthMiddleware
}

func NewRegistry(h Handlers) *Registry {
	return &Registry{
		health:   h.Health,
		analysis: h.Analysis,
		export:   h.Export,
		ws:       h.WS,
		auth:     h.Auth,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerWS(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	if r.health != nil {
		r.health.RegisterRoutes(app)
	}
}

func (r *Registry) registerWS(app *fiber.App) {
	if r.ws != nil {
		r.ws.RegisterRoutes(app)
	}
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.analysis, r.export, r.auth)
}
