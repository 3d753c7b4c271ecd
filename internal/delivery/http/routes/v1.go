package routes

import (
	"resume-scorer/internal/delivery/http/handler"
	"resume-scorer/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

func RegisterV1(r fiber.Router, analysis *handler.AnalysisHandler, export *handler.ExportHandler, auth *middleware.AuthMiddleware) {
	if r == nil {
		return
	}

	if analysis != nil {
		analysis.RegisterRoutes(r, auth)
	}
	if export != nil {
		export.RegisterRoutes(r)
	}
}
