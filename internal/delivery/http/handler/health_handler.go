package handler

import (
	"context"
	"time"

	"resume-scorer/internal/delivery/http/dto"
	"resume-scorer/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// Pinger is any dependency whose liveness the health check reports.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	jobProfiles func() int
	skills      int
	db          Pinger
	cache       Pinger
}

// NewHealthHandler reports catalog sizes and optional backends. A nil
// Pinger is reported as "disabled".
func NewHealthHandler(jobProfiles func() int, skills int, db, cache Pinger) *HealthHandler {
	return &HealthHandler{jobProfiles: jobProfiles, skills: skills, db: db, cache: cache}
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

	out := dto.HealthResponse{
		Status:  "ok",
		Skills:  h.skills,
		History: backendStatus(ctx, h.db),
		Cache:   backendStatus(ctx, h.cache),
	}
	if h.jobProfiles != nil {
		out.JobProfiles = h.jobProfiles()
	}
	if out.JobProfiles == 0 || out.History == "unavailable" || out.Cache == "unavailable" {
		out.Status = "degraded"
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func backendStatus(ctx context.Context, p Pinger) string {
	if p == nil {
		return "disabled"
	}
	if err := p.Ping(ctx); err != nil {
		return "unavailable"
	}
	return "ok"
}
