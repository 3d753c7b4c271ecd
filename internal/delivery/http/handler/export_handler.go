package handler

import (
	"errors"

	"resume-scorer/internal/delivery/http/middleware"
	"resume-scorer/internal/pkg/response"
	"resume-scorer/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ExportHandler struct {
	uc usecase.ExportUsecase
}

func NewExportHandler(uc usecase.ExportUsecase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

func (h *ExportHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/export", h.Export)
}

// Export turns a JSON array of analysis rows into a CSV download for
// spreadsheet and BI tools.
func (h *ExportHandler) Export(c fiber.Ctx) error {
	out, err := h.uc.ExportCSV(c.Body())
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Expected a non-empty JSON array of objects", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Attachment(c, usecase.ExportFilename, "text/csv; charset=utf-8", out)
}
