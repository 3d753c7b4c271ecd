package handler

import (
	"errors"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"resume-scorer/internal/delivery/http/dto"
	"resume-scorer/internal/delivery/http/middleware"
	"resume-scorer/internal/domain/analysis"
	"resume-scorer/internal/domain/matching"
	"resume-scorer/internal/pipeline"
	"resume-scorer/internal/pkg/response"
	"resume-scorer/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const DefaultMaxUploadBytes = 10 << 20

type AnalysisHandler struct {
	uc        usecase.AnalysisUsecase
	maxUpload int64
}

func NewAnalysisHandler(uc usecase.AnalysisUsecase, maxUpload int64) *AnalysisHandler {
	if maxUpload <= 0 {
		maxUpload = DefaultMaxUploadBytes
	}
	return &AnalysisHandler{uc: uc, maxUpload: maxUpload}
}

// RegisterRoutes mounts the analysis endpoints. Uploads accept an optional
// token so stored results can be attributed; history requires one.
func (h *AnalysisHandler) RegisterRoutes(r fiber.Router, auth *middleware.AuthMiddleware) {
	if r == nil {
		return
	}

	r.Post("/analyses", auth.Optional(), h.Upload)
	r.Post("/analyses/text", auth.Optional(), h.AnalyzeText)
	r.Post("/analyses/batch", h.AnalyzeBatch)
	r.Get("/analyses", auth.Middleware(), h.List)
	r.Get("/analyses/:id", auth.Middleware(), h.Get)
}

func (h *AnalysisHandler) Upload(c fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "No file part", nil, err)
	}

	filename := sanitizeFilename(fh.Filename)
	if filename == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "No selected file", nil, nil)
	}
	if fh.Size > h.maxUpload {
		return middleware.NewAppError(fiber.StatusRequestEntityTooLarge, "File too large", nil, nil)
	}

	f, err := fh.Open()
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Unreadable file", nil, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, h.maxUpload+1))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Unreadable file", nil, err)
	}
	if int64(len(data)) > h.maxUpload {
		return middleware.NewAppError(fiber.StatusRequestEntityTooLarge, "File too large", nil, nil)
	}

	res, err := h.uc.AnalyzeFile(c.Context(), middleware.UserID(c), filename, data)
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyDocument) {
			return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Failed to extract text. Ensure file is valid PDF/DOCX.", nil, err)
		}
		return mapAnalysisUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, toAnalysisResponse(res))
}

func (h *AnalysisHandler) AnalyzeText(c fiber.Ctx) error {
	var req dto.AnalyzeTextRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if int64(len(req.Text)) > h.maxUpload {
		return middleware.NewAppError(fiber.StatusRequestEntityTooLarge, "Text too large", nil, nil)
	}

	res, err := h.uc.AnalyzeText(c.Context(), usecase.AnalyzeInput{
		UserID:   middleware.UserID(c),
		Filename: sanitizeFilename(req.Filename),
		Text:     req.Text,
	})
	if err != nil {
		return mapAnalysisUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, toAnalysisResponse(res))
}

func (h *AnalysisHandler) AnalyzeBatch(c fiber.Ctx) error {
	var req dto.AnalyzeBatchRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	items, err := h.uc.AnalyzeBatch(c.Context(), req.Texts)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			msg := "Batch must contain between 1 and " + strconv.Itoa(usecase.MaxBatchSize) + " texts"
			return middleware.NewAppError(fiber.StatusBadRequest, msg, nil, err)
		}
		return mapAnalysisUsecaseError(err)
	}

	out := make([]dto.BatchItemResponse, 0, len(items))
	for _, it := range items {
		item := dto.BatchItemResponse{Index: it.Index}
		if it.Err != nil {
			item.Error = batchErrorMessage(it.Err)
		} else {
			r := fromAnalysis(it.Analysis)
			item.Result = &r
		}
		out = append(out, item)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *AnalysisHandler) List(c fiber.Ctx) error {
	limit, err := parseQueryIntStrict(c, "limit", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	offset, err := parseQueryIntStrict(c, "offset", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	items, err := h.uc.ListAnalyses(c.Context(), middleware.UserID(c), limit, offset)
	if err != nil {
		return mapAnalysisUsecaseError(err)
	}

	out := make([]dto.AnalysisResponse, 0, len(items))
	for _, rec := range items {
		out = append(out, fromRecord(rec))
	}
	if limit == 0 {
		limit = len(out)
	}
	return response.List(c, out, response.Page{Limit: limit, Offset: offset, Count: len(out)})
}

func (h *AnalysisHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	rec, err := h.uc.GetAnalysis(c.Context(), middleware.UserID(c), id)
	if err != nil {
		return mapAnalysisUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, fromRecord(rec))
}

func parseQueryIntStrict(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return defaultVal, nil
	}
	return strconv.Atoi(s)
}

// sanitizeFilename keeps the base name and drops characters that are unsafe
// in a Content-Disposition header or a log line.
func sanitizeFilename(name string) string {
	name = strings.TrimSpace(strings.ReplaceAll(name, "\\", "/"))
	if name == "" {
		return ""
	}
	name = filepath.Base(name)
	if name == "." || name == "/" {
		return ""
	}
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f || r == '"' {
			return -1
		}
		return r
	}, name)
}

func toAnalysisResponse(res usecase.AnalysisResult) dto.AnalysisResponse {
	out := fromAnalysis(res.Analysis)
	if res.ID != uuid.Nil {
		out.ID = res.ID.String()
	}
	out.Filename = res.Filename
	out.Cached = res.Cached
	if !res.CreatedAt.IsZero() {
		out.CreatedAt = res.CreatedAt.UTC().Format(time.RFC3339)
	}
	return out
}

func fromAnalysis(a pipeline.Analysis) dto.AnalysisResponse {
	return dto.AnalysisResponse{
		Score:    a.Score,
		Skills:   nonNilStrings(a.Skills),
		Jobs:     fromJobMatches(a.Jobs),
		Feedback: nonNilStrings(a.Feedback),
	}
}

func fromRecord(rec analysis.Record) dto.AnalysisResponse {
	return dto.AnalysisResponse{
		ID:        rec.ID.String(),
		Filename:  rec.Filename,
		Score:     rec.Score,
		Skills:    nonNilStrings(rec.Skills),
		Jobs:      fromJobMatches(rec.Jobs),
		Feedback:  nonNilStrings(rec.Feedback),
		CreatedAt: rec.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func fromJobMatches(jobs []matching.JobMatch) []dto.JobMatchResponse {
	out := make([]dto.JobMatchResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, dto.JobMatchResponse{
			Role:           j.Role,
			MatchScore:     j.MatchScore,
			MatchingSkills: nonNilStrings(j.MatchingSkills),
			MissingSkills:  nonNilStrings(j.MissingSkills),
		})
	}
	return out
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func batchErrorMessage(err error) string {
	switch {
	case errors.Is(err, usecase.ErrEmptyDocument):
		return "empty document"
	default:
		return "not processed"
	}
}

func mapAnalysisUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrEmptyDocument):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Document is empty", nil, err)
	case errors.Is(err, usecase.ErrUnsupportedFile):
		return middleware.NewAppError(fiber.StatusUnsupportedMediaType, "Unsupported file type", nil, err)
	case errors.Is(err, usecase.ErrAnalysisNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Analysis not found", nil, err)
	case errors.Is(err, usecase.ErrHistoryUnavailable):
		return middleware.NewAppError(fiber.StatusServiceUnavailable, "History is not enabled", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
