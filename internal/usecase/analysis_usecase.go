package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"resume-scorer/internal/domain/analysis"
	"resume-scorer/internal/infrastructure/docparse"
	"resume-scorer/internal/pipeline"
	"resume-scorer/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
	MaxBatchSize        = 50
)

type AnalyzeInput struct {
	UserID   uuid.UUID
	Filename string
	Text     string
}

// AnalysisResult is a pipeline run plus its history identity. ID is uuid.Nil
// when the result was not stored.
type AnalysisResult struct {
	ID        uuid.UUID
	Filename  string
	CreatedAt time.Time
	Cached    bool
	Analysis  pipeline.Analysis
}

type BatchItem struct {
	Index    int
	Analysis pipeline.Analysis
	Err      error
}

// AnalysisNotifier is told about every completed single-document analysis.
type AnalysisNotifier interface {
	AnalysisCompleted(id uuid.UUID, filename string, score int)
}

type AnalysisUsecase interface {
	AnalyzeText(ctx context.Context, in AnalyzeInput) (AnalysisResult, error)
	AnalyzeFile(ctx context.Context, userID uuid.UUID, filename string, data []byte) (AnalysisResult, error)
	AnalyzeBatch(ctx context.Context, texts []string) ([]BatchItem, error)
	ListAnalyses(ctx context.Context, userID uuid.UUID, limit, offset int) ([]analysis.Record, error)
	GetAnalysis(ctx context.Context, userID, id uuid.UUID) (analysis.Record, error)
}

type AnalysisService struct {
	analyzer *pipeline.Analyzer
	repo     repository.AnalysisRepository
	cache    AnalysisCache
	notifier AnalysisNotifier
	workers  int
	logger   zerolog.Logger

	now func() time.Time
}

type AnalysisServiceOptions struct {
	Repository repository.AnalysisRepository
	Cache      AnalysisCache
	Notifier   AnalysisNotifier
	Workers    int
	Logger     zerolog.Logger
}

func NewAnalysisService(analyzer *pipeline.Analyzer, opts AnalysisServiceOptions) *AnalysisService {
	if analyzer == nil {
		analyzer = pipeline.NewAnalyzer(nil, nil, nil)
	}
	return &AnalysisService{
		analyzer: analyzer,
		repo:     opts.Repository,
		cache:    opts.Cache,
		notifier: opts.Notifier,
		workers:  opts.Workers,
		logger:   opts.Logger,
		now:      time.Now,
	}
}

func (s *AnalysisService) AnalyzeFile(ctx context.Context, userID uuid.UUID, filename string, data []byte) (AnalysisResult, error) {
	if len(data) == 0 {
		return AnalysisResult{}, ErrEmptyDocument
	}

	text, err := docparse.ExtractText(filename, data)
	if err != nil {
		if errors.Is(err, docparse.ErrUnsupportedFormat) {
			return AnalysisResult{}, ErrUnsupportedFile
		}
		s.logger.Warn().Err(err).Str("filename", filename).Msg("text extraction failed")
		return AnalysisResult{}, fmt.Errorf("%w: %v", ErrEmptyDocument, err)
	}

	return s.AnalyzeText(ctx, AnalyzeInput{UserID: userID, Filename: filename, Text: text})
}

func (s *AnalysisService) AnalyzeText(ctx context.Context, in AnalyzeInput) (AnalysisResult, error) {
	if strings.TrimSpace(in.Text) == "" {
		return AnalysisResult{}, ErrEmptyDocument
	}

	out := AnalysisResult{Filename: strings.TrimSpace(in.Filename), CreatedAt: s.now().UTC()}

	key := AnalysisCacheKey(s.analyzer.Fingerprint(), in.Text)
	if s.cache != nil {
		var cached pipeline.Analysis
		hit, err := s.cache.GetJSON(ctx, key, &cached)
		if err == nil && hit {
			out.Analysis = cached
			out.Cached = true
			s.logger.Debug().Str("key", key).Msg("analysis cache hit")
		}
	}

	if !out.Cached {
		out.Analysis = s.analyzer.Analyze(in.Text)
		if s.cache != nil {
			if err := s.cache.SetJSON(ctx, key, out.Analysis, 0); err != nil {
				s.logger.Warn().Err(err).Str("key", key).Msg("analysis cache set failed")
			}
		}
	}

	if s.repo != nil {
		rec := analysis.Record{
			ID:        uuid.New(),
			UserID:    in.UserID,
			Filename:  out.Filename,
			Score:     out.Analysis.Score,
			Skills:    out.Analysis.Skills,
			Jobs:      out.Analysis.Jobs,
			Feedback:  out.Analysis.Feedback,
			CreatedAt: out.CreatedAt,
		}
		if err := s.repo.Save(ctx, rec); err != nil {
			s.logger.Warn().Err(err).Str("filename", rec.Filename).Msg("saving analysis failed")
		} else {
			out.ID = rec.ID
		}
	}

	if s.notifier != nil {
		s.notifier.AnalysisCompleted(out.ID, out.Filename, out.Analysis.Score)
	}

	return out, nil
}

func (s *AnalysisService) AnalyzeBatch(ctx context.Context, texts []string) ([]BatchItem, error) {
	if len(texts) == 0 || len(texts) > MaxBatchSize {
		return nil, ErrInvalidInput
	}

	docs := make([]pipeline.Document, 0, len(texts))
	for i, t := range texts {
		docs = append(docs, pipeline.Document{ID: strconv.Itoa(i), Text: t})
	}

	start := s.now()
	results := s.analyzer.AnalyzeBatch(ctx, docs, s.workers)

	out := make([]BatchItem, 0, len(results))
	failed := 0
	for i, r := range results {
		item := BatchItem{Index: i, Analysis: r.Analysis, Err: r.Err}
		if r.Err == nil && strings.TrimSpace(texts[i]) == "" {
			item = BatchItem{Index: i, Err: ErrEmptyDocument}
		}
		if item.Err != nil {
			failed++
		}
		out = append(out, item)
	}

	s.logger.Info().
		Int("documents", len(texts)).
		Int("failed", failed).
		Dur("elapsed", s.now().Sub(start)).
		Msg("batch analysis finished")

	return out, nil
}

func (s *AnalysisService) ListAnalyses(ctx context.Context, userID uuid.UUID, limit, offset int) ([]analysis.Record, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	if s.repo == nil {
		return nil, ErrHistoryUnavailable
	}
	if limit == 0 {
		limit = defaultHistoryLimit
	}
	if limit < 0 || limit > maxHistoryLimit || offset < 0 {
		return nil, ErrInvalidInput
	}

	items, err := s.repo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return items, nil
}

func (s *AnalysisService) GetAnalysis(ctx context.Context, userID, id uuid.UUID) (analysis.Record, error) {
	if userID == uuid.Nil {
		return analysis.Record{}, ErrUnauthorized
	}
	if s.repo == nil {
		return analysis.Record{}, ErrHistoryUnavailable
	}
	if id == uuid.Nil {
		return analysis.Record{}, ErrInvalidInput
	}

	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAnalysisNotFound) {
			return analysis.Record{}, ErrAnalysisNotFound
		}
		return analysis.Record{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	// Other users' records are reported as missing.
	if rec.UserID != userID {
		return analysis.Record{}, ErrAnalysisNotFound
	}
	return rec, nil
}
