package pipeline

import (
	"context"
	"errors"

	"resume-scorer/internal/domain/matching"
	"resume-scorer/internal/domain/scoring"
	"resume-scorer/internal/domain/skill"
)

const DefaultWorkers = 4

var errNotProcessed = errors.New("document not processed")

// Analysis is the outcome of one extract → match → score run.
type Analysis struct {
	Score    int
	Skills   []string
	Jobs     []matching.JobMatch
	Feedback []string
}

type Document struct {
	ID   string
	Text string
}

type BatchResult struct {
	ID       string
	Analysis Analysis
	Err      error
}

// Analyzer wires the three stages together. Its collaborators are read-only
// after construction, so one Analyzer can serve any number of goroutines.
type Analyzer struct {
	extractor   *skill.Extractor
	profiles    matching.ProfileSource
	scorer      *scoring.Scorer
	fingerprint string
}

func NewAnalyzer(extractor *skill.Extractor, profiles matching.ProfileSource, scorer *scoring.Scorer) *Analyzer {
	if extractor == nil {
		extractor = skill.NewExtractor(skill.DefaultCatalog())
	}
	if profiles == nil {
		profiles = matching.StaticProfiles(nil)
	}
	if scorer == nil {
		scorer = scoring.NewScorer()
	}
	return &Analyzer{
		extractor:   extractor,
		profiles:    profiles,
		scorer:      scorer,
		fingerprint: fingerprint(extractor, profiles.Profiles(), scorer.Sections()),
	}
}

// Fingerprint identifies the skill catalog, job profiles and sections the
// analyzer was built with. Results from analyzers with different
// fingerprints are not interchangeable.
func (a *Analyzer) Fingerprint() string {
	return a.fingerprint
}

func (a *Analyzer) Analyze(text string) Analysis {
	skills := a.extractor.Extract(text)
	jobs := matching.Match(skills, a.profiles.Profiles())
	scored := a.scorer.Score(text, skills, jobs)

	return Analysis{
		Score:    scored.Score,
		Skills:   skills.Names(),
		Jobs:     jobs,
		Feedback: scored.Feedback,
	}
}

// AnalyzeBatch runs documents concurrently and returns results in input
// order. Documents left unprocessed when ctx ends carry ctx.Err().
func (a *Analyzer) AnalyzeBatch(ctx context.Context, docs []Document, workers int) []BatchResult {
	out := make([]BatchResult, len(docs))
	for i, d := range docs {
		out[i] = BatchResult{ID: d.ID, Err: errNotProcessed}
	}
	if len(docs) == 0 {
		return out
	}

	if workers <= 0 {
		workers = DefaultWorkers
	}
	if workers > len(docs) {
		workers = len(docs)
	}

	pool := NewWorkerPool(workers, len(docs))
	results := pool.Run(ctx)

	for i, d := range docs {
		pool.Submit(func(ctx context.Context) Result {
			if err := ctx.Err(); err != nil {
				return Result{Index: i, Err: err}
			}
			return Result{Index: i, Analysis: a.Analyze(d.Text)}
		})
	}
	pool.Close()

	for r := range results {
		out[r.Index].Analysis = r.Analysis
		out[r.Index].Err = r.Err
	}

	if err := ctx.Err(); err != nil {
		for i := range out {
			if errors.Is(out[i].Err, errNotProcessed) {
				out[i].Err = err
			}
		}
	}
	return out
}
