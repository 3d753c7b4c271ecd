package main

import (
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"resume-scorer/internal/domain/matching"
	"resume-scorer/internal/infrastructure/catalog"
	"resume-scorer/internal/infrastructure/docparse"
	"resume-scorer/internal/logger"
	"resume-scorer/internal/pipeline"

	"github.com/spf13/pflag"
)

type jobMatch struct {
	Role           string   `json:"role"`
	MatchScore     float64  `json:"match_score"`
	MatchingSkills []string `json:"matching_skills"`
	MissingSkills  []string `json:"missing_skills"`
}

type result struct {
	Score    int        `json:"score"`
	Skills   []string   `json:"skills"`
	Jobs     []jobMatch `json:"jobs"`
	Feedback []string   `json:"feedback"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("analyze", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.SortFlags = false

	var (
		file       string
		text       string
		jobsPath   string
		configPath string
		pretty     bool
		logLevel   string
	)
	fs.StringVarP(&file, "file", "f", "", "resume file to analyze (.pdf, .docx, .txt); \"-\" reads stdin")
	fs.StringVarP(&text, "text", "t", "", "resume text to analyze")
	fs.StringVarP(&jobsPath, "jobs", "j", "dataset/jobs.csv", "job profile catalog (CSV with \"Job Role\" and \"Skills\" columns)")
	fs.StringVarP(&configPath, "config", "c", "", "optional YAML overriding skills and sections")
	fs.BoolVarP(&pretty, "pretty", "p", false, "indent JSON output")
	fs.StringVar(&logLevel, "log-level", "warn", "log level for diagnostics on stderr")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	log := logger.New(logger.Config{Level: logLevel, Format: "pretty"}, stderr)

	doc, err := readDocument(file, text, stdin)
	if err != nil {
		log.Error().Err(err).Msg("cannot read resume")
		return 1
	}
	if strings.TrimSpace(doc) == "" {
		log.Error().Msg("Failed to extract text. Ensure file is valid PDF/DOCX.")
		return 1
	}

	analysisCfg, err := catalog.LoadAnalysisConfig(configPath)
	if err != nil {
		log.Error().Err(err).Msg("cannot load analysis config")
		return 1
	}

	store := catalog.NewStore(jobsPath, log.With().Str("component", "catalog").Logger())
	analyzer := pipeline.NewAnalyzer(analysisCfg.Extractor(), store, analysisCfg.Scorer())

	out := toResult(analyzer.Analyze(doc))

	enc := json.NewEncoder(stdout)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(out); err != nil {
		log.Error().Err(err).Msg("cannot write result")
		return 1
	}
	return 0
}

func readDocument(file, text string, stdin io.Reader) (string, error) {
	switch {
	case file != "" && text != "":
		return "", errors.New("use either --file or --text, not both")
	case text != "":
		return text, nil
	case file == "-":
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", err
		}
		return docparse.ExtractText("stdin", b)
	case file != "":
		b, err := os.ReadFile(file)
		if err != nil {
			return "", err
		}
		return docparse.ExtractText(filepath.Base(file), b)
	default:
		return "", errors.New("one of --file or --text is required")
	}
}

func toResult(a pipeline.Analysis) result {
	out := result{
		Score:    a.Score,
		Skills:   orEmpty(a.Skills),
		Jobs:     make([]jobMatch, 0, len(a.Jobs)),
		Feedback: orEmpty(a.Feedback),
	}
	for _, j := range a.Jobs {
		out.Jobs = append(out.Jobs, fromMatch(j))
	}
	return out
}

func fromMatch(j matching.JobMatch) jobMatch {
	return jobMatch{
		Role:           j.Role,
		MatchScore:     j.MatchScore,
		MatchingSkills: orEmpty(j.MatchingSkills),
		MissingSkills:  orEmpty(j.MissingSkills),
	}
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
