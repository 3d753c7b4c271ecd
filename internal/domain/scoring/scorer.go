package scoring

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"resume-scorer/internal/domain/matching"
	"resume-scorer/internal/domain/skill"
)

const (
	JobFitWeight   = 40.0
	SectionsWeight = 30.0
	LengthWeight   = 20.0
	MetricsWeight  = 10.0

	MinWords = 200
	MaxWords = 800

	lowMatchThreshold = 50.0
)

const (
	FeedbackLowMatch   = "Low skill match for top recommended role. Consider learning required skills."
	FeedbackNoJobMatch = "No clear job role match found based on skills."
	FeedbackTooShort   = "Resume is too short. Add more details about your experience/projects."
	FeedbackTooLong    = "Resume might be too long. Keep it concise (1-2 pages)."
	FeedbackNoMetrics  = "Add quantifiable results (e.g., 'Improved efficiency by 20%') to bullet points."
)

func FeedbackMissingSection(name string) string {
	return fmt.Sprintf("Missing '%s' section. Add it to improve ATS parsing.", name)
}

var percentRe = regexp.MustCompile(`\d+%`)

type Result struct {
	Score    int
	Feedback []string
}

type Scorer struct {
	sections []Section
}

// NewScorer builds a Scorer over the given sections, falling back to
// DefaultSections when none are usable. The section component always sums to
// SectionsWeight however many sections there are.
func NewScorer(sections ...Section) *Scorer {
	s := normalizeSections(sections)
	if len(s) == 0 {
		s = normalizeSections(DefaultSections)
	}
	return &Scorer{sections: s}
}

func (s *Scorer) Sections() []Section {
	out := make([]Section, len(s.sections))
	copy(out, s.sections)
	return out
}

// Score is total: any text, including "", yields a result.
func (s *Scorer) Score(text string, _ skill.Set, jobs []matching.JobMatch) Result {
	var total float64
	feedback := make([]string, 0, 4+len(s.sections))

	if len(jobs) > 0 {
		top := jobs[0].MatchScore
		total += top * JobFitWeight / 100
		if top < lowMatchThreshold {
			feedback = append(feedback, FeedbackLowMatch)
		}
	} else {
		feedback = append(feedback, FeedbackNoJobMatch)
	}

	lower := strings.ToLower(text)
	perSection := SectionsWeight / float64(len(s.sections))
	for _, sec := range s.sections {
		if sec.present(lower) {
			total += perSection
		} else {
			feedback = append(feedback, FeedbackMissingSection(sec.Name))
		}
	}

	words := len(strings.Fields(text))
	switch {
	case words < MinWords:
		total += LengthWeight / 2
		feedback = append(feedback, FeedbackTooShort)
	case words > MaxWords:
		total += LengthWeight / 2
		feedback = append(feedback, FeedbackTooLong)
	default:
		total += LengthWeight
	}

	if percentRe.MatchString(text) {
		total += MetricsWeight
	} else {
		feedback = append(feedback, FeedbackNoMetrics)
	}

	return Result{Score: clampScore(total), Feedback: feedback}
}

// Rounds half to even, so 62.5 scores 62.
func clampScore(total float64) int {
	v := int(math.RoundToEven(total))
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func Score(text string, skills skill.Set, jobs []matching.JobMatch) Result {
	return NewScorer().Score(text, skills, jobs)
}
