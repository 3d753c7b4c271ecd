package matching

import (
	"math"
	"sort"

	"resume-scorer/internal/domain/skill"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const TopN = 5

type JobMatch struct {
	Role           string
	MatchScore     float64
	MatchingSkills []string
	MissingSkills  []string
}

// Match scores every profile against the extracted skills and returns the
// best TopN, highest first. Profiles with equal scores keep catalog order.
func Match(skills skill.Set, profiles []JobProfile) []JobMatch {
	out := make([]JobMatch, 0, len(profiles))
	if skills.IsEmpty() || len(profiles) == 0 {
		return out
	}

	title := cases.Title(language.English)

	for _, p := range profiles {
		req := p.RequiredSkills()

		m := JobMatch{
			Role:           p.Role,
			MatchingSkills: make([]string, 0, len(req)),
			MissingSkills:  make([]string, 0, len(req)),
		}
		for _, r := range req {
			if skills.Has(r) {
				m.MatchingSkills = append(m.MatchingSkills, title.String(r))
			} else {
				m.MissingSkills = append(m.MissingSkills, title.String(r))
			}
		}
		if len(req) > 0 {
			m.MatchScore = round2(float64(len(m.MatchingSkills)) / float64(len(req)) * 100)
		}
		out = append(out, m)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MatchScore > out[j].MatchScore
	})

	if len(out) > TopN {
		out = out[:TopN]
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
