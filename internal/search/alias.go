package search

import (
	"sort"
	"strings"
)

// DefaultAliases maps common shorthand to catalog skill names. Keys are
// compared after Normalize.
var DefaultAliases = map[string]string{
	"js":                          "JavaScript",
	"es6":                         "JavaScript",
	"nodejs":                      "Node.js",
	"reactjs":                     "React",
	"vuejs":                       "Vue",
	"angularjs":                   "Angular",
	"k8s":                         "Kubernetes",
	"ml":                          "Machine Learning",
	"sklearn":                     "Scikit-learn",
	"scikitlearn":                 "Scikit-learn",
	"powerbi":                     "Power BI",
	"ms excel":                    "Excel",
	"microsoft excel":             "Excel",
	"amazon web services":         "AWS",
	"google cloud":                "GCP",
	"google cloud platform":       "GCP",
	"microsoft azure":             "Azure",
	"natural language processing": "NLP",
	"shell script":                "Shell Scripting",
}

// AliasGenerator proposes canonical skill names for aliases found in a
// text. It is meant as an optional skill.CandidateGenerator; the extractor
// still drops proposals that are not catalog entries.
type AliasGenerator struct {
	aliases  map[string]string
	maxWords int
}

func NewAliasGenerator(aliases map[string]string) *AliasGenerator {
	g := &AliasGenerator{aliases: make(map[string]string, len(aliases))}
	for alias, canonical := range aliases {
		key := Normalize(alias)
		canonical = strings.TrimSpace(canonical)
		if key == "" || canonical == "" {
			continue
		}
		g.aliases[key] = canonical
		if n := len(strings.Fields(key)); n > g.maxWords {
			g.maxWords = n
		}
	}
	return g
}

func (g *AliasGenerator) Len() int {
	if g == nil {
		return 0
	}
	return len(g.aliases)
}

// Fingerprint lists the alias table in a stable order.
func (g *AliasGenerator) Fingerprint() string {
	if g == nil {
		return ""
	}
	keys := make([]string, 0, len(g.aliases))
	for k := range g.aliases {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(g.aliases[k])
		b.WriteByte(0)
	}
	return b.String()
}

func (g *AliasGenerator) Candidates(text string) []string {
	if g == nil || len(g.aliases) == 0 {
		return nil
	}

	words := strings.Fields(Normalize(text))
	out := make([]string, 0)
	seen := make(map[string]struct{})
	for i := range words {
		for n := 1; n <= g.maxWords && i+n <= len(words); n++ {
			canonical, ok := g.aliases[strings.Join(words[i:i+n], " ")]
			if !ok {
				continue
			}
			if _, dup := seen[canonical]; dup {
				continue
			}
			seen[canonical] = struct{}{}
			out = append(out, canonical)
		}
	}
	return out
}
