package skill

import (
	"regexp"
	"strings"
)

var DefaultNames = []string{
	"Python", "Java", "C++", "C#", "JavaScript", "HTML", "CSS", "SQL", "NoSQL",
	"React", "Angular", "Vue", "Node.js", "Django", "Flask", "Spring", "Hibernate",
	"Machine Learning", "Deep Learning", "NLP", "Data Analysis", "Data Science",
	"Power BI", "Tableau", "Excel", "Git", "GitHub", "Docker", "Kubernetes", "AWS",
	"Azure", "GCP", "Linux", "Unix", "Bash", "Shell Scripting", "Agile", "Scrum",
	"Project Management", "Communication", "Teamwork", "Problem Solving", "Leadership",
	"Time Management", "Critical Thinking", "Creativity", "Adaptability",
	"TensorFlow", "PyTorch", "Keras", "Scikit-learn", "Pandas", "NumPy", "Matplotlib",
}

type entry struct {
	name    string
	key     string
	pattern *regexp.Regexp
}

// Catalog is the ordered, read-only list of skills the extractor recognises.
// It is safe for concurrent use.
type Catalog struct {
	entries []entry
	byKey   map[string]int
}

func NewCatalog(names ...string) *Catalog {
	c := &Catalog{
		entries: make([]entry, 0, len(names)),
		byKey:   make(map[string]int, len(names)),
	}
	for _, n := range names {
		name := normalizeSpaces(n)
		if name == "" {
			continue
		}
		key := Key(name)
		if _, ok := c.byKey[key]; ok {
			continue
		}
		c.byKey[key] = len(c.entries)
		c.entries = append(c.entries, entry{name: name, key: key, pattern: boundaryPattern(name)})
	}
	return c
}

func DefaultCatalog() *Catalog {
	return NewCatalog(DefaultNames...)
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}
	out := make([]string, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, e.name)
	}
	return out
}

// Lookup resolves any casing or spacing of a skill to its canonical catalog name.
func (c *Catalog) Lookup(name string) (string, bool) {
	if c == nil {
		return "", false
	}
	i, ok := c.byKey[Key(name)]
	if !ok {
		return "", false
	}
	return c.entries[i].name, true
}

// Key is the comparison form of a skill: lowercased with single spaces.
func Key(name string) string {
	return strings.ToLower(normalizeSpaces(name))
}

func normalizeSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// A match must not touch a letter, digit or underscore on either side, so
// "Java" stays out of "JavaScript" while "C++" still matches before a comma.
func boundaryPattern(name string) *regexp.Regexp {
	words := strings.Fields(name)
	for i, w := range words {
		words[i] = regexp.QuoteMeta(w)
	}
	pat := `(?i)(?:^|[^\p{L}\p{N}_])` + strings.Join(words, `\s+`) + `(?:[^\p{L}\p{N}_]|$)`
	return regexp.MustCompile(pat)
}
