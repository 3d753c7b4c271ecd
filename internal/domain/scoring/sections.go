package scoring

import "strings"

type Section struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

var DefaultSections = []Section{
	{Name: "Experience", Keywords: []string{"experience", "work history", "employment", "internships"}},
	{Name: "Education", Keywords: []string{"education", "university", "college", "degree", "gpa"}},
	{Name: "Projects", Keywords: []string{"projects", "portfolio", "github"}},
	{Name: "Skills", Keywords: []string{"skills", "technologies", "proficiency"}},
}

// present reports whether any keyword occurs in the already lowercased text.
func (s Section) present(textLower string) bool {
	for _, k := range s.Keywords {
		if k != "" && strings.Contains(textLower, k) {
			return true
		}
	}
	return false
}

func normalizeSections(in []Section) []Section {
	out := make([]Section, 0, len(in))
	for _, s := range in {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			continue
		}
		kws := make([]string, 0, len(s.Keywords))
		for _, k := range s.Keywords {
			k = strings.ToLower(strings.TrimSpace(k))
			if k != "" {
				kws = append(kws, k)
			}
		}
		if len(kws) == 0 {
			continue
		}
		out = append(out, Section{Name: name, Keywords: kws})
	}
	return out
}
