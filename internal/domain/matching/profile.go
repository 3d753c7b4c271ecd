package matching

import "strings"

// JobProfile is one row of the job catalog: a role and its comma-separated
// required skills as stored in the source file.
type JobProfile struct {
	Role   string
	Skills string
}

// ProfileSource serves the job catalog. Implementations return an empty
// slice, never an error, when the catalog could not be loaded.
type ProfileSource interface {
	Profiles() []JobProfile
}

// StaticProfiles is an in-memory ProfileSource.
type StaticProfiles []JobProfile

func (p StaticProfiles) Profiles() []JobProfile {
	return p
}

// RequiredSkills splits Skills on commas and returns the lowercased entries,
// without blanks or repeats, in the order they were written.
func (p JobProfile) RequiredSkills() []string {
	parts := strings.Split(p.Skills, ",")
	out := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, raw := range parts {
		s := strings.ToLower(strings.Join(strings.Fields(raw), " "))
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
