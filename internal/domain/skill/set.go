package skill

// Set is an insertion-ordered, duplicate-free collection of skills.
// Membership ignores case and whitespace differences.
type Set struct {
	names []string
	keys  map[string]struct{}
}

func NewSet(names ...string) Set {
	s := Set{}
	for _, n := range names {
		s.add(n)
	}
	return s
}

func (s *Set) add(name string) bool {
	name = normalizeSpaces(name)
	if name == "" {
		return false
	}
	k := Key(name)
	if s.keys == nil {
		s.keys = make(map[string]struct{})
	}
	if _, ok := s.keys[k]; ok {
		return false
	}
	s.keys[k] = struct{}{}
	s.names = append(s.names, name)
	return true
}

func (s Set) Has(name string) bool {
	_, ok := s.keys[Key(name)]
	return ok
}

func (s Set) Len() int {
	return len(s.names)
}

func (s Set) IsEmpty() bool {
	return len(s.names) == 0
}

// Names returns a copy; callers may modify it freely.
func (s Set) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}
