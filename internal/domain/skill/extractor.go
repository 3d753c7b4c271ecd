package skill

import (
	"fmt"
	"strings"
)

// CandidateGenerator proposes skill names found in a text. Proposals outside
// the catalog are discarded by the Extractor.
type CandidateGenerator interface {
	Candidates(text string) []string
}

// Fingerprinter is implemented by generators whose proposals depend on their
// configuration.
type Fingerprinter interface {
	Fingerprint() string
}

// CatalogGenerator is the boundary-aware catalog scan every Extractor runs.
type CatalogGenerator struct {
	catalog *Catalog
}

func NewCatalogGenerator(c *Catalog) CatalogGenerator {
	return CatalogGenerator{catalog: c}
}

func (g CatalogGenerator) Candidates(text string) []string {
	if g.catalog == nil || strings.TrimSpace(text) == "" {
		return nil
	}
	out := make([]string, 0)
	for _, e := range g.catalog.entries {
		if e.pattern.MatchString(text) {
			out = append(out, e.name)
		}
	}
	return out
}

type Extractor struct {
	catalog *Catalog
	extra   []CandidateGenerator
}

func NewExtractor(c *Catalog, extra ...CandidateGenerator) *Extractor {
	if c == nil {
		c = NewCatalog()
	}
	gens := make([]CandidateGenerator, 0, len(extra))
	for _, g := range extra {
		if g != nil {
			gens = append(gens, g)
		}
	}
	return &Extractor{catalog: c, extra: gens}
}

func (x *Extractor) Catalog() *Catalog {
	return x.catalog
}

// Fingerprint identifies the catalog and the optional generators. Two
// extractors with equal fingerprints extract the same skills.
func (x *Extractor) Fingerprint() string {
	var b strings.Builder
	for _, e := range x.catalog.entries {
		b.WriteString(e.name)
		b.WriteByte(0)
	}
	for _, g := range x.extra {
		b.WriteByte(0x1e)
		if f, ok := g.(Fingerprinter); ok {
			b.WriteString(f.Fingerprint())
		} else {
			fmt.Fprintf(&b, "%T", g)
		}
	}
	return b.String()
}

// Extract returns the catalog skills present in text, in catalog order.
func (x *Extractor) Extract(text string) Set {
	if strings.TrimSpace(text) == "" {
		return Set{}
	}

	found := make(map[string]struct{})
	for _, n := range NewCatalogGenerator(x.catalog).Candidates(text) {
		found[Key(n)] = struct{}{}
	}
	for _, g := range x.extra {
		for _, n := range g.Candidates(text) {
			if canonical, ok := x.catalog.Lookup(n); ok {
				found[Key(canonical)] = struct{}{}
			}
		}
	}

	out := Set{}
	for _, e := range x.catalog.entries {
		if _, ok := found[e.key]; ok {
			out.add(e.name)
		}
	}
	return out
}

func Extract(text string, catalog *Catalog) Set {
	return NewExtractor(catalog).Extract(text)
}
