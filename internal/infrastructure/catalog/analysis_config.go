package catalog

import (
	"fmt"
	"os"

	"resume-scorer/internal/domain/scoring"
	"resume-scorer/internal/domain/skill"
	"resume-scorer/internal/search"

	"gopkg.in/yaml.v3"
)

// AnalysisConfig overrides the built-in skill catalog and resume sections.
// Empty lists keep the defaults. Aliases are off unless configured.
type AnalysisConfig struct {
	Skills         []string          `yaml:"skills"`
	Sections       []scoring.Section `yaml:"sections"`
	Aliases        map[string]string `yaml:"aliases"`
	DefaultAliases bool              `yaml:"default_aliases"`
}

func LoadAnalysisConfig(path string) (AnalysisConfig, error) {
	var cfg AnalysisConfig
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read analysis config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return AnalysisConfig{}, fmt.Errorf("parse analysis config %s: %w", path, err)
	}
	return cfg, nil
}

func (c AnalysisConfig) Catalog() *skill.Catalog {
	cat := skill.NewCatalog(c.Skills...)
	if cat.Len() == 0 {
		return skill.DefaultCatalog()
	}
	return cat
}

func (c AnalysisConfig) Scorer() *scoring.Scorer {
	return scoring.NewScorer(c.Sections...)
}

// Extractor builds the skill extractor, adding an alias generator when
// aliases are enabled. Explicit aliases win over the built-in ones.
func (c AnalysisConfig) Extractor() *skill.Extractor {
	aliases := make(map[string]string)
	if c.DefaultAliases {
		for k, v := range search.DefaultAliases {
			aliases[k] = v
		}
	}
	for k, v := range c.Aliases {
		aliases[k] = v
	}
	if len(aliases) == 0 {
		return skill.NewExtractor(c.Catalog())
	}
	return skill.NewExtractor(c.Catalog(), search.NewAliasGenerator(aliases))
}
