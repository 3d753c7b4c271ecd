package catalog

import (
	"resume-scorer/internal/domain/matching"

	"github.com/rs/zerolog"
)

// Store is a matching.ProfileSource loaded once from disk. A catalog that
// cannot be read leaves the store empty; analyses keep running without job
// matches and the failure is reported to the operator log.
type Store struct {
	path     string
	profiles []matching.JobProfile
	loadErr  error
}

func NewStore(path string, logger zerolog.Logger) *Store {
	s := &Store{path: path}

	profiles, err := LoadJobProfiles(path)
	if err != nil {
		s.loadErr = err
		s.profiles = []matching.JobProfile{}
		logger.Warn().Err(err).Str("path", path).Msg("job profile catalog unavailable, job matching disabled")
		return s
	}

	s.profiles = profiles
	if len(profiles) == 0 {
		logger.Warn().Str("path", path).Msg("job profile catalog is empty")
	} else {
		logger.Info().Str("path", path).Int("profiles", len(profiles)).Msg("job profile catalog loaded")
	}
	return s
}

func (s *Store) Profiles() []matching.JobProfile {
	return s.profiles
}

func (s *Store) Err() error {
	return s.loadErr
}
