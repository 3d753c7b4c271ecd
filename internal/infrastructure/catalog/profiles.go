package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"resume-scorer/internal/domain/matching"
)

const (
	roleColumn   = "job role"
	skillsColumn = "skills"
)

var ErrMissingColumns = errors.New("job profile catalog is missing required columns")

func LoadJobProfiles(path string) ([]matching.JobProfile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open job profiles: %w", err)
	}
	defer f.Close()

	profiles, err := ReadJobProfiles(f)
	if err != nil {
		return nil, fmt.Errorf("read job profiles %s: %w", path, err)
	}
	return profiles, nil
}

// ReadJobProfiles parses a CSV whose header contains "Job Role" and "Skills"
// (any case, any column order). Extra columns are ignored.
func ReadJobProfiles(r io.Reader) ([]matching.JobProfile, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrMissingColumns
		}
		return nil, err
	}

	roleIdx, skillsIdx := -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))) {
		case roleColumn:
			roleIdx = i
		case skillsColumn:
			skillsIdx = i
		}
	}
	if roleIdx < 0 || skillsIdx < 0 {
		return nil, ErrMissingColumns
	}

	out := make([]matching.JobProfile, 0)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if roleIdx >= len(rec) {
			continue
		}
		role := strings.TrimSpace(rec[roleIdx])
		if role == "" {
			continue
		}
		skills := ""
		if skillsIdx < len(rec) {
			skills = rec[skillsIdx]
		}
		out = append(out, matching.JobProfile{Role: role, Skills: skills})
	}
	return out, nil
}
