package analysis

import (
	"time"

	"resume-scorer/internal/domain/matching"

	"github.com/google/uuid"
)

// Record is a stored analysis. UserID is uuid.Nil for anonymous uploads.
type Record struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Filename  string
	Score     int
	Skills    []string
	Jobs      []matching.JobMatch
	Feedback  []string
	CreatedAt time.Time
}
