package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"resume-scorer/internal/database"
	"resume-scorer/internal/database/postgres"
	"resume-scorer/internal/domain/analysis"
	"resume-scorer/internal/domain/matching"

	"github.com/google/uuid"
)

var ErrAnalysisNotFound = errors.New("analysis not found")

type AnalysisRepository interface {
	Save(ctx context.Context, rec analysis.Record) error
	FindByID(ctx context.Context, id uuid.UUID) (analysis.Record, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]analysis.Record, error)
}

type PostgresAnalysisRepository struct {
	db database.DB
}

func NewPostgresAnalysisRepository(db database.DB) *PostgresAnalysisRepository {
	return &PostgresAnalysisRepository{db: db}
}

type jobMatchRow struct {
	Role           string   `json:"role"`
	MatchScore     float64  `json:"match_score"`
	MatchingSkills []string `json:"matching_skills"`
	MissingSkills  []string `json:"missing_skills"`
}

func (r *PostgresAnalysisRepository) Save(ctx context.Context, rec analysis.Record) error {
	skills, err := json.Marshal(nonNil(rec.Skills))
	if err != nil {
		return err
	}
	feedback, err := json.Marshal(nonNil(rec.Feedback))
	if err != nil {
		return err
	}
	rows := make([]jobMatchRow, 0, len(rec.Jobs))
	for _, j := range rec.Jobs {
		rows = append(rows, jobMatchRow{
			Role:           j.Role,
			MatchScore:     j.MatchScore,
			MatchingSkills: nonNil(j.MatchingSkills),
			MissingSkills:  nonNil(j.MissingSkills),
		})
	}
	jobs, err := json.Marshal(rows)
	if err != nil {
		return err
	}

	var userID any
	if rec.UserID != uuid.Nil {
		userID = rec.UserID
	}

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO analyses (id, user_id, filename, score, skills, recommended_jobs, feedback, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		rec.ID, userID, rec.Filename, rec.Score, skills, jobs, feedback, rec.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert analysis: %w", err)
	}
	return nil
}

const selectAnalysis = `SELECT id, user_id, filename, score, skills, recommended_jobs, feedback, created_at FROM analyses`

func (r *PostgresAnalysisRepository) FindByID(ctx context.Context, id uuid.UUID) (analysis.Record, error) {
	rec, err := scanRecord(r.db.QueryRow(ctx, selectAnalysis+` WHERE id = $1`, id))
	if err != nil {
		if postgres.IsNoRows(err) {
			return analysis.Record{}, ErrAnalysisNotFound
		}
		return analysis.Record{}, err
	}
	return rec, nil
}

func (r *PostgresAnalysisRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]analysis.Record, error) {
	rows, err := r.db.Query(
		ctx,
		selectAnalysis+` WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		userID, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]analysis.Record, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanRecord(row database.Row) (analysis.Record, error) {
	var (
		rec                    analysis.Record
		userID                 *uuid.UUID
		skills, jobs, feedback []byte
	)
	if err := row.Scan(&rec.ID, &userID, &rec.Filename, &rec.Score, &skills, &jobs, &feedback, &rec.CreatedAt); err != nil {
		return analysis.Record{}, err
	}
	if userID != nil {
		rec.UserID = *userID
	}

	if err := json.Unmarshal(skills, &rec.Skills); err != nil {
		return analysis.Record{}, fmt.Errorf("decode skills: %w", err)
	}
	if err := json.Unmarshal(feedback, &rec.Feedback); err != nil {
		return analysis.Record{}, fmt.Errorf("decode feedback: %w", err)
	}
	var jobRows []jobMatchRow
	if err := json.Unmarshal(jobs, &jobRows); err != nil {
		return analysis.Record{}, fmt.Errorf("decode jobs: %w", err)
	}
	rec.Jobs = make([]matching.JobMatch, 0, len(jobRows))
	for _, j := range jobRows {
		rec.Jobs = append(rec.Jobs, matching.JobMatch(j))
	}
	return rec, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
