package repository

import (
	"context"
	"database/sql"
	"errors"
	"reflect"
	"testing"
	"time"

	"resume-scorer/internal/database"
	"resume-scorer/internal/domain/analysis"
	"resume-scorer/internal/domain/matching"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != len(r.values) {
		return errors.New("column count mismatch")
	}
	for i, v := range r.values {
		if v == nil {
			continue
		}
		reflect.ValueOf(dest[i]).Elem().Set(reflect.ValueOf(v))
	}
	return nil
}

type fakeRows struct {
	rows []fakeRow
	i    int
}

func (r *fakeRows) Close()     {}
func (r *fakeRows) Err() error { return nil }
func (r *fakeRows) Next() bool {
	r.i++
	return r.i <= len(r.rows)
}
func (r *fakeRows) Scan(dest ...any) error { return r.rows[r.i-1].Scan(dest...) }

type fakeDB struct {
	execQuery string
	execArgs  []any
	execErr   error

	queryArgs []any
	rows      []fakeRow
	row       fakeRow
}

func (f *fakeDB) Ping(context.Context) error { return nil }
func (f *fakeDB) Close() error               { return nil }
func (f *fakeDB) SQLDB() *sql.DB             { return nil }

func (f *fakeDB) Exec(_ context.Context, query string, args ...any) (int64, error) {
	f.execQuery = query
	f.execArgs = args
	return 1, f.execErr
}

func (f *fakeDB) Query(_ context.Context, _ string, args ...any) (database.Rows, error) {
	f.queryArgs = args
	return &fakeRows{rows: f.rows}, nil
}

func (f *fakeDB) QueryRow(context.Context, string, ...any) database.Row {
	return f.row
}

func storedRow(id uuid.UUID, userID *uuid.UUID) fakeRow {
	return fakeRow{values: []any{
		id,
		userID,
		"cv.pdf",
		72,
		[]byte(`["Python","SQL"]`),
		[]byte(`[{"role":"Data Analyst","match_score":66.67,"matching_skills":["Python","Sql"],"missing_skills":["Excel"]}]`),
		[]byte(`["Add measurable achievements"]`),
		time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}}
}

func TestAnalysisRepository_Save(t *testing.T) {
	db := &fakeDB{}
	repo := NewPostgresAnalysisRepository(db)

	rec := analysis.Record{
		ID:       uuid.New(),
		Filename: "cv.pdf",
		Score:    55,
		Skills:   []string{"Python"},
		Jobs: []matching.JobMatch{{
			Role:           "Data Analyst",
			MatchScore:     33.33,
			MatchingSkills: []string{"Python"},
		}},
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Save(context.Background(), rec))

	require.Len(t, db.execArgs, 8)
	assert.Contains(t, db.execQuery, "INSERT INTO analyses")
	assert.Equal(t, rec.ID, db.execArgs[0])
	assert.Nil(t, db.execArgs[1])
	assert.JSONEq(t, `["Python"]`, string(db.execArgs[4].([]byte)))
	assert.JSONEq(t,
		`[{"role":"Data Analyst","match_score":33.33,"matching_skills":["Python"],"missing_skills":[]}]`,
		string(db.execArgs[5].([]byte)))
	assert.JSONEq(t, `[]`, string(db.execArgs[6].([]byte)))
}

func TestAnalysisRepository_SaveWithUser(t *testing.T) {
	db := &fakeDB{}
	userID := uuid.New()
	require.NoError(t, NewPostgresAnalysisRepository(db).Save(context.Background(), analysis.Record{ID: uuid.New(), UserID: userID}))
	assert.Equal(t, userID, db.execArgs[1])
}

func TestAnalysisRepository_SaveError(t *testing.T) {
	db := &fakeDB{execErr: errors.New("boom")}
	err := NewPostgresAnalysisRepository(db).Save(context.Background(), analysis.Record{ID: uuid.New()})
	assert.ErrorContains(t, err, "insert analysis")
}

func TestAnalysisRepository_FindByID(t *testing.T) {
	id := uuid.New()
	userID := uuid.New()
	repo := NewPostgresAnalysisRepository(&fakeDB{row: storedRow(id, &userID)})

	rec, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, rec.ID)
	assert.Equal(t, userID, rec.UserID)
	assert.Equal(t, 72, rec.Score)
	assert.Equal(t, []string{"Python", "SQL"}, rec.Skills)
	require.Len(t, rec.Jobs, 1)
	assert.Equal(t, matching.JobMatch{
		Role:           "Data Analyst",
		MatchScore:     66.67,
		MatchingSkills: []string{"Python", "Sql"},
		MissingSkills:  []string{"Excel"},
	}, rec.Jobs[0])
	assert.Equal(t, []string{"Add measurable achievements"}, rec.Feedback)
}

func TestAnalysisRepository_FindByIDAnonymous(t *testing.T) {
	id := uuid.New()
	rec, err := NewPostgresAnalysisRepository(&fakeDB{row: storedRow(id, nil)}).FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Nil, rec.UserID)
}

func TestAnalysisRepository_FindByIDNotFound(t *testing.T) {
	repo := NewPostgresAnalysisRepository(&fakeDB{row: fakeRow{err: pgx.ErrNoRows}})
	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrAnalysisNotFound)
}

func TestAnalysisRepository_ListByUser(t *testing.T) {
	userID := uuid.New()
	db := &fakeDB{rows: []fakeRow{storedRow(uuid.New(), &userID), storedRow(uuid.New(), &userID)}}

	items, err := NewPostgresAnalysisRepository(db).ListByUser(context.Background(), userID, 10, 5)
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, []any{userID, 10, 5}, db.queryArgs)
}

func TestAnalysisRepository_ListByUserEmpty(t *testing.T) {
	items, err := NewPostgresAnalysisRepository(&fakeDB{}).ListByUser(context.Background(), uuid.New(), 10, 0)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}
