package db

import (
	"context"
	"encoding/json"
	"fmt"

	"catalog-scrape/pkg/domain"
)

// DefaultProgramType is recorded for programs whose page does not state
// a type; the catalog's heading+list pages only ever describe majors.
const DefaultProgramType = "Major"

const schema = `
CREATE TABLE IF NOT EXISTS courses (
	course_id         TEXT PRIMARY KEY,
	name              TEXT NOT NULL,
	credits           INTEGER NOT NULL,
	semesters_offered JSONB NOT NULL,
	prerequisites     JSONB NOT NULL
);
CREATE TABLE IF NOT EXISTS programs (
	program_id SERIAL PRIMARY KEY,
	name       TEXT UNIQUE NOT NULL,
	type       TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS requirements (
	requirement_id SERIAL PRIMARY KEY,
	program_id     INTEGER NOT NULL REFERENCES programs(program_id),
	description    TEXT NOT NULL,
	credits        INTEGER NOT NULL,
	courses        JSONB NOT NULL
);`

const upsertCourse = `INSERT INTO courses (course_id, name, credits, semesters_offered, prerequisites)
VALUES ($1, $2, $3, $4::jsonb, $5::jsonb)
ON CONFLICT (course_id) DO UPDATE SET
	name = EXCLUDED.name,
	credits = EXCLUDED.credits,
	semesters_offered = EXCLUDED.semesters_offered,
	prerequisites = EXCLUDED.prerequisites`

const insertProgram = `INSERT INTO programs (name, type) VALUES ($1, $2)
ON CONFLICT (name) DO UPDATE SET type = EXCLUDED.type
RETURNING program_id`

const insertRequirement = `INSERT INTO requirements (program_id, description, credits, courses)
VALUES ($1, $2, $3, $4::jsonb)`

const deleteRequirements = `DELETE FROM requirements WHERE program_id = $1`

// Store executes the loader's relational operations against any
// DBProvider backend.
type Store struct {
	provider DBProvider
}

// NewStore creates a store over the given backend.
func NewStore(provider DBProvider) *Store {
	return &Store{provider: provider}
}

// EnsureSchema creates the courses, programs and requirements tables if
// they do not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.provider.DB().ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// UpsertCourses writes normalized course records, overwriting all
// mutable fields on conflict. The batch runs in one transaction so a
// partial load never commits.
func (s *Store) UpsertCourses(ctx context.Context, records []domain.NormalizedCourse) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := s.provider.DB().BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin courses tx: %w", err)
	}
	defer tx.Rollback()

	for _, c := range records {
		semesters, err := json.Marshal(c.SemestersOffered)
		if err != nil {
			return fmt.Errorf("marshal semesters for %s: %w", c.CourseID, err)
		}
		prereqs, err := json.Marshal(c.Prerequisites)
		if err != nil {
			return fmt.Errorf("marshal prerequisites for %s: %w", c.CourseID, err)
		}

		if _, err := tx.ExecContext(ctx, upsertCourse, c.CourseID, c.Name, c.Credits, semesters, prereqs); err != nil {
			return fmt.Errorf("upsert course %s: %w", c.CourseID, err)
		}
	}

	return tx.Commit()
}

// InsertProgram writes one program and its requirement rows. The
// program row is keyed by unique name (conflict updates type only);
// requirement rows are replaced wholesale so a re-run stays idempotent.
func (s *Store) InsertProgram(ctx context.Context, program domain.Program) error {
	tx, err := s.provider.DB().BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin program tx: %w", err)
	}
	defer tx.Rollback()

	var programID int64
	if err := tx.QueryRowContext(ctx, insertProgram, program.Name, DefaultProgramType).Scan(&programID); err != nil {
		return fmt.Errorf("insert program %s: %w", program.Name, err)
	}

	if _, err := tx.ExecContext(ctx, deleteRequirements, programID); err != nil {
		return fmt.Errorf("clear requirements for %s: %w", program.Name, err)
	}

	for _, detail := range program.Details {
		codes := make([]string, 0, len(detail.Courses))
		for _, ref := range detail.Courses {
			codes = append(codes, ref.Code)
		}
		encoded, err := json.Marshal(codes)
		if err != nil {
			return fmt.Errorf("marshal courses for %s: %w", program.Name, err)
		}

		if _, err := tx.ExecContext(ctx, insertRequirement, programID, detail.Text, detail.Credits, encoded); err != nil {
			return fmt.Errorf("insert requirement for %s: %w", program.Name, err)
		}
	}

	return tx.Commit()
}
