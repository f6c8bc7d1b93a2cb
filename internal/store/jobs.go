package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"jobmarket/internal/domain"
)

const defaultQueryLimit = 100

// UpsertResult reports a batch write. Attempted counts every record the
// batch tried to write; Inserted counts rows actually created. Ids that
// already exist are silently ignored, so the first write always wins.
type UpsertResult struct {
	Attempted int `json:"attempted"`
	Inserted  int `json:"inserted"`
}

// Filter narrows a read. Keyword matches title OR description, location
// matches location; both are case-insensitive substring matches and are
// ANDed when both are set. Limit caps the result (default 100).
type Filter struct {
	Keyword  string
	Location string
	Limit    int
}

// UpsertBatch inserts each record, ignoring ids that already exist. A
// per-record failure is logged and skipped; it never aborts the batch.
func (s *Store) UpsertBatch(ctx context.Context, jobs []domain.Job) (UpsertResult, error) {
	var res UpsertResult

	for _, j := range jobs {
		res.Attempted++

		skills, err := json.Marshal(j.Skills)
		if err != nil {
			skills = []byte("[]")
		}

		r, err := s.db.ExecContext(ctx, `
INSERT OR IGNORE INTO jobs
  (id, title, company, location, salary_min, salary_max, salary_avg,
   description, skills, skills_count, original_url)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`,
			j.ID, j.Title, j.Company, j.Location, j.SalaryMin, j.SalaryMax,
			j.SalaryAvg, j.Description, string(skills), j.SkillsCount, j.OriginalURL,
		)
		if err != nil {
			s.logger.Warn("insert job failed", zap.String("id", j.ID), zap.Error(err))
			continue
		}

		// RowsAffected is 0 when the id already existed and the insert
		// was ignored.
		if n, err := r.RowsAffected(); err == nil && n > 0 {
			res.Inserted++
		}
	}

	return res, nil
}

// Query returns records matching the filter, in store order.
func (s *Store) Query(ctx context.Context, f Filter) ([]domain.Job, error) {
	q := `SELECT id, title, company, location, salary_min, salary_max, salary_avg,
       description, skills, skills_count, original_url, created_date
FROM jobs WHERE 1=1`
	var args []any

	if f.Keyword != "" {
		// sqlite LIKE is case-insensitive for ASCII
		q += ` AND (title LIKE ? OR description LIKE ?)`
		pat := "%" + f.Keyword + "%"
		args = append(args, pat, pat)
	}
	if f.Location != "" {
		q += ` AND location LIKE ?`
		args = append(args, "%"+f.Location+"%")
	}

	limit := f.Limit
	if limit <= 0 {
		limit = defaultQueryLimit
	}
	q += ` LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query jobs: %w", err)
	}
	defer rows.Close()

	var out []domain.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	return out, rows.Err()
}

// GetByID returns the record with the given id, or nil when absent.
func (s *Store) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT id, title, company, location, salary_min, salary_max, salary_avg,
       description, skills, skills_count, original_url, created_date
FROM jobs WHERE id = ?;`, id)

	j, err := scanJob(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &j, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanJob(row scanner) (domain.Job, error) {
	var j domain.Job
	var skillsJSON, created string

	err := row.Scan(&j.ID, &j.Title, &j.Company, &j.Location,
		&j.SalaryMin, &j.SalaryMax, &j.SalaryAvg,
		&j.Description, &skillsJSON, &j.SkillsCount, &j.OriginalURL, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return j, err
	}
	if err != nil {
		return j, fmt.Errorf("scan job: %w", err)
	}

	_ = json.Unmarshal([]byte(skillsJSON), &j.Skills)
	j.CreatedDate, _ = time.Parse(time.RFC3339, created)
	return j, nil
}
