package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"jobmatch/internal/database"
	"jobmatch/internal/domain/job"

	"github.com/google/uuid"
)

// EligibleJobFilter selects the postings a candidate may still apply to.
type EligibleJobFilter struct {
	Status             job.Status
	Now                time.Time
	ExcludeApplicantID uuid.UUID
}

func (f EligibleJobFilter) withDefaults() EligibleJobFilter {
	if f.Status == "" {
		f.Status = job.StatusPublished
	}
	if f.Now.IsZero() {
		f.Now = time.Now().UTC()
	}
	return f
}

type JobPostingRepository interface {
	FindEligibleJobs(ctx context.Context, f EligibleJobFilter) ([]job.Posting, error)
	// FilterEligibleJobIDs returns the subset of ids that still match f.
	FilterEligibleJobIDs(ctx context.Context, f EligibleJobFilter, ids []uuid.UUID) ([]uuid.UUID, error)
}

type PostgresJobPostingRepository struct {
	db database.DB
}

func NewPostgresJobPostingRepository(db database.DB) *PostgresJobPostingRepository {
	return &PostgresJobPostingRepository{db: db}
}

const eligibleJobsWhere = `WHERE j.status = $1
  AND (j.application_deadline IS NULL OR j.application_deadline > $2)
  AND NOT EXISTS (
      SELECT 1 FROM job_applications a
      WHERE a.job_id = j.id AND a.candidate_id = $3
  )`

const eligibleJobsQuery = `SELECT j.id, j.title, j.employer_id, COALESCE(e.company_name, ''),
       j.status, j.category, j.state, j.city,
       j.salary_min::float8, j.salary_max::float8,
       j.tags, j.application_deadline, j.created_at,
       COALESCE((SELECT string_agg(js.skill_id::text, ',' ORDER BY js.skill_id)
                 FROM job_skills js
                 WHERE js.job_id = j.id), '')
FROM jobs j
LEFT JOIN employers e ON e.id = j.employer_id
` + eligibleJobsWhere + `
ORDER BY j.created_at DESC, j.id ASC`

const eligibleJobIDsQuery = `SELECT j.id
FROM jobs j
` + eligibleJobsWhere + `
  AND j.id = ANY(string_to_array($4, ',')::uuid[])`

// FindEligibleJobs loads every matching posting with its required skills in
// a single round trip. Rows come back newest first.
func (r *PostgresJobPostingRepository) FindEligibleJobs(ctx context.Context, f EligibleJobFilter) ([]job.Posting, error) {
	f = f.withDefaults()

	rows, err := r.db.Query(ctx, eligibleJobsQuery, string(f.Status), f.Now, f.ExcludeApplicantID)
	if err != nil {
		return nil, fmt.Errorf("load eligible jobs: %w", err)
	}
	defer rows.Close()

	out := make([]job.Posting, 0)
	for rows.Next() {
		var (
			p        job.Posting
			status   string
			category string
			tags     []byte
			skillIDs string
		)
		if err := rows.Scan(
			&p.ID,
			&p.Title,
			&p.EmployerID,
			&p.CompanyName,
			&status,
			&category,
			&p.State,
			&p.City,
			&p.SalaryMin,
			&p.SalaryMax,
			&tags,
			&p.ApplicationDeadline,
			&p.CreatedAt,
			&skillIDs,
		); err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		p.Status = job.Status(status)
		p.Category = job.Category(category)

		if p.Tags, err = decodeTags(tags); err != nil {
			return nil, fmt.Errorf("decode tags of job %s: %w", p.ID, err)
		}
		if p.RequiredSkills, err = parseUUIDList(skillIDs); err != nil {
			return nil, fmt.Errorf("decode skills of job %s: %w", p.ID, err)
		}
		if p.Status != f.Status || !p.OpenAt(f.Now) {
			continue
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load eligible jobs: %w", err)
	}
	return out, nil
}

func (r *PostgresJobPostingRepository) FilterEligibleJobIDs(ctx context.Context, f EligibleJobFilter, ids []uuid.UUID) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	f = f.withDefaults()

	list := make([]string, len(ids))
	for i, id := range ids {
		list[i] = id.String()
	}

	rows, err := r.db.Query(ctx, eligibleJobIDsQuery, string(f.Status), f.Now, f.ExcludeApplicantID, strings.Join(list, ","))
	if err != nil {
		return nil, fmt.Errorf("check eligible jobs: %w", err)
	}
	defer rows.Close()

	out := make([]uuid.UUID, 0, len(ids))
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan job id: %w", err)
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("check eligible jobs: %w", err)
	}
	return out, nil
}

func decodeTags(raw []byte) ([]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var tags []string
	if err := json.Unmarshal(raw, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

func parseUUIDList(s string) ([]uuid.UUID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]uuid.UUID, 0, len(parts))
	for _, part := range parts {
		id, err := uuid.Parse(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}
