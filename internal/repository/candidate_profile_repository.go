package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"jobmatch/internal/database"
	"jobmatch/internal/domain/candidate"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrCandidateProfileNotFound = errors.New("candidate profile not found")

type CandidateProfileRepository interface {
	FindCandidateProfile(ctx context.Context, candidateID uuid.UUID) (candidate.Profile, error)
}

type PostgresCandidateProfileRepository struct {
	db database.DB
}

func NewPostgresCandidateProfileRepository(db database.DB) *PostgresCandidateProfileRepository {
	return &PostgresCandidateProfileRepository{db: db}
}

func (r *PostgresCandidateProfileRepository) FindCandidateProfile(ctx context.Context, candidateID uuid.UUID) (candidate.Profile, error) {
	var p candidate.Profile
	err := r.db.QueryRow(ctx,
		`SELECT id, state, city, preferred_location,
		        min_expected_salary::float8, max_expected_salary::float8,
		        years_of_experience
		 FROM candidate_profiles
		 WHERE id = $1`,
		candidateID,
	).Scan(
		&p.ID,
		&p.State,
		&p.City,
		&p.PreferredLocation,
		&p.MinExpectedSalary,
		&p.MaxExpectedSalary,
		&p.YearsOfExperience,
	)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return candidate.Profile{}, ErrCandidateProfileNotFound
		}
		return candidate.Profile{}, fmt.Errorf("load candidate profile: %w", err)
	}

	skills, err := r.listSkills(ctx, candidateID)
	if err != nil {
		return candidate.Profile{}, err
	}
	p.Skills = skills
	return p, nil
}

func (r *PostgresCandidateProfileRepository) listSkills(ctx context.Context, candidateID uuid.UUID) ([]candidate.Skill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT cs.skill_id, s.category
		 FROM candidate_skills cs
		 JOIN skills s ON s.id = cs.skill_id
		 WHERE cs.candidate_id = $1
		 ORDER BY s.name ASC, cs.skill_id ASC`,
		candidateID,
	)
	if err != nil {
		return nil, fmt.Errorf("load candidate skills: %w", err)
	}
	defer rows.Close()

	out := make([]candidate.Skill, 0)
	for rows.Next() {
		var (
			id       uuid.UUID
			category string
		)
		if err := rows.Scan(&id, &category); err != nil {
			return nil, fmt.Errorf("scan candidate skill: %w", err)
		}
		out = append(out, candidate.Skill{SkillID: id, Category: candidate.SkillCategory(category)})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load candidate skills: %w", err)
	}
	return out, nil
}
