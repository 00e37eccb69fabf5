package repository

import (
	"context"
	"testing"
	"time"

	"jobmatch/internal/domain/job"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jobColumns = []string{
	"id", "title", "employer_id", "company_name", "status", "category", "state", "city",
	"salary_min", "salary_max", "tags", "application_deadline", "created_at", "skill_ids",
}

func TestFindEligibleJobs(t *testing.T) {
	db, mock := newMock(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	applicant := uuid.New()
	j1, j2, employer := uuid.New(), uuid.New(), uuid.New()
	s1, s2 := uuid.New(), uuid.New()
	deadline := now.Add(48 * time.Hour)

	mock.ExpectQuery("NOT EXISTS").
		WithArgs("PUBLISHED", now, applicant).
		WillReturnRows(sqlmock.NewRows(jobColumns).
			AddRow(j1.String(), "Backend Engineer", employer.String(), "Acme", "PUBLISHED", "SOFTWARE_DEVELOPMENT",
				"Lagos", "Ikeja", 100000.0, 250000.0, []byte(`["remote","3 years"]`), deadline, now.Add(-time.Hour),
				s1.String()+","+s2.String()).
			AddRow(j2.String(), "Cashier", nil, "", "PUBLISHED", "HOSPITALITY",
				nil, nil, nil, nil, []byte(`[]`), nil, now.Add(-2*time.Hour), ""))

	jobs, err := NewPostgresJobPostingRepository(db).FindEligibleJobs(context.Background(), EligibleJobFilter{
		Status:             job.StatusPublished,
		Now:                now,
		ExcludeApplicantID: applicant,
	})
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	first := jobs[0]
	assert.Equal(t, j1, first.ID)
	require.NotNil(t, first.EmployerID)
	assert.Equal(t, employer, *first.EmployerID)
	assert.Equal(t, "Acme", first.CompanyName)
	assert.Equal(t, job.CategorySoftwareDevelopment, first.Category)
	assert.Equal(t, []uuid.UUID{s1, s2}, first.RequiredSkills)
	assert.Equal(t, []string{"remote", "3 years"}, first.Tags)
	require.NotNil(t, first.ApplicationDeadline)
	assert.True(t, deadline.Equal(*first.ApplicationDeadline))
	require.NotNil(t, first.SalaryMax)
	assert.Equal(t, 250000.0, *first.SalaryMax)

	second := jobs[1]
	assert.Nil(t, second.EmployerID)
	assert.Nil(t, second.State)
	assert.Nil(t, second.SalaryMin)
	assert.Empty(t, second.RequiredSkills)
	assert.Empty(t, second.Tags)
	assert.Nil(t, second.ApplicationDeadline)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindEligibleJobs_SkipsRowsPastDeadline(t *testing.T) {
	db, mock := newMock(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	applicant := uuid.New()

	mock.ExpectQuery("NOT EXISTS").
		WithArgs("PUBLISHED", now, applicant).
		WillReturnRows(sqlmock.NewRows(jobColumns).
			AddRow(uuid.NewString(), "Expired", nil, "", "PUBLISHED", "OTHER",
				nil, nil, nil, nil, nil, now, now, ""))

	jobs, err := NewPostgresJobPostingRepository(db).FindEligibleJobs(context.Background(), EligibleJobFilter{
		Now:                now,
		ExcludeApplicantID: applicant,
	})
	require.NoError(t, err)
	assert.Empty(t, jobs)
}

func TestFindEligibleJobs_BadSkillID(t *testing.T) {
	db, mock := newMock(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery("NOT EXISTS").
		WillReturnRows(sqlmock.NewRows(jobColumns).
			AddRow(uuid.NewString(), "Broken", nil, "", "PUBLISHED", "OTHER",
				nil, nil, nil, nil, nil, nil, now, "not-a-uuid"))

	_, err := NewPostgresJobPostingRepository(db).FindEligibleJobs(context.Background(), EligibleJobFilter{Now: now})
	assert.ErrorContains(t, err, "decode skills")
}

func TestFindEligibleJobs_HonorsFilterStatus(t *testing.T) {
	db, mock := newMock(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	closed := uuid.New()

	mock.ExpectQuery("NOT EXISTS").
		WithArgs("CLOSED", now, uuid.Nil).
		WillReturnRows(sqlmock.NewRows(jobColumns).
			AddRow(closed.String(), "Archived role", nil, "", "CLOSED", "OTHER",
				nil, nil, nil, nil, nil, nil, now, "").
			AddRow(uuid.NewString(), "Stray row", nil, "", "PUBLISHED", "OTHER",
				nil, nil, nil, nil, nil, nil, now, ""))

	jobs, err := NewPostgresJobPostingRepository(db).FindEligibleJobs(context.Background(), EligibleJobFilter{
		Status: job.StatusClosed,
		Now:    now,
	})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, closed, jobs[0].ID)
	assert.Equal(t, job.StatusClosed, jobs[0].Status)
}

func TestFilterEligibleJobIDs(t *testing.T) {
	db, mock := newMock(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	applicant := uuid.New()
	open, applied := uuid.New(), uuid.New()

	mock.ExpectQuery("string_to_array").
		WithArgs("PUBLISHED", now, applicant, open.String()+","+applied.String()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(open.String()))

	ids, err := NewPostgresJobPostingRepository(db).FilterEligibleJobIDs(context.Background(), EligibleJobFilter{
		Now:                now,
		ExcludeApplicantID: applicant,
	}, []uuid.UUID{open, applied})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{open}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFilterEligibleJobIDs_EmptyInputSkipsQuery(t *testing.T) {
	db, mock := newMock(t)

	ids, err := NewPostgresJobPostingRepository(db).FilterEligibleJobIDs(context.Background(), EligibleJobFilter{}, nil)
	require.NoError(t, err)
	assert.Empty(t, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}
