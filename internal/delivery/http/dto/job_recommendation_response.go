package dto

import (
	"time"

	"jobmatch/internal/usecase"

	"github.com/google/uuid"
)

type JobRecommendationItem struct {
	JobID               uuid.UUID  `json:"job_id"`
	Title               string     `json:"title"`
	CompanyName         string     `json:"company_name"`
	Category            string     `json:"category"`
	State               *string    `json:"state"`
	City                *string    `json:"city"`
	SalaryMin           *float64   `json:"salary_min"`
	SalaryMax           *float64   `json:"salary_max"`
	Tags                []string   `json:"tags"`
	ApplicationDeadline *time.Time `json:"application_deadline"`
	Score               float64    `json:"score"`
}

type JobRecommendationPage struct {
	Items []JobRecommendationItem `json:"items"`
	Total int                     `json:"total"`
	Page  int                     `json:"page"`
	Limit int                     `json:"limit"`
}

func NewJobRecommendationPage(p usecase.RecommendationPage) JobRecommendationPage {
	items := make([]JobRecommendationItem, 0, len(p.Items))
	for _, it := range p.Items {
		tags := it.Job.Tags
		if tags == nil {
			tags = []string{}
		}
		items = append(items, JobRecommendationItem{
			JobID:               it.Job.ID,
			Title:               it.Job.Title,
			CompanyName:         it.Job.CompanyName,
			Category:            string(it.Job.Category),
			State:               it.Job.State,
			City:                it.Job.City,
			SalaryMin:           it.Job.SalaryMin,
			SalaryMax:           it.Job.SalaryMax,
			Tags:                tags,
			ApplicationDeadline: it.Job.ApplicationDeadline,
			Score:               it.Score,
		})
	}
	return JobRecommendationPage{Items: items, Total: p.Total, Page: p.Page, Limit: p.Limit}
}
