package matching

import (
	"math"
	"strings"

	"jobmatch/internal/domain/candidate"
	"jobmatch/internal/domain/job"

	"github.com/google/uuid"
)

const (
	SkillWeight      = 40.0
	CategoryWeight   = 30.0
	LocationWeight   = 15.0
	CityWeight       = 10.0
	SalaryWeight     = 10.0
	ExperienceWeight = 5.0
)

// Candidate is the precomputed view of a profile that every job is scored
// against. Build it once per request with NewCandidate.
type Candidate struct {
	Profile         candidate.Profile
	SkillIDs        map[uuid.UUID]struct{}
	SkillCategories []candidate.SkillCategory
}

func NewCandidate(p candidate.Profile) Candidate {
	return Candidate{
		Profile:         p,
		SkillIDs:        p.SkillIDs(),
		SkillCategories: p.SkillCategories(),
	}
}

type Breakdown struct {
	Skill      float64 `json:"skill"`
	Category   float64 `json:"category"`
	Location   float64 `json:"location"`
	Salary     float64 `json:"salary"`
	Experience float64 `json:"experience"`
}

type ScoredJob struct {
	Job       job.Posting
	Score     float64
	Breakdown Breakdown
}

// Score computes the relevance of a posting for the candidate. The result is
// the sum of the five components rounded to two decimals, so it always lies
// in [0, 100].
func Score(c Candidate, p job.Posting) ScoredJob {
	b := Breakdown{
		Skill:      skillScore(c.SkillIDs, p.RequiredSkills),
		Category:   categoryScore(c.SkillCategories, p.Category),
		Location:   locationScore(c.Profile, p),
		Salary:     salaryScore(c.Profile, p),
		Experience: experienceScore(c.Profile, p.Tags),
	}
	total := b.Skill + b.Category + b.Location + b.Salary + b.Experience
	return ScoredJob{Job: p, Score: round2(total), Breakdown: b}
}

func skillScore(candidateSkills map[uuid.UUID]struct{}, required []uuid.UUID) float64 {
	if len(candidateSkills) == 0 || len(required) == 0 {
		return 0
	}

	jobSkills := make(map[uuid.UUID]struct{}, len(required))
	for _, id := range required {
		jobSkills[id] = struct{}{}
	}

	matched := 0
	for id := range jobSkills {
		if _, ok := candidateSkills[id]; ok {
			matched++
		}
	}
	return float64(matched) / float64(len(jobSkills)) * SkillWeight
}

func categoryScore(skillCategories []candidate.SkillCategory, jc job.Category) float64 {
	if len(skillCategories) == 0 {
		return 0
	}
	if categoryMatches(skillCategories, jc) {
		return CategoryWeight
	}
	return 0
}

// locationScore is an ordered chain: the city comparison is only reached when
// both states are present and differ, and the preferred-location fallback
// only applies when the candidate has no state at all.
func locationScore(p candidate.Profile, j job.Posting) float64 {
	switch {
	case present(p.State) && present(j.State):
		if strings.EqualFold(*p.State, *j.State) {
			return LocationWeight
		}
		if present(p.City) && present(j.City) && strings.EqualFold(*p.City, *j.City) {
			return CityWeight
		}
		return 0
	case !present(p.State) && present(p.PreferredLocation) && present(j.City):
		if strings.Contains(strings.ToLower(*p.PreferredLocation), strings.ToLower(*j.City)) {
			return CityWeight
		}
		return 0
	default:
		return 0
	}
}

func salaryScore(p candidate.Profile, j job.Posting) float64 {
	switch {
	case p.MinExpectedSalary != nil && j.SalaryMax != nil && *p.MinExpectedSalary <= *j.SalaryMax:
		return SalaryWeight
	case p.MaxExpectedSalary != nil && j.SalaryMin != nil && *p.MaxExpectedSalary >= *j.SalaryMin:
		return SalaryWeight
	default:
		return 0
	}
}

func experienceScore(p candidate.Profile, tags []string) float64 {
	if p.YearsOfExperience == nil {
		return 0
	}
	for _, t := range tags {
		lt := strings.ToLower(t)
		if strings.Contains(lt, "experience") || strings.Contains(lt, "years") {
			return ExperienceWeight
		}
	}
	return 0
}

func present(s *string) bool {
	return s != nil && *s != ""
}

// round2 rounds half away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
