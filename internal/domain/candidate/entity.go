package candidate

import "github.com/google/uuid"

type SkillCategory string

const (
	SkillCategoryTechnology      SkillCategory = "TECHNOLOGY"
	SkillCategoryBusiness        SkillCategory = "BUSINESS"
	SkillCategoryDesign          SkillCategory = "DESIGN"
	SkillCategoryMarketing       SkillCategory = "MARKETING"
	SkillCategoryOperations      SkillCategory = "OPERATIONS"
	SkillCategoryFinance         SkillCategory = "FINANCE"
	SkillCategoryCustomerService SkillCategory = "CUSTOMER_SERVICE"
	SkillCategoryHomeServices    SkillCategory = "HOME_SERVICES"
	SkillCategoryMaintenance     SkillCategory = "MAINTENANCE"
	SkillCategoryHospitality     SkillCategory = "HOSPITALITY"
	SkillCategorySecurity        SkillCategory = "SECURITY"
	SkillCategoryTransport       SkillCategory = "TRANSPORT"
	SkillCategoryOther           SkillCategory = "OTHER"
)

type Skill struct {
	SkillID  uuid.UUID
	Category SkillCategory
}

type Profile struct {
	ID                uuid.UUID
	Skills            []Skill
	State             *string
	City              *string
	PreferredLocation *string
	MinExpectedSalary *float64
	MaxExpectedSalary *float64
	YearsOfExperience *int
}

// SkillIDs returns the distinct skill ids declared by the candidate.
func (p Profile) SkillIDs() map[uuid.UUID]struct{} {
	out := make(map[uuid.UUID]struct{}, len(p.Skills))
	for _, s := range p.Skills {
		if s.SkillID == uuid.Nil {
			continue
		}
		out[s.SkillID] = struct{}{}
	}
	return out
}

// SkillCategories returns the distinct categories of the declared skills in
// first-seen order.
func (p Profile) SkillCategories() []SkillCategory {
	seen := make(map[SkillCategory]struct{}, len(p.Skills))
	out := make([]SkillCategory, 0, len(p.Skills))
	for _, s := range p.Skills {
		if s.Category == "" {
			continue
		}
		if _, ok := seen[s.Category]; ok {
			continue
		}
		seen[s.Category] = struct{}{}
		out = append(out, s.Category)
	}
	return out
}
