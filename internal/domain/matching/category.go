package matching

import (
	"jobmatch/internal/domain/candidate"
	"jobmatch/internal/domain/job"
)

// compatibleJobCategories is the hand-maintained bridge between the skill
// taxonomy and the job taxonomy. Keep it exhaustive and explicit: a skill
// category without an entry matches nothing.
var compatibleJobCategories = map[candidate.SkillCategory][]job.Category{
	candidate.SkillCategoryTechnology:      {job.CategoryTechnical, job.CategorySoftwareDevelopment, job.CategoryDatabase},
	candidate.SkillCategoryBusiness:        {job.CategoryBusiness, job.CategoryFinanceAccounting},
	candidate.SkillCategoryDesign:          {job.CategoryDesign},
	candidate.SkillCategoryMarketing:       {job.CategorySalesMarketing, job.CategorySocialMedia, job.CategoryCommunication},
	candidate.SkillCategoryOperations:      {job.CategoryOperations},
	candidate.SkillCategoryFinance:         {job.CategoryFinanceAccounting},
	candidate.SkillCategoryCustomerService: {job.CategoryCommunication},
	candidate.SkillCategoryHomeServices:    {job.CategoryHomeSupport},
	candidate.SkillCategoryMaintenance:     {job.CategoryMaintenanceTrades},
	candidate.SkillCategoryHospitality:     {job.CategoryHospitality},
	candidate.SkillCategorySecurity:        {job.CategorySecurity},
	candidate.SkillCategoryTransport:       {job.CategoryTransportLogistics},
}

// CompatibleJobCategories returns a copy of the job categories accepted for
// a skill category, or nil when the category is not in the table.
func CompatibleJobCategories(sc candidate.SkillCategory) []job.Category {
	cats, ok := compatibleJobCategories[sc]
	if !ok {
		return nil
	}
	out := make([]job.Category, len(cats))
	copy(out, cats)
	return out
}

func categoryMatches(skillCategories []candidate.SkillCategory, jc job.Category) bool {
	for _, sc := range skillCategories {
		for _, c := range compatibleJobCategories[sc] {
			if c == jc {
				return true
			}
		}
	}
	return false
}
