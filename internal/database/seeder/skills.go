package seeder

import (
	"context"
	"fmt"

	"jobmatch/internal/database"
	"jobmatch/internal/domain/candidate"
)

type catalogSkill struct {
	Name     string
	Category candidate.SkillCategory
}

// skillCatalog is the starter catalog candidates pick their skills from.
var skillCatalog = []catalogSkill{
	{"Go", candidate.SkillCategoryTechnology},
	{"JavaScript", candidate.SkillCategoryTechnology},
	{"PostgreSQL", candidate.SkillCategoryTechnology},
	{"Bookkeeping", candidate.SkillCategoryBusiness},
	{"Project Management", candidate.SkillCategoryBusiness},
	{"Graphic Design", candidate.SkillCategoryDesign},
	{"Social Media Marketing", candidate.SkillCategoryMarketing},
	{"Copywriting", candidate.SkillCategoryMarketing},
	{"Inventory Management", candidate.SkillCategoryOperations},
	{"Accounting", candidate.SkillCategoryFinance},
	{"Customer Support", candidate.SkillCategoryCustomerService},
	{"Housekeeping", candidate.SkillCategoryHomeServices},
	{"Childcare", candidate.SkillCategoryHomeServices},
	{"Plumbing", candidate.SkillCategoryMaintenance},
	{"Electrical Installation", candidate.SkillCategoryMaintenance},
	{"Cooking", candidate.SkillCategoryHospitality},
	{"Event Security", candidate.SkillCategorySecurity},
	{"Driving", candidate.SkillCategoryTransport},
	{"Dispatch", candidate.SkillCategoryTransport},
}

type SkillsSeeder struct{}

func (SkillsSeeder) Name() string { return "skills" }

// Run inserts the catalog in one transaction. Existing names are left as is.
func (SkillsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "skills", "id", "name", "category"); err != nil {
		return err
	}

	tx, err := db.SQLDB().BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, s := range skillCatalog {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO skills (id, name, category) VALUES (gen_random_uuid(), $1, $2) ON CONFLICT (name) DO NOTHING`,
			s.Name, string(s.Category),
		); err != nil {
			return fmt.Errorf("insert skill %s: %w", s.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
