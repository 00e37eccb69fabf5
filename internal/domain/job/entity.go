package job

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusPublished Status = "PUBLISHED"
	StatusClosed    Status = "CLOSED"
	StatusArchived  Status = "ARCHIVED"
)

// Category is the closed set of job categories an employer can pick for a
// posting. It is a different enumeration from candidate.SkillCategory even
// where the names coincide.
type Category string

const (
	CategoryTechnical           Category = "TECHNICAL"
	CategorySoftwareDevelopment Category = "SOFTWARE_DEVELOPMENT"
	CategoryDatabase            Category = "DATABASE"
	CategoryBusiness            Category = "BUSINESS"
	CategoryFinanceAccounting   Category = "FINANCE_ACCOUNTING"
	CategoryDesign              Category = "DESIGN"
	CategorySalesMarketing      Category = "SALES_MARKETING"
	CategorySocialMedia         Category = "SOCIAL_MEDIA"
	CategoryCommunication       Category = "COMMUNICATION"
	CategoryOperations          Category = "OPERATIONS"
	CategoryHomeSupport         Category = "HOME_SUPPORT"
	CategoryMaintenanceTrades   Category = "MAINTENANCE_TRADES"
	CategoryHospitality         Category = "HOSPITALITY"
	CategorySecurity            Category = "SECURITY"
	CategoryTransportLogistics  Category = "TRANSPORT_LOGISTICS"
	CategoryOther               Category = "OTHER"
)

type Posting struct {
	ID                  uuid.UUID
	Title               string
	EmployerID          *uuid.UUID
	CompanyName         string
	Status              Status
	ApplicationDeadline *time.Time
	RequiredSkills      []uuid.UUID
	Category            Category
	State               *string
	City                *string
	SalaryMin           *float64
	SalaryMax           *float64
	Tags                []string
	CreatedAt           time.Time
}

// OpenAt reports whether the deadline, if any, is strictly after now.
func (p Posting) OpenAt(now time.Time) bool {
	return p.ApplicationDeadline == nil || p.ApplicationDeadline.After(now)
}

// AcceptsApplicationsAt reports whether the posting is published and open at
// now.
func (p Posting) AcceptsApplicationsAt(now time.Time) bool {
	return p.Status == StatusPublished && p.OpenAt(now)
}
