package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// Category types for residence statuses
const (
	CategoryTypeWork      = "work"
	CategoryTypeActivity  = "activity"
	CategoryTypeSpecified = "specified"
)

// Requirement types dispatched by the evaluator
const (
	RequirementEducation     = "education"
	RequirementExperience    = "experience"
	RequirementQualification = "qualification"
	RequirementSalary        = "salary"
	RequirementCompany       = "company"
	RequirementOther         = "other"
)

// Scoring weights are fixed, not configurable.
const (
	MandatoryWeight = 20
	OptionalWeight  = 10
)

type VisaCategory struct {
	ID           int64     `json:"id"`
	Code         string    `json:"code"`
	NameJA       string    `json:"name_ja"`
	NameEN       string    `json:"name_en"`
	CategoryType string    `json:"category_type"`
	Description  string    `json:"description"`
	Priority     int       `json:"priority"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Requirement is an eligibility rule belonging to one VisaCategory.
// Condition is free text matched by the evaluator's fixed pattern set.
type Requirement struct {
	ID                   int64  `json:"id"`
	VisaCategoryID       int64  `json:"visa_category_id"`
	Type                 string `json:"requirement_type"`
	Condition            string `json:"condition"`
	IsMandatory          bool   `json:"is_mandatory"`
	AlternativeCondition string `json:"alternative_condition,omitempty"`
	AlternativeOK        bool   `json:"alternative_ok"`
	DisplayOrder         int    `json:"display_order"`
}

// Weight returns the fixed scoring weight for this requirement.
func (r *Requirement) Weight() int {
	if r.IsMandatory {
		return MandatoryWeight
	}
	return OptionalWeight
}

// IndustryMapping links an (industry, job category) pair to a visa
// category. Used only for candidate prefiltering, never for scoring.
type IndustryMapping struct {
	ID             int64  `json:"id"`
	Industry       string `json:"industry"`
	JobCategory    string `json:"job_category"`
	VisaCategoryID int64  `json:"visa_category_id"`
	MatchScore     int    `json:"match_score"`
	Notes          string `json:"notes,omitempty"`
}

type DocumentRequirement struct {
	ID             int64  `json:"id"`
	VisaCategoryID int64  `json:"visa_category_id"`
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	URL            string `json:"url,omitempty"`
	IsMandatory    bool   `json:"is_mandatory"`
	DisplayOrder   int    `json:"display_order"`
}

// CatalogRepository is the read-only catalog view the diagnosis engine
// depends on. The catalog is immutable during a diagnosis run.
type CatalogRepository interface {
	ListActiveCategories(ctx context.Context) ([]VisaCategory, error)
	GetCategory(ctx context.Context, id int64) (*VisaCategory, error)
	ListRequirements(ctx context.Context, categoryID int64) ([]Requirement, error)
	ListMandatoryDocuments(ctx context.Context, categoryID int64) ([]DocumentRequirement, error)
	// FindMappings matches by case-insensitive substring containment on
	// either the industry or the job-category column (OR semantics).
	FindMappings(ctx context.Context, industry, jobCategory string) ([]IndustryMapping, error)
}

// CatalogAdminRepository is the write side used by the admin surface and
// the seeding command. The core engine never writes the catalog.
type CatalogAdminRepository interface {
	CreateCategory(ctx context.Context, category *VisaCategory) error
	UpdateCategory(ctx context.Context, category *VisaCategory) error
	DeleteCategory(ctx context.Context, id int64) error
	CreateRequirement(ctx context.Context, req *Requirement) error
	CreateDocument(ctx context.Context, doc *DocumentRequirement) error
	CreateMapping(ctx context.Context, mapping *IndustryMapping) error
}

// CatalogUsecase exposes catalog reads for the public visa endpoints and
// writes for the token-guarded admin endpoints.
type CatalogUsecase interface {
	ListActiveCategories(ctx context.Context) ([]VisaCategory, error)
	GetCategoryDetail(ctx context.Context, id int64) (*VisaCategoryDetail, error)
	CreateCategory(ctx context.Context, category *VisaCategory) error
	UpdateCategory(ctx context.Context, category *VisaCategory) error
	DeleteCategory(ctx context.Context, id int64) error
	AddRequirement(ctx context.Context, req *Requirement) error
	AddDocument(ctx context.Context, doc *DocumentRequirement) error
	AddMapping(ctx context.Context, mapping *IndustryMapping) error
}

// VisaCategoryDetail bundles a category with its rules and documents for
// the detail endpoint.
type VisaCategoryDetail struct {
	VisaCategory
	Requirements []Requirement         `json:"requirements"`
	Documents    []DocumentRequirement `json:"documents"`
}
