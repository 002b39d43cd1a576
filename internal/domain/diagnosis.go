package domain

import (
	"context"
	"time"
)

// Outcome is the tri-state result of a single requirement evaluation.
// Indeterminate means "insufficient data to decide" and is distinct from
// Unsatisfied: it scores as not met but is displayed differently.
type Outcome int

const (
	OutcomeIndeterminate Outcome = iota
	OutcomeSatisfied
	OutcomeUnsatisfied
)

type Education struct {
	Degree     string `json:"degree"`
	Major      string `json:"major"`
	University string `json:"university"`
}

type ExperienceEntry struct {
	Years    int    `json:"years" validate:"min=0"`
	Field    string `json:"field"`
	Position string `json:"position"`
}

type JobDetails struct {
	Industry string `json:"industry"`
	Position string `json:"position"`
	Duties   string `json:"duties"`
}

// ApplicantProfile is the structured diagnosis input. Every field is
// optional; zero values mean "not provided" and never cause an error.
type ApplicantProfile struct {
	Nationality    string            `json:"nationality"`
	Education      Education         `json:"education"`
	Experience     []ExperienceEntry `json:"experience" validate:"dive"`
	Qualifications []string          `json:"qualifications"`
	JobDetails     JobDetails        `json:"job_details"`
	Salary         int64             `json:"salary" validate:"min=0"`
	CompanyInfo    map[string]string `json:"company_info"`
}

// TotalExperienceYears sums years across all experience entries.
func (p *ApplicantProfile) TotalExperienceYears() int {
	total := 0
	for _, exp := range p.Experience {
		total += exp.Years
	}
	return total
}

// RequirementStatus is one display row of the per-requirement breakdown.
type RequirementStatus struct {
	Requirement string `json:"requirement"`
	Type        string `json:"type"`
	Status      string `json:"status"`
	Detail      string `json:"detail,omitempty"`
}

// MissingItem records a mandatory requirement that was not satisfied.
// Alternative is nil when no substitute condition exists.
type MissingItem struct {
	Requirement string  `json:"requirement"`
	Alternative *string `json:"alternative"`
}

type DocumentInfo struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
}

type CategoryRef struct {
	ID          int64  `json:"id"`
	Code        string `json:"code"`
	NameJA      string `json:"name_ja"`
	NameEN      string `json:"name_en"`
	Description string `json:"description,omitempty"`
}

// DisplayName prefers the English name, falling back to Japanese.
func (c *CategoryRef) DisplayName() string {
	if c.NameEN != "" {
		return c.NameEN
	}
	return c.NameJA
}

// VisaMatch is the scored result for one candidate category.
type VisaMatch struct {
	Category            CategoryRef         `json:"visa_category"`
	MatchScore          int                 `json:"match_score"`
	RequirementsStatus  []RequirementStatus `json:"requirements_status"`
	MissingItems        []MissingItem       `json:"missing_items"`
	RecommendationLevel string              `json:"recommendation_level"`
	ApprovalProbability string              `json:"approval_probability"`
	RequiredDocuments   []DocumentInfo      `json:"required_documents"`
}

type ApplicantSummary struct {
	Nationality     string `json:"nationality"`
	Education       string `json:"education"`
	ExperienceYears int    `json:"experience_years"`
	TargetJob       string `json:"target_job"`
}

// AIAnalysis is the optional language-insight block. Enabled is false
// when the analyzer is unavailable; a failed attempt degrades to neutral
// judgments carrying the failure text in their reason fields.
type AIAnalysis struct {
	Enabled                bool            `json:"enabled"`
	Message                string          `json:"message,omitempty"`
	MajorRelevance         *MajorRelevance `json:"major_relevance,omitempty"`
	JobSuitability         *JobSuitability `json:"job_suitability,omitempty"`
	ImprovementSuggestions string          `json:"improvement_suggestions,omitempty"`
}

// DiagnosisResult is built fresh per diagnosis invocation and never
// mutated afterwards.
type DiagnosisResult struct {
	DiagnosisID        string           `json:"diagnosis_id"`
	SessionID          string           `json:"session_id,omitempty"`
	ApplicantSummary   ApplicantSummary `json:"applicant_summary"`
	TopRecommendations []VisaMatch      `json:"top_recommendations"`
	AllOptions         []VisaMatch      `json:"all_options"`
	AnalysisSummary    string           `json:"analysis_summary"`
	NextSteps          []string         `json:"next_steps"`
	AIAnalysis         AIAnalysis       `json:"ai_analysis"`
}

// Diagnosis session statuses
const (
	SessionCompleted = "completed"
)

// DiagnosisSession is the durable record of one diagnosis run. Write-only
// from the engine's perspective.
type DiagnosisSession struct {
	SessionID     string           `json:"session_id"`
	Status        string           `json:"status"`
	ApplicantData ApplicantProfile `json:"applicant_data"`
	Result        *DiagnosisResult `json:"diagnosis_result"`
	CreatedAt     time.Time        `json:"created_at"`
}

// SessionRepository is a fire-and-forget sink; the engine never reads
// sessions back.
type SessionRepository interface {
	Create(ctx context.Context, session *DiagnosisSession) error
}

type DiagnosisUsecase interface {
	Diagnose(ctx context.Context, profile *ApplicantProfile) (*DiagnosisResult, error)
}
