package domain

import "context"

// MajorRelevance is the structured judgment on how an academic major
// relates to the target job.
type MajorRelevance struct {
	Score          int    `json:"score"`
	Level          string `json:"level"`
	Reason         string `json:"reason"`
	Recommendation string `json:"recommendation"`
}

// JobSuitability classifies job duties as professional vs manual labor
// for a given visa category. IsSuitable is nil when unknown.
type JobSuitability struct {
	IsSuitable        *bool    `json:"is_suitable"`
	ProfessionalScore int      `json:"professional_score"`
	Concerns          []string `json:"concerns"`
	Strengths         []string `json:"strengths"`
	Recommendations   []string `json:"recommendations"`
}

// InsightAnalyzer is the optional language-understanding capability the
// orchestrator queries. Implementations must never fail the caller: when
// the capability is unconfigured, or the underlying call errors, each
// method returns a neutral default (midpoint score, "unknown" level, a
// reason instructing manual review) instead of an error. Unavailability
// and failure are indistinguishable to control flow.
type InsightAnalyzer interface {
	Available() bool
	MajorRelevance(ctx context.Context, major, jobField, duties string) *MajorRelevance
	JobSuitability(ctx context.Context, duties, visaName string) *JobSuitability
	ImprovementSuggestions(ctx context.Context, profile *ApplicantProfile, missing []MissingItem) string
}
