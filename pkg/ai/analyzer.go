package ai

import (
	"context"

	"go-visa-diagnosis-backend/internal/domain"
	"go-visa-diagnosis-backend/pkg/logger"
)

// neutralScore is the midpoint returned whenever no real judgment is
// available, so downstream consumers never see a skewed default.
const neutralScore = 50

// Analyzer implements domain.InsightAnalyzer on top of the Claude
// messages API. It is always safe to construct and call: without an API
// key, or when a call fails, every method degrades to a neutral default
// instead of returning an error.
type Analyzer struct {
	client *Client
}

// NewAnalyzer builds an Analyzer. An empty apiKey or enabled=false
// yields a disabled analyzer that answers with neutral defaults.
func NewAnalyzer(apiKey, model string, enabled bool) *Analyzer {
	a := &Analyzer{}
	if enabled && apiKey != "" {
		a.client = NewClient(apiKey, model)
	}
	return a
}

// Available reports whether a real language-model capability is
// configured behind this analyzer.
func (a *Analyzer) Available() bool {
	return a.client != nil
}

func (a *Analyzer) MajorRelevance(ctx context.Context, major, jobField, duties string) *domain.MajorRelevance {
	if !a.Available() {
		return &domain.MajorRelevance{
			Score:          neutralScore,
			Level:          "unknown",
			Reason:         "AI analysis is disabled (manual check needed)",
			Recommendation: "Confirm the relevance of the major to the occupation manually",
		}
	}

	var result domain.MajorRelevance
	prompt := buildMajorRelevancePrompt(major, jobField, duties)
	if err := a.client.jsonQuery(ctx, prompt, &result); err != nil {
		logger.Log.Warn("Major relevance analysis failed", "error", err)
		return &domain.MajorRelevance{
			Score:          neutralScore,
			Level:          "unknown",
			Reason:         "AI analysis failed: " + err.Error(),
			Recommendation: "Manual confirmation is recommended",
		}
	}
	return &result
}

func (a *Analyzer) JobSuitability(ctx context.Context, duties, visaName string) *domain.JobSuitability {
	if !a.Available() {
		return &domain.JobSuitability{
			ProfessionalScore: neutralScore,
			Concerns:          []string{"AI analysis is disabled"},
			Strengths:         []string{},
			Recommendations:   []string{"Review the job duties manually"},
		}
	}

	var result domain.JobSuitability
	prompt := buildJobSuitabilityPrompt(duties, visaName)
	if err := a.client.jsonQuery(ctx, prompt, &result); err != nil {
		logger.Log.Warn("Job suitability analysis failed", "error", err)
		return &domain.JobSuitability{
			ProfessionalScore: neutralScore,
			Concerns:          []string{"AI analysis failed: " + err.Error()},
			Strengths:         []string{},
			Recommendations:   []string{"Manual confirmation is recommended"},
		}
	}
	return &result
}

func (a *Analyzer) ImprovementSuggestions(ctx context.Context, profile *domain.ApplicantProfile, missing []domain.MissingItem) string {
	if !a.Available() {
		return "AI analysis is disabled, so no improvement suggestions were generated."
	}

	if len(missing) == 0 {
		return "The application is possible under the current conditions. No particular improvements are needed."
	}

	prompt := buildImprovementPrompt(profile, missing)
	text, err := a.client.sendMessage(ctx, prompt)
	if err != nil {
		logger.Log.Warn("Improvement suggestion generation failed", "error", err)
		return "Generating improvement suggestions failed: " + err.Error()
	}
	return text
}
