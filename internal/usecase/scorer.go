package usecase

import (
	"math"

	"go-visa-diagnosis-backend/internal/domain"
)

// Requirement display statuses. Indeterminate scores as not met but is
// shown distinctly from a hard miss.
const (
	statusMet         = "met"
	statusNotMet      = "not met"
	statusRecommended = "recommended"
	statusNeedsReview = "needs review"
)

// zeroRequirementScore is returned for categories whose rule set has not
// been entered yet. Such categories always stay in the result list.
const zeroRequirementScore = 50

// Recommendation tiers derived from the match score.
const (
	levelStronglyRecommended = "strongly recommended"
	levelRecommended         = "recommended"
	levelConditional         = "conditionally possible"
	levelDifficult           = "difficult"
)

// Approval-probability buckets.
const (
	approvalLow         = "low (mandatory requirement unmet)"
	approvalHigh        = "high (80% or above)"
	approvalModerate    = "moderate (50-70%)"
	approvalNeedsReview = "needs review (below 50%)"
)

type scoreResult struct {
	Total   int
	Details []domain.RequirementStatus
	Missing []domain.MissingItem
}

// scoreRequirements aggregates per-requirement outcomes into a weighted
// percentage score, iterating in the defined display order. Mandatory
// requirements whose outcome is not satisfied become missing items.
func scoreRequirements(reqs []domain.Requirement, profile *domain.ApplicantProfile, eval *requirementEvaluator) scoreResult {
	if len(reqs) == 0 {
		return scoreResult{
			Total: zeroRequirementScore,
			Details: []domain.RequirementStatus{
				{Requirement: "Requirements not yet defined", Type: domain.RequirementOther, Status: statusNeedsReview},
			},
			Missing: []domain.MissingItem{
				{Requirement: "Requirement information needs confirmation"},
			},
		}
	}

	score := 0
	maxScore := 0
	var details []domain.RequirementStatus
	var missing []domain.MissingItem

	for _, req := range reqs {
		weight := req.Weight()
		maxScore += weight

		res := eval.evaluate(req, profile)

		var status string
		switch res.outcome {
		case domain.OutcomeSatisfied:
			score += weight
			status = statusMet
		case domain.OutcomeIndeterminate:
			status = statusNeedsReview
		default:
			if req.IsMandatory {
				status = statusNotMet
			} else {
				status = statusRecommended
			}
		}

		details = append(details, domain.RequirementStatus{
			Requirement: req.Condition,
			Type:        req.Type,
			Status:      status,
			Detail:      res.reason,
		})

		if res.outcome != domain.OutcomeSatisfied && req.IsMandatory {
			item := domain.MissingItem{Requirement: req.Condition}
			if req.AlternativeOK && req.AlternativeCondition != "" {
				alt := req.AlternativeCondition
				item.Alternative = &alt
			}
			missing = append(missing, item)
		}
	}

	return scoreResult{
		Total:   int(math.Round(float64(score) / float64(maxScore) * 100)),
		Details: details,
		Missing: missing,
	}
}

func recommendationLevel(score int) string {
	switch {
	case score >= 80:
		return levelStronglyRecommended
	case score >= 60:
		return levelRecommended
	case score >= 40:
		return levelConditional
	default:
		return levelDifficult
	}
}

// approvalProbability buckets the likelihood of approval. A mandatory
// miss with no alternative condition forces the low bucket regardless of
// the overall score.
func approvalProbability(score int, missing []domain.MissingItem) string {
	for _, item := range missing {
		if item.Alternative == nil {
			return approvalLow
		}
	}

	switch {
	case score >= 80:
		return approvalHigh
	case score >= 60:
		return approvalModerate
	default:
		return approvalNeedsReview
	}
}
