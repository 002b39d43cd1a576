package usecase

import (
	"testing"

	"go-visa-diagnosis-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestScoreRequirementsZeroRuleSet(t *testing.T) {
	eval := &requirementEvaluator{}
	sc := scoreRequirements(nil, &domain.ApplicantProfile{}, eval)

	assert.Equal(t, 50, sc.Total)
	assert.Len(t, sc.Details, 1)
	assert.Equal(t, statusNeedsReview, sc.Details[0].Status)
	assert.Len(t, sc.Missing, 1)
	assert.Nil(t, sc.Missing[0].Alternative)
}

func TestScoreRequirementsWeighting(t *testing.T) {
	eval := &requirementEvaluator{}

	profile := &domain.ApplicantProfile{
		Education:  domain.Education{Degree: "Bachelor of Science"},
		Experience: []domain.ExperienceEntry{{Years: 2}},
	}

	reqs := []domain.Requirement{
		{Type: domain.RequirementEducation, Condition: "大学卒業以上", IsMandatory: true},
		{Type: domain.RequirementExperience, Condition: "実務経験10年以上", IsMandatory: false},
	}

	sc := scoreRequirements(reqs, profile, eval)

	// 20 of 30 points: rounded to 67, not truncated.
	assert.Equal(t, 67, sc.Total)
	assert.Equal(t, statusMet, sc.Details[0].Status)
	assert.Equal(t, statusRecommended, sc.Details[1].Status)
	// Optional misses never become missing items.
	assert.Empty(t, sc.Missing)
}

func TestScoreRequirementsMandatoryMiss(t *testing.T) {
	eval := &requirementEvaluator{}

	alt := "実務経験10年以上で代替可能"
	reqs := []domain.Requirement{
		{
			Type: domain.RequirementEducation, Condition: "大学卒業以上", IsMandatory: true,
			AlternativeCondition: alt, AlternativeOK: true,
		},
		{Type: domain.RequirementQualification, Condition: "日本語能力試験N4以上", IsMandatory: true},
	}

	sc := scoreRequirements(reqs, &domain.ApplicantProfile{}, eval)

	assert.Equal(t, 0, sc.Total)
	assert.Equal(t, statusNotMet, sc.Details[0].Status)
	assert.Len(t, sc.Missing, 2)
	// The alternative condition travels with the missing item.
	assert.NotNil(t, sc.Missing[0].Alternative)
	assert.Equal(t, alt, *sc.Missing[0].Alternative)
	assert.Nil(t, sc.Missing[1].Alternative)
}

func TestScoreRequirementsIndeterminate(t *testing.T) {
	eval := &requirementEvaluator{}

	reqs := []domain.Requirement{
		{Type: domain.RequirementCompany, Condition: "会社の安定性", IsMandatory: true},
	}

	sc := scoreRequirements(reqs, &domain.ApplicantProfile{}, eval)

	// Indeterminate scores as not met but is shown as needing review.
	assert.Equal(t, 0, sc.Total)
	assert.Equal(t, statusNeedsReview, sc.Details[0].Status)
	assert.Len(t, sc.Missing, 1)
}

func TestRecommendationLevel(t *testing.T) {
	assert.Equal(t, levelStronglyRecommended, recommendationLevel(80))
	assert.Equal(t, levelRecommended, recommendationLevel(79))
	assert.Equal(t, levelRecommended, recommendationLevel(60))
	assert.Equal(t, levelConditional, recommendationLevel(59))
	assert.Equal(t, levelConditional, recommendationLevel(40))
	assert.Equal(t, levelDifficult, recommendationLevel(39))
}

func TestApprovalProbability(t *testing.T) {
	alt := "代替条件"

	t.Run("Missing item without alternative forces low", func(t *testing.T) {
		missing := []domain.MissingItem{{Requirement: "大学卒業以上"}}
		assert.Equal(t, approvalLow, approvalProbability(95, missing))
	})

	t.Run("Missing item with alternative does not force low", func(t *testing.T) {
		missing := []domain.MissingItem{{Requirement: "大学卒業以上", Alternative: &alt}}
		assert.Equal(t, approvalHigh, approvalProbability(85, missing))
		assert.Equal(t, approvalModerate, approvalProbability(65, missing))
		assert.Equal(t, approvalNeedsReview, approvalProbability(40, missing))
	})

	t.Run("Clean profile buckets by score", func(t *testing.T) {
		assert.Equal(t, approvalHigh, approvalProbability(80, nil))
		assert.Equal(t, approvalModerate, approvalProbability(60, nil))
		assert.Equal(t, approvalNeedsReview, approvalProbability(59, nil))
	})
}
