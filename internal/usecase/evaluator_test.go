package usecase

import (
	"testing"

	"go-visa-diagnosis-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestCheckEducation(t *testing.T) {
	eval := &requirementEvaluator{}

	universityReq := domain.Requirement{
		Type:      domain.RequirementEducation,
		Condition: "大学卒業以上、または関連分野の専攻（理工系、人文科学、社会科学など）",
	}

	t.Run("Bachelor degree satisfies university condition", func(t *testing.T) {
		res := eval.checkEducation(universityReq, domain.Education{Degree: "Bachelor of Engineering"})
		assert.Equal(t, domain.OutcomeSatisfied, res.outcome)
		assert.Equal(t, "Education: Bachelor of Engineering", res.reason)
	})

	t.Run("Japanese degree name satisfies university condition", func(t *testing.T) {
		res := eval.checkEducation(universityReq, domain.Education{Degree: "学士（工学）"})
		assert.Equal(t, domain.OutcomeSatisfied, res.outcome)
	})

	t.Run("Missing degree is reported as not provided", func(t *testing.T) {
		res := eval.checkEducation(universityReq, domain.Education{})
		assert.Equal(t, domain.OutcomeUnsatisfied, res.outcome)
		assert.Equal(t, "Current education: not provided", res.reason)
	})

	t.Run("Vocational diploma satisfies vocational condition", func(t *testing.T) {
		req := domain.Requirement{Type: domain.RequirementEducation, Condition: "専門学校卒業"}
		res := eval.checkEducation(req, domain.Education{Degree: "専門士"})
		assert.Equal(t, domain.OutcomeSatisfied, res.outcome)
	})

	t.Run("Related-field condition passes on any major without AI", func(t *testing.T) {
		req := domain.Requirement{Type: domain.RequirementEducation, Condition: "関連分野の専攻"}
		res := eval.checkEducation(req, domain.Education{Major: "Computer Science"})
		assert.Equal(t, domain.OutcomeSatisfied, res.outcome)
		assert.Equal(t, "Major: Computer Science (relevance needs manual confirmation)", res.reason)
	})

	t.Run("Related-field reason defers to AI when available", func(t *testing.T) {
		withAI := &requirementEvaluator{insightAvailable: true}
		req := domain.Requirement{Type: domain.RequirementEducation, Condition: "関連分野の専攻"}
		res := withAI.checkEducation(req, domain.Education{Major: "Computer Science"})
		assert.Equal(t, domain.OutcomeSatisfied, res.outcome)
		assert.Equal(t, "Major: Computer Science (relevance judged by AI analysis)", res.reason)
	})
}

func TestCheckExperience(t *testing.T) {
	eval := &requirementEvaluator{}

	req := domain.Requirement{
		Type:      domain.RequirementExperience,
		Condition: "該当分野での実務経験10年以上",
	}

	t.Run("Total years at threshold satisfies", func(t *testing.T) {
		profile := &domain.ApplicantProfile{Experience: []domain.ExperienceEntry{
			{Years: 6, Field: "cooking"},
			{Years: 4, Field: "cooking"},
		}}
		res := eval.checkExperience(req, profile)
		assert.Equal(t, domain.OutcomeSatisfied, res.outcome)
		assert.Equal(t, "Work experience: 10 years", res.reason)
	})

	t.Run("Below threshold reports both actual and required years", func(t *testing.T) {
		profile := &domain.ApplicantProfile{Experience: []domain.ExperienceEntry{{Years: 5}}}
		res := eval.checkExperience(req, profile)
		assert.Equal(t, domain.OutcomeUnsatisfied, res.outcome)
		assert.Equal(t, "Work experience: 5 years (10 years required)", res.reason)
	})

	t.Run("English year units are parsed", func(t *testing.T) {
		englishReq := domain.Requirement{Type: domain.RequirementExperience, Condition: "At least 3 years of professional experience"}
		profile := &domain.ApplicantProfile{Experience: []domain.ExperienceEntry{{Years: 3}}}
		res := eval.checkExperience(englishReq, profile)
		assert.Equal(t, domain.OutcomeSatisfied, res.outcome)
	})

	t.Run("Condition without a numeric threshold is indeterminate", func(t *testing.T) {
		vague := domain.Requirement{Type: domain.RequirementExperience, Condition: "十分な実務経験"}
		res := eval.checkExperience(vague, &domain.ApplicantProfile{})
		assert.Equal(t, domain.OutcomeIndeterminate, res.outcome)
	})
}

func TestCheckSalary(t *testing.T) {
	eval := &requirementEvaluator{}

	t.Run("Parity condition compares against fixed floor", func(t *testing.T) {
		req := domain.Requirement{Type: domain.RequirementSalary, Condition: "日本人が従事する場合に受ける報酬と同等額以上"}

		res := eval.checkSalary(req, 250000)
		assert.Equal(t, domain.OutcomeSatisfied, res.outcome)

		res = eval.checkSalary(req, 200000)
		assert.Equal(t, domain.OutcomeUnsatisfied, res.outcome)
		assert.Contains(t, res.reason, "may be below the standard")
	})

	t.Run("Explicit 万円 amount is converted to yen", func(t *testing.T) {
		req := domain.Requirement{Type: domain.RequirementSalary, Condition: "年収300万円以上（ポイント加算の基準）"}

		res := eval.checkSalary(req, 3000000)
		assert.Equal(t, domain.OutcomeSatisfied, res.outcome)

		res = eval.checkSalary(req, 2500000)
		assert.Equal(t, domain.OutcomeUnsatisfied, res.outcome)
		assert.Equal(t, "Monthly salary: ¥2500000 (¥3000000 required)", res.reason)
	})

	t.Run("No parseable threshold is not a failure", func(t *testing.T) {
		req := domain.Requirement{Type: domain.RequirementSalary, Condition: "適切な報酬"}
		res := eval.checkSalary(req, 0)
		assert.Equal(t, domain.OutcomeSatisfied, res.outcome)
		assert.Equal(t, "salary requirement needs detailed confirmation", res.reason)
	})
}

func TestCheckQualifications(t *testing.T) {
	eval := &requirementEvaluator{}

	t.Run("JLPT condition matched by held level", func(t *testing.T) {
		req := domain.Requirement{Type: domain.RequirementQualification, Condition: "日本語能力試験N4以上または国際交流基金日本語基礎テストに合格"}

		res := eval.checkQualifications(req, []string{"JLPT N2"})
		assert.Equal(t, domain.OutcomeSatisfied, res.outcome)

		res = eval.checkQualifications(req, []string{"basic cooking license"})
		assert.Equal(t, domain.OutcomeUnsatisfied, res.outcome)
		assert.Equal(t, "JLPT N4 or higher is required", res.reason)
	})

	t.Run("Skills evaluation exam condition", func(t *testing.T) {
		req := domain.Requirement{Type: domain.RequirementQualification, Condition: "特定産業分野の技能評価試験に合格"}

		res := eval.checkQualifications(req, []string{"介護技能評価試験合格"})
		assert.Equal(t, domain.OutcomeSatisfied, res.outcome)

		res = eval.checkQualifications(req, nil)
		assert.Equal(t, domain.OutcomeUnsatisfied, res.outcome)
	})

	t.Run("Generic condition passes when any qualification exists", func(t *testing.T) {
		req := domain.Requirement{Type: domain.RequirementQualification, Condition: "業務に関する資格"}

		res := eval.checkQualifications(req, []string{"driver license"})
		assert.Equal(t, domain.OutcomeSatisfied, res.outcome)

		res = eval.checkQualifications(req, nil)
		assert.Equal(t, domain.OutcomeUnsatisfied, res.outcome)
	})
}

func TestCheckCompany(t *testing.T) {
	eval := &requirementEvaluator{}

	t.Run("Company data present", func(t *testing.T) {
		res := eval.checkCompany(map[string]string{"name": "Example KK"})
		assert.Equal(t, domain.OutcomeSatisfied, res.outcome)
	})

	t.Run("Absent company data is indeterminate, not a failure", func(t *testing.T) {
		res := eval.checkCompany(nil)
		assert.Equal(t, domain.OutcomeIndeterminate, res.outcome)
	})
}

func TestEvaluateUnknownType(t *testing.T) {
	eval := &requirementEvaluator{}
	req := domain.Requirement{Type: domain.RequirementOther, Condition: "単純労働でないこと"}
	res := eval.evaluate(req, &domain.ApplicantProfile{})
	assert.Equal(t, domain.OutcomeIndeterminate, res.outcome)
	assert.Equal(t, "manual review needed", res.reason)
}
