package usecase

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"go-visa-diagnosis-backend/internal/domain"
)

// Condition text patterns. Catalog conditions are written in Japanese or
// English, so both unit markers are matched.
var (
	yearsPattern  = regexp.MustCompile(`(\d+)\s*(?:年|years?)`)
	amountPattern = regexp.MustCompile(`(\d+)\s*万円`)
)

// minParitySalary is the monthly floor applied to "equal to Japanese
// nationals" salary conditions.
const minParitySalary = 220000

// Keyword groups for education conditions and applicant degrees.
var (
	universityMarkers = []string{"大学", "学士", "university", "bachelor"}
	vocationalMarkers = []string{"専門学校", "vocational school"}
	relatedMarkers    = []string{"関連", "専攻", "related", "major"}

	degreeKeywords     = []string{"学士", "修士", "博士", "bachelor", "master", "phd", "doctor"}
	vocationalKeywords = []string{"専門", "専修", "diploma", "vocational"}

	jlptLevels = []string{"N1", "N2", "N3", "N4"}
)

// evalResult is a tri-state outcome plus the reason string used verbatim
// in the diagnosis report.
type evalResult struct {
	outcome domain.Outcome
	reason  string
}

// requirementEvaluator classifies a single requirement against one slice
// of applicant data. Each check is a pure function of (requirement,
// profile); insightAvailable only changes the related-major reason text.
type requirementEvaluator struct {
	insightAvailable bool
}

func (e *requirementEvaluator) evaluate(req domain.Requirement, profile *domain.ApplicantProfile) evalResult {
	switch req.Type {
	case domain.RequirementEducation:
		return e.checkEducation(req, profile.Education)
	case domain.RequirementExperience:
		return e.checkExperience(req, profile)
	case domain.RequirementSalary:
		return e.checkSalary(req, profile.Salary)
	case domain.RequirementQualification:
		return e.checkQualifications(req, profile.Qualifications)
	case domain.RequirementCompany:
		return e.checkCompany(profile.CompanyInfo)
	default:
		return evalResult{domain.OutcomeIndeterminate, "manual review needed"}
	}
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func (e *requirementEvaluator) checkEducation(req domain.Requirement, edu domain.Education) evalResult {
	condition := strings.ToLower(req.Condition)
	degree := strings.ToLower(edu.Degree)

	// University graduation or above
	if containsAny(condition, universityMarkers) {
		if containsAny(degree, degreeKeywords) {
			return evalResult{domain.OutcomeSatisfied, fmt.Sprintf("Education: %s", edu.Degree)}
		}
	}

	// Vocational school graduation
	if containsAny(condition, vocationalMarkers) {
		if containsAny(degree, vocationalKeywords) {
			return evalResult{domain.OutcomeSatisfied, fmt.Sprintf("Education: %s", edu.Degree)}
		}
	}

	// Related field of study. Any non-empty major passes here; the actual
	// relevance judgment is deferred to the AI analysis when available.
	if containsAny(condition, relatedMarkers) {
		if edu.Major != "" {
			if e.insightAvailable {
				return evalResult{domain.OutcomeSatisfied, fmt.Sprintf("Major: %s (relevance judged by AI analysis)", edu.Major)}
			}
			return evalResult{domain.OutcomeSatisfied, fmt.Sprintf("Major: %s (relevance needs manual confirmation)", edu.Major)}
		}
	}

	current := edu.Degree
	if current == "" {
		current = "not provided"
	}
	return evalResult{domain.OutcomeUnsatisfied, fmt.Sprintf("Current education: %s", current)}
}

func (e *requirementEvaluator) checkExperience(req domain.Requirement, profile *domain.ApplicantProfile) evalResult {
	totalYears := profile.TotalExperienceYears()

	m := yearsPattern.FindStringSubmatch(req.Condition)
	if m == nil {
		// Never guess when the condition carries no numeric threshold.
		return evalResult{domain.OutcomeIndeterminate, "work experience needs manual check"}
	}

	requiredYears, _ := strconv.Atoi(m[1])
	if totalYears >= requiredYears {
		return evalResult{domain.OutcomeSatisfied, fmt.Sprintf("Work experience: %d years", totalYears)}
	}
	return evalResult{domain.OutcomeUnsatisfied, fmt.Sprintf("Work experience: %d years (%d years required)", totalYears, requiredYears)}
}

func (e *requirementEvaluator) checkSalary(req domain.Requirement, salary int64) evalResult {
	condition := req.Condition

	// Equal-or-above Japanese nationals: compare against the fixed floor.
	if strings.Contains(condition, "日本人と同等") || strings.Contains(condition, "同等以上") ||
		strings.Contains(strings.ToLower(condition), "equal to japanese") {
		if salary >= minParitySalary {
			return evalResult{domain.OutcomeSatisfied, fmt.Sprintf("Monthly salary: ¥%d", salary)}
		}
		return evalResult{domain.OutcomeUnsatisfied, fmt.Sprintf("Monthly salary: ¥%d (may be below the standard)", salary)}
	}

	// Explicit amount in units of 10,000 yen.
	if m := amountPattern.FindStringSubmatch(condition); m != nil {
		n, _ := strconv.Atoi(m[1])
		required := int64(n) * 10000
		if salary >= required {
			return evalResult{domain.OutcomeSatisfied, fmt.Sprintf("Monthly salary: ¥%d", salary)}
		}
		return evalResult{domain.OutcomeUnsatisfied, fmt.Sprintf("Monthly salary: ¥%d (¥%d required)", salary, required)}
	}

	// No parseable threshold is not a failure.
	return evalResult{domain.OutcomeSatisfied, "salary requirement needs detailed confirmation"}
}

func (e *requirementEvaluator) checkQualifications(req domain.Requirement, qualifications []string) evalResult {
	condition := req.Condition

	// Japanese language proficiency test
	if strings.Contains(condition, "N4") || strings.Contains(condition, "JLPT") {
		for _, q := range qualifications {
			if containsAny(q, jlptLevels) {
				return evalResult{domain.OutcomeSatisfied, "Holds a Japanese language proficiency certification"}
			}
		}
		return evalResult{domain.OutcomeUnsatisfied, "JLPT N4 or higher is required"}
	}

	// Specified skilled worker evaluation exam
	if strings.Contains(condition, "特定技能") && strings.Contains(condition, "評価試験") {
		for _, q := range qualifications {
			if strings.Contains(q, "特定技能") || strings.Contains(q, "評価試験") {
				return evalResult{domain.OutcomeSatisfied, "Skills evaluation exam passed"}
			}
		}
		return evalResult{domain.OutcomeUnsatisfied, "Passing the skills evaluation exam is required"}
	}

	// Weakest check: some qualification exists
	if len(qualifications) > 0 {
		return evalResult{domain.OutcomeSatisfied, "Holds qualifications (confirmation needed)"}
	}
	return evalResult{domain.OutcomeUnsatisfied, "No required qualifications"}
}

func (e *requirementEvaluator) checkCompany(companyInfo map[string]string) evalResult {
	// Absence of company data is not proof of non-compliance.
	if len(companyInfo) > 0 {
		return evalResult{domain.OutcomeSatisfied, "Company information confirmed"}
	}
	return evalResult{domain.OutcomeIndeterminate, "Company information needs confirmation"}
}
