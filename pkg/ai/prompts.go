package ai

import (
	"encoding/json"
	"fmt"

	"go-visa-diagnosis-backend/internal/domain"
)

// buildMajorRelevancePrompt asks for a structured judgment on how the
// academic major relates to the target job.
func buildMajorRelevancePrompt(major, jobField, duties string) string {
	jobInfo := ""
	if duties != "" {
		jobInfo = fmt.Sprintf("\nJob duties: %s", duties)
	}

	return fmt.Sprintf(`You are an expert in Japanese residence-status (visa) screening.
Evaluate how relevant the following academic major is to the target occupation.

Major: %s
Occupation: %s%s

Scoring bands:
- Directly relevant (90-100): the major's knowledge applies directly to the duties
- Relevant (70-89): part of the major's knowledge applies to the duties
- Somewhat relevant (50-69): indirectly useful knowledge
- Low relevance (0-49): almost no connection

Respond with ONLY valid JSON in this exact format (no markdown, no commentary):
{
    "score": <integer 0-100>,
    "level": "<high/moderate/low>",
    "reason": "<one or two sentences explaining the relevance>",
    "recommendation": "<advice for the residence-status application>"
}`, major, jobField, jobInfo)
}

// buildJobSuitabilityPrompt asks whether the duties are professional
// work rather than manual labor for the given visa category.
func buildJobSuitabilityPrompt(duties, visaName string) string {
	return fmt.Sprintf(`You are an expert in Japanese residence-status (visa) screening.
Analyze whether the following job duties qualify for the residence status %q.

Job duties:
%s

Requirements of this residence status:
- Work requiring specialized knowledge or skills learned at a university or equivalent
- Not simple manual labor
- Intellectual work involving judgment, planning, or design

Respond with ONLY valid JSON in this exact format (no markdown, no commentary):
{
    "is_suitable": <true/false>,
    "professional_score": <integer 0-100>,
    "concerns": [<list of concerns>],
    "strengths": [<list of strengths>],
    "recommendations": [<list of improvement suggestions>]
}`, visaName, duties)
}

// buildImprovementPrompt asks for concrete suggestions addressing the
// applicant's missing requirements.
func buildImprovementPrompt(profile *domain.ApplicantProfile, missing []domain.MissingItem) string {
	missingJSON, _ := json.MarshalIndent(missing, "", "  ")

	return fmt.Sprintf(`You are a consultant specializing in Japanese residence-status applications.

Applicant:
- Education: %s
- Major: %s
- Years of experience: %d
- Occupation: %s
- Monthly salary: %d yen

Missing requirements:
%s

Propose 3-5 concrete, actionable suggestions to satisfy these missing requirements, as a bulleted list. Start each suggestion with "- ".`,
		valueOr(profile.Education.Degree, "not provided"),
		valueOr(profile.Education.Major, "not provided"),
		profile.TotalExperienceYears(),
		valueOr(profile.JobDetails.Position, "not provided"),
		profile.Salary,
		string(missingJSON))
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
