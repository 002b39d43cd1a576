package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"go-visa-diagnosis-backend/internal/domain"
	"go-visa-diagnosis-backend/pkg/apperror"
	"go-visa-diagnosis-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// topRecommendationCount caps the highlighted portion of the ranking.
const topRecommendationCount = 3

// consultationThreshold: below this top score a professional
// consultation step is appended.
const consultationThreshold = 70

type diagnosisUsecase struct {
	catalogRepo domain.CatalogRepository
	sessionRepo domain.SessionRepository
	insight     domain.InsightAnalyzer
	validate    *validator.Validate
	aiTimeout   time.Duration
}

func NewDiagnosisUsecase(
	catalogRepo domain.CatalogRepository,
	sessionRepo domain.SessionRepository,
	insight domain.InsightAnalyzer,
	validate *validator.Validate,
	aiTimeout time.Duration,
) domain.DiagnosisUsecase {
	return &diagnosisUsecase{
		catalogRepo: catalogRepo,
		sessionRepo: sessionRepo,
		insight:     insight,
		validate:    validate,
		aiTimeout:   aiTimeout,
	}
}

// Diagnose runs the full pipeline: prefilter candidates, score every
// surviving category, rank, and compose the report. Missing profile
// fields are never an error; only a malformed profile is rejected.
func (u *diagnosisUsecase) Diagnose(ctx context.Context, profile *domain.ApplicantProfile) (*domain.DiagnosisResult, error) {
	if err := u.validate.Struct(profile); err != nil {
		return nil, apperror.BadRequest("Invalid applicant profile: " + err.Error())
	}

	candidateIDs := u.filterCandidates(ctx, profile.JobDetails)

	categories, err := u.catalogRepo.ListActiveCategories(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	eval := &requirementEvaluator{insightAvailable: u.insight.Available()}

	var results []domain.VisaMatch
	for _, cat := range categories {
		if candidateIDs != nil && !candidateIDs[cat.ID] {
			continue
		}

		reqs, err := u.catalogRepo.ListRequirements(ctx, cat.ID)
		if err != nil {
			return nil, apperror.Internal(err)
		}

		sc := scoreRequirements(reqs, profile, eval)
		if sc.Total <= 0 {
			continue
		}

		docs, err := u.catalogRepo.ListMandatoryDocuments(ctx, cat.ID)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		docInfos := make([]domain.DocumentInfo, 0, len(docs))
		for _, d := range docs {
			docInfos = append(docInfos, domain.DocumentInfo{Name: d.Name, Description: d.Description, URL: d.URL})
		}

		results = append(results, domain.VisaMatch{
			Category: domain.CategoryRef{
				ID:          cat.ID,
				Code:        cat.Code,
				NameJA:      cat.NameJA,
				NameEN:      cat.NameEN,
				Description: cat.Description,
			},
			MatchScore:          sc.Total,
			RequirementsStatus:  sc.Details,
			MissingItems:        sc.Missing,
			RecommendationLevel: recommendationLevel(sc.Total),
			ApprovalProbability: approvalProbability(sc.Total, sc.Missing),
			RequiredDocuments:   docInfos,
		})
	}

	// Stable sort: equal scores keep catalog iteration order.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchScore > results[j].MatchScore
	})

	top := results
	if len(top) > topRecommendationCount {
		top = top[:topRecommendationCount]
	}

	result := &domain.DiagnosisResult{
		DiagnosisID:        newDiagnosisID(),
		ApplicantSummary:   buildApplicantSummary(profile),
		TopRecommendations: top,
		AllOptions:         results,
		AnalysisSummary:    buildAnalysisSummary(results),
		NextSteps:          buildNextSteps(results),
		AIAnalysis:         u.performInsightAnalysis(ctx, profile, results),
	}

	u.persistSession(ctx, profile, result)

	return result, nil
}

// filterCandidates narrows the catalog using the industry/job mapping
// table. A nil return means "no restriction": every active category gets
// scored. The prefilter is an optimization, never a correctness gate, so
// lookup errors degrade to a full scan.
func (u *diagnosisUsecase) filterCandidates(ctx context.Context, job domain.JobDetails) map[int64]bool {
	if job.Industry == "" && job.Position == "" {
		return nil
	}

	mappings, err := u.catalogRepo.FindMappings(ctx, job.Industry, job.Position)
	if err != nil {
		logger.Log.Warn("Candidate prefilter lookup failed, scoring full catalog", "error", err)
		return nil
	}
	if len(mappings) == 0 {
		return nil
	}

	ids := make(map[int64]bool, len(mappings))
	for _, m := range mappings {
		ids[m.VisaCategoryID] = true
	}
	return ids
}

func buildApplicantSummary(profile *domain.ApplicantProfile) domain.ApplicantSummary {
	summary := domain.ApplicantSummary{
		Nationality:     profile.Nationality,
		Education:       "not provided",
		ExperienceYears: profile.TotalExperienceYears(),
		TargetJob:       "not provided",
	}
	if summary.Nationality == "" {
		summary.Nationality = "not provided"
	}
	if profile.Education.Degree != "" || profile.Education.Major != "" {
		summary.Education = fmt.Sprintf("%s (major: %s)", profile.Education.Degree, profile.Education.Major)
	}
	if profile.JobDetails.Industry != "" || profile.JobDetails.Position != "" {
		summary.TargetJob = fmt.Sprintf("%s - %s", profile.JobDetails.Industry, profile.JobDetails.Position)
	}
	return summary
}

func buildAnalysisSummary(results []domain.VisaMatch) string {
	if len(results) == 0 {
		return "No matching residence status was found for the provided information. Please review the submitted details."
	}

	top := results[0]

	summary := fmt.Sprintf("Application under %q is recommended (match score %d, %s).",
		top.Category.DisplayName(), top.MatchScore, top.RecommendationLevel)

	if len(top.MissingItems) > 0 {
		summary += fmt.Sprintf(" However, %d requirement(s) are not yet met.", len(top.MissingItems))
	} else {
		summary += " All mandatory requirements are satisfied."
	}
	return summary
}

func buildNextSteps(results []domain.VisaMatch) []string {
	if len(results) == 0 {
		return []string{"Please re-check the submitted applicant information."}
	}

	top := results[0]
	var steps []string

	if len(top.RequiredDocuments) > 0 {
		steps = append(steps, fmt.Sprintf("Prepare the required documents (%d items)", len(top.RequiredDocuments)))
	}
	if len(top.MissingItems) > 0 {
		steps = append(steps, "Address the missing requirements")
	}
	steps = append(steps, "Prepare the Certificate of Eligibility application")
	if top.MatchScore < consultationThreshold {
		steps = append(steps, "Consult a licensed immigration specialist")
	}
	return steps
}

// performInsightAnalysis enriches the report with language-model
// judgments. The analyzer degrades internally, so a failed or disabled
// capability can never abort or alter the deterministic diagnosis.
func (u *diagnosisUsecase) performInsightAnalysis(ctx context.Context, profile *domain.ApplicantProfile, results []domain.VisaMatch) domain.AIAnalysis {
	if !u.insight.Available() {
		return domain.AIAnalysis{
			Enabled: false,
			Message: "AI analysis is disabled. Set ANTHROPIC_API_KEY and ENABLE_AI_FEATURES to enable it.",
		}
	}

	ctx, cancel := context.WithTimeout(ctx, u.aiTimeout)
	defer cancel()

	analysis := domain.AIAnalysis{Enabled: true}

	major := profile.Education.Major
	position := profile.JobDetails.Position
	duties := profile.JobDetails.Duties

	if major != "" && position != "" {
		analysis.MajorRelevance = u.insight.MajorRelevance(ctx, major, position, duties)
	}

	if duties != "" && len(results) > 0 {
		analysis.JobSuitability = u.insight.JobSuitability(ctx, duties, results[0].Category.DisplayName())
	}

	if len(results) > 0 {
		analysis.ImprovementSuggestions = u.insight.ImprovementSuggestions(ctx, profile, results[0].MissingItems)
	}

	return analysis
}

// persistSession writes the diagnosis to the fire-and-forget session
// sink. Sink failures are logged and swallowed; durability is never a
// precondition for returning the result.
func (u *diagnosisUsecase) persistSession(ctx context.Context, profile *domain.ApplicantProfile, result *domain.DiagnosisResult) {
	session := &domain.DiagnosisSession{
		SessionID:     uuid.NewString(),
		Status:        domain.SessionCompleted,
		ApplicantData: *profile,
		Result:        result,
		CreatedAt:     time.Now(),
	}
	result.SessionID = session.SessionID

	if err := u.sessionRepo.Create(ctx, session); err != nil {
		logger.Log.Warn("Failed to persist diagnosis session", "session_id", session.SessionID, "error", err)
	}
}

// newDiagnosisID builds a timestamped identifier with a random suffix.
// Uniqueness is best-effort; collisions are tolerable.
func newDiagnosisID() string {
	return fmt.Sprintf("DIAG-%s-%04d", time.Now().Format("20060102150405"), rand.Intn(9000)+1000)
}
