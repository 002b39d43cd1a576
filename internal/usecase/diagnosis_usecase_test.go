package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-visa-diagnosis-backend/internal/domain"
	"go-visa-diagnosis-backend/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock Repositories
type MockCatalogRepo struct {
	mock.Mock
}

func (m *MockCatalogRepo) ListActiveCategories(ctx context.Context) ([]domain.VisaCategory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VisaCategory), args.Error(1)
}

func (m *MockCatalogRepo) GetCategory(ctx context.Context, id int64) (*domain.VisaCategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VisaCategory), args.Error(1)
}

func (m *MockCatalogRepo) ListRequirements(ctx context.Context, categoryID int64) ([]domain.Requirement, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Requirement), args.Error(1)
}

func (m *MockCatalogRepo) ListMandatoryDocuments(ctx context.Context, categoryID int64) ([]domain.DocumentRequirement, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DocumentRequirement), args.Error(1)
}

func (m *MockCatalogRepo) FindMappings(ctx context.Context, industry, jobCategory string) ([]domain.IndustryMapping, error) {
	args := m.Called(ctx, industry, jobCategory)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.IndustryMapping), args.Error(1)
}

type MockSessionRepo struct {
	mock.Mock
}

func (m *MockSessionRepo) Create(ctx context.Context, session *domain.DiagnosisSession) error {
	return m.Called(ctx, session).Error(0)
}

// stubAnalyzer is a canned InsightAnalyzer for orchestrator tests.
type stubAnalyzer struct {
	available bool
}

func (s *stubAnalyzer) Available() bool { return s.available }

func (s *stubAnalyzer) MajorRelevance(ctx context.Context, major, jobField, duties string) *domain.MajorRelevance {
	return &domain.MajorRelevance{Score: 90, Level: "high", Reason: "directly related"}
}

func (s *stubAnalyzer) JobSuitability(ctx context.Context, duties, visaName string) *domain.JobSuitability {
	suitable := true
	return &domain.JobSuitability{IsSuitable: &suitable, ProfessionalScore: 85}
}

func (s *stubAnalyzer) ImprovementSuggestions(ctx context.Context, profile *domain.ApplicantProfile, missing []domain.MissingItem) string {
	return "canned suggestions"
}

func engineerCategory() domain.VisaCategory {
	return domain.VisaCategory{
		ID:     1,
		Code:   "engineer_specialist",
		NameJA: "技術・人文知識・国際業務",
		NameEN: "Engineer/Specialist in Humanities/International Services",
	}
}

func skilledCategory() domain.VisaCategory {
	return domain.VisaCategory{ID: 2, Code: "skilled_labor", NameJA: "技能", NameEN: "Skilled Labor"}
}

func newUsecase(catalog *MockCatalogRepo, sessions *MockSessionRepo, insight domain.InsightAnalyzer) domain.DiagnosisUsecase {
	return usecase.NewDiagnosisUsecase(catalog, sessions, insight, validator.New(), time.Second)
}

func TestDiagnoseRanking(t *testing.T) {
	catalog := new(MockCatalogRepo)
	sessions := new(MockSessionRepo)
	uc := newUsecase(catalog, sessions, &stubAnalyzer{})

	catalog.On("ListActiveCategories", mock.Anything).
		Return([]domain.VisaCategory{engineerCategory(), skilledCategory()}, nil)
	// Engineer: one mandatory education rule the applicant satisfies.
	catalog.On("ListRequirements", mock.Anything, int64(1)).Return([]domain.Requirement{
		{VisaCategoryID: 1, Type: domain.RequirementEducation, Condition: "大学卒業以上", IsMandatory: true},
	}, nil)
	// Skilled: rule set not entered yet, scores the fixed midpoint.
	catalog.On("ListRequirements", mock.Anything, int64(2)).Return([]domain.Requirement{}, nil)
	catalog.On("ListMandatoryDocuments", mock.Anything, int64(1)).Return([]domain.DocumentRequirement{
		{VisaCategoryID: 1, Name: "卒業証明書", IsMandatory: true},
	}, nil)
	catalog.On("ListMandatoryDocuments", mock.Anything, int64(2)).Return([]domain.DocumentRequirement{}, nil)
	sessions.On("Create", mock.Anything, mock.Anything).Return(nil)

	profile := &domain.ApplicantProfile{
		Nationality: "Vietnam",
		Education:   domain.Education{Degree: "Bachelor of Engineering", Major: "Computer Science"},
	}

	result, err := uc.Diagnose(context.Background(), profile)
	assert.NoError(t, err)
	assert.Len(t, result.AllOptions, 2)

	// 100-point engineer match ranks above the 50-point placeholder.
	assert.Equal(t, "engineer_specialist", result.AllOptions[0].Category.Code)
	assert.Equal(t, 100, result.AllOptions[0].MatchScore)
	assert.Equal(t, 50, result.AllOptions[1].MatchScore)
	assert.Len(t, result.TopRecommendations, 2)

	assert.Contains(t, result.AnalysisSummary, "Engineer/Specialist")
	assert.Contains(t, result.AnalysisSummary, "All mandatory requirements are satisfied")
	assert.NotEmpty(t, result.DiagnosisID)
	assert.NotEmpty(t, result.SessionID)

	// AI is off: the block says so and carries no judgments.
	assert.False(t, result.AIAnalysis.Enabled)
	assert.NotEmpty(t, result.AIAnalysis.Message)
	assert.Nil(t, result.AIAnalysis.MajorRelevance)

	sessions.AssertCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDiagnosePrefilter(t *testing.T) {
	t.Run("Mappings restrict the scored set", func(t *testing.T) {
		catalog := new(MockCatalogRepo)
		sessions := new(MockSessionRepo)
		uc := newUsecase(catalog, sessions, &stubAnalyzer{})

		catalog.On("FindMappings", mock.Anything, "IT・ソフトウェア", "システムエンジニア").
			Return([]domain.IndustryMapping{{VisaCategoryID: 1, MatchScore: 95}}, nil)
		catalog.On("ListActiveCategories", mock.Anything).
			Return([]domain.VisaCategory{engineerCategory(), skilledCategory()}, nil)
		catalog.On("ListRequirements", mock.Anything, int64(1)).Return([]domain.Requirement{}, nil)
		catalog.On("ListMandatoryDocuments", mock.Anything, int64(1)).Return([]domain.DocumentRequirement{}, nil)
		sessions.On("Create", mock.Anything, mock.Anything).Return(nil)

		profile := &domain.ApplicantProfile{
			JobDetails: domain.JobDetails{Industry: "IT・ソフトウェア", Position: "システムエンジニア"},
		}

		result, err := uc.Diagnose(context.Background(), profile)
		assert.NoError(t, err)
		assert.Len(t, result.AllOptions, 1)
		assert.Equal(t, "engineer_specialist", result.AllOptions[0].Category.Code)
		catalog.AssertNotCalled(t, "ListRequirements", mock.Anything, int64(2))
	})

	t.Run("Empty job details skip the mapping lookup", func(t *testing.T) {
		catalog := new(MockCatalogRepo)
		sessions := new(MockSessionRepo)
		uc := newUsecase(catalog, sessions, &stubAnalyzer{})

		catalog.On("ListActiveCategories", mock.Anything).
			Return([]domain.VisaCategory{skilledCategory()}, nil)
		catalog.On("ListRequirements", mock.Anything, int64(2)).Return([]domain.Requirement{}, nil)
		catalog.On("ListMandatoryDocuments", mock.Anything, int64(2)).Return([]domain.DocumentRequirement{}, nil)
		sessions.On("Create", mock.Anything, mock.Anything).Return(nil)

		_, err := uc.Diagnose(context.Background(), &domain.ApplicantProfile{})
		assert.NoError(t, err)
		catalog.AssertNotCalled(t, "FindMappings", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Mapping lookup failure degrades to full scan", func(t *testing.T) {
		catalog := new(MockCatalogRepo)
		sessions := new(MockSessionRepo)
		uc := newUsecase(catalog, sessions, &stubAnalyzer{})

		catalog.On("FindMappings", mock.Anything, "IT", "engineer").
			Return(nil, errors.New("connection reset"))
		catalog.On("ListActiveCategories", mock.Anything).
			Return([]domain.VisaCategory{engineerCategory(), skilledCategory()}, nil)
		catalog.On("ListRequirements", mock.Anything, mock.Anything).Return([]domain.Requirement{}, nil)
		catalog.On("ListMandatoryDocuments", mock.Anything, mock.Anything).Return([]domain.DocumentRequirement{}, nil)
		sessions.On("Create", mock.Anything, mock.Anything).Return(nil)

		profile := &domain.ApplicantProfile{JobDetails: domain.JobDetails{Industry: "IT", Position: "engineer"}}
		result, err := uc.Diagnose(context.Background(), profile)
		assert.NoError(t, err)
		assert.Len(t, result.AllOptions, 2)
	})
}

func TestDiagnoseNoMatch(t *testing.T) {
	catalog := new(MockCatalogRepo)
	sessions := new(MockSessionRepo)
	uc := newUsecase(catalog, sessions, &stubAnalyzer{})

	catalog.On("ListActiveCategories", mock.Anything).Return([]domain.VisaCategory{}, nil)
	sessions.On("Create", mock.Anything, mock.Anything).Return(nil)

	result, err := uc.Diagnose(context.Background(), &domain.ApplicantProfile{})
	assert.NoError(t, err)
	assert.Empty(t, result.AllOptions)
	assert.Contains(t, result.AnalysisSummary, "No matching residence status")
	assert.Equal(t, []string{"Please re-check the submitted applicant information."}, result.NextSteps)
}

func TestDiagnoseSessionFailureSwallowed(t *testing.T) {
	catalog := new(MockCatalogRepo)
	sessions := new(MockSessionRepo)
	uc := newUsecase(catalog, sessions, &stubAnalyzer{})

	catalog.On("ListActiveCategories", mock.Anything).Return([]domain.VisaCategory{skilledCategory()}, nil)
	catalog.On("ListRequirements", mock.Anything, int64(2)).Return([]domain.Requirement{}, nil)
	catalog.On("ListMandatoryDocuments", mock.Anything, int64(2)).Return([]domain.DocumentRequirement{}, nil)
	sessions.On("Create", mock.Anything, mock.Anything).Return(errors.New("insert failed"))

	result, err := uc.Diagnose(context.Background(), &domain.ApplicantProfile{})
	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.NotEmpty(t, result.SessionID)
}

func TestDiagnoseInvalidProfile(t *testing.T) {
	catalog := new(MockCatalogRepo)
	sessions := new(MockSessionRepo)
	uc := newUsecase(catalog, sessions, &stubAnalyzer{})

	profile := &domain.ApplicantProfile{Salary: -1}
	_, err := uc.Diagnose(context.Background(), profile)
	assert.Error(t, err)
	catalog.AssertNotCalled(t, "ListActiveCategories", mock.Anything)
}

func TestDiagnoseCatalogFailure(t *testing.T) {
	catalog := new(MockCatalogRepo)
	sessions := new(MockSessionRepo)
	uc := newUsecase(catalog, sessions, &stubAnalyzer{})

	catalog.On("ListActiveCategories", mock.Anything).Return(nil, errors.New("db down"))

	_, err := uc.Diagnose(context.Background(), &domain.ApplicantProfile{})
	assert.Error(t, err)
	sessions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDiagnoseDeterminism(t *testing.T) {
	catalog := new(MockCatalogRepo)
	sessions := new(MockSessionRepo)
	uc := newUsecase(catalog, sessions, &stubAnalyzer{})

	alt := "実務経験10年以上で代替可能"
	catalog.On("ListActiveCategories", mock.Anything).
		Return([]domain.VisaCategory{engineerCategory(), skilledCategory()}, nil)
	catalog.On("ListRequirements", mock.Anything, int64(1)).Return([]domain.Requirement{
		{VisaCategoryID: 1, Type: domain.RequirementEducation, Condition: "大学卒業以上", IsMandatory: true,
			AlternativeCondition: alt, AlternativeOK: true},
		{VisaCategoryID: 1, Type: domain.RequirementSalary, Condition: "日本人が従事する場合に受ける報酬と同等額以上", IsMandatory: true},
	}, nil)
	catalog.On("ListRequirements", mock.Anything, int64(2)).Return([]domain.Requirement{
		{VisaCategoryID: 2, Type: domain.RequirementExperience, Condition: "該当分野での実務経験10年以上", IsMandatory: true},
	}, nil)
	catalog.On("ListMandatoryDocuments", mock.Anything, mock.Anything).Return([]domain.DocumentRequirement{}, nil)
	sessions.On("Create", mock.Anything, mock.Anything).Return(nil)

	profile := &domain.ApplicantProfile{
		Nationality: "Vietnam",
		Experience:  []domain.ExperienceEntry{{Years: 12, Field: "cooking"}},
		Salary:      250000,
	}

	first, err := uc.Diagnose(context.Background(), profile)
	assert.NoError(t, err)
	second, err := uc.Diagnose(context.Background(), profile)
	assert.NoError(t, err)

	// Same profile in, same verdict out: only the per-run identifiers may
	// differ between invocations.
	assert.Len(t, second.AllOptions, len(first.AllOptions))
	for i := range first.AllOptions {
		assert.Equal(t, first.AllOptions[i].Category.Code, second.AllOptions[i].Category.Code)
		assert.Equal(t, first.AllOptions[i].MatchScore, second.AllOptions[i].MatchScore)
		assert.Equal(t, first.AllOptions[i].MissingItems, second.AllOptions[i].MissingItems)
		assert.Equal(t, first.AllOptions[i].RequirementsStatus, second.AllOptions[i].RequirementsStatus)
		assert.Equal(t, first.AllOptions[i].ApprovalProbability, second.AllOptions[i].ApprovalProbability)
	}
	assert.Equal(t, first.TopRecommendations, second.TopRecommendations)
	assert.Equal(t, first.AnalysisSummary, second.AnalysisSummary)
	assert.Equal(t, first.NextSteps, second.NextSteps)
}

func TestDiagnoseSummaryNameFallback(t *testing.T) {
	catalog := new(MockCatalogRepo)
	sessions := new(MockSessionRepo)
	uc := newUsecase(catalog, sessions, &stubAnalyzer{})

	// Category entered with a Japanese name only.
	catalog.On("ListActiveCategories", mock.Anything).
		Return([]domain.VisaCategory{{ID: 2, Code: "skilled_labor", NameJA: "技能"}}, nil)
	catalog.On("ListRequirements", mock.Anything, int64(2)).Return([]domain.Requirement{}, nil)
	catalog.On("ListMandatoryDocuments", mock.Anything, int64(2)).Return([]domain.DocumentRequirement{}, nil)
	sessions.On("Create", mock.Anything, mock.Anything).Return(nil)

	result, err := uc.Diagnose(context.Background(), &domain.ApplicantProfile{})
	assert.NoError(t, err)
	assert.Contains(t, result.AnalysisSummary, "技能")
}

func TestDiagnoseWithInsightEnabled(t *testing.T) {
	catalog := new(MockCatalogRepo)
	sessions := new(MockSessionRepo)
	uc := newUsecase(catalog, sessions, &stubAnalyzer{available: true})

	catalog.On("ListActiveCategories", mock.Anything).Return([]domain.VisaCategory{engineerCategory()}, nil)
	catalog.On("ListRequirements", mock.Anything, int64(1)).Return([]domain.Requirement{
		{VisaCategoryID: 1, Type: domain.RequirementEducation, Condition: "大学卒業以上", IsMandatory: true},
	}, nil)
	catalog.On("ListMandatoryDocuments", mock.Anything, int64(1)).Return([]domain.DocumentRequirement{}, nil)
	sessions.On("Create", mock.Anything, mock.Anything).Return(nil)

	profile := &domain.ApplicantProfile{
		Education:  domain.Education{Degree: "Bachelor of Engineering", Major: "Computer Science"},
		JobDetails: domain.JobDetails{Position: "Backend Engineer", Duties: "API development in Go"},
	}

	result, err := uc.Diagnose(context.Background(), profile)
	assert.NoError(t, err)
	assert.True(t, result.AIAnalysis.Enabled)
	assert.NotNil(t, result.AIAnalysis.MajorRelevance)
	assert.Equal(t, 90, result.AIAnalysis.MajorRelevance.Score)
	assert.NotNil(t, result.AIAnalysis.JobSuitability)
	assert.Equal(t, "canned suggestions", result.AIAnalysis.ImprovementSuggestions)
}
