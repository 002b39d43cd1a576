package usecase

import (
	"context"
	"time"

	"go-visa-diagnosis-backend/internal/domain"
	"go-visa-diagnosis-backend/pkg/apperror"
)

type catalogUsecase struct {
	catalogRepo domain.CatalogRepository
	adminRepo   domain.CatalogAdminRepository
}

func NewCatalogUsecase(catalogRepo domain.CatalogRepository, adminRepo domain.CatalogAdminRepository) domain.CatalogUsecase {
	return &catalogUsecase{
		catalogRepo: catalogRepo,
		adminRepo:   adminRepo,
	}
}

func (u *catalogUsecase) ListActiveCategories(ctx context.Context) ([]domain.VisaCategory, error) {
	return u.catalogRepo.ListActiveCategories(ctx)
}

func (u *catalogUsecase) GetCategoryDetail(ctx context.Context, id int64) (*domain.VisaCategoryDetail, error) {
	category, err := u.catalogRepo.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	requirements, err := u.catalogRepo.ListRequirements(ctx, id)
	if err != nil {
		return nil, err
	}
	documents, err := u.catalogRepo.ListMandatoryDocuments(ctx, id)
	if err != nil {
		return nil, err
	}

	return &domain.VisaCategoryDetail{
		VisaCategory: *category,
		Requirements: requirements,
		Documents:    documents,
	}, nil
}

func (u *catalogUsecase) CreateCategory(ctx context.Context, category *domain.VisaCategory) error {
	if category.Code == "" {
		return apperror.BadRequest("Code is required")
	}
	if category.NameJA == "" && category.NameEN == "" {
		return apperror.BadRequest("At least one display name is required")
	}

	category.CreatedAt = time.Now()
	category.UpdatedAt = time.Now()

	return u.adminRepo.CreateCategory(ctx, category)
}

func (u *catalogUsecase) UpdateCategory(ctx context.Context, category *domain.VisaCategory) error {
	if category.Code == "" {
		return apperror.BadRequest("Code is required")
	}

	category.UpdatedAt = time.Now()

	return u.adminRepo.UpdateCategory(ctx, category)
}

func (u *catalogUsecase) DeleteCategory(ctx context.Context, id int64) error {
	return u.adminRepo.DeleteCategory(ctx, id)
}

func (u *catalogUsecase) AddRequirement(ctx context.Context, req *domain.Requirement) error {
	switch req.Type {
	case domain.RequirementEducation, domain.RequirementExperience, domain.RequirementQualification,
		domain.RequirementSalary, domain.RequirementCompany, domain.RequirementOther:
	default:
		return apperror.BadRequest("Unknown requirement type: " + req.Type)
	}
	if req.Condition == "" {
		return apperror.BadRequest("Condition is required")
	}

	return u.adminRepo.CreateRequirement(ctx, req)
}

func (u *catalogUsecase) AddDocument(ctx context.Context, doc *domain.DocumentRequirement) error {
	if doc.Name == "" {
		return apperror.BadRequest("Document name is required")
	}

	return u.adminRepo.CreateDocument(ctx, doc)
}

func (u *catalogUsecase) AddMapping(ctx context.Context, mapping *domain.IndustryMapping) error {
	if mapping.Industry == "" || mapping.JobCategory == "" {
		return apperror.BadRequest("Industry and job category are required")
	}
	if mapping.MatchScore < 0 || mapping.MatchScore > 100 {
		return apperror.BadRequest("Match score must be between 0 and 100")
	}

	return u.adminRepo.CreateMapping(ctx, mapping)
}
