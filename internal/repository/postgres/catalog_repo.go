package postgres

import (
	"context"
	"errors"

	"go-visa-diagnosis-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type catalogRepo struct {
	db *pgxpool.Pool
}

// NewCatalogRepository returns the read side of the visa catalog.
func NewCatalogRepository(db *pgxpool.Pool) domain.CatalogRepository {
	return &catalogRepo{db: db}
}

// NewCatalogAdminRepository returns the write side used by the admin
// endpoints and the seeding command.
func NewCatalogAdminRepository(db *pgxpool.Pool) domain.CatalogAdminRepository {
	return &catalogRepo{db: db}
}

func (r *catalogRepo) ListActiveCategories(ctx context.Context) ([]domain.VisaCategory, error) {
	query := `SELECT id, code, name_ja, name_en, category_type, description, priority, is_active, created_at, updated_at
              FROM visa_categories WHERE is_active = TRUE ORDER BY priority, code`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.VisaCategory
	for rows.Next() {
		var c domain.VisaCategory
		if err := rows.Scan(&c.ID, &c.Code, &c.NameJA, &c.NameEN, &c.CategoryType, &c.Description,
			&c.Priority, &c.IsActive, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *catalogRepo) GetCategory(ctx context.Context, id int64) (*domain.VisaCategory, error) {
	query := `SELECT id, code, name_ja, name_en, category_type, description, priority, is_active, created_at, updated_at
              FROM visa_categories WHERE id = $1`

	var c domain.VisaCategory
	err := r.db.QueryRow(ctx, query, id).Scan(&c.ID, &c.Code, &c.NameJA, &c.NameEN, &c.CategoryType,
		&c.Description, &c.Priority, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *catalogRepo) ListRequirements(ctx context.Context, categoryID int64) ([]domain.Requirement, error) {
	query := `SELECT id, visa_category_id, requirement_type, condition, is_mandatory, alternative_condition, alternative_ok, display_order
              FROM visa_requirements WHERE visa_category_id = $1 ORDER BY display_order, requirement_type`

	rows, err := r.db.Query(ctx, query, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reqs []domain.Requirement
	for rows.Next() {
		var req domain.Requirement
		if err := rows.Scan(&req.ID, &req.VisaCategoryID, &req.Type, &req.Condition, &req.IsMandatory,
			&req.AlternativeCondition, &req.AlternativeOK, &req.DisplayOrder); err != nil {
			return nil, err
		}
		reqs = append(reqs, req)
	}
	return reqs, rows.Err()
}

func (r *catalogRepo) ListMandatoryDocuments(ctx context.Context, categoryID int64) ([]domain.DocumentRequirement, error) {
	query := `SELECT id, visa_category_id, document_name, description, url, is_mandatory, display_order
              FROM document_templates WHERE visa_category_id = $1 AND is_mandatory = TRUE ORDER BY display_order`

	rows, err := r.db.Query(ctx, query, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []domain.DocumentRequirement
	for rows.Next() {
		var d domain.DocumentRequirement
		if err := rows.Scan(&d.ID, &d.VisaCategoryID, &d.Name, &d.Description, &d.URL, &d.IsMandatory, &d.DisplayOrder); err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

func (r *catalogRepo) FindMappings(ctx context.Context, industry, jobCategory string) ([]domain.IndustryMapping, error) {
	query := `SELECT id, industry, job_category, visa_category_id, match_score, notes
              FROM industry_visa_mapping
              WHERE industry ILIKE '%' || $1 || '%' OR job_category ILIKE '%' || $2 || '%'
              ORDER BY match_score DESC`

	rows, err := r.db.Query(ctx, query, industry, jobCategory)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var mappings []domain.IndustryMapping
	for rows.Next() {
		var m domain.IndustryMapping
		if err := rows.Scan(&m.ID, &m.Industry, &m.JobCategory, &m.VisaCategoryID, &m.MatchScore, &m.Notes); err != nil {
			return nil, err
		}
		mappings = append(mappings, m)
	}
	return mappings, rows.Err()
}

func (r *catalogRepo) CreateCategory(ctx context.Context, category *domain.VisaCategory) error {
	query := `INSERT INTO visa_categories (code, name_ja, name_en, category_type, description, priority, is_active, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	return r.db.QueryRow(ctx, query,
		category.Code, category.NameJA, category.NameEN, category.CategoryType, category.Description,
		category.Priority, category.IsActive, category.CreatedAt, category.UpdatedAt,
	).Scan(&category.ID)
}

func (r *catalogRepo) UpdateCategory(ctx context.Context, category *domain.VisaCategory) error {
	query := `UPDATE visa_categories SET code = $1, name_ja = $2, name_en = $3, category_type = $4,
              description = $5, priority = $6, is_active = $7, updated_at = $8 WHERE id = $9`
	tag, err := r.db.Exec(ctx, query,
		category.Code, category.NameJA, category.NameEN, category.CategoryType, category.Description,
		category.Priority, category.IsActive, category.UpdatedAt, category.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *catalogRepo) DeleteCategory(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM visa_categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *catalogRepo) CreateRequirement(ctx context.Context, req *domain.Requirement) error {
	query := `INSERT INTO visa_requirements (visa_category_id, requirement_type, condition, is_mandatory, alternative_condition, alternative_ok, display_order)
              VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	return r.db.QueryRow(ctx, query,
		req.VisaCategoryID, req.Type, req.Condition, req.IsMandatory,
		req.AlternativeCondition, req.AlternativeOK, req.DisplayOrder,
	).Scan(&req.ID)
}

func (r *catalogRepo) CreateDocument(ctx context.Context, doc *domain.DocumentRequirement) error {
	query := `INSERT INTO document_templates (visa_category_id, document_name, description, url, is_mandatory, display_order)
              VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRow(ctx, query,
		doc.VisaCategoryID, doc.Name, doc.Description, doc.URL, doc.IsMandatory, doc.DisplayOrder,
	).Scan(&doc.ID)
}

func (r *catalogRepo) CreateMapping(ctx context.Context, mapping *domain.IndustryMapping) error {
	query := `INSERT INTO industry_visa_mapping (industry, job_category, visa_category_id, match_score, notes)
              VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.QueryRow(ctx, query,
		mapping.Industry, mapping.JobCategory, mapping.VisaCategoryID, mapping.MatchScore, mapping.Notes,
	).Scan(&mapping.ID)
}
