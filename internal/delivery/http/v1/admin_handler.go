package v1

import (
	"errors"
	"net/http"
	"strconv"

	"go-visa-diagnosis-backend/internal/delivery/http/response"
	"go-visa-diagnosis-backend/internal/domain"
	"go-visa-diagnosis-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes catalog write operations. All routes sit behind
// the admin token middleware.
type AdminHandler struct {
	catalogUC domain.CatalogUsecase
}

func NewAdminHandler(admin *gin.RouterGroup, catalogUC domain.CatalogUsecase) {
	handler := &AdminHandler{catalogUC: catalogUC}

	visas := admin.Group("/visas")
	{
		visas.POST("", handler.CreateCategory)
		visas.PUT("/:id", handler.UpdateCategory)
		visas.DELETE("/:id", handler.DeleteCategory)
		visas.POST("/:id/requirements", handler.AddRequirement)
		visas.POST("/:id/documents", handler.AddDocument)
	}

	admin.POST("/mappings", handler.AddMapping)
}

type CategoryRequest struct {
	Code         string `json:"code" binding:"required"`
	NameJA       string `json:"name_ja"`
	NameEN       string `json:"name_en"`
	CategoryType string `json:"category_type" binding:"required,oneof=work activity specified"`
	Description  string `json:"description"`
	Priority     int    `json:"priority"`
	IsActive     *bool  `json:"is_active"`
}

type RequirementRequest struct {
	Type                 string `json:"requirement_type" binding:"required"`
	Condition            string `json:"condition" binding:"required"`
	IsMandatory          *bool  `json:"is_mandatory"`
	AlternativeCondition string `json:"alternative_condition"`
	AlternativeOK        bool   `json:"alternative_ok"`
	DisplayOrder         int    `json:"display_order"`
}

type DocumentRequest struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	URL          string `json:"url"`
	IsMandatory  *bool  `json:"is_mandatory"`
	DisplayOrder int    `json:"display_order"`
}

type MappingRequest struct {
	Industry       string `json:"industry" binding:"required"`
	JobCategory    string `json:"job_category" binding:"required"`
	VisaCategoryID int64  `json:"visa_category_id" binding:"required"`
	MatchScore     int    `json:"match_score" binding:"min=0,max=100"`
	Notes          string `json:"notes"`
}

// boolOr defaults optional boolean fields, which bind as nil when absent.
func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}

// CreateCategory godoc
// @Summary      Create a visa category
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        category  body      CategoryRequest  true  "Visa category JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /admin/visas [post]
// @Security     BearerAuth
func (h *AdminHandler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	category := &domain.VisaCategory{
		Code:         req.Code,
		NameJA:       req.NameJA,
		NameEN:       req.NameEN,
		CategoryType: req.CategoryType,
		Description:  req.Description,
		Priority:     req.Priority,
		IsActive:     boolOr(req.IsActive, true),
	}

	if err := h.catalogUC.CreateCategory(c.Request.Context(), category); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Visa category created", category)
}

// UpdateCategory godoc
// @Summary      Update a visa category
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id        path      int              true  "Visa category ID"
// @Param        category  body      CategoryRequest  true  "Visa category JSON"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/visas/{id} [put]
// @Security     BearerAuth
func (h *AdminHandler) UpdateCategory(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid visa category ID"))
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	category := &domain.VisaCategory{
		ID:           id,
		Code:         req.Code,
		NameJA:       req.NameJA,
		NameEN:       req.NameEN,
		CategoryType: req.CategoryType,
		Description:  req.Description,
		Priority:     req.Priority,
		IsActive:     boolOr(req.IsActive, true),
	}

	if err := h.catalogUC.UpdateCategory(c.Request.Context(), category); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.Error(apperror.NotFound("Visa category not found"))
			return
		}
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Visa category updated", category)
}

// DeleteCategory godoc
// @Summary      Delete a visa category
// @Tags         admin
// @Produce      json
// @Param        id   path      int  true  "Visa category ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/visas/{id} [delete]
// @Security     BearerAuth
func (h *AdminHandler) DeleteCategory(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid visa category ID"))
		return
	}

	if err := h.catalogUC.DeleteCategory(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.Error(apperror.NotFound("Visa category not found"))
			return
		}
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Visa category deleted", nil)
}

// AddRequirement godoc
// @Summary      Add a requirement to a visa category
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id           path      int                 true  "Visa category ID"
// @Param        requirement  body      RequirementRequest  true  "Requirement JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /admin/visas/{id}/requirements [post]
// @Security     BearerAuth
func (h *AdminHandler) AddRequirement(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid visa category ID"))
		return
	}

	var req RequirementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	requirement := &domain.Requirement{
		VisaCategoryID:       id,
		Type:                 req.Type,
		Condition:            req.Condition,
		IsMandatory:          boolOr(req.IsMandatory, true),
		AlternativeCondition: req.AlternativeCondition,
		AlternativeOK:        req.AlternativeOK,
		DisplayOrder:         req.DisplayOrder,
	}

	if err := h.catalogUC.AddRequirement(c.Request.Context(), requirement); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Requirement added", requirement)
}

// AddDocument godoc
// @Summary      Add a document template to a visa category
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id        path      int              true  "Visa category ID"
// @Param        document  body      DocumentRequest  true  "Document JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /admin/visas/{id}/documents [post]
// @Security     BearerAuth
func (h *AdminHandler) AddDocument(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid visa category ID"))
		return
	}

	var req DocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	doc := &domain.DocumentRequirement{
		VisaCategoryID: id,
		Name:           req.Name,
		Description:    req.Description,
		URL:            req.URL,
		IsMandatory:    boolOr(req.IsMandatory, true),
		DisplayOrder:   req.DisplayOrder,
	}

	if err := h.catalogUC.AddDocument(c.Request.Context(), doc); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Document template added", doc)
}

// AddMapping godoc
// @Summary      Add an industry/job mapping
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        mapping  body      MappingRequest  true  "Mapping JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /admin/mappings [post]
// @Security     BearerAuth
func (h *AdminHandler) AddMapping(c *gin.Context) {
	var req MappingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	mapping := &domain.IndustryMapping{
		Industry:       req.Industry,
		JobCategory:    req.JobCategory,
		VisaCategoryID: req.VisaCategoryID,
		MatchScore:     req.MatchScore,
		Notes:          req.Notes,
	}

	if err := h.catalogUC.AddMapping(c.Request.Context(), mapping); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Mapping added", mapping)
}
