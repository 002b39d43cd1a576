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

type VisaHandler struct {
	catalogUC domain.CatalogUsecase
}

func NewVisaHandler(public *gin.RouterGroup, catalogUC domain.CatalogUsecase) {
	handler := &VisaHandler{catalogUC: catalogUC}

	visas := public.Group("/visas")
	{
		visas.GET("", handler.List)
		visas.GET("/:id", handler.GetDetail)
	}
}

// List godoc
// @Summary      List active visa categories
// @Description  Returns all active visa categories ordered by display priority
// @Tags         visas
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /visas [get]
func (h *VisaHandler) List(c *gin.Context) {
	categories, err := h.catalogUC.ListActiveCategories(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Visa categories retrieved", categories)
}

// GetDetail godoc
// @Summary      Get visa category detail
// @Description  Returns one visa category with its requirements and mandatory documents
// @Tags         visas
// @Produce      json
// @Param        id   path      int  true  "Visa category ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /visas/{id} [get]
func (h *VisaHandler) GetDetail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid visa category ID"))
		return
	}

	detail, err := h.catalogUC.GetCategoryDetail(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.Error(apperror.NotFound("Visa category not found"))
			return
		}
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Visa category retrieved", detail)
}
