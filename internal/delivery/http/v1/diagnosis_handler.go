package v1

import (
	"net/http"

	"go-visa-diagnosis-backend/internal/delivery/http/response"
	"go-visa-diagnosis-backend/internal/domain"
	"go-visa-diagnosis-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type DiagnosisHandler struct {
	diagnosisUC domain.DiagnosisUsecase
}

func NewDiagnosisHandler(public *gin.RouterGroup, diagnosisUC domain.DiagnosisUsecase, rateLimit gin.HandlerFunc) {
	handler := &DiagnosisHandler{diagnosisUC: diagnosisUC}

	public.POST("/diagnosis", rateLimit, handler.Diagnose)
}

type EducationRequest struct {
	Degree     string `json:"degree"`
	Major      string `json:"major"`
	University string `json:"university"`
}

type ExperienceRequest struct {
	Years    int    `json:"years"`
	Field    string `json:"field"`
	Position string `json:"position"`
}

type JobDetailsRequest struct {
	Industry string `json:"industry"`
	Position string `json:"position"`
	Duties   string `json:"duties"`
}

// DiagnoseRequest carries the applicant profile. Every field is optional;
// a missing field means "not provided" and never fails the request.
type DiagnoseRequest struct {
	Nationality    string              `json:"nationality"`
	Education      EducationRequest    `json:"education"`
	Experience     []ExperienceRequest `json:"experience"`
	Qualifications []string            `json:"qualifications"`
	JobDetails     JobDetailsRequest   `json:"job_details"`
	Salary         int64               `json:"salary"`
	CompanyInfo    map[string]string   `json:"company_info"`
}

// Diagnose godoc
// @Summary      Run a visa diagnosis
// @Description  Scores the applicant profile against all active visa categories and returns a ranked recommendation list
// @Tags         diagnosis
// @Accept       json
// @Produce      json
// @Param        profile  body      DiagnoseRequest  true  "Applicant profile JSON"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      429  {object}  response.Response
// @Router       /diagnosis [post]
func (h *DiagnosisHandler) Diagnose(c *gin.Context) {
	var req DiagnoseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body: " + err.Error()))
		return
	}

	profile := &domain.ApplicantProfile{
		Nationality: req.Nationality,
		Education: domain.Education{
			Degree:     req.Education.Degree,
			Major:      req.Education.Major,
			University: req.Education.University,
		},
		Qualifications: req.Qualifications,
		JobDetails: domain.JobDetails{
			Industry: req.JobDetails.Industry,
			Position: req.JobDetails.Position,
			Duties:   req.JobDetails.Duties,
		},
		Salary:      req.Salary,
		CompanyInfo: req.CompanyInfo,
	}
	for _, exp := range req.Experience {
		profile.Experience = append(profile.Experience, domain.ExperienceEntry{
			Years:    exp.Years,
			Field:    exp.Field,
			Position: exp.Position,
		})
	}

	result, err := h.diagnosisUC.Diagnose(c.Request.Context(), profile)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Diagnosis completed", result)
}
