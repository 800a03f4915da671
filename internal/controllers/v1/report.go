package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/payremind/backend/internal/httputil"
	"github.com/payremind/backend/internal/models"
	"github.com/payremind/backend/internal/report"
	"github.com/payremind/backend/internal/types"
)

func RegisterReportRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsReport)
		r.GET("", GetReport)
	}
}

type ReportResponse struct {
	Error *string        `json:"error" example:"parsing time \"today\" as \"2006-01-02\": cannot parse \"today\" as \"2006\""` // The error, if any occurred
	Data  *report.Report `json:"data"`                                                                                        // The report
}

type ReportQuery struct {
	Now string `form:"now"` // Day to evaluate the report for, "2006-01-02". Defaults to today
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Report
// @Success		204
// @Router			/v1/report [options]
func OptionsReport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get report
// @Description	Returns status totals and per-month creation counts over all obligations
// @Tags			Report
// @Produce		json
// @Success		200	{object}	ReportResponse
// @Failure		400	{object}	ReportResponse
// @Router			/v1/report [get]
// @Param			now	query	string	false	"Day to evaluate the report for. Defaults to today"
func GetReport(c *gin.Context) {
	var query ReportQuery

	if err := c.Bind(&query); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ReportResponse{
			Error: &s,
		})
		return
	}

	now := types.Today()
	if query.Now != "" {
		parsed, err := types.ParseDate(query.Now)
		if err != nil {
			s := err.Error()
			c.JSON(http.StatusBadRequest, ReportResponse{
				Error: &s,
			})
			return
		}
		now = parsed
	}

	// The snapshot read fails open: an unreadable store reports as empty
	// instead of failing the request.
	r := report.Summarize(models.Obligations(), now)

	c.JSON(http.StatusOK, ReportResponse{Data: &r})
}
