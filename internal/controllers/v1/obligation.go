package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/payremind/backend/internal/httputil"
	"github.com/payremind/backend/internal/models"
	"github.com/payremind/backend/internal/schedule"
	"github.com/payremind/backend/internal/types"
	"golang.org/x/exp/slices"
)

func RegisterObligationRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsObligations)
		r.GET("", GetObligations)
		r.POST("", CreateObligations)
	}
	{
		r.OPTIONS("/:id", OptionsObligationDetail)
		r.GET("/:id", GetObligation)
		r.PATCH("/:id", UpdateObligation)
		r.DELETE("/:id", DeleteObligation)
	}
	{
		r.OPTIONS("/:id/paid", OptionsObligationPaid)
		r.POST("/:id/paid", MarkObligationPaid)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Obligations
// @Success		204
// @Router			/v1/obligations [options]
func OptionsObligations(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Obligations
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/obligations/{id} [options]
func OptionsObligationDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Obligation{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Obligations
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/obligations/{id}/paid [options]
func OptionsObligationPaid(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Obligation{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsPost(c)
}

// @Summary		Create obligations
// @Description	Creates new obligations
// @Tags			Obligations
// @Produce		json
// @Success		201			{object}	ObligationCreateResponse
// @Failure		400			{object}	ObligationCreateResponse
// @Failure		500			{object}	ObligationCreateResponse
// @Param			obligations	body		[]ObligationEditable	true	"Obligations"
// @Router			/v1/obligations [post]
func CreateObligations(c *gin.Context) {
	var obligations []ObligationEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &obligations)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ObligationCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := ObligationCreateResponse{}

	for _, create := range obligations {
		obligation := create.model()
		err = models.DB.Create(&obligation).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		// Transform for the API and append
		apiResource := newObligation(c, obligation)
		r.Data = append(r.Data, ObligationResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get obligations
// @Description	Returns a list of obligations
// @Tags			Obligations
// @Produce		json
// @Success		200	{object}	ObligationListResponse
// @Failure		400	{object}	ObligationListResponse
// @Failure		500	{object}	ObligationListResponse
// @Router			/v1/obligations [get]
// @Param			name			query	string	false	"Filter by name"
// @Param			note			query	string	false	"Filter by note"
// @Param			search			query	string	false	"Search for this text in name and note"
// @Param			status			query	string	false	"Filter by status bucket for today"
// @Param			intervalDays	query	uint	false	"Filter by the exact payment interval"
// @Param			offset			query	uint	false	"The offset of the first obligation returned. Defaults to 0."
// @Param			limit			query	int		false	"Maximum number of obligations to return. Defaults to 50."
func GetObligations(c *gin.Context) {
	var filter ObligationQueryFilter

	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ObligationListResponse{
			Error: &s,
		})
		return
	}

	// The status bucket is computed, not stored, so it cannot become part
	// of the database query and is applied to the fetched records below.
	var statusFilter schedule.Status
	if filter.Status != "" {
		statusFilter = schedule.Status(filter.Status)
		if !slices.Contains([]schedule.Status{schedule.StatusPaid, schedule.StatusDue, schedule.StatusUpcoming}, statusFilter) {
			s := errStatusInvalid.Error()
			c.JSON(http.StatusBadRequest, ObligationListResponse{
				Error: &s,
			})
			return
		}
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	where := filter.model()

	q := models.DB.
		Order("date(obligations.start_date) ASC, obligations.name ASC").
		Where(&where, queryFields...)

	q = stringFilters(models.DB, q, setFields, filter.Name, filter.Note, filter.Search)

	var obligations []models.Obligation
	err := q.Find(&obligations).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ObligationListResponse{
			Error: &s,
		})
		return
	}

	if filter.Status != "" {
		now := types.Today()
		obligations = slices.DeleteFunc(obligations, func(o models.Obligation) bool {
			return schedule.Classify(o, now) != statusFilter
		})
	}

	total := int64(len(obligations))

	// Set the offset. Does not need checking since the default is 0
	if filter.Offset > uint(len(obligations)) {
		obligations = []models.Obligation{}
	} else {
		obligations = obligations[filter.Offset:]
	}

	// Default to 50 obligations and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	if limit >= 0 && limit < len(obligations) {
		obligations = obligations[:limit]
	}

	// Transform resources to their API representation
	data := make([]Obligation, 0, len(obligations))
	for _, obligation := range obligations {
		data = append(data, newObligation(c, obligation))
	}

	c.JSON(http.StatusOK, ObligationListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  total,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get obligation
// @Description	Returns a specific obligation
// @Tags			Obligations
// @Produce		json
// @Success		200	{object}	ObligationResponse
// @Failure		400	{object}	ObligationResponse
// @Failure		404	{object}	ObligationResponse
// @Failure		500	{object}	ObligationResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/obligations/{id} [get]
func GetObligation(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ObligationResponse{
			Error: &e,
		})
		return
	}

	var obligation models.Obligation
	err = models.DB.First(&obligation, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ObligationResponse{
			Error: &e,
		})
		return
	}

	apiResource := newObligation(c, obligation)
	c.JSON(http.StatusOK, ObligationResponse{Data: &apiResource})
}

// @Summary		Update obligation
// @Description	Updates an existing obligation. Only values to be updated need to be specified.
// @Tags			Obligations
// @Accept			json
// @Produce		json
// @Success		200			{object}	ObligationResponse
// @Failure		400			{object}	ObligationResponse
// @Failure		404			{object}	ObligationResponse
// @Failure		500			{object}	ObligationResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			obligation	body		ObligationEditable	true	"Obligation"
// @Router			/v1/obligations/{id} [patch]
func UpdateObligation(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ObligationResponse{
			Error: &e,
		})
		return
	}

	var obligation models.Obligation
	err = models.DB.First(&obligation, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ObligationResponse{
			Error: &e,
		})
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, ObligationEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ObligationResponse{
			Error: &e,
		})
		return
	}

	// Bind the data for the patch
	var data ObligationEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ObligationResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&obligation).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ObligationResponse{
			Error: &e,
		})
		return
	}

	apiResource := newObligation(c, obligation)
	c.JSON(http.StatusOK, ObligationResponse{Data: &apiResource})
}

// @Summary		Delete obligation
// @Description	Deletes an obligation
// @Tags			Obligations
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/obligations/{id} [delete]
func DeleteObligation(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var obligation models.Obligation
	err = models.DB.First(&obligation, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&obligation).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Mark obligation paid
// @Description	Records a payment for the obligation and resets its cycle. The body is optional, the payment day defaults to today.
// @Tags			Obligations
// @Accept			json
// @Produce		json
// @Success		200		{object}	ObligationResponse
// @Failure		400		{object}	ObligationResponse
// @Failure		404		{object}	ObligationResponse
// @Failure		500		{object}	ObligationResponse
// @Param			id		path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			payment	body		MarkPaidEditable	false	"Payment day"
// @Router			/v1/obligations/{id}/paid [post]
func MarkObligationPaid(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ObligationResponse{
			Error: &e,
		})
		return
	}

	var obligation models.Obligation
	err = models.DB.First(&obligation, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ObligationResponse{
			Error: &e,
		})
		return
	}

	paidAt := types.Today()
	if c.Request.ContentLength > 0 {
		var data MarkPaidEditable
		err = httputil.BindData(c, &data)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), ObligationResponse{
				Error: &e,
			})
			return
		}

		if !data.PaidAt.IsZero() {
			paidAt = data.PaidAt
		}
	}

	err = obligation.MarkPaid(paidAt)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ObligationResponse{
			Error: &e,
		})
		return
	}

	apiResource := newObligation(c, obligation)
	c.JSON(http.StatusOK, ObligationResponse{Data: &apiResource})
}
