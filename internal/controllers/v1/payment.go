package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/payremind/backend/internal/httputil"
	"github.com/payremind/backend/internal/models"
	"github.com/payremind/backend/internal/types"
	"golang.org/x/exp/slices"
)

func RegisterPaymentRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsPayments)
		r.GET("", GetPayments)
		r.POST("", CreatePayments)
	}
	{
		r.OPTIONS("/:id", OptionsPaymentDetail)
		r.GET("/:id", GetPayment)
		r.DELETE("/:id", DeletePayment)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Payments
// @Success		204
// @Router			/v1/payments [options]
func OptionsPayments(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Payments
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/payments/{id} [options]
func OptionsPaymentDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Payment{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetDelete(c)
}

// @Summary		Create payments
// @Description	Creates new one-off payment entries
// @Tags			Payments
// @Produce		json
// @Success		201			{object}	PaymentCreateResponse
// @Failure		400			{object}	PaymentCreateResponse
// @Failure		500			{object}	PaymentCreateResponse
// @Param			payments	body		[]PaymentEditable	true	"Payments"
// @Router			/v1/payments [post]
func CreatePayments(c *gin.Context) {
	var payments []PaymentEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &payments)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PaymentCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := PaymentCreateResponse{}

	for _, create := range payments {
		payment := create.model()

		// An entry recorded without a day gets today, like the original
		// quick-add form did
		if payment.Date.IsZero() {
			payment.Date = types.Today()
		}

		err = models.DB.Create(&payment).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		// Transform for the API and append
		apiResource := newPayment(c, payment)
		r.Data = append(r.Data, PaymentResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get payments
// @Description	Returns a list of one-off payment entries
// @Tags			Payments
// @Produce		json
// @Success		200	{object}	PaymentListResponse
// @Failure		400	{object}	PaymentListResponse
// @Failure		500	{object}	PaymentListResponse
// @Router			/v1/payments [get]
// @Param			name	query	string	false	"Filter by name"
// @Param			note	query	string	false	"Filter by note"
// @Param			search	query	string	false	"Search for this text in name and note"
// @Param			offset	query	uint	false	"The offset of the first payment returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of payments to return. Defaults to 50."
func GetPayments(c *gin.Context) {
	var filter PaymentQueryFilter

	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, PaymentListResponse{
			Error: &s,
		})
		return
	}

	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.
		Order("date(payments.date) ASC, payments.time ASC, payments.name ASC")

	q = stringFilters(models.DB, q, setFields, filter.Name, filter.Note, filter.Search)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 payments and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var payments []models.Payment
	err := q.Find(&payments).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PaymentListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PaymentListResponse{
			Error: &e,
		})
		return
	}

	// Transform resources to their API representation
	data := make([]Payment, 0, len(payments))
	for _, payment := range payments {
		data = append(data, newPayment(c, payment))
	}

	c.JSON(http.StatusOK, PaymentListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get payment
// @Description	Returns a specific one-off payment entry
// @Tags			Payments
// @Produce		json
// @Success		200	{object}	PaymentResponse
// @Failure		400	{object}	PaymentResponse
// @Failure		404	{object}	PaymentResponse
// @Failure		500	{object}	PaymentResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/payments/{id} [get]
func GetPayment(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PaymentResponse{
			Error: &e,
		})
		return
	}

	var payment models.Payment
	err = models.DB.First(&payment, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PaymentResponse{
			Error: &e,
		})
		return
	}

	apiResource := newPayment(c, payment)
	c.JSON(http.StatusOK, PaymentResponse{Data: &apiResource})
}

// @Summary		Delete payment
// @Description	Deletes a one-off payment entry
// @Tags			Payments
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/payments/{id} [delete]
func DeletePayment(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var payment models.Payment
	err = models.DB.First(&payment, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&payment).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
