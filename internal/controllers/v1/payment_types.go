package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/payremind/backend/internal/models"
	"github.com/payremind/backend/internal/types"
	"github.com/shopspring/decimal"
)

type PaymentEditable struct {
	Name   string          `json:"name" example:"Alice" default:""`                                                                               // Name of the payer
	Note   string          `json:"note" example:"October tuition" default:""`                                                                     // Note about the payment
	Amount decimal.Decimal `json:"amount" example:"500" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"` // Amount paid
	Date   types.Date      `json:"date" example:"2024-01-31"`                                                                                     // Day the payment was recorded. Defaults to today
	Time   string          `json:"time" example:"14:05" default:""`                                                                               // Wall-clock time of recording
}

// model returns the database resource for the API representation of the editable fields
func (editable PaymentEditable) model() models.Payment {
	return models.Payment{
		Name:   editable.Name,
		Note:   editable.Note,
		Amount: editable.Amount,
		Date:   editable.Date,
		Time:   editable.Time,
	}
}

type PaymentLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/payments/d5b49f36-7b2c-4c2b-a1e0-b310c1c6a9bd"` // The Payment itself
}

type Payment struct {
	models.DefaultModel
	PaymentEditable
	Links PaymentLinks `json:"links"`
}

// newPayment returns the API v1 representation of the resource
func newPayment(c *gin.Context, model models.Payment) Payment {
	url := c.GetString(string(models.ContextURL))

	return Payment{
		DefaultModel: model.DefaultModel,
		PaymentEditable: PaymentEditable{
			Name:   model.Name,
			Note:   model.Note,
			Amount: model.Amount,
			Date:   model.Date,
			Time:   model.Time,
		},
		Links: PaymentLinks{
			Self: fmt.Sprintf("%s/v1/payments/%s", url, model.ID),
		},
	}
}

type PaymentListResponse struct {
	Data       []Payment   `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type PaymentCreateResponse struct {
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []PaymentResponse `json:"data"`                                                          // List of created resources
}

func (t *PaymentCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, PaymentResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type PaymentResponse struct {
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Payment `json:"data"`                                                          // The resource
}

type PaymentQueryFilter struct {
	Name   string `form:"name" filterField:"false"`   // By name
	Note   string `form:"note" filterField:"false"`   // By the note
	Search string `form:"search" filterField:"false"` // By string in name or note
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first payment returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of payments to return. Defaults to 50.
}
