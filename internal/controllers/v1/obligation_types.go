package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/payremind/backend/internal/models"
	"github.com/payremind/backend/internal/schedule"
	"github.com/payremind/backend/internal/types"
	"github.com/shopspring/decimal"
)

type ObligationEditable struct {
	Name         string          `json:"name" example:"Alice" default:""`                                                                               // Name of the payer
	Note         string          `json:"note" example:"Rent for the upstairs room" default:""`                                                          // Note about the obligation
	Amount       decimal.Decimal `json:"amount" example:"500" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"` // Amount owed per cycle
	StartDate    types.Date      `json:"startDate" example:"2024-01-01"`                                                                                // First day of the payment cycle. Defaults to the creation day
	IntervalDays uint            `json:"intervalDays" example:"30" minimum:"1"`                                                                         // Days between expected payments
}

// model returns the database resource for the API representation of the editable fields
func (editable ObligationEditable) model() models.Obligation {
	return models.Obligation{
		Name:         editable.Name,
		Note:         editable.Note,
		Amount:       editable.Amount,
		StartDate:    editable.StartDate,
		IntervalDays: editable.IntervalDays,
	}
}

type ObligationLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/obligations/438cc6c0-9baf-49fd-a75a-d76bd5cab19c"`      // The Obligation itself
	Paid string `json:"paid" example:"https://example.com/api/v1/obligations/438cc6c0-9baf-49fd-a75a-d76bd5cab19c/paid"` // Where to record a payment
}

type Obligation struct {
	models.DefaultModel
	ObligationEditable
	LastPaidAt *types.Date     `json:"lastPaidAt" example:"2024-01-31"` // Day of the most recent payment, null until the first one
	DueDate    types.Date      `json:"dueDate" example:"2024-01-31"`    // Day the next payment is due
	Status     schedule.Status `json:"status" example:"due"`            // Status bucket for today
	Links      ObligationLinks `json:"links"`
}

// newObligation returns the API v1 representation of the resource.
// The due date and status are computed for the current day.
func newObligation(c *gin.Context, model models.Obligation) Obligation {
	url := c.GetString(string(models.ContextURL))

	return Obligation{
		DefaultModel: model.DefaultModel,
		ObligationEditable: ObligationEditable{
			Name:         model.Name,
			Note:         model.Note,
			Amount:       model.Amount,
			StartDate:    model.StartDate,
			IntervalDays: model.IntervalDays,
		},
		LastPaidAt: model.LastPaidAt,
		DueDate:    schedule.NextDueDate(model),
		Status:     schedule.Classify(model, types.Today()),
		Links: ObligationLinks{
			Self: fmt.Sprintf("%s/v1/obligations/%s", url, model.ID),
			Paid: fmt.Sprintf("%s/v1/obligations/%s/paid", url, model.ID),
		},
	}
}

type ObligationListResponse struct {
	Data       []Obligation `json:"data"`                                                          // List of resources
	Error      *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination  `json:"pagination"`                                                    // Pagination information
}

type ObligationCreateResponse struct {
	Error *string              `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []ObligationResponse `json:"data"`                                                          // List of created resources
}

func (t *ObligationCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, ObligationResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ObligationResponse struct {
	Error *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Obligation `json:"data"`                                                          // The resource
}

// MarkPaidEditable is the request body for recording a payment.
type MarkPaidEditable struct {
	PaidAt types.Date `json:"paidAt" example:"2024-01-31"` // Day of the payment. Defaults to today
}

type ObligationQueryFilter struct {
	Name         string `form:"name" filterField:"false"`   // By name
	Note         string `form:"note" filterField:"false"`   // By the note
	Search       string `form:"search" filterField:"false"` // By string in name or note
	Status       string `form:"status" filterField:"false"` // By status bucket for today ("paid", "due", "upcoming")
	IntervalDays uint   `form:"intervalDays"`               // By the exact payment interval
	Offset       uint   `form:"offset" filterField:"false"` // The offset of the first obligation returned. Defaults to 0.
	Limit        int    `form:"limit" filterField:"false"`  // Maximum number of obligations to return. Defaults to 50.
}

func (f ObligationQueryFilter) model() models.Obligation {
	// This does not set the string fields since they are
	// handled in the handler function
	return models.Obligation{
		IntervalDays: f.IntervalDays,
	}
}
