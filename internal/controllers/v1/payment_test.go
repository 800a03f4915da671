package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/payremind/backend/internal/controllers/v1"
	"github.com/payremind/backend/internal/models"
	"github.com/payremind/backend/internal/types"
	"github.com/payremind/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func createTestPayment(t *testing.T, p v1.PaymentEditable, expectedStatus ...int) v1.PaymentResponse {
	if p.Name == "" {
		p.Name = uuid.NewString()
	}

	if p.Amount.IsZero() {
		p.Amount = decimal.NewFromFloat(10)
	}

	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.PaymentEditable{p}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/payments", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.PaymentCreateResponse
	test.DecodeResponse(t, &r, &response)

	if r.Code == http.StatusCreated {
		return response.Data[0]
	}

	return v1.PaymentResponse{}
}

func (suite *TestSuiteStandard) TestPaymentsDBClosed() {
	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestPayment(t, v1.PaymentEditable{}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/payments", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.PaymentListResponse
				test.DecodeResponse(t, &recorder, &response)
				assert.Contains(t, *response.Error, models.ErrGeneral.Error())
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			tt.test(t)
		})
	}
}

func (suite *TestSuiteStandard) TestPaymentsOptions() {
	tests := []struct {
		name   string
		id     string // path at the payments endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No Payment with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Payment exists", createTestPayment(suite.T(), v1.PaymentEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/payments", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "GET, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestPaymentsCreate() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/payments", []v1.PaymentEditable{
		{
			Name:   "Alice",
			Note:   "October tuition",
			Amount: decimal.NewFromFloat(500),
			Date:   types.NewDate(2024, 10, 2),
			Time:   "14:05",
		},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.PaymentCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)

	data := response.Data[0].Data
	assert.Equal(suite.T(), "Alice", data.Name)
	assert.True(suite.T(), data.Amount.Equal(decimal.NewFromFloat(500)))
	assert.True(suite.T(), data.Date.Equal(types.NewDate(2024, 10, 2)))
	assert.Equal(suite.T(), "14:05", data.Time)
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/payments/%s", data.ID), data.Links.Self)
}

func (suite *TestSuiteStandard) TestPaymentsCreateDefaultDate() {
	p := createTestPayment(suite.T(), v1.PaymentEditable{})

	assert.True(suite.T(), p.Data.Date.Equal(types.Today()), "Date is %s", p.Data.Date)
}

func (suite *TestSuiteStandard) TestPaymentsCreateFails() {
	tests := []struct {
		name   string
		body   any
		status int    // expected HTTP status
		err    string // the expected error in the response for the resource
	}{
		{"Broken Body", `[{ "note": 2 }]`, http.StatusBadRequest, ""},
		{"No body", "", http.StatusBadRequest, ""},
		{"Empty Name", []v1.PaymentEditable{{Amount: decimal.NewFromFloat(10)}}, http.StatusBadRequest, models.ErrPaymentNameEmpty.Error()},
		{"Zero Amount", []v1.PaymentEditable{{Name: "No amount"}}, http.StatusBadRequest, models.ErrPaymentAmountNotPositive.Error()},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/payments", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.err != "" {
				var response v1.PaymentCreateResponse
				test.DecodeResponse(t, &r, &response)
				assert.Equal(t, tt.err, *response.Data[0].Error)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestPaymentsGetFilter() {
	_ = createTestPayment(suite.T(), v1.PaymentEditable{Name: "Alice", Note: "Rent"})
	_ = createTestPayment(suite.T(), v1.PaymentEditable{Name: "Bob", Note: "Rent for the garage"})
	_ = createTestPayment(suite.T(), v1.PaymentEditable{Name: "Carla", Note: "Water bill share"})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Exact name", "name=Alice", 1},
		{"Fuzzy name", "name=a", 2},
		{"Empty name", "name=", 0},
		{"Fuzzy note", "note=Rent", 2},
		{"Search", "search=rent", 2},
		{"Offset 2", "offset=2", 1},
		{"Offset 0, limit 2", "offset=0&limit=2", 2},
		{"Limit 4", "limit=4", 3},
		{"Limit 0", "limit=0", 0},
		{"Limit -1", "limit=-1", 3},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var response v1.PaymentListResponse
			r := test.Request(t, http.MethodGet, fmt.Sprintf("/v1/payments?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)
			test.DecodeResponse(t, &r, &response)

			assert.Equal(t, tt.len, len(response.Data), "Request ID: %s", r.Result().Header.Get("x-request-id"))
		})
	}
}

func (suite *TestSuiteStandard) TestPaymentsGetSingle() {
	p := createTestPayment(suite.T(), v1.PaymentEditable{})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing Payment", p.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET No Payment with this ID", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodGet},
		{"DELETE Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/payments/%s", tt.id), "")

			var payment v1.PaymentResponse
			test.DecodeResponse(t, &r, &payment)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestPaymentsDelete() {
	payment := createTestPayment(suite.T(), v1.PaymentEditable{})

	r := test.Request(suite.T(), http.MethodDelete, payment.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// Verify that the payment is gone
	r = test.Request(suite.T(), http.MethodGet, payment.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
