package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/payremind/backend/internal/controllers/v1"
	"github.com/payremind/backend/internal/types"
	"github.com/payremind/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestReportOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/report", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "GET", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestReportEmpty() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/report", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ReportResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), 0, response.Data.Total)
	assert.Empty(suite.T(), response.Data.Periods)
}

func (suite *TestSuiteStandard) TestReport() {
	today := types.Today()

	// Already due
	_ = createTestObligation(suite.T(), v1.ObligationEditable{
		StartDate:    today.AddDays(-40),
		IntervalDays: 30,
	})

	// Due in 5 days
	_ = createTestObligation(suite.T(), v1.ObligationEditable{
		StartDate:    today.AddDays(-25),
		IntervalDays: 30,
	})

	// Due in 20 days
	_ = createTestObligation(suite.T(), v1.ObligationEditable{
		StartDate:    today.AddDays(-10),
		IntervalDays: 30,
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/report", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ReportResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), 3, response.Data.Total)
	assert.Equal(suite.T(), 1, response.Data.Due)
	assert.Equal(suite.T(), 1, response.Data.Upcoming)
	assert.Equal(suite.T(), 1, response.Data.Paid)

	// All obligations were created just now, in the current month
	assert.Len(suite.T(), response.Data.Periods, 1)
	assert.Equal(suite.T(), 3, response.Data.Periods[0].Count)
}

// TestReportExplicitDay verifies that the report is evaluated for the
// requested day instead of today.
func (suite *TestSuiteStandard) TestReportExplicitDay() {
	today := types.Today()

	// Due in 20 days, paid when evaluated 25 days early
	_ = createTestObligation(suite.T(), v1.ObligationEditable{
		StartDate:    today.AddDays(-10),
		IntervalDays: 30,
	})

	tests := []struct {
		name string
		now  types.Date
		due  int
		paid int
	}{
		{"Before the cycle ends", today, 0, 1},
		{"After the cycle ends", today.AddDays(25), 1, 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/report?now="+tt.now.String(), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.ReportResponse
			test.DecodeResponse(t, &r, &response)

			assert.Equal(t, tt.due, response.Data.Due)
			assert.Equal(t, tt.paid, response.Data.Paid)
		})
	}
}

func (suite *TestSuiteStandard) TestReportInvalidDay() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/report?now=today", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

// TestReportDBClosed verifies that the report degrades to an empty snapshot
// when the store is unavailable.
func (suite *TestSuiteStandard) TestReportDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/report", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ReportResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), 0, response.Data.Total)
}
