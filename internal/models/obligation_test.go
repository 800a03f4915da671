package models_test

import (
	"strings"
	"testing"

	"github.com/payremind/backend/internal/models"
	"github.com/payremind/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) TestObligationAfterSave() {
	tests := []struct {
		name       string
		obligation models.Obligation
		err        error
	}{
		{
			"No name",
			models.Obligation{Amount: decimal.NewFromFloat(10), IntervalDays: 30},
			models.ErrObligationNameEmpty,
		},
		{
			"Zero amount",
			models.Obligation{Name: "Alice", IntervalDays: 30},
			models.ErrObligationAmountNotPositive,
		},
		{
			"Negative amount",
			models.Obligation{Name: "Alice", Amount: decimal.NewFromFloat(-7), IntervalDays: 30},
			models.ErrObligationAmountNotPositive,
		},
		{
			"Zero interval",
			models.Obligation{Name: "Alice", Amount: decimal.NewFromFloat(10)},
			models.ErrObligationIntervalInvalid,
		},
		{
			"Valid",
			models.Obligation{Name: "Alice", Amount: decimal.NewFromFloat(10), IntervalDays: 30},
			nil,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := tt.obligation.AfterSave(&gorm.DB{})
			assert.Equal(t, tt.err, err)
		})
	}
}

func (suite *TestSuiteStandard) TestObligationTrimWhitespace() {
	name := "  There is whitespace here  \t"
	note := " Whitespace    "

	obligation := suite.createTestObligation(models.Obligation{
		Name: name,
		Note: note,
	})

	assert.Equal(suite.T(), strings.TrimSpace(name), obligation.Name)
	assert.Equal(suite.T(), strings.TrimSpace(note), obligation.Note)
}

// TestObligationDefaultStartDate verifies that an obligation saved without a
// start date is anchored on its creation day.
func (suite *TestSuiteStandard) TestObligationDefaultStartDate() {
	obligation := suite.createTestObligation(models.Obligation{})

	assert.True(suite.T(), obligation.StartDate.Equal(types.Today()), "Start date is %s", obligation.StartDate)
}

func (suite *TestSuiteStandard) TestObligationMarkPaid() {
	obligation := suite.createTestObligation(models.Obligation{})
	assert.Nil(suite.T(), obligation.LastPaidAt)

	paidAt := types.NewDate(2024, 1, 31)
	err := obligation.MarkPaid(paidAt)
	assert.Nil(suite.T(), err)

	var reloaded models.Obligation
	err = models.DB.First(&reloaded, obligation.ID).Error
	assert.Nil(suite.T(), err)
	assert.NotNil(suite.T(), reloaded.LastPaidAt)
	assert.True(suite.T(), reloaded.LastPaidAt.Equal(paidAt))

	// A later payment moves the cycle base again
	paidAt = types.NewDate(2024, 3, 2)
	err = obligation.MarkPaid(paidAt)
	assert.Nil(suite.T(), err)

	err = models.DB.First(&reloaded, obligation.ID).Error
	assert.Nil(suite.T(), err)
	assert.True(suite.T(), reloaded.LastPaidAt.Equal(paidAt))
}

func (suite *TestSuiteStandard) TestObligations() {
	assert.Empty(suite.T(), models.Obligations())

	_ = suite.createTestObligation(models.Obligation{Name: "Alice"})
	_ = suite.createTestObligation(models.Obligation{Name: "Bob"})

	assert.Len(suite.T(), models.Obligations(), 2)
}

// TestObligationsDBClosed verifies that the snapshot degrades to an empty
// collection when the database is unavailable.
func (suite *TestSuiteStandard) TestObligationsDBClosed() {
	_ = suite.createTestObligation(models.Obligation{})

	suite.CloseDB()

	assert.Empty(suite.T(), models.Obligations())
}

func (suite *TestSuiteStandard) TestObligationExport() {
	_ = suite.createTestObligation(models.Obligation{Name: "Alice"})
	_ = suite.createTestObligation(models.Obligation{Name: "Bob"})

	raw, err := models.Obligation{}.Export()
	assert.Nil(suite.T(), err)
	assert.Contains(suite.T(), string(raw), "Alice")
	assert.Contains(suite.T(), string(raw), "Bob")
}
