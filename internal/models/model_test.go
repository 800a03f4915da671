package models_test

import (
	"github.com/google/uuid"
	"github.com/payremind/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestModelUUIDGenerated() {
	obligation := suite.createTestObligation(models.Obligation{})
	assert.NotEqual(suite.T(), uuid.Nil, obligation.ID)
}

// TestModelPresetIDKept verifies that an ID set before creation is kept so
// that backups can be restored with their original IDs.
func (suite *TestSuiteStandard) TestModelPresetIDKept() {
	id := uuid.New()

	obligation := suite.createTestObligation(models.Obligation{
		DefaultModel: models.DefaultModel{ID: id},
	})
	assert.Equal(suite.T(), id, obligation.ID)
}

func (suite *TestSuiteStandard) TestModelDuplicateID() {
	obligation := suite.createTestObligation(models.Obligation{})

	duplicate := models.Obligation{
		DefaultModel: models.DefaultModel{ID: obligation.ID},
		Name:         "Duplicate",
		Amount:       obligation.Amount,
		IntervalDays: obligation.IntervalDays,
	}

	err := models.DB.Create(&duplicate).Error
	assert.ErrorIs(suite.T(), err, models.ErrIDExists)
}

func (suite *TestSuiteStandard) TestModelTimestampsUTC() {
	obligation := suite.createTestObligation(models.Obligation{})

	var reloaded models.Obligation
	assert.Nil(suite.T(), models.DB.First(&reloaded, obligation.ID).Error)

	assert.Equal(suite.T(), "UTC", reloaded.CreatedAt.Location().String())
	assert.Equal(suite.T(), "UTC", reloaded.UpdatedAt.Location().String())
}
