package models_test

import (
	"github.com/google/uuid"
	"github.com/payremind/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

// TestNotFoundMessage verifies that the query callback replaces the generic
// gorm error with one that names the resource.
func (suite *TestSuiteStandard) TestNotFoundMessage() {
	err := models.DB.First(&models.Obligation{}, uuid.New()).Error

	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
	assert.Equal(suite.T(), "there is no obligation matching your query", err.Error())
}

// TestGeneralError verifies that unspecified database errors are translated
// into the general error so that no internals leak to API consumers.
func (suite *TestSuiteStandard) TestGeneralError() {
	suite.CloseDB()

	err := models.DB.Find(&[]models.Obligation{}).Error
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}

func (suite *TestSuiteStandard) TestConnectInvalidDSN() {
	// Keep the suite's database usable, Connect sets the package level DB
	defer func() {
		err := models.Connect(suite.T().TempDir() + "/recover.db")
		assert.Nil(suite.T(), err)
	}()

	err := models.Connect("/this/path/does/not/exist/db")
	assert.NotNil(suite.T(), err)
}
