package models

import (
	"encoding/json"
	"strings"

	"github.com/payremind/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Payment is a one-off payment entry. It predates the recurring obligation
// schema and has no cycle semantics, it is kept so that data recorded with
// early app versions stays accessible.
type Payment struct {
	DefaultModel
	Name   string          // Name of the payer
	Note   string          // Optional note
	Amount decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Amount paid
	Date   types.Date      // Day the payment was recorded
	Time   string          // Wall-clock time of recording, "HH:MM"
}

func (p *Payment) BeforeSave(_ *gorm.DB) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Note = strings.TrimSpace(p.Note)

	return nil
}

func (p *Payment) AfterSave(_ *gorm.DB) error {
	if p.Name == "" {
		return ErrPaymentNameEmpty
	}

	if !decimal.Decimal.IsPositive(p.Amount) {
		return ErrPaymentAmountNotPositive
	}

	return nil
}

// Export returns all payments on this instance for export.
func (Payment) Export() (json.RawMessage, error) {
	var payments []Payment
	err := DB.Unscoped().Where(&Payment{}).Find(&payments).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&payments)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
