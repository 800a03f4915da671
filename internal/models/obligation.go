package models

import (
	"encoding/json"
	"strings"

	"github.com/payremind/backend/internal/types"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Obligation is a recurring payment expectation from one payer. The payment
// cycle is anchored on StartDate and repeats every IntervalDays days.
type Obligation struct {
	DefaultModel
	Name         string          // Name of the payer
	Note         string          // Optional note
	Amount       decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Amount owed per cycle
	StartDate    types.Date      // Anchor of the first cycle
	IntervalDays uint            // Days between expected payments
	LastPaidAt   *types.Date     // Day of the most recent payment, nil until the first one
}

func (o *Obligation) BeforeCreate(tx *gorm.DB) error {
	err := o.DefaultModel.BeforeCreate(tx)
	if err != nil {
		return err
	}

	// Obligations created without an explicit start date are anchored on
	// their creation day, like in the first app versions where createdAt
	// doubled as the cycle anchor.
	if o.StartDate.IsZero() {
		o.StartDate = types.Today()
	}

	return nil
}

func (o *Obligation) BeforeSave(_ *gorm.DB) error {
	o.Name = strings.TrimSpace(o.Name)
	o.Note = strings.TrimSpace(o.Note)

	return nil
}

func (o *Obligation) AfterSave(_ *gorm.DB) error {
	if o.Name == "" {
		return ErrObligationNameEmpty
	}

	if !decimal.Decimal.IsPositive(o.Amount) {
		return ErrObligationAmountNotPositive
	}

	if o.IntervalDays < 1 {
		return ErrObligationIntervalInvalid
	}

	return nil
}

// MarkPaid records a payment by setting LastPaidAt to the given day and
// persisting the change. Repeated calls are allowed, each one resets the
// cycle base again.
func (o *Obligation) MarkPaid(paidAt types.Date) error {
	return DB.Model(o).Select("LastPaidAt").Updates(Obligation{LastPaidAt: &paidAt}).Error
}

// Obligations returns a snapshot of all obligations.
//
// Read failures degrade to an empty snapshot so that reporting and reminders
// keep working when the store is unavailable. Mutations never fail open.
func Obligations() []Obligation {
	var obligations []Obligation

	if DB == nil {
		return obligations
	}

	err := DB.Find(&obligations).Error
	if err != nil {
		log.Warn().Err(err).Msg("reading obligations failed, treating the collection as empty")
		return []Obligation{}
	}

	return obligations
}

// Export returns all obligations on this instance for export.
func (Obligation) Export() (json.RawMessage, error) {
	var obligations []Obligation
	err := DB.Unscoped().Where(&Obligation{}).Find(&obligations).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&obligations)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
