package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
	ErrIDExists         = errors.New("a resource with this ID already exists")
)

// Validation errors. Each one names the offending field so that the
// boundary can surface it to the user.
var (
	ErrObligationNameEmpty         = errors.New("the payer name must not be empty")
	ErrObligationAmountNotPositive = errors.New("the amount must be larger than zero")
	ErrObligationIntervalInvalid   = errors.New("the payment interval must be at least one day")
	ErrPaymentNameEmpty            = errors.New("the payment name must not be empty")
	ErrPaymentAmountNotPositive    = errors.New("the payment amount must be larger than zero")
	ErrCredentialsIncomplete       = errors.New("email and password must both be set")
	ErrCredentialsExist            = errors.New("credentials are already registered, delete them before registering again")
)
