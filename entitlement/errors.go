package entitlement

import (
	"errors"
)

var (
	// ErrPatientNotFound: the booking patient does not exist.
	ErrPatientNotFound = errors.New("patient not found")

	// ErrNoPayment: the patient has never completed a payment; the client
	// should route to the payment flow.
	ErrNoPayment = errors.New("no payment found, a payment is required to book an appointment")

	// ErrEntitlementExhausted: payments exist but every appointment credit
	// has been spent and no subscription is active.
	ErrEntitlementExhausted = errors.New("no remaining appointment credits")

	// ErrConcurrentConflict: the guarded decrement affected zero rows
	// because a concurrent booking spent the credit first. Book retries the
	// whole evaluation once before giving up.
	ErrConcurrentConflict = errors.New("appointment credit was taken by a concurrent booking")
)
