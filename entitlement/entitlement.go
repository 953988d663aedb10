// Package entitlement is the booking ledger: it decides whether a patient
// may book an appointment (active subscription, or credits left on completed
// one-time payments) and converts one unit of entitlement into an
// appointment atomically.
package entitlement

import (
	"errors"
	"time"

	"github.com/Jaydip614/medisync/models"

	"gorm.io/gorm"
)

type Kind string

const (
	KindNone         Kind = "none"
	KindSubscription Kind = "subscription"
	KindSingle       Kind = "single"
)

// Result is the outcome of an entitlement evaluation.
type Result struct {
	Kind         Kind                 `json:"kind"`
	Unlimited    bool                 `json:"unlimited"`
	Remaining    int                  `json:"remaining"`
	Subscription *models.Subscription `json:"subscription,omitempty"`
}

// Evaluate reports the patient's current entitlement. It is read-only and
// can run on the outer connection or inside a transaction handle.
//
// An active subscription always wins over single-payment credits; the
// fallback order here is the rule, not an accident.
func Evaluate(dbh *gorm.DB, patientID string) (Result, error) {
	now := time.Now()

	var sub models.Subscription
	err := dbh.
		Where("patient_id = ? AND status = ? AND end_date >= ?", patientID, models.SubscriptionActive, now).
		Order("end_date DESC").
		First(&sub).Error
	if err == nil {
		return Result{Kind: KindSubscription, Unlimited: true, Subscription: &sub}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return Result{}, err
	}

	var remaining int64
	err = dbh.Model(&models.Payment{}).
		Where("patient_id = ? AND payment_type = ? AND status = ? AND remaining_appointments > 0",
			patientID, models.PaymentTypeSingle, models.PaymentCompleted).
		Select("COALESCE(SUM(remaining_appointments), 0)").
		Scan(&remaining).Error
	if err != nil {
		return Result{}, err
	}

	if remaining > 0 {
		return Result{Kind: KindSingle, Remaining: int(remaining)}, nil
	}
	return Result{Kind: KindNone}, nil
}

// hasCompletedSinglePayment tells exhausted-credits apart from
// never-paid-at-all, so the two cases surface with different messages.
func hasCompletedSinglePayment(dbh *gorm.DB, patientID string) (bool, error) {
	var count int64
	err := dbh.Model(&models.Payment{}).
		Where("patient_id = ? AND payment_type = ? AND status = ?",
			patientID, models.PaymentTypeSingle, models.PaymentCompleted).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
