package models

import (
	"time"
)

type PaymentType string

const (
	PaymentTypeSingle       PaymentType = "single"
	PaymentTypeSubscription PaymentType = "subscription"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

// Payment is one Razorpay order. Amounts are in paise. For single payments
// RemainingAppointments counts unspent booking credits; the column is only
// ever decremented through a guarded conditional update and never goes below
// zero. Entitlement starts counting once Status is completed.
type Payment struct {
	ID                    string        `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	PatientID             string        `json:"patientId" gorm:"column:patient_id;type:uuid;not null"`
	Amount                int64         `json:"amount" gorm:"not null"`
	PaymentMethod         string        `json:"paymentMethod" gorm:"not null"`
	PaymentType           PaymentType   `json:"paymentType" gorm:"type:varchar(20);not null"`
	Status                PaymentStatus `json:"status" gorm:"type:varchar(20);not null"`
	RazorpayOrderID       string        `json:"razorpayOrderId" gorm:"column:razorpay_order_id;not null"`
	RazorpayPaymentID     string        `json:"razorpayPaymentId" gorm:"column:razorpay_payment_id"`
	RazorpaySignature     string        `json:"-" gorm:"column:razorpay_signature"`
	SubscriptionPlanID    *string       `json:"subscriptionPlanId" gorm:"column:subscription_plan_id;type:uuid"`
	SubscriptionID        *string       `json:"subscriptionId" gorm:"column:subscription_id;type:uuid"`
	Notes                 string        `json:"notes"`
	RemainingAppointments int           `json:"remainingAppointments" gorm:"default:1"`
	CreatedAt             time.Time     `json:"createdAt"`
	UpdatedAt             time.Time     `json:"updatedAt"`
}

// SinglePaymentOrderCreate model for a one-time payment order
type SinglePaymentOrderCreate struct {
	Amount int64  `json:"amount" binding:"required,gt=0"`
	Notes  string `json:"notes"`
}

// SubscriptionOrderCreate model for a subscription payment order
type SubscriptionOrderCreate struct {
	PlanID string `json:"planId" binding:"required,uuid"`
	Notes  string `json:"notes"`
}

// PaymentVerify model for the gateway's post-checkout confirmation
type PaymentVerify struct {
	PaymentID         string `json:"paymentId" binding:"required,uuid"`
	RazorpayOrderID   string `json:"razorpayOrderId" binding:"required"`
	RazorpayPaymentID string `json:"razorpayPaymentId" binding:"required"`
	RazorpaySignature string `json:"razorpaySignature" binding:"required"`
}

func (Payment) TableName() string {
	return "payments"
}
