package models

import (
	"time"
)

type SubscriptionStatus string

const (
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionCanceled SubscriptionStatus = "canceled"
	SubscriptionExpired  SubscriptionStatus = "expired"
	SubscriptionTrial    SubscriptionStatus = "trial"
)

// Subscription is a time-boxed entitlement to unlimited bookings. It counts
// while Status is active and EndDate has not passed. Rows are kept for
// history and never deleted.
type Subscription struct {
	ID           string             `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	PatientID    string             `json:"patientId" gorm:"column:patient_id;type:uuid;not null"`
	PlanID       string             `json:"planId" gorm:"column:plan_id;type:uuid;not null"`
	Status       SubscriptionStatus `json:"status" gorm:"type:varchar(20);default:'active'"`
	StartDate    time.Time          `json:"startDate" gorm:"not null"`
	EndDate      time.Time          `json:"endDate" gorm:"not null"`
	AutoRenew    bool               `json:"autoRenew" gorm:"default:true"`
	CanceledAt   *time.Time         `json:"canceledAt"`
	CancelReason string             `json:"cancelReason"`
	CreatedAt    time.Time          `json:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt"`
}

// SubscriptionCancel model for canceling a subscription
type SubscriptionCancel struct {
	Reason string `json:"reason"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
