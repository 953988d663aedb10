package models

import (
	"time"
)

// SubscriptionPlan is an immutable catalog entry. Price is in paise and
// Features is a JSON-encoded string list, mirroring what the payment page
// renders.
type SubscriptionPlan struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name         string    `json:"name" gorm:"not null"`
	Description  string    `json:"description" gorm:"not null"`
	DurationDays int       `json:"durationDays" gorm:"not null"`
	Price        int64     `json:"price" gorm:"not null"`
	Features     string    `json:"features" gorm:"not null"`
	IsActive     bool      `json:"isActive" gorm:"default:true"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (SubscriptionPlan) TableName() string {
	return "subscription_plans"
}
