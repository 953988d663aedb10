package models

import (
	"time"
)

type AppointmentStatus string

const (
	AppointmentScheduled   AppointmentStatus = "scheduled"
	AppointmentCompleted   AppointmentStatus = "completed"
	AppointmentCanceled    AppointmentStatus = "canceled"
	AppointmentRescheduled AppointmentStatus = "rescheduled"
)

// IsTerminal reports whether no further status transitions are allowed.
func (s AppointmentStatus) IsTerminal() bool {
	return s == AppointmentCompleted || s == AppointmentCanceled
}

type SeverityLevel string

const (
	SeverityLow      SeverityLevel = "low"
	SeverityMedium   SeverityLevel = "medium"
	SeverityHigh     SeverityLevel = "high"
	SeverityCritical SeverityLevel = "critical"
)

// Appointment links a patient and a doctor at a point in time. PaymentID
// records which payment funded the booking, if any.
type Appointment struct {
	ID        string            `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Title     string            `json:"title" gorm:"default:Appointment"`
	PaymentID *string           `json:"paymentId" gorm:"column:payment_id;type:uuid"`
	PatientID string            `json:"patientId" gorm:"column:patient_id;type:uuid;not null"`
	DoctorID  string            `json:"doctorId" gorm:"column:doctor_id;type:uuid;not null"`
	Date      time.Time         `json:"date" gorm:"not null"`
	Status    AppointmentStatus `json:"status" gorm:"type:varchar(20);default:'scheduled'"`
	Notes     string            `json:"notes"`
	Severity  SeverityLevel     `json:"severity" gorm:"type:varchar(10);default:'low'"`
	AISummary string            `json:"aiSummary" gorm:"column:ai_summary"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// AppointmentCreate model for booking an appointment
type AppointmentCreate struct {
	DoctorID  string        `json:"doctorId" binding:"required,uuid"`
	Date      time.Time     `json:"date" binding:"required"`
	Notes     string        `json:"notes"`
	Severity  SeverityLevel `json:"severity" binding:"omitempty,oneof=low medium high critical"`
	PaymentID *string       `json:"paymentId" binding:"omitempty,uuid"`
}

// AppointmentUpdate model for rescheduling or changing an appointment
type AppointmentUpdate struct {
	Date   *time.Time        `json:"date"`
	Notes  *string           `json:"notes"`
	Status AppointmentStatus `json:"status" binding:"omitempty,oneof=scheduled completed canceled rescheduled"`
}

func (Appointment) TableName() string {
	return "appointments"
}
