package models

import (
	"time"
)

// MedicalRecord is written by a doctor after a consultation.
type MedicalRecord struct {
	ID            string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	PatientID     string    `json:"patientId" gorm:"column:patient_id;type:uuid;not null"`
	DoctorID      string    `json:"doctorId" gorm:"column:doctor_id;type:uuid;not null"`
	AppointmentID *string   `json:"appointmentId" gorm:"column:appointment_id;type:uuid"`
	Diagnosis     string    `json:"diagnosis" gorm:"not null"`
	Treatment     string    `json:"treatment" gorm:"not null"`
	Notes         string    `json:"notes"`
	RecordDate    time.Time `json:"recordDate" gorm:"not null"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// MedicalRecordCreate model for a doctor filing a record
type MedicalRecordCreate struct {
	PatientID     string               `json:"patientId" binding:"required,uuid"`
	AppointmentID *string              `json:"appointmentId" binding:"omitempty,uuid"`
	Diagnosis     string               `json:"diagnosis" binding:"required"`
	Treatment     string               `json:"treatment" binding:"required"`
	Notes         string               `json:"notes"`
	Prescriptions []PrescriptionCreate `json:"prescriptions"`
}

func (MedicalRecord) TableName() string {
	return "medical_records"
}
