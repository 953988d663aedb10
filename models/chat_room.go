package models

import (
	"time"
)

// ChatRoom pairs the patient and doctor of one appointment. Exactly one room
// exists per appointment; it is created in the same transaction as the
// appointment and removed by cascade when the appointment is deleted.
type ChatRoom struct {
	ID            string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	AppointmentID string    `json:"appointmentId" gorm:"column:appointment_id;type:uuid;uniqueIndex;not null"`
	PatientID     string    `json:"patientId" gorm:"column:patient_id;type:uuid;not null"`
	DoctorID      string    `json:"doctorId" gorm:"column:doctor_id;type:uuid;not null"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (ChatRoom) TableName() string {
	return "chat_rooms"
}
