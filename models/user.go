package models

import (
	"time"
)

type Role string

const (
	AdminRole    Role = "admin"
	PatientRole  Role = "patient"
	DoctorRole   Role = "doctor"
	UnlistedRole Role = "unlisted"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// User is a patient, doctor or admin. AuthID is the stable subject
// identifier carried in session tokens; every other table references
// the internal uuid ID only.
type User struct {
	ID               string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	AuthID           string     `json:"authId" gorm:"column:auth_id;uniqueIndex;not null"`
	Email            string     `json:"email" gorm:"uniqueIndex;not null"`
	Password         string     `json:"-" gorm:"not null"`
	FirstName        string     `json:"firstName"`
	LastName         string     `json:"lastName"`
	Phone            string     `json:"phone"`
	ImageURL         string     `json:"imageUrl"`
	Role             Role       `json:"role" gorm:"type:varchar(20);default:'unlisted'"`
	Dob              *time.Time `json:"dob"`
	Gender           Gender     `json:"gender" gorm:"type:varchar(10)"`
	SpecializationID *string    `json:"specializationId" gorm:"column:specialization_id;type:uuid"`
	BloodType        string     `json:"bloodType"`
	InsuranceInfo    string     `json:"insuranceInfo"`
	Notes            string     `json:"notes"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// UserRegister model for the registration payload
// @Description model for registering a new user
type UserRegister struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Phone     string `json:"phone"`
}

// UserLogin model for the login payload
type UserLogin struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ProfileUpdate model for role onboarding and profile edits
type ProfileUpdate struct {
	Role             Role       `json:"role" binding:"required,oneof=admin patient doctor unlisted"`
	Dob              *time.Time `json:"dob"`
	Gender           Gender     `json:"gender" binding:"omitempty,oneof=male female other"`
	SpecializationID *string    `json:"specializationId"`
	BloodType        string     `json:"bloodType"`
	InsuranceInfo    string     `json:"insuranceInfo"`
}

func (User) TableName() string {
	return "users"
}
