package records

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Jaydip614/medisync/db"
	"github.com/Jaydip614/medisync/models"
	"github.com/Jaydip614/medisync/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func limitParam(c *gin.Context, fallback int) int {
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			return parsed
		}
	}
	return fallback
}

// MedicalRecordRow is a record joined with the doctor's name
type MedicalRecordRow struct {
	ID         string    `json:"id"`
	DoctorName string    `json:"doctorName"`
	Diagnosis  string    `json:"diagnosis"`
	Treatment  string    `json:"treatment"`
	RecordDate time.Time `json:"recordDate"`
}

// @Summary The patient's medical records
// @Description Medical records of the authenticated patient, newest first
// @Tags records
// @Produce json
// @Param limit query int false "Maximum rows (default 10)"
// @Security BearerAuth
// @Success 200 {array} records.MedicalRecordRow "List of records"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error retrieving records"
// @Router /records [get]
func GetMedicalRecords(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var rows []MedicalRecordRow
	err := db.DB.Table("medical_records").
		Select("medical_records.id, users.first_name AS doctor_name, medical_records.diagnosis, medical_records.treatment, medical_records.record_date").
		Joins("LEFT JOIN users ON users.id = medical_records.doctor_id").
		Where("medical_records.patient_id = ?", userID).
		Order("medical_records.record_date DESC").
		Limit(limitParam(c, 10)).
		Scan(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving records: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"records": rows})
}

// @Summary The patient's prescriptions
// @Description Prescriptions across the authenticated patient's medical records, newest first
// @Tags records
// @Produce json
// @Param limit query int false "Maximum rows (default 10)"
// @Security BearerAuth
// @Success 200 {array} models.Prescription "List of prescriptions"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error retrieving prescriptions"
// @Router /records/prescriptions [get]
func GetPrescriptions(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var prescriptions []models.Prescription
	err := db.DB.
		Joins("JOIN medical_records ON medical_records.id = prescriptions.medical_record_id").
		Where("medical_records.patient_id = ?", userID).
		Order("prescriptions.start_date DESC").
		Limit(limitParam(c, 10)).
		Find(&prescriptions).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving prescriptions: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"prescriptions": prescriptions})
}

// @Summary File a medical record
// @Description A doctor files a record (with prescriptions) for one of their patients
// @Tags records
// @Accept json
// @Produce json
// @Param record body models.MedicalRecordCreate true "Record information"
// @Security BearerAuth
// @Success 201 {object} models.MedicalRecord "Created record"
// @Failure 400 {object} map[string]string "error: Invalid request data"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 403 {object} map[string]string "error: Doctor role required"
// @Failure 500 {object} map[string]string "error: Error creating record"
// @Router /records [post]
func CreateMedicalRecord(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input models.MedicalRecordCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data: " + err.Error()})
		return
	}

	// A record can only reference an appointment this doctor held with this patient.
	if input.AppointmentID != nil {
		var appointment models.Appointment
		err := db.DB.
			Where("id = ? AND doctor_id = ? AND patient_id = ?", *input.AppointmentID, userID, input.PatientID).
			First(&appointment).Error
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
			return
		}
	}

	var record models.MedicalRecord
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		record = models.MedicalRecord{
			PatientID:     input.PatientID,
			DoctorID:      userID.(string),
			AppointmentID: input.AppointmentID,
			Diagnosis:     input.Diagnosis,
			Treatment:     input.Treatment,
			Notes:         input.Notes,
			RecordDate:    time.Now(),
		}
		if err := tx.Create(&record).Error; err != nil {
			return err
		}

		for _, p := range input.Prescriptions {
			prescription := models.Prescription{
				MedicalRecordID: record.ID,
				Medication:      p.Medication,
				Dosage:          p.Dosage,
				Instructions:    p.Instructions,
				StartDate:       p.StartDate,
				EndDate:         p.EndDate,
			}
			if err := tx.Create(&prescription).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		utils.LogErrorWithUser(userID, err, "Error creating medical record in CreateMedicalRecord")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating record: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, record)
}
