package doctors

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Jaydip614/medisync/db"
	"github.com/Jaydip614/medisync/models"

	"github.com/gin-gonic/gin"
)

func limitParam(c *gin.Context, fallback int) int {
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			return parsed
		}
	}
	return fallback
}

// UpcomingAppointmentRow is an appointment joined with the patient's name
type UpcomingAppointmentRow struct {
	ID          string                   `json:"id"`
	PatientName string                   `json:"patientName"`
	PatientID   string                   `json:"patientId"`
	Date        time.Time                `json:"date"`
	Status      models.AppointmentStatus `json:"status"`
	Severity    models.SeverityLevel     `json:"severity"`
	AISummary   string                   `json:"aiSummary"`
}

// @Summary Upcoming appointments for the doctor
// @Description Scheduled appointments of the authenticated doctor, with patient names
// @Tags doctors
// @Produce json
// @Param limit query int false "Maximum rows (default 10)"
// @Security BearerAuth
// @Success 200 {array} doctors.UpcomingAppointmentRow "List of appointments"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error retrieving appointments"
// @Router /doctors/appointments/upcoming [get]
func GetUpcomingAppointments(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var rows []UpcomingAppointmentRow
	err := db.DB.Table("appointments").
		Select("appointments.id, users.first_name AS patient_name, appointments.patient_id, appointments.date, appointments.status, appointments.severity, appointments.ai_summary").
		Joins("LEFT JOIN users ON users.id = appointments.patient_id").
		Where("appointments.doctor_id = ? AND appointments.status = ?", userID, models.AppointmentScheduled).
		Order("appointments.date ASC").
		Limit(limitParam(c, 10)).
		Scan(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving appointments: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"appointments": rows})
}

// PatientSummaryRow is an AI analysis joined with the patient's name
type PatientSummaryRow struct {
	ID                   string    `json:"id"`
	PatientName          string    `json:"patientName"`
	Symptoms             string    `json:"symptoms"`
	SeverityScore        int       `json:"severityScore"`
	DiseaseSummary       string    `json:"diseaseSummary"`
	SuggestedMedications string    `json:"suggestedMedications"`
	CreatedAt            time.Time `json:"createdAt"`
}

// @Summary Patient AI summaries
// @Description Recent AI triage analyses of patients who have appointments with the authenticated doctor
// @Tags doctors
// @Produce json
// @Param limit query int false "Maximum rows (default 5)"
// @Security BearerAuth
// @Success 200 {array} doctors.PatientSummaryRow "List of summaries"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error retrieving summaries"
// @Router /doctors/patients/summaries [get]
func GetPatientSummaries(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var rows []PatientSummaryRow
	err := db.DB.Table("ai_analyses").
		Select("DISTINCT ai_analyses.id, users.first_name AS patient_name, ai_analyses.symptoms, ai_analyses.severity_score, ai_analyses.disease_summary, ai_analyses.suggested_medications, ai_analyses.created_at").
		Joins("LEFT JOIN users ON users.id = ai_analyses.patient_id").
		Joins("JOIN appointments ON appointments.patient_id = ai_analyses.patient_id").
		Where("appointments.doctor_id = ?", userID).
		Order("ai_analyses.created_at DESC").
		Limit(limitParam(c, 5)).
		Scan(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving summaries: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"summaries": rows})
}
