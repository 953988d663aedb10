package appointments

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Jaydip614/medisync/db"
	"github.com/Jaydip614/medisync/entitlement"
	"github.com/Jaydip614/medisync/models"
	"github.com/Jaydip614/medisync/utils"

	"github.com/gin-gonic/gin"
)

// AppointmentRow is an appointment joined with doctor details for list views
type AppointmentRow struct {
	ID               string                   `json:"id"`
	Title            string                   `json:"title"`
	DoctorName       string                   `json:"doctorName"`
	DoctorID         string                   `json:"doctorId"`
	SpecializationID *string                  `json:"specializationId"`
	Date             time.Time                `json:"date"`
	Status           models.AppointmentStatus `json:"status"`
	Severity         models.SeverityLevel     `json:"severity"`
	Notes            string                   `json:"notes"`
}

// @Summary List the patient's appointments
// @Description Upcoming or past appointments of the authenticated patient, with doctor details
// @Tags appointments
// @Produce json
// @Param upcoming query bool false "Only appointments from today onwards"
// @Param limit query int false "Maximum rows (default 10)"
// @Security BearerAuth
// @Success 200 {array} appointments.AppointmentRow "List of appointments"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error retrieving appointments"
// @Router /appointments [get]
func GetAppointments(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	limit := 10
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	now := time.Now()
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	query := db.DB.Table("appointments").
		Select("appointments.id, appointments.title, users.first_name AS doctor_name, appointments.doctor_id, users.specialization_id, appointments.date, appointments.status, appointments.severity, appointments.notes").
		Joins("LEFT JOIN users ON users.id = appointments.doctor_id").
		Where("appointments.patient_id = ?", userID)

	if c.Query("upcoming") == "true" {
		query = query.Where("appointments.date >= ?", startOfToday)
	} else {
		query = query.Where("appointments.date < ?", startOfToday)
	}

	var rows []AppointmentRow
	if err := query.Order("appointments.date DESC").Limit(limit).Scan(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving appointments: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"appointments": rows})
}

// @Summary Book an appointment
// @Description Convert one unit of entitlement (subscription or payment credit) into a scheduled appointment and its chat room
// @Tags appointments
// @Accept json
// @Produce json
// @Param appointment body models.AppointmentCreate true "Appointment information"
// @Security BearerAuth
// @Success 201 {object} models.Appointment "Created appointment"
// @Failure 400 {object} map[string]string "error: Invalid request data"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 402 {object} map[string]string "error: No usable payment or subscription"
// @Failure 404 {object} map[string]string "error: Patient or doctor not found"
// @Failure 500 {object} map[string]string "error: Error creating appointment"
// @Router /appointments [post]
func BookAppointment(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input models.AppointmentCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data: " + err.Error()})
		return
	}

	var doctor models.User
	if err := db.DB.Where("id = ? AND role = ?", input.DoctorID, models.DoctorRole).First(&doctor).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
		return
	}

	service := entitlement.NewService(db.DB)
	appointment, err := service.Book(c.Request.Context(), entitlement.BookingRequest{
		PatientID: userID.(string),
		DoctorID:  input.DoctorID,
		Date:      input.Date,
		Notes:     input.Notes,
		Severity:  input.Severity,
		PaymentID: input.PaymentID,
	})
	if err != nil {
		switch {
		case errors.Is(err, entitlement.ErrPatientNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
		case errors.Is(err, entitlement.ErrNoPayment):
			c.JSON(http.StatusPaymentRequired, gin.H{"error": "You need to make a payment to book an appointment"})
		case errors.Is(err, entitlement.ErrEntitlementExhausted):
			c.JSON(http.StatusPaymentRequired, gin.H{"error": "No remaining appointment credits"})
		default:
			utils.LogErrorWithUser(userID, err, "Error booking appointment in BookAppointment")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating appointment: " + err.Error()})
		}
		return
	}

	// Best effort: the booking is already committed.
	go sendConfirmationMail(userID.(string), doctor.FirstName, appointment.Date)

	utils.LogSuccessWithUser(userID, "Appointment booked")
	c.JSON(http.StatusCreated, gin.H{"appointment": appointment})
}

// @Summary Update an appointment
// @Description Reschedule or change the caller's own appointment; moving the date marks it rescheduled
// @Tags appointments
// @Accept json
// @Produce json
// @Param id path string true "Appointment id"
// @Param appointment body models.AppointmentUpdate true "Fields to change"
// @Security BearerAuth
// @Success 200 {object} models.Appointment "Updated appointment"
// @Failure 400 {object} map[string]string "error: Invalid request data or terminal status"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Appointment not found"
// @Failure 500 {object} map[string]string "error: Error updating appointment"
// @Router /appointments/{id} [put]
func UpdateAppointment(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	appointmentID := c.Param("id")

	var input models.AppointmentUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data: " + err.Error()})
		return
	}

	// The ownership guard doubles as the existence check so a foreign
	// appointment id is indistinguishable from a missing one.
	var appointment models.Appointment
	if err := db.DB.Where("id = ? AND patient_id = ?", appointmentID, userID).First(&appointment).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		return
	}

	if appointment.Status.IsTerminal() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A " + string(appointment.Status) + " appointment can no longer be changed"})
		return
	}

	updates := map[string]interface{}{}
	if input.Date != nil {
		updates["date"] = *input.Date
		if !input.Date.Equal(appointment.Date) && input.Status == "" {
			updates["status"] = models.AppointmentRescheduled
		}
	}
	if input.Notes != nil {
		updates["notes"] = *input.Notes
	}
	if input.Status != "" {
		updates["status"] = input.Status
	}
	if len(updates) == 0 {
		c.JSON(http.StatusOK, gin.H{"appointment": appointment})
		return
	}

	result := db.DB.Model(&models.Appointment{}).
		Where("id = ? AND patient_id = ?", appointmentID, userID).
		Updates(updates)
	if result.Error != nil {
		utils.LogErrorWithUser(userID, result.Error, "Error updating appointment in UpdateAppointment")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating appointment: " + result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		return
	}

	var updated models.Appointment
	if err := db.DB.Where("id = ?", appointmentID).First(&updated).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error reloading appointment in UpdateAppointment")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving appointment: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointment": updated})
}

// @Summary Delete an appointment
// @Description Remove the caller's own appointment; the chat room and its messages go with it
// @Tags appointments
// @Produce json
// @Param id path string true "Appointment id"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: Appointment deleted"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Appointment not found"
// @Failure 500 {object} map[string]string "error: Error deleting appointment"
// @Router /appointments/{id} [delete]
func DeleteAppointment(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	appointmentID := c.Param("id")

	result := db.DB.Where("id = ? AND patient_id = ?", appointmentID, userID).Delete(&models.Appointment{})
	if result.Error != nil {
		utils.LogErrorWithUser(userID, result.Error, "Error deleting appointment in DeleteAppointment")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting appointment: " + result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		return
	}

	utils.LogSuccessWithUser(userID, "Appointment deleted")
	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted"})
}

func sendConfirmationMail(patientID, doctorName string, date time.Time) {
	if db.DB == nil {
		return
	}
	var patient models.User
	if err := db.DB.Where("id = ?", patientID).First(&patient).Error; err != nil {
		return
	}
	message := utils.AppointmentConfirmationMail(patient.Email, doctorName, date.Format("Monday, 2 January 2006 at 15:04"))
	utils.SendMail(patient.Email, message)
}
