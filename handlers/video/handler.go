package video

import (
	"net/http"

	"github.com/Jaydip614/medisync/db"
	"github.com/Jaydip614/medisync/models"
	"github.com/Jaydip614/medisync/utils"

	"github.com/gin-gonic/gin"
)

// RoomCreate model for allocating a video room
type RoomCreate struct {
	AppointmentID string `json:"appointmentId" binding:"required,uuid"`
}

// TokenCreate model for requesting a join token
type TokenCreate struct {
	RoomID string `json:"roomId" binding:"required"`
	Role   string `json:"role"`
}

// callParticipant checks that the caller belongs to the appointment.
func callParticipant(appointmentID, userID string) bool {
	var appointment models.Appointment
	err := db.DB.
		Where("id = ? AND (patient_id = ? OR doctor_id = ?)", appointmentID, userID, userID).
		First(&appointment).Error
	return err == nil
}

// @Summary Create a video room
// @Description Allocate a 100ms room for an appointment the caller belongs to
// @Tags video
// @Accept json
// @Produce json
// @Param room body video.RoomCreate true "Appointment reference"
// @Security BearerAuth
// @Success 201 {object} utils.HMSRoom "Created room"
// @Failure 400 {object} map[string]string "error: Invalid request data"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Appointment not found"
// @Failure 502 {object} map[string]string "error: Video provider unavailable"
// @Router /video/rooms [post]
func CreateRoom(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input RoomCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data: " + err.Error()})
		return
	}

	if !callParticipant(input.AppointmentID, userID.(string)) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		return
	}

	room, err := utils.CreateHMSRoom(input.AppointmentID)
	if err != nil {
		utils.LogErrorWithUser(userID, err, "Error creating 100ms room in CreateRoom")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to create video room"})
		return
	}

	utils.LogSuccessWithUser(userID, "Video room created for appointment "+input.AppointmentID)
	c.JSON(http.StatusCreated, room)
}

// @Summary Get a join token
// @Description Issue a 100ms auth token for the caller to join a room
// @Tags video
// @Accept json
// @Produce json
// @Param token body video.TokenCreate true "Room reference"
// @Security BearerAuth
// @Success 200 {object} map[string]string "token: join token"
// @Failure 400 {object} map[string]string "error: Invalid request data"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 502 {object} map[string]string "error: Video provider unavailable"
// @Router /video/token [post]
func GenerateToken(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input TokenCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data: " + err.Error()})
		return
	}

	role := input.Role
	if role == "" {
		role = "host"
	}

	token, err := utils.GenerateHMSAuthToken(input.RoomID, userID.(string), role)
	if err != nil {
		utils.LogErrorWithUser(userID, err, "Error generating 100ms token in GenerateToken")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to generate join token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
