package chat

import (
	"net/http"

	"github.com/Jaydip614/medisync/db"
	"github.com/Jaydip614/medisync/models"
	"github.com/Jaydip614/medisync/realtime"
	"github.com/Jaydip614/medisync/utils"

	"github.com/gin-gonic/gin"
)

// Participant is the subset of a user shown next to rooms and messages
type Participant struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	ImageURL  string `json:"imageUrl"`
}

// RoomWithParticipants is a chat room with both sides resolved
type RoomWithParticipants struct {
	models.ChatRoom
	Doctor  Participant `json:"doctor"`
	Patient Participant `json:"patient"`
}

// MessageWithSender is a chat message with its sender resolved
type MessageWithSender struct {
	models.ChatMessage
	Sender Participant `json:"sender"`
}

func participantFor(userID string) Participant {
	var user models.User
	err := db.DB.Select("id, first_name, last_name, image_url").Where("id = ?", userID).First(&user).Error
	if err != nil {
		utils.LogError(err, "Error resolving chat participant "+userID)
	}
	return Participant{ID: user.ID, FirstName: user.FirstName, LastName: user.LastName, ImageURL: user.ImageURL}
}

// memberRoom loads a room only if the caller is its patient or doctor.
func memberRoom(roomID, userID string) (*models.ChatRoom, bool) {
	var room models.ChatRoom
	err := db.DB.
		Where("id = ? AND (patient_id = ? OR doctor_id = ?)", roomID, userID, userID).
		First(&room).Error
	if err != nil {
		return nil, false
	}
	return &room, true
}

// @Summary List chat rooms
// @Description Rooms where the caller is the patient or the doctor, newest first
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Success 200 {array} chat.RoomWithParticipants "List of rooms"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error retrieving chat rooms"
// @Router /chat/rooms [get]
func GetChatRooms(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var rooms []models.ChatRoom
	err := db.DB.
		Where("patient_id = ? OR doctor_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&rooms).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving chat rooms: " + err.Error()})
		return
	}

	enriched := make([]RoomWithParticipants, 0, len(rooms))
	for _, room := range rooms {
		enriched = append(enriched, RoomWithParticipants{
			ChatRoom: room,
			Doctor:   participantFor(room.DoctorID),
			Patient:  participantFor(room.PatientID),
		})
	}

	c.JSON(http.StatusOK, gin.H{"rooms": enriched})
}

// @Summary List messages in a room
// @Description All messages of a chat room the caller belongs to, oldest first
// @Tags chat
// @Produce json
// @Param roomId path string true "Chat room id"
// @Security BearerAuth
// @Success 200 {array} chat.MessageWithSender "List of messages"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Chat room not found"
// @Failure 500 {object} map[string]string "error: Error retrieving messages"
// @Router /chat/rooms/{roomId}/messages [get]
func GetMessages(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	roomID := c.Param("roomId")

	if _, ok := memberRoom(roomID, userID.(string)); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Chat room not found"})
		return
	}

	var messages []models.ChatMessage
	err := db.DB.
		Where("chat_room_id = ?", roomID).
		Order("created_at ASC").
		Find(&messages).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving messages: " + err.Error()})
		return
	}

	enriched := make([]MessageWithSender, 0, len(messages))
	for _, message := range messages {
		enriched = append(enriched, MessageWithSender{
			ChatMessage: message,
			Sender:      participantFor(message.SenderID),
		})
	}

	c.JSON(http.StatusOK, gin.H{"messages": enriched})
}

// @Summary Send a message
// @Description Store a message in a room the caller belongs to and fan it out on the realtime bus
// @Tags chat
// @Accept json
// @Produce json
// @Param message body models.ChatMessageCreate true "Message information"
// @Security BearerAuth
// @Success 201 {object} chat.MessageWithSender "Created message"
// @Failure 400 {object} map[string]string "error: Invalid request data"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Chat room not found"
// @Failure 500 {object} map[string]string "error: Error creating message"
// @Router /chat/messages [post]
func SendMessage(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input models.ChatMessageCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data: " + err.Error()})
		return
	}

	if _, ok := memberRoom(input.ChatRoomID, userID.(string)); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Chat room not found"})
		return
	}

	message := models.ChatMessage{
		ChatRoomID: input.ChatRoomID,
		SenderID:   userID.(string),
		Content:    input.Content,
		Type:       input.Type,
		FileURL:    input.FileURL,
	}
	if err := db.DB.Create(&message).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error creating message in SendMessage")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating message: " + err.Error()})
		return
	}

	enriched := MessageWithSender{
		ChatMessage: message,
		Sender:      participantFor(userID.(string)),
	}

	realtime.PublishMessage(c.Request.Context(), input.ChatRoomID, enriched)

	c.JSON(http.StatusCreated, enriched)
}

// PresenceUpdate model for presence transitions
type PresenceUpdate struct {
	Status string `json:"status" binding:"required,oneof=online offline"`
}

// @Summary Update presence
// @Description Publish the caller's online/offline status on their presence channel
// @Tags chat
// @Accept json
// @Produce json
// @Param presence body chat.PresenceUpdate true "Presence status"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: Presence updated"
// @Failure 400 {object} map[string]string "error: Invalid request data"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Router /chat/presence [post]
func UpdatePresence(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input PresenceUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data: " + err.Error()})
		return
	}

	realtime.PublishPresence(c.Request.Context(), userID.(string), input.Status)
	c.JSON(http.StatusOK, gin.H{"message": "Presence updated"})
}
