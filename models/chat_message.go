package models

import (
	"time"
)

type MessageType string

const (
	MessageText     MessageType = "text"
	MessageImage    MessageType = "image"
	MessageDocument MessageType = "document"
	MessageEmoji    MessageType = "emoji"
)

// ChatMessage is one message inside a chat room. FileURL is set for image
// and document messages after the file has been uploaded to object storage.
type ChatMessage struct {
	ID         string      `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ChatRoomID string      `json:"chatRoomId" gorm:"column:chat_room_id;type:uuid;not null"`
	SenderID   string      `json:"senderId" gorm:"column:sender_id;type:uuid;not null"`
	Content    string      `json:"content"`
	Type       MessageType `json:"type" gorm:"type:varchar(10);default:'text'"`
	FileURL    string      `json:"fileUrl" gorm:"column:file_url"`
	CreatedAt  time.Time   `json:"createdAt"`
}

// ChatMessageCreate model for sending a message
type ChatMessageCreate struct {
	ChatRoomID string      `json:"chatRoomId" binding:"required,uuid"`
	Content    string      `json:"content"`
	Type       MessageType `json:"type" binding:"required,oneof=text image document emoji"`
	FileURL    string      `json:"fileUrl"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
