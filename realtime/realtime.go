// Package realtime fans chat and presence events out to connected clients
// through Redis pub/sub. The database row is the source of truth for every
// message; a failed publish is logged and the request still succeeds.
package realtime

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/Jaydip614/medisync/utils"

	"github.com/go-redis/redis/v8"
)

var Client *redis.Client

// InitRedis connects the realtime bus.
func InitRedis() error {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	Client = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := Client.Ping(ctx).Err(); err != nil {
		return err
	}

	utils.LogSuccess("Redis connection successful")
	return nil
}

type event struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

func publish(ctx context.Context, channel, name string, data interface{}) {
	if Client == nil {
		return
	}

	payload, err := json.Marshal(event{Event: name, Data: data})
	if err != nil {
		utils.LogError(err, "Error encoding realtime event "+name)
		return
	}

	if err := Client.Publish(ctx, channel, payload).Err(); err != nil {
		utils.LogError(err, "Error publishing realtime event "+name+" on "+channel)
	}
}

// PublishMessage pushes a new chat message to the room channel.
func PublishMessage(ctx context.Context, chatRoomID string, message interface{}) {
	publish(ctx, "chat-room-"+chatRoomID, "new-message", message)
}

// PublishPresence pushes an online/offline transition to the user's
// presence channel.
func PublishPresence(ctx context.Context, userID, status string) {
	publish(ctx, "presence-"+userID, "user-status", map[string]string{
		"userId": userID,
		"status": status,
	})
}
