package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

var (
	hmsBaseURL = "https://api.100ms.live/v2"

	hmsHTTPClient = &http.Client{Timeout: 15 * time.Second}
)

// hmsManagementToken signs the management JWT the 100ms REST API expects.
func hmsManagementToken() (string, error) {
	accessKey := os.Getenv("HMS_ACCESS_KEY")
	secret := os.Getenv("HMS_APP_SECRET")
	if accessKey == "" || secret == "" {
		return "", fmt.Errorf("the 100ms environment variables are not defined")
	}

	now := time.Now().Unix()
	claims := jwt.MapClaims{
		"access_key": accessKey,
		"type":       "management",
		"version":    2,
		"iat":        now,
		"nbf":        now,
		"exp":        time.Now().Add(24 * time.Hour).Unix(),
		"jti":        uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func hmsPost(path string, payload interface{}, out interface{}) error {
	token, err := hmsManagementToken()
	if err != nil {
		return err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("error encoding 100ms request: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, hmsBaseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("error creating 100ms request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := hmsHTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("error calling the 100ms API: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading the 100ms response: %v", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("100ms API returned %d: %s", resp.StatusCode, string(raw))
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("error decoding the 100ms response: %v", err)
	}
	return nil
}

// HMSRoom is the subset of the 100ms room payload the app uses
type HMSRoom struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CreateHMSRoom allocates a video room named after the appointment.
func CreateHMSRoom(appointmentID string) (*HMSRoom, error) {
	payload := map[string]string{
		"name":        "appointment-" + appointmentID,
		"description": "Video call for appointment " + appointmentID,
		"template_id": os.Getenv("HMS_TEMPLATE_ID"),
	}

	var room HMSRoom
	if err := hmsPost("/rooms", payload, &room); err != nil {
		return nil, err
	}
	return &room, nil
}

// GenerateHMSAuthToken issues a join token for one user in one room.
func GenerateHMSAuthToken(roomID, userID, role string) (string, error) {
	userName := "user-" + userID
	if len(userID) >= 8 {
		userName = "user-" + userID[:8]
	}

	payload := map[string]string{
		"room_id":   roomID,
		"user_id":   userID,
		"role":      role,
		"user_name": userName,
	}

	var result struct {
		Token string `json:"token"`
	}
	if err := hmsPost("/room-codes/auth-token", payload, &result); err != nil {
		return "", err
	}
	return result.Token, nil
}
