package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"

	razorpay "github.com/razorpay/razorpay-go"
)

var rzpClient *razorpay.Client

// Razorpay API calls must not hang a request forever; a timed-out order
// creation surfaces as a gateway error and no payment row is completed.
const razorpayTimeoutSeconds = 10

// InitRazorpay initializes the payment gateway client
func InitRazorpay() error {
	keyID := os.Getenv("RAZORPAY_KEY_ID")
	keySecret := os.Getenv("RAZORPAY_KEY_SECRET")

	if keyID == "" || keySecret == "" {
		return fmt.Errorf("the Razorpay environment variables are not defined")
	}

	rzpClient = razorpay.NewClient(keyID, keySecret)
	rzpClient.SetTimeout(razorpayTimeoutSeconds)
	LogSuccess("Razorpay client initialized")
	return nil
}

// CreateRazorpayOrder creates a gateway order and returns its id. Amount is
// in paise.
func CreateRazorpayOrder(amount int64, receipt string, notes map[string]interface{}) (string, error) {
	if rzpClient == nil {
		if err := InitRazorpay(); err != nil {
			return "", err
		}
	}

	data := map[string]interface{}{
		"amount":   amount,
		"currency": "INR",
		"receipt":  receipt,
		"notes":    notes,
	}

	order, err := rzpClient.Order.Create(data, nil)
	if err != nil {
		return "", fmt.Errorf("error creating Razorpay order: %v", err)
	}

	orderID, ok := order["id"].(string)
	if !ok || orderID == "" {
		return "", fmt.Errorf("Razorpay order response missing id")
	}
	return orderID, nil
}

// VerifyRazorpaySignature recomputes the checkout signature
// (HMAC-SHA256 over "orderId|paymentId" with the key secret) and compares it
// in constant time against the one supplied by the client.
func VerifyRazorpaySignature(orderID, paymentID, signature string) bool {
	keySecret := os.Getenv("RAZORPAY_KEY_SECRET")

	mac := hmac.New(sha256.New, []byte(keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
