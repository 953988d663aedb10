package utils

import (
	"fmt"
	"net/smtp"
	"os"
)

func SendMail(email string, message []byte) {
	from := os.Getenv("SMTP_FROM")
	password := os.Getenv("SMTP_PASSWORD")
	to := email

	smtpHost := "smtp.gmail.com"
	smtpPort := "587"
	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, []string{to}, message)
	if err != nil {
		LogError(err, "Error sending email to "+email)
		return
	}

	LogSuccess("Email sent to " + email)
}

// AppointmentConfirmationMail builds the booking confirmation message.
func AppointmentConfirmationMail(to, doctorName, date string) []byte {
	subject := "Subject: Your appointment is confirmed\n"
	mime := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n\n"
	body := fmt.Sprintf(`
	<html>
	<body>
		<h2>Appointment confirmed</h2>
		<p>Your appointment with Dr. %s is scheduled for %s.</p>
		<p>A chat room has been opened so you can talk to your doctor before the consultation.</p>
	</body>
	</html>`, doctorName, date)
	return []byte(subject + mime + body)
}

// PaymentReceiptMail builds the payment confirmation message. Amount is in paise.
func PaymentReceiptMail(to string, amount int64, paymentType string) []byte {
	subject := "Subject: Payment received\n"
	mime := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n\n"
	body := fmt.Sprintf(`
	<html>
	<body>
		<h2>Payment received</h2>
		<p>We received your %s payment of ₹%.2f.</p>
		<p>You can now book your appointment from the dashboard.</p>
	</body>
	</html>`, paymentType, float64(amount)/100)
	return []byte(subject + mime + body)
}
