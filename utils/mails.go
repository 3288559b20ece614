package utils

import (
	"net/smtp"
	"os"
)

// SendMail sends a raw MIME message over SMTP. Fire and forget: delivery
// failures are logged and never propagated, a lost notification must not
// fail the operation that triggered it.
func SendMail(email string, message []byte) {
	from := os.Getenv("SMTP_FROM")
	password := os.Getenv("SMTP_PASSWORD")

	smtpHost := os.Getenv("SMTP_HOST")
	if smtpHost == "" {
		smtpHost = "smtp.gmail.com"
	}
	smtpPort := os.Getenv("SMTP_PORT")
	if smtpPort == "" {
		smtpPort = "587"
	}

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, []string{email}, message)
	if err != nil {
		LogError(err, "Error sending email")
		return
	}

	LogSuccess("Email sent successfully")
}
