package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strings"
)

// SendBookingStatusEmail notifies the counterparty of a booking status
// change. When SMTP is not configured the message is logged instead so
// deployments without a mail relay keep working.
func SendBookingStatusEmail(recipientEmail, recipientName, toolName, referenceCode, status, startDate, endDate string) error {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USERNAME")
	smtpPass := os.Getenv("SMTP_PASSWORD")
	fromName := os.Getenv("SMTP_FROM_NAME")

	if smtpUser == "" || smtpPass == "" || smtpHost == "" || smtpPort == "" {
		log.Printf("[MOCK EMAIL] booking %s -> %s to:%s tool:%s", referenceCode, status, recipientEmail, toolName)
		return nil
	}

	safe := func(s string) string {
		return strings.ReplaceAll(strings.TrimSpace(s), "\r\n", " ")
	}
	recipientName = safe(recipientName)
	toolName = safe(toolName)
	referenceCode = safe(referenceCode)

	from := fmt.Sprintf("%s <%s>", fromName, smtpUser)
	to := []string{recipientEmail}
	auth := smtp.PlainAuth("", smtpUser, smtpPass, smtpHost)
	addr := fmt.Sprintf("%s:%s", smtpHost, smtpPort)

	subject := fmt.Sprintf("Booking %s is now %s", referenceCode, status)
	body := fmt.Sprintf(
		"Hi %s,\n\n"+
			"Your rental booking %s for %s (%s to %s) is now %s.\n\n"+
			"Open the KrishiMitra app for details.\n",
		recipientName, referenceCode, toolName, startDate, endDate, status,
	)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s\r\n", from))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", recipientEmail))
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	sb.WriteString(body + "\r\n")

	if err := smtp.SendMail(addr, auth, smtpUser, to, []byte(sb.String())); err != nil {
		log.Printf("Failed to send booking email to %s: %v", recipientEmail, err)
		return err
	}
	return nil
}
