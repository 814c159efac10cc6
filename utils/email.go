package utils

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// EmailConfig holds SMTP configuration
type EmailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func loadEmailConfig() EmailConfig {
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil || port == 0 {
		port = 587
	}
	return EmailConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     port,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("SMTP_FROM"),
	}
}

func sendHTMLEmail(to, subject, body string) error {
	config := loadEmailConfig()

	m := gomail.NewMessage()
	m.SetHeader("From", config.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %v", err)
	}
	return nil
}

// SendBookingConfirmation emails a guest their booking confirmation
func SendBookingConfirmation(to, guestName, confirmationNumber, checkIn, checkOut string, total float64) error {
	body := fmt.Sprintf(`
		<h2>Booking Confirmed</h2>
		<p>Dear %s,</p>
		<p>Your booking has been confirmed. Your confirmation number is:</p>
		<h1 style="color: #4CAF50; font-size: 28px; letter-spacing: 3px;">%s</h1>
		<p>Check-in: %s<br>Check-out: %s</p>
		<p>Total amount: %.2f</p>
		<p>We look forward to welcoming you.</p>`,
		guestName, confirmationNumber, checkIn, checkOut, total)

	return sendHTMLEmail(to, "Your Booking Confirmation", body)
}

// SendRefundProcessed emails a guest that their refund has been completed
func SendRefundProcessed(to, guestName string, amount float64, reason string) error {
	body := fmt.Sprintf(`
		<h2>Refund Processed</h2>
		<p>Dear %s,</p>
		<p>A refund of %.2f has been processed to your original payment method.</p>
		<p>Reason: %s</p>
		<p>Please allow 5-7 business days for the amount to reflect.</p>`,
		guestName, amount, reason)

	return sendHTMLEmail(to, "Your Refund Has Been Processed", body)
}
