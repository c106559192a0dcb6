package models

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

type EmailService struct {
	dialer *gomail.Dialer
}

func NewEmailService() (*EmailService, error) {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")

	if smtpHost == "" || smtpUser == "" || smtpPass == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	port, err := strconv.Atoi(smtpPort)
	if err != nil {
		port = 587
	}

	dialer := gomail.NewDialer(smtpHost, port, smtpUser, smtpPass)

	return &EmailService{dialer: dialer}, nil
}

func (s *EmailService) SendOrderConfirmationEmail(order *Order) error {
	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_FROM"))
	m.SetHeader("To", order.CustomerEmail)
	m.SetHeader("Subject", fmt.Sprintf("Order Confirmation %s - Bistro House", order.OrderNumber))

	itemRows := ""
	for _, item := range order.Items {
		itemRows += fmt.Sprintf(
			`<tr><td style="padding:6px 12px;">%dx %s</td><td style="padding:6px 12px;text-align:right;">%s</td></tr>`,
			item.Quantity, item.Name, formatMoney(item.Price*item.Quantity))
	}

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px; box-shadow: 0 2px 10px rgba(0,0,0,0.1); }
        .header { text-align: center; margin-bottom: 30px; }
        .logo { font-size: 24px; font-weight: bold; color: #b45309; }
        .order-box { background-color: #fffbeb; padding: 20px; margin: 20px 0; border-radius: 8px; }
        .footer { text-align: center; margin-top: 30px; color: #666; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <div class="logo">Bistro House</div>
        </div>
        <h2 style="color: #333;">Order Confirmation</h2>
        <p>Hi %s, thank you for your order!</p>

        <div class="order-box">
            <p><strong>Order Number:</strong> %s</p>
            <table style="width:100%%;border-collapse:collapse;">%s</table>
            <p><strong>Delivery Fee:</strong> %s</p>
            <p><strong>Total:</strong> %s</p>
            <p><strong>Estimated Ready:</strong> %s</p>
        </div>

        <p>Your order has been received and is being processed. We'll notify you when it is ready.</p>

        <div class="footer">
            <p>This is an automated email. Please do not reply.</p>
        </div>
    </div>
</body>
</html>
	`, order.CustomerName, order.OrderNumber, itemRows,
		formatMoney(order.DeliveryFee), formatMoney(order.Total),
		order.EstimatedReadyAt.Format("15:04"))

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func (s *EmailService) SendReservationConfirmationEmail(res *Reservation) error {
	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_FROM"))
	m.SetHeader("To", res.Email)
	m.SetHeader("Subject", fmt.Sprintf("Reservation %s - Bistro House", res.Code))

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px; box-shadow: 0 2px 10px rgba(0,0,0,0.1); }
        .header { text-align: center; margin-bottom: 30px; }
        .logo { font-size: 24px; font-weight: bold; color: #b45309; }
        .order-box { background-color: #fffbeb; padding: 20px; margin: 20px 0; border-radius: 8px; }
        .footer { text-align: center; margin-top: 30px; color: #666; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <div class="logo">Bistro House</div>
        </div>
        <h2 style="color: #333;">Table Reservation Received</h2>
        <p>Hi %s, we have your table request.</p>

        <div class="order-box">
            <p><strong>Reservation Code:</strong> %s</p>
            <p><strong>Date:</strong> %s at %s</p>
            <p><strong>Party Size:</strong> %d</p>
        </div>

        <p>Keep the reservation code handy; you'll need it to check or cancel your booking.</p>

        <div class="footer">
            <p>This is an automated email. Please do not reply.</p>
        </div>
    </div>
</body>
</html>
	`, res.Name, res.Code, res.Date, res.Time, res.Guests)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func formatMoney(cents int) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
