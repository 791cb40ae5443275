package utils

import (
	"fmt"
	"os"
	"strconv"

	"github.com/vaporhouse-br/VaporHouse/models"
	"gopkg.in/gomail.v2"
)

func smtpDialer() *gomail.Dialer {
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil || port == 0 {
		port = 587
	}
	return gomail.NewDialer(
		os.Getenv("SMTP_HOST"),
		port,
		os.Getenv("SMTP_USERNAME"),
		os.Getenv("SMTP_PASSWORD"),
	)
}

func sendMail(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_FROM"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := smtpDialer().DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %v", err)
	}
	return nil
}

// SendOTP sends a verification code via email
func SendOTP(to, otp string) error {
	body := fmt.Sprintf(`
		<h2>Bem-vindo à VaporHouse!</h2>
		<p>Use o código abaixo para confirmar seu endereço de e-mail:</p>
		<h1 style="color: #1a73e8; font-size: 32px; letter-spacing: 5px;">%s</h1>
		<p>O código expira em 15 minutos.</p>
		<p>Se você não solicitou este código, ignore este e-mail.</p>
	`, otp)
	return sendMail(to, "Seu código de verificação VaporHouse", body)
}

// SendPasswordResetOTP sends a password reset code via email
func SendPasswordResetOTP(to, otp string) error {
	body := fmt.Sprintf(`
		<h2>Redefinição de senha</h2>
		<p>Use o código abaixo para redefinir sua senha:</p>
		<h1 style="color: #1a73e8; font-size: 32px; letter-spacing: 5px;">%s</h1>
		<p>O código expira em 15 minutos.</p>
		<p>Se você não solicitou a redefinição, ignore este e-mail.</p>
	`, otp)
	return sendMail(to, "Redefinição de senha VaporHouse", body)
}

// SendOrderConfirmation sends the order summary after a successful checkout.
// Best effort; checkout never fails because of mail delivery.
func SendOrderConfirmation(to string, order *models.Order) error {
	rows := ""
	for _, item := range order.Items {
		flavor := ""
		if item.Flavor != "" {
			flavor = " (" + item.Flavor + ")"
		}
		rows += fmt.Sprintf("<tr><td>%s%s</td><td>%d</td><td>R$ %.2f</td></tr>",
			item.ProductName, flavor, item.Quantity, item.Price)
	}

	body := fmt.Sprintf(`
		<h2>Pedido recebido!</h2>
		<p>Seu pedido <b>%s</b> foi registrado e está aguardando confirmação.</p>
		<table border="1" cellpadding="6" cellspacing="0">
			<tr><th>Produto</th><th>Qtd</th><th>Preço</th></tr>
			%s
		</table>
		<p><b>Total: R$ %.2f</b></p>
		<p>Forma de pagamento: %s</p>
	`, order.ID, rows, order.Total, order.PaymentMethod)
	return sendMail(to, "VaporHouse - Pedido recebido", body)
}
