package mailer

import (
	"os"
	"strconv"

	"github.com/solttameias/store-api/pkg/logger"
	gomail "gopkg.in/gomail.v2"
)

// Mailer envia emails transacionais via SMTP. Quando o SMTP não está
// configurado (ambientes de desenvolvimento e teste), o envio vira um
// no-op registrado em log, nunca um erro.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
	logger logger.Logger
}

// NewFromEnv cria um Mailer a partir das variáveis de ambiente SMTP_HOST,
// SMTP_PORT, SMTP_USER, SMTP_PASSWORD e SMTP_FROM
func NewFromEnv(log logger.Logger) *Mailer {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		log.Warn("SMTP não configurado, emails serão descartados")
		return &Mailer{logger: log}
	}

	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}

	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = os.Getenv("SMTP_USER")
	}

	return &Mailer{
		dialer: gomail.NewDialer(host, port, os.Getenv("SMTP_USER"), os.Getenv("SMTP_PASSWORD")),
		from:   from,
		logger: log,
	}
}

// Send envia um email HTML para o destinatário
func (m *Mailer) Send(to, subject, html string) error {
	if m.dialer == nil {
		m.logger.Info("email descartado (SMTP não configurado)", "to", to, "subject", subject)
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", html)

	return m.dialer.DialAndSend(msg)
}
