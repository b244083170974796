package services

import (
	"fmt"
	"net/smtp"
)

type EmailService interface {
	SendWelcomeEmail(email, username string) error
}

type SMTPEmailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewSMTPEmailService(host string, port int, username, password, from string) *SMTPEmailService {
	return &SMTPEmailService{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *SMTPEmailService) SendWelcomeEmail(email, username string) error {
	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	to := []string{email}

	message := []byte(fmt.Sprintf(`To: %s
Subject: Welcome to Shoply
MIME-version: 1.0
Content-Type: text/html; charset="UTF-8"

<html>
<body>
<h2>Hi %s!</h2>
<p>Your account has been created. Happy shopping.</p>
</body>
</html>
`, email, username))

	return smtp.SendMail(
		fmt.Sprintf("%s:%d", s.host, s.port),
		auth,
		s.from,
		to,
		message,
	)
}
