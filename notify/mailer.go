package notify

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Sendgrid delivers plain-text letters through the SendGrid API.
type Sendgrid struct {
	APIKey   string
	From     string
	FromName string
}

func NewSendgrid(apiKey, from, fromName string) *Sendgrid {
	return &Sendgrid{APIKey: apiKey, From: from, FromName: fromName}
}

func (s *Sendgrid) Mail(to, subject, body string) error {
	from := mail.NewEmail(s.FromName, s.From)
	message := mail.NewSingleEmail(from, subject, mail.NewEmail("", to), body, body)

	client := sendgrid.NewSendClient(s.APIKey)
	resp, err := client.Send(message)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid: send returned %d", resp.StatusCode)
	}
	return nil
}
