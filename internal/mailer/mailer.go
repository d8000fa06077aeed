package mailer

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/wneessen/go-mail"

	"github.com/azzaconstruction/contact-backend/internal/config"
	"github.com/azzaconstruction/contact-backend/internal/models"
)

// Company contact details shown in the acknowledgment email.
const (
	companyName    = "Azza Construction"
	companyPhone   = "(+91) 73041 21012"
	companyEmail   = "azzaconstruction55@gmail.com"
	companyAddress = "Oppo Jaliwala building, Atmaram nivas, shop no 5, Mumbai 400006"
)

// Mailer dispatches submission notifications through an authenticated SMTP
// relay. Credentials come from the environment; the relay connection is
// fire-and-confirm-dispatch only, no bounce handling.
type Mailer struct {
	client   *mail.Client
	from     string
	operator string // operator inbox; empty disables the operator notification
	sendAck  bool
}

// New builds the SMTP client from the mail-relay configuration. Port 465 uses
// implicit TLS, anything else STARTTLS.
func New(cfg *config.Config) (*Mailer, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.SMTPPort),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.SMTPUser),
		mail.WithPassword(cfg.SMTPPass),
		mail.WithTimeout(15 * time.Second),
	}
	if cfg.SMTPPort == 465 {
		opts = append(opts, mail.WithSSL())
	}

	client, err := mail.NewClient(cfg.SMTPHost, opts...)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}

	return &Mailer{
		client:   client,
		from:     cfg.SMTPUser,
		operator: strings.TrimSpace(cfg.ContactEmail),
		sendAck:  cfg.SendAck,
	}, nil
}

// NotifySubmission sends the configured notification emails for one
// submission. Both targets are attempted independently; if either send fails
// the combined error is returned and the whole request is reported as failed.
func (m *Mailer) NotifySubmission(ctx context.Context, sub models.Submission) error {
	var operatorErr, ackErr error

	if m.operator != "" {
		msg, err := m.buildOperatorMsg(sub)
		if err != nil {
			operatorErr = err
		} else {
			operatorErr = m.client.DialAndSendWithContext(ctx, msg)
		}
	}

	if m.sendAck {
		msg, err := m.buildAckMsg(sub)
		if err != nil {
			ackErr = err
		} else {
			ackErr = m.client.DialAndSendWithContext(ctx, msg)
		}
	}

	return combineSendErrors(operatorErr, ackErr)
}

func combineSendErrors(errs ...error) error {
	parts := make([]string, 0, len(errs))
	for _, err := range errs {
		if err == nil {
			continue
		}
		parts = append(parts, err.Error())
	}
	if len(parts) == 0 {
		return nil
	}
	return errors.New(strings.Join(parts, "; "))
}

func (m *Mailer) buildOperatorMsg(sub models.Submission) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return nil, fmt.Errorf("set sender: %w", err)
	}
	if err := msg.To(m.operator); err != nil {
		return nil, fmt.Errorf("set operator recipient: %w", err)
	}
	msg.Subject("New Contact Form Submission: " + sub.Subject)
	msg.SetBodyString(mail.TypeTextHTML, operatorBody(sub))
	return msg, nil
}

func (m *Mailer) buildAckMsg(sub models.Submission) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return nil, fmt.Errorf("set sender: %w", err)
	}
	if err := msg.To(sub.Email); err != nil {
		return nil, fmt.Errorf("set submitter recipient: %w", err)
	}
	msg.Subject("Thank you for contacting " + companyName)
	msg.SetBodyString(mail.TypeTextHTML, ackBody(sub))
	return msg, nil
}

func operatorBody(sub models.Submission) string {
	message := strings.ReplaceAll(html.EscapeString(sub.Message), "\n", "<br>")
	var b strings.Builder
	b.WriteString(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">`)
	b.WriteString(`<h2 style="color: #333;">New Contact Form Submission</h2>`)
	b.WriteString(`<div style="background: #f9f9f9; padding: 20px; border-radius: 5px;">`)
	b.WriteString(fmt.Sprintf("<p><strong>Name:</strong> %s</p>", html.EscapeString(sub.Name)))
	b.WriteString(fmt.Sprintf("<p><strong>Email:</strong> %s</p>", html.EscapeString(sub.Email)))
	b.WriteString(fmt.Sprintf("<p><strong>Phone:</strong> %s</p>", html.EscapeString(sub.Phone)))
	b.WriteString(fmt.Sprintf("<p><strong>Subject:</strong> %s</p>", html.EscapeString(sub.Subject)))
	b.WriteString("<p><strong>Message:</strong></p>")
	b.WriteString(fmt.Sprintf(`<div style="background: white; padding: 15px; border-left: 4px solid #007bff; margin: 10px 0;">%s</div>`, message))
	b.WriteString("</div>")
	b.WriteString(`<p style="color: #666; font-size: 12px; margin-top: 20px;">This email was sent from your website contact form.</p>`)
	b.WriteString("</div>")
	return b.String()
}

func ackBody(sub models.Submission) string {
	var b strings.Builder
	b.WriteString(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">`)
	b.WriteString(fmt.Sprintf("<h2 style=\"color: #333;\">Thank You for Contacting %s!</h2>", companyName))
	b.WriteString(fmt.Sprintf("<p>Dear %s,</p>", html.EscapeString(sub.Name)))
	b.WriteString("<p>We have received your message and will get back to you within 24 hours.</p>")
	b.WriteString(`<div style="background: #f9f9f9; padding: 15px; border-radius: 5px; margin: 20px 0;">`)
	b.WriteString("<p><strong>Your Message:</strong></p>")
	b.WriteString(fmt.Sprintf("<p>%s</p>", html.EscapeString(sub.Message)))
	b.WriteString("</div>")
	b.WriteString("<p><strong>Our Contact Information:</strong></p>")
	b.WriteString(fmt.Sprintf("<p>Phone: %s</p>", companyPhone))
	b.WriteString(fmt.Sprintf("<p>Email: %s</p>", companyEmail))
	b.WriteString(fmt.Sprintf("<p>Address: %s</p>", companyAddress))
	b.WriteString(fmt.Sprintf("<br><p>Best regards,<br>The %s Team</p>", companyName))
	b.WriteString("</div>")
	return b.String()
}
