package email

import (
	"context"
	"errors"
	"html"
	"strings"

	"github.com/chetanraj-2002/portfolio/internal/modules/contact"
)

// ContactNotifier fans a new submission out to two mails: a
// notification for the site owner and an acknowledgment back to the
// sender. Both are attempted even if the first fails.
type ContactNotifier struct {
	sender    Sender
	ownerAddr string
	ownerName string
}

func NewContactNotifier(sender Sender, ownerAddr, ownerName string) *ContactNotifier {
	return &ContactNotifier{
		sender:    sender,
		ownerAddr: ownerAddr,
		ownerName: ownerName,
	}
}

func (n *ContactNotifier) Notify(ctx context.Context, m contact.Message) error {
	ownerErr := n.sender.Send(ctx, n.ownerMail(m))
	ackErr := n.sender.Send(ctx, n.ackMail(m))
	return errors.Join(ownerErr, ackErr)
}

func (n *ContactNotifier) ownerMail(m contact.Message) Message {
	subject := "New Contact Form Submission: " + m.Subject

	text := "New contact form submission\n\n" +
		"From: " + m.FullName() + " (" + m.Email + ")\n" +
		"Subject: " + m.Subject + "\n\n" +
		m.Body + "\n"

	htmlBody := `
<html>
  <body style="font-family: sans-serif;">
    <h2>New Contact Form Submission</h2>
    <p><strong>From:</strong> ` + html.EscapeString(m.FullName()) + ` (` + html.EscapeString(m.Email) + `)</p>
    <p><strong>Subject:</strong> ` + html.EscapeString(m.Subject) + `</p>
    <h3>Message:</h3>
    <p>` + nl2br(m.Body) + `</p>
    <hr>
    <p style="color: #666; font-size: 12px;">
      This email was sent from your portfolio contact form.
    </p>
  </body>
</html>
`
	return Message{
		To:      n.ownerAddr,
		ToName:  n.ownerName,
		Subject: subject,
		HTML:    htmlBody,
		Text:    text,
	}
}

func (n *ContactNotifier) ackMail(m contact.Message) Message {
	text := "Thank you for your message, " + m.FirstName + "!\n\n" +
		"I've received your message and will get back to you as soon as possible.\n\n" +
		"Your message:\n" +
		"Subject: " + m.Subject + "\n\n" +
		m.Body + "\n\n" +
		"Best regards,\n" + n.ownerName + "\n"

	htmlBody := `
<html>
  <body style="font-family: sans-serif;">
    <h2>Thank you for your message, ` + html.EscapeString(m.FirstName) + `!</h2>
    <p>I've received your message and will get back to you as soon as possible.</p>
    <h3>Your message:</h3>
    <p><strong>Subject:</strong> ` + html.EscapeString(m.Subject) + `</p>
    <p>` + nl2br(m.Body) + `</p>
    <hr>
    <p>Best regards,<br>` + html.EscapeString(n.ownerName) + `</p>
    <p style="color: #666; font-size: 12px;">
      This is an automated confirmation email.
    </p>
  </body>
</html>
`
	return Message{
		To:      m.Email,
		ToName:  m.FullName(),
		Subject: "Thank you for contacting me!",
		HTML:    htmlBody,
		Text:    text,
	}
}

func nl2br(s string) string {
	return strings.ReplaceAll(html.EscapeString(s), "\n", "<br>")
}
