package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/chetanraj-2002/portfolio/internal/config"
)

// MailtrapProvider sends through the Mailtrap HTTP API instead of SMTP.
type MailtrapProvider struct {
	apiURL   string
	apiKey   string
	fromAddr string
	fromName string
	client   *http.Client
}

type mailtrapPayload struct {
	From     personInfo   `json:"from"`
	To       []personInfo `json:"to"`
	Subject  string       `json:"subject"`
	Text     string       `json:"text,omitempty"`
	HTML     string       `json:"html,omitempty"`
	Category string       `json:"category,omitempty"`
}

type personInfo struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

func NewMailtrapProvider(cfg config.MailtrapConfig, fromAddr, fromName string) *MailtrapProvider {
	return &MailtrapProvider{
		apiURL:   cfg.APIURL,
		apiKey:   cfg.APIKey,
		fromAddr: fromAddr,
		fromName: fromName,
		client:   &http.Client{Timeout: 15 * time.Second},
	}
}

func (p *MailtrapProvider) Send(ctx context.Context, m Message) error {
	if p.apiURL == "" || p.apiKey == "" {
		return fmt.Errorf("mailtrap credentials not configured")
	}

	payload := mailtrapPayload{
		From:     personInfo{Email: p.fromAddr, Name: p.fromName},
		To:       []personInfo{{Email: m.To, Name: m.ToName}},
		Subject:  m.Subject,
		HTML:     m.HTML,
		Text:     m.Text,
		Category: "Transactional",
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.apiURL, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Add("Authorization", "Bearer "+p.apiKey)
	req.Header.Add("Content-Type", "application/json")

	res, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		return fmt.Errorf("mailtrap API error: %d", res.StatusCode)
	}
	return nil
}
