package csrf

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

var ErrInvalid = errors.New("invalid csrf token")

// Codec issues and verifies stateless tokens bound to a session. The
// token format is base64(json).base64(hmac).
type Codec struct {
	Secret []byte
	TTL    time.Duration
}

func NewCodec(secret []byte, ttl time.Duration) *Codec {
	return &Codec{Secret: secret, TTL: ttl}
}

type claims struct {
	SessionID string `json:"sid"`
	Nonce     string `json:"n"`
	ExpiresAt int64  `json:"exp"`
}

func (c *Codec) Issue(sessionID string) (string, error) {
	nonce := make([]byte, 16)
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}
	b, err := json.Marshal(claims{
		SessionID: sessionID,
		Nonce:     base64.RawURLEncoding.EncodeToString(nonce),
		ExpiresAt: time.Now().Add(c.TTL).Unix(),
	})
	if err != nil {
		return "", err
	}
	payload := base64.RawURLEncoding.EncodeToString(b)
	return payload + "." + sign(c.Secret, payload), nil
}

// Verify checks the signature, expiry and session binding.
func (c *Codec) Verify(token, sessionID string) error {
	parts := strings.Split(token, ".")
	if len(parts) != 2 {
		return ErrInvalid
	}
	payload, sig := parts[0], parts[1]
	if !hmac.Equal([]byte(sign(c.Secret, payload)), []byte(sig)) {
		return ErrInvalid
	}
	raw, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return ErrInvalid
	}
	var cl claims
	if err := json.Unmarshal(raw, &cl); err != nil {
		return ErrInvalid
	}
	if cl.SessionID == "" || cl.SessionID != sessionID {
		return ErrInvalid
	}
	if time.Now().Unix() > cl.ExpiresAt {
		return ErrInvalid
	}
	return nil
}

func sign(secret []byte, payload string) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
