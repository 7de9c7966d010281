package lalamove

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"
)

// Signer builds the HMAC authorization header the aggregator expects:
//
//	hmac {apiKey}:{timestamp}:{hex(HMAC-SHA256(secret, timestamp\r\nMETHOD\r\nPATH\r\n\r\nBODY))}
//
// PATH must be the versioned path ("/v3/quotations") exactly as sent on the wire.
type Signer struct {
	apiKey string
	secret string
	now    func() time.Time
}

func NewSigner(apiKey, secret string, now func() time.Time) *Signer {
	if now == nil {
		now = time.Now
	}
	return &Signer{apiKey: apiKey, secret: secret, now: now}
}

// Sign returns the millisecond timestamp used and the signature over the request.
func (s *Signer) Sign(method, path, body string) (string, string) {
	timestamp := strconv.FormatInt(s.now().UnixMilli(), 10)
	return timestamp, s.SignAt(timestamp, method, path, body)
}

// SignAt signs the request for a given timestamp.
func (s *Signer) SignAt(timestamp, method, path, body string) string {
	message := timestamp + "\r\n" + method + "\r\n" + path + "\r\n\r\n" + body

	mac := hmac.New(sha256.New, []byte(s.secret))
	mac.Write([]byte(message))
	return hex.EncodeToString(mac.Sum(nil))
}

// Authorization returns the full Authorization header value.
func (s *Signer) Authorization(method, path, body string) string {
	timestamp, signature := s.Sign(method, path, body)
	return fmt.Sprintf("hmac %s:%s:%s", s.apiKey, timestamp, signature)
}
