// Package sender delivers annotations and confirmation messages to the
// ChatGuru HTTP API.
package sender

import (
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"chatguru/internal/config"
	"chatguru/internal/lib/sl"
)

// defaultPhoneID is the sending line used when the config does not name
// one.
const defaultPhoneID = "62558780e2923cc4705beee1"

const (
	requestTimeout = 10 * time.Second
	connectTimeout = 3 * time.Second
)

type Service struct {
	client    *http.Client
	apiToken  string
	endpoint  string
	accountID string
	phoneID   string
	log       *slog.Logger
}

func NewSenderService(conf *config.Config, logger *slog.Logger) *Service {
	phoneID := conf.ChatGuru.PhoneId
	if phoneID == "" {
		phoneID = defaultPhoneID
	}

	return &Service{
		client: &http.Client{
			Timeout: requestTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{Timeout: connectTimeout}).DialContext,
			},
		},
		apiToken:  conf.ChatGuru.ApiToken,
		endpoint:  BaseURL(conf.ChatGuru.Endpoint),
		accountID: conf.ChatGuru.AccountId,
		phoneID:   phoneID,
		log:       logger.With(sl.Module("chatguru sender")),
	}
}

// BaseURL normalizes a configured endpoint so the result carries exactly
// one /api/v1 suffix, whatever mix of path and trailing slash was
// configured.
func BaseURL(endpoint string) string {
	trimmed := strings.TrimRight(endpoint, "/")
	if strings.HasSuffix(trimmed, "/api/v1") {
		return trimmed
	}
	return trimmed + "/api/v1"
}

// CleanPhone strips everything but digits, turning displays like
// "+55 (11) 99999-9999" into "5511999999999".
func CleanPhone(phone string) string {
	var b strings.Builder
	b.Grow(len(phone))
	for _, ch := range phone {
		if ch >= '0' && ch <= '9' {
			b.WriteRune(ch)
		}
	}
	return b.String()
}
