package igclient

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"
	"unicode"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const minTokenLength = 30

var (
	ErrTokenEmpty      = errors.New("token de acesso do Instagram vazio")
	ErrTokenWhitespace = errors.New("token de acesso do Instagram contém espaços")
	ErrTokenTooShort   = errors.New("token de acesso do Instagram curto demais")
)

var (
	bearerPrefix      = regexp.MustCompile(`(?i)^Bearer\s+`)
	accessTokenPrefix = regexp.MustCompile(`(?i)^access_token=`)
	surroundingQuotes = regexp.MustCompile(`^['"]|['"]$`)
	invisibleChars    = regexp.MustCompile(`[\x{200B}-\x{200D}\x{FEFF}]`)
	controlChars      = regexp.MustCompile(`[\x00-\x1F\x7F]`)
)

// NormalizeToken extrai o token cru de valores colados de formas variadas:
// URL com access_token, querystring, JSON, prefixo Bearer ou aspas.
func NormalizeToken(raw string) (string, error) {
	t := strings.TrimSpace(raw)
	if t == "" {
		return "", ErrTokenEmpty
	}

	if u, err := url.Parse(t); err == nil && u.Scheme != "" && u.Host != "" {
		if fromURL := u.Query().Get("access_token"); fromURL != "" {
			t = fromURL
		}
	}

	if qs, err := url.ParseQuery(strings.TrimPrefix(t, "?")); err == nil {
		if fromQS := qs.Get("access_token"); fromQS != "" {
			t = fromQS
		}
	}

	if strings.HasPrefix(t, "{") {
		var payload struct {
			AccessToken string `json:"access_token"`
		}
		if err := json.Unmarshal([]byte(t), &payload); err == nil && payload.AccessToken != "" {
			t = payload.AccessToken
		}
	}

	t = strings.TrimSpace(bearerPrefix.ReplaceAllString(t, ""))
	t = strings.TrimSpace(accessTokenPrefix.ReplaceAllString(t, ""))
	t = strings.TrimSpace(surroundingQuotes.ReplaceAllString(t, ""))

	t = invisibleChars.ReplaceAllString(t, "")
	t = controlChars.ReplaceAllString(t, "")

	if t == "" {
		return "", errors.Wrap(ErrTokenEmpty, "após normalização")
	}
	if strings.IndexFunc(t, unicode.IsSpace) >= 0 {
		return "", ErrTokenWhitespace
	}
	if len(t) < minTokenLength {
		return "", ErrTokenTooShort
	}

	return t, nil
}

// Fingerprint mostra só o início e o fim do token para logs
func Fingerprint(token string) string {
	if len(token) <= 24 {
		return fmt.Sprintf("len=%d", len(token))
	}
	return fmt.Sprintf("len=%d %s...%s", len(token), token[:12], token[len(token)-12:])
}

// TokenResponse representa a resposta de renovação do token de longa duração
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// FormatDuration formata a duração em segundos para um formato legível
func FormatDuration(seconds int64) string {
	duration := time.Duration(seconds) * time.Second
	days := duration / (24 * time.Hour)
	hours := (duration % (24 * time.Hour)) / time.Hour
	minutes := (duration % time.Hour) / time.Minute

	return fmt.Sprintf("%d dias, %d horas e %d minutos", days, hours, minutes)
}

// CalculateTokenExpiration devolve o instante de renovação, um dia antes da expiração real
func CalculateTokenExpiration(now time.Time, expiresIn int64) time.Time {
	const buffer = int64(24 * 60 * 60)
	safeExpiresIn := expiresIn - buffer

	if safeExpiresIn < 0 {
		safeExpiresIn = expiresIn / 2
	}

	return now.Add(time.Duration(safeExpiresIn) * time.Second)
}
