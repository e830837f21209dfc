package igdomain

import (
	"fmt"
	"strings"
)

// ErrorResponse representa a estrutura de erro da Graph API
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da Graph API
type ErrorDetails struct {
	Message      string `json:"message"`
	Type         string `json:"type"`
	Code         int    `json:"code"`
	ErrorSubcode int    `json:"error_subcode,omitempty"`
	FBTraceID    string `json:"fbtrace_id"`
}

// GraphError é devolvido quando a Graph API responde com status diferente de 2xx
type GraphError struct {
	StatusCode int
	Details    ErrorDetails
	Raw        string
}

func (e *GraphError) Error() string {
	msg := e.Details.Message
	if msg == "" {
		msg = e.Raw
	}

	extras := make([]string, 0, 2)
	if e.Details.Code != 0 {
		extras = append(extras, fmt.Sprintf("code %d", e.Details.Code))
	}
	if e.Details.FBTraceID != "" {
		extras = append(extras, "fbtrace_id "+e.Details.FBTraceID)
	}

	if len(extras) == 0 {
		return fmt.Sprintf("GRAPH %d: %s", e.StatusCode, msg)
	}
	return fmt.Sprintf("GRAPH %d: %s (%s)", e.StatusCode, msg, strings.Join(extras, ", "))
}

// IsTokenExpired verifica se o erro é de token expirado.
// Código 190 e os subcódigos 460, 463 e 467 indicam sessão inválida.
func (e *GraphError) IsTokenExpired() bool {
	if e.Details.Code == 190 {
		return true
	}
	if e.Details.Type == "OAuthException" {
		switch e.Details.ErrorSubcode {
		case 460, 463, 467:
			return true
		}
	}
	return containsTokenExpirationMessage(e.Raw)
}

func containsTokenExpirationMessage(message string) bool {
	return strings.Contains(message, "Error validating access token") ||
		strings.Contains(message, "Session has expired") ||
		strings.Contains(message, "The session has been invalidated")
}
