package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/vfg2006/influencer-hub-api/pkg/apiErrors"
	"github.com/vfg2006/influencer-hub-api/pkg/log"
)

const (
	HeaderAuthHookSecret = "x-auth-hook-secret"
	HeaderServiceToken   = "x-service-token"
)

// SharedSecret protege rotas chamadas por serviços (webhooks, jobs externos)
// comparando o header informado com o segredo configurado.
func SharedSecret(header, secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secret == "" {
				log.ForContext(r.Context()).WithField("path", r.URL.Path).
					Errorf("Segredo para o header %s não configurado", header)
				apiErrors.WriteError(w, apiErrors.ErrMisconfiguration, "shared secret not configured", nil)
				return
			}

			provided := r.Header.Get(header)
			if subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
				log.ForContext(r.Context()).WithField("path", r.URL.Path).Warn("Segredo compartilhado inválido")
				apiErrors.WriteError(w, apiErrors.ErrInvalidSharedSecret, "unauthorized", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
