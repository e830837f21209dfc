package igclient

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validToken = "IGQWRabcdefghijklmnopqrstuvwxyz0123456789"

func TestNormalizeToken(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr error
	}{
		{name: "token cru", raw: validToken, want: validToken},
		{name: "espaços nas pontas", raw: "  " + validToken + "\n", want: validToken},
		{name: "url com access_token", raw: "https://graph.instagram.com/me?fields=id&access_token=" + validToken, want: validToken},
		{name: "querystring", raw: "access_token=" + validToken + "&expires_in=5183944", want: validToken},
		{name: "json", raw: `{"access_token":"` + validToken + `","token_type":"bearer"}`, want: validToken},
		{name: "prefixo Bearer", raw: "bearer " + validToken, want: validToken},
		{name: "aspas", raw: `"` + validToken + `"`, want: validToken},
		{name: "caracteres invisíveis", raw: "\u200b" + validToken + "\ufeff", want: validToken},
		{name: "caracteres de controle", raw: validToken[:10] + "\x07" + validToken[10:], want: validToken},
		{name: "vazio", raw: "   ", wantErr: ErrTokenEmpty},
		{name: "vazio após normalização", raw: `""`, wantErr: ErrTokenEmpty},
		{name: "espaço no meio", raw: validToken[:10] + " " + validToken[10:], wantErr: ErrTokenWhitespace},
		{name: "curto demais", raw: "EAAB123", wantErr: ErrTokenTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeToken(tt.raw)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "erro inesperado: %v", err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculateTokenExpiration(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, now.Add(59*24*time.Hour), CalculateTokenExpiration(now, 60*24*60*60))
	assert.Equal(t, now.Add(6*time.Hour), CalculateTokenExpiration(now, 12*60*60))
}

func TestFingerprint(t *testing.T) {
	assert.Equal(t, "len=5", Fingerprint("abcde"))
	assert.Equal(t, "len=41 IGQWRabcdefg...yz0123456789", Fingerprint(validToken))
}
