package igdomain

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeInsights(t *testing.T, raw string) *InsightsResponse {
	t.Helper()

	var resp InsightsResponse
	require.NoError(t, jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal([]byte(raw), &resp))
	return &resp
}

func TestInsightsResponse_ViewsLike(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *int64
	}{
		{name: "plays tem prioridade", raw: `{"data":[{"name":"reach","values":[{"value":5}]},{"name":"plays","values":[{"value":70}]}]}`, want: ptr(70)},
		{name: "video_views antes de impressions", raw: `{"data":[{"name":"impressions","values":[{"value":9}]},{"name":"video_views","values":[{"value":3}]}]}`, want: ptr(3)},
		{name: "reach por último", raw: `{"data":[{"name":"reach","values":[{"value":12}]}]}`, want: ptr(12)},
		{name: "sem valores", raw: `{"data":[{"name":"plays","values":[]}]}`, want: nil},
		{name: "vazio", raw: `{}`, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decodeInsights(t, tt.raw).ViewsLike())
		})
	}
}

func TestGraphError_IsTokenExpired(t *testing.T) {
	assert.True(t, (&GraphError{Details: ErrorDetails{Code: 190}}).IsTokenExpired())
	assert.True(t, (&GraphError{Details: ErrorDetails{Type: "OAuthException", ErrorSubcode: 463}}).IsTokenExpired())
	assert.True(t, (&GraphError{Raw: "Error validating access token: Session has expired"}).IsTokenExpired())
	assert.False(t, (&GraphError{Details: ErrorDetails{Code: 100, Type: "OAuthException"}}).IsTokenExpired())
}

func TestProfile_IgUserID(t *testing.T) {
	assert.Equal(t, "1", (&Profile{UserID: " 1 ", ID: "2"}).IgUserID())
	assert.Equal(t, "2", (&Profile{ID: "2"}).IgUserID())
	assert.Empty(t, (&Profile{}).IgUserID())
}

func ptr(v int64) *int64 {
	return &v
}
