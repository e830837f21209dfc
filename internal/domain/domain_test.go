package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func TestAppendInfluencerName(t *testing.T) {
	tests := []struct {
		name     string
		existing *string
		add      string
		want     string
	}{
		{"Lista nula", nil, "ana", "ana"},
		{"Lista vazia", strPtr(""), "ana", "ana"},
		{"Lista só com espaços", strPtr("   "), "ana", "ana"},
		{"Lista com nomes", strPtr("ana, bia"), "caio", "ana, bia, caio"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AppendInfluencerName(tt.existing, tt.add))
		})
	}
}

func TestHasInfluencerName(t *testing.T) {
	tests := []struct {
		name     string
		existing *string
		search   string
		want     bool
	}{
		{"Lista nula", nil, "Bob", false},
		{"Lista vazia", strPtr(""), "Bob", false},
		{"Nome presente", strPtr("Alice, Bob"), "Bob", true},
		{"Ignora espaços e caixa", strPtr("alice ,  bob "), " Bob", true},
		{"Trecho não conta", strPtr("Bobby"), "Bob", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasInfluencerName(tt.existing, tt.search))
		})
	}
}

func TestFlexNumber_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    *float64
		wantErr bool
	}{
		{name: "Número", input: `{"budget": 1500}`, want: ptrFloat(1500)},
		{name: "Texto numérico", input: `{"budget": " 1500.75 "}`, want: ptrFloat(1500.75)},
		{name: "Texto vazio", input: `{"budget": ""}`, want: nil},
		{name: "Nulo", input: `{"budget": null}`, want: nil},
		{name: "Ausente", input: `{}`, want: nil},
		{name: "Texto inválido", input: `{"budget": "mil"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body struct {
				Budget *FlexNumber `json:"budget"`
			}

			err := json.Unmarshal([]byte(tt.input), &body)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, body.Budget.Float())
		})
	}
}

func ptrFloat(v float64) *float64 {
	return &v
}

func TestRange_Contains(t *testing.T) {
	r := Range{Min: 10, Max: 20}

	assert.True(t, r.Contains(10))
	assert.True(t, r.Contains(20))
	assert.False(t, r.Contains(9))
	assert.False(t, r.Contains(21))
	assert.True(t, FullRange().Contains(0))
}

func TestFilters_Equal(t *testing.T) {
	base := Filters{Platforms: []string{PlatformInstagram}, Likes: FullRange(), Posts: FullRange(), Followers: FullRange()}

	same := base
	same.Platforms = []string{PlatformInstagram}
	assert.True(t, base.Equal(same))

	other := base
	other.Keywords = []string{"moda"}
	assert.False(t, base.Equal(other))

	otherRange := base
	otherRange.Likes = Range{Min: 0, Max: 10}
	assert.False(t, base.Equal(otherRange))
}

func TestMediaType_IsVideo(t *testing.T) {
	assert.True(t, MediaTypeVideo.IsVideo())
	assert.True(t, MediaTypeReels.IsVideo())
	assert.False(t, MediaTypeImage.IsVideo())
	assert.False(t, MediaTypeCarousel.IsVideo())
}
