package search

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/influencer-hub-api/internal/domain"
)

func TestFilterForm_Submit(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(f *FilterForm)
		wantErr  error
		validate func(t *testing.T, filters domain.Filters)
	}{
		{
			name:    "Sem plataforma selecionada - deve retornar erro de validação",
			setup:   func(f *FilterForm) { f.SetUsername("ana") },
			wantErr: ErrNoPlatformSelected,
		},
		{
			name: "Plataforma desmarcada - deve retornar erro de validação",
			setup: func(f *FilterForm) {
				f.TogglePlatform("instagram")
				f.TogglePlatform("instagram")
			},
			wantErr: ErrNoPlatformSelected,
		},
		{
			name: "Formulário completo - deve produzir filtros com intervalos padrão",
			setup: func(f *FilterForm) {
				f.TogglePlatform("TikTok")
				f.TogglePlatform("instagram")
				f.SetUsername("  maria ")
				f.SetKeywords([]string{"beauty", " beauty", "", "travel"})
				f.SetCampaign("cmp1")
			},
			validate: func(t *testing.T, filters domain.Filters) {
				assert.Equal(t, []string{"instagram", "tiktok"}, filters.Platforms)
				assert.Equal(t, "maria", filters.Username)
				assert.Equal(t, []string{"beauty", "travel"}, filters.Keywords)
				assert.Equal(t, "cmp1", filters.CampaignID)
				assert.Equal(t, domain.FullRange(), filters.Likes)
				assert.Equal(t, domain.FullRange(), filters.Posts)
				assert.Equal(t, domain.FullRange(), filters.Followers)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := NewFilterForm()
			tt.setup(form)

			filters, err := form.Submit()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, filters.Platforms)
				return
			}

			require.NoError(t, err)
			tt.validate(t, filters)
		})
	}
}

func TestFilterForm_SubmitReturnsIndependentCopy(t *testing.T) {
	form := NewFilterForm()
	form.TogglePlatform("x")
	form.SetKeywords([]string{"music"})

	filters, err := form.Submit()
	require.NoError(t, err)

	form.SetKeywords([]string{"food"})
	form.TogglePlatform("youtube")

	assert.Equal(t, []string{"music"}, filters.Keywords)
	assert.Equal(t, []string{"x"}, filters.Platforms)
}

func TestClampRange(t *testing.T) {
	tests := []struct {
		name  string
		start domain.Range
		bound Bound
		value int64
		want  domain.Range
	}{
		{"Mínimo acima do máximo - deve empurrar o máximo", domain.Range{Min: 0, Max: 100}, BoundMin, 500, domain.Range{Min: 500, Max: 500}},
		{"Máximo abaixo do mínimo - deve empurrar o mínimo", domain.Range{Min: 300, Max: 1000}, BoundMax, 100, domain.Range{Min: 100, Max: 100}},
		{"Valor negativo - deve limitar em zero", domain.Range{Min: 10, Max: 100}, BoundMin, -5, domain.Range{Min: 0, Max: 100}},
		{"Valor acima do teto - deve limitar no teto", domain.FullRange(), BoundMax, 20_000_000, domain.FullRange()},
		{"Mínimo acima do teto - deve limitar ambos no teto", domain.Range{Min: 0, Max: 50}, BoundMin, 99_000_000, domain.Range{Min: 10_000_000, Max: 10_000_000}},
		{"Edição dentro do intervalo - não altera o outro limite", domain.Range{Min: 0, Max: 100}, BoundMin, 50, domain.Range{Min: 50, Max: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClampRange(tt.start, tt.bound, tt.value)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, got.Min, got.Max)
		})
	}
}

func TestFilterForm_SetRangeBound(t *testing.T) {
	form := NewFilterForm()

	require.NoError(t, form.SetRangeBound(RangeFollowers, BoundMax, 1000))
	require.NoError(t, form.SetRangeBound(RangeFollowers, BoundMin, 5000))

	assert.Equal(t, domain.Range{Min: 5000, Max: 5000}, form.Range(RangeFollowers))
	assert.ErrorIs(t, form.SetRangeBound(RangeField("views"), BoundMin, 1), ErrUnknownRangeField)
}

func TestFormFromQuery(t *testing.T) {
	q := url.Values{}
	q.Set("platforms", "instagram,x")
	q.Add("platforms", "instagram")
	q.Set("username", "joao")
	q.Set("keywords", "fitness, food")
	q.Set("likes_min", "200")
	q.Set("likes_max", "100")
	q.Set("followers_max", "-1")

	form, err := FormFromQuery(q)
	require.NoError(t, err)

	filters, err := form.Submit()
	require.NoError(t, err)

	assert.Equal(t, []string{"instagram", "x"}, filters.Platforms)
	assert.Equal(t, "joao", filters.Username)
	assert.Equal(t, []string{"fitness", "food"}, filters.Keywords)
	assert.Equal(t, domain.Range{Min: 100, Max: 100}, filters.Likes)
	assert.Equal(t, domain.Range{Min: 0, Max: 0}, filters.Followers)
}

func TestFormFromQuery_InvalidNumber(t *testing.T) {
	q := url.Values{}
	q.Set("platforms", "instagram")
	q.Set("posts_min", "abc")

	_, err := FormFromQuery(q)
	assert.ErrorIs(t, err, ErrInvalidRangeValue)
}
