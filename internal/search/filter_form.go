package search

import (
	"errors"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/vfg2006/influencer-hub-api/internal/domain"
)

var (
	ErrNoPlatformSelected = errors.New("selecione ao menos uma plataforma")
	ErrInvalidRangeValue  = errors.New("valor de intervalo inválido")
	ErrUnknownRangeField  = errors.New("campo de intervalo desconhecido")
)

type RangeField string

const (
	RangeLikes     RangeField = "likes"
	RangePosts     RangeField = "posts"
	RangeFollowers RangeField = "followers"
)

type Bound int

const (
	BoundMin Bound = iota
	BoundMax
)

// FilterForm guarda o estado editável do formulário de busca.
// Submit produz o valor imutável domain.Filters.
type FilterForm struct {
	platforms  map[string]struct{}
	username   string
	keywords   []string
	gender     string
	ranges     map[RangeField]domain.Range
	campaignID string
}

func NewFilterForm() *FilterForm {
	return &FilterForm{
		platforms: make(map[string]struct{}),
		ranges: map[RangeField]domain.Range{
			RangeLikes:     domain.FullRange(),
			RangePosts:     domain.FullRange(),
			RangeFollowers: domain.FullRange(),
		},
	}
}

// TogglePlatform marca ou desmarca a plataforma
func (f *FilterForm) TogglePlatform(platform string) {
	p := strings.ToLower(strings.TrimSpace(platform))
	if p == "" {
		return
	}
	if _, ok := f.platforms[p]; ok {
		delete(f.platforms, p)
		return
	}
	f.platforms[p] = struct{}{}
}

func (f *FilterForm) SetUsername(username string) {
	f.username = strings.TrimSpace(username)
}

func (f *FilterForm) SetGender(gender string) {
	f.gender = strings.TrimSpace(gender)
}

func (f *FilterForm) SetCampaign(campaignID string) {
	f.campaignID = strings.TrimSpace(campaignID)
}

// SetKeywords substitui o conjunto de palavras-chave, sem repetições
func (f *FilterForm) SetKeywords(keywords []string) {
	seen := make(map[string]struct{}, len(keywords))
	out := make([]string, 0, len(keywords))
	for _, k := range keywords {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	f.keywords = out
}

// SetRangeBound altera um dos limites do intervalo.
// O valor é limitado a [0, 10_000_000] e, se cruzar o outro limite, o empurra junto.
func (f *FilterForm) SetRangeBound(field RangeField, bound Bound, value int64) error {
	current, ok := f.ranges[field]
	if !ok {
		return ErrUnknownRangeField
	}
	f.ranges[field] = ClampRange(current, bound, value)
	return nil
}

func (f *FilterForm) Range(field RangeField) domain.Range {
	return f.ranges[field]
}

// ClampRange aplica a edição de um limite mantendo Min <= Max
func ClampRange(r domain.Range, bound Bound, value int64) domain.Range {
	value = clamp(value, domain.RangeFloor, domain.RangeCeiling)

	switch bound {
	case BoundMin:
		r.Min = value
		if r.Min > r.Max {
			r.Max = r.Min
		}
	case BoundMax:
		r.Max = value
		if r.Max < r.Min {
			r.Min = r.Max
		}
	}

	return r
}

func clamp(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Submit valida o formulário e devolve os filtros.
// Sem plataforma selecionada nada é produzido.
func (f *FilterForm) Submit() (domain.Filters, error) {
	if len(f.platforms) == 0 {
		return domain.Filters{}, ErrNoPlatformSelected
	}

	platforms := make([]string, 0, len(f.platforms))
	for p := range f.platforms {
		platforms = append(platforms, p)
	}
	sort.Strings(platforms)

	keywords := make([]string, len(f.keywords))
	copy(keywords, f.keywords)

	return domain.Filters{
		Platforms:  platforms,
		Username:   f.username,
		Keywords:   keywords,
		Gender:     f.gender,
		Likes:      f.ranges[RangeLikes],
		Posts:      f.ranges[RangePosts],
		Followers:  f.ranges[RangeFollowers],
		CampaignID: f.campaignID,
	}, nil
}

// FormFromQuery monta o formulário a partir dos parâmetros da URL.
// Listas aceitam valores repetidos ou separados por vírgula.
func FormFromQuery(q url.Values) (*FilterForm, error) {
	form := NewFilterForm()

	for _, p := range splitList(q["platforms"]) {
		if _, ok := form.platforms[strings.ToLower(p)]; !ok {
			form.TogglePlatform(p)
		}
	}

	form.SetUsername(q.Get("username"))
	form.SetGender(q.Get("gender"))
	form.SetCampaign(q.Get("campaign_id"))
	form.SetKeywords(splitList(q["keywords"]))

	edits := []struct {
		param string
		field RangeField
		bound Bound
	}{
		{"likes_min", RangeLikes, BoundMin},
		{"likes_max", RangeLikes, BoundMax},
		{"posts_min", RangePosts, BoundMin},
		{"posts_max", RangePosts, BoundMax},
		{"followers_min", RangeFollowers, BoundMin},
		{"followers_max", RangeFollowers, BoundMax},
	}

	for _, e := range edits {
		raw := strings.TrimSpace(q.Get(e.param))
		if raw == "" {
			continue
		}
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, ErrInvalidRangeValue
		}
		if err := form.SetRangeBound(e.field, e.bound, v); err != nil {
			return nil, err
		}
	}

	return form, nil
}

func splitList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
