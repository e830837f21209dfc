package domain

const (
	RangeFloor   int64 = 0
	RangeCeiling int64 = 10_000_000
)

// Range é um intervalo inclusivo [Min, Max]
type Range struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

// FullRange é o intervalo padrão dos filtros numéricos
func FullRange() Range {
	return Range{Min: RangeFloor, Max: RangeCeiling}
}

func (r Range) Contains(v int64) bool {
	return v >= r.Min && v <= r.Max
}

// Filters são as restrições de busca montadas pelo formulário.
// O valor é construído uma vez e passado por cópia.
type Filters struct {
	Platforms  []string `json:"platforms"`
	Username   string   `json:"username,omitempty"`
	Keywords   []string `json:"keywords,omitempty"`
	Gender     string   `json:"gender,omitempty"`
	Likes      Range    `json:"likes"`
	Posts      Range    `json:"posts"`
	Followers  Range    `json:"followers"`
	CampaignID string   `json:"campaign_id,omitempty"`
}

// Equal compara dois filtros campo a campo
func (f Filters) Equal(other Filters) bool {
	return equalStrings(f.Platforms, other.Platforms) &&
		f.Username == other.Username &&
		equalStrings(f.Keywords, other.Keywords) &&
		f.Gender == other.Gender &&
		f.Likes == other.Likes &&
		f.Posts == other.Posts &&
		f.Followers == other.Followers &&
		f.CampaignID == other.CampaignID
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
