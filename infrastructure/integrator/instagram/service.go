package instagram

import (
	"context"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/influencer-hub-api/infrastructure/integrator/instagram/igclient"
	"github.com/vfg2006/influencer-hub-api/infrastructure/integrator/instagram/igdomain"
	"github.com/vfg2006/influencer-hub-api/internal/config"
	"github.com/vfg2006/influencer-hub-api/internal/domain"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Layout usado pela Graph API nos timestamps de mídia
const graphTimestampLayout = "2006-01-02T15:04:05-0700"

var hashtagPattern = regexp.MustCompile(`#[\p{L}\p{N}_]+`)

type Integrator struct {
	cfg    *config.Config
	Client igclient.Client
}

func New(cfg *config.Config, client igclient.Client) *Integrator {
	return &Integrator{
		cfg:    cfg,
		Client: client,
	}
}

// AccountProfile é o perfil do Instagram já convertido para os campos da conta
type AccountProfile struct {
	IgUserID        string
	Username        string
	Name            string
	ProfileImageURL *string
	Biography       *string
	IsVerified      bool
	Posts           *int64
	Followers       *int64
	Following       *int64
	ProfileViews    *int64
}

// RankedMedia é uma mídia enriquecida com a estimativa de visualizações
type RankedMedia struct {
	igdomain.Media
	Type     domain.MediaType
	Views    *int64
	PostedAt *time.Time
	Hashtags []string
}

// FetchAccountProfile busca /me e o insight profile_views. Falha no insight
// não interrompe o sync: profile_views fica desconhecido.
func (s *Integrator) FetchAccountProfile(ctx context.Context) (*AccountProfile, error) {
	me, err := s.Client.GetProfile(ctx)
	if err != nil {
		logrus.WithError(err).Error("instagram: falha ao buscar o perfil")
		return nil, err
	}

	profile := &AccountProfile{
		IgUserID:  me.IgUserID(),
		Username:  me.Username,
		Name:      me.Name,
		Biography: me.Biography,
		Posts:     me.MediaCount,
		Followers: me.FollowersCount,
		Following: me.FollowsCount,
	}
	if me.ProfilePictureURL != "" {
		profile.ProfileImageURL = &me.ProfilePictureURL
	}
	if me.IsVerified != nil {
		profile.IsVerified = *me.IsVerified
	}

	views, err := s.Client.GetProfileViews(ctx, profile.IgUserID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"ig_user_id": profile.IgUserID,
			"error":      err.Error(),
		}).Warn("instagram: profile_views indisponível, gravando como desconhecido")
	} else {
		profile.ProfileViews = views
	}

	return profile, nil
}

// FetchTopMedia lista as mídias recentes da conta business, busca os insights
// com concorrência limitada e devolve as TopN por visualizações
func (s *Integrator) FetchTopMedia(ctx context.Context) (string, []RankedMedia, error) {
	limit := s.cfg.Instagram.MediaLimit
	topN := s.cfg.Instagram.TopN
	concurrency := s.cfg.InstagramSync.MaxConcurrentJobs

	igUserID, err := s.Client.GetBusinessAccountID(ctx)
	if err != nil {
		logrus.WithError(err).Error("instagram: falha ao descobrir a conta business")
		return "", nil, err
	}

	media, err := s.Client.ListMedia(ctx, igUserID, limit)
	if err != nil {
		logrus.WithField("ig_user_id", igUserID).WithError(err).Error("instagram: falha ao listar mídias")
		return "", nil, err
	}

	ranked := make([]RankedMedia, len(media))
	if concurrency <= 0 {
		concurrency = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, item := range media {
		i, item := i, item
		ranked[i] = RankedMedia{
			Media:    item,
			Type:     MediaTypeFromString(item.MediaType),
			PostedAt: ParseTimestamp(item.Timestamp),
			Hashtags: ExtractHashtags(item.Caption),
		}

		g.Go(func() error {
			insights, err := s.Client.GetMediaInsights(gctx, item.ID)
			if err != nil {
				logrus.WithField("media_id", item.ID).Debugf("instagram: insights indisponíveis: %v", err)
				return nil
			}
			ranked[i].Views = insights.ViewsLike()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return "", nil, err
	}

	return igUserID, RankByViews(ranked, topN), nil
}

// RankByViews ordena por visualizações decrescentes (desconhecido conta como -1)
// e devolve no máximo topN itens
func RankByViews(items []RankedMedia, topN int) []RankedMedia {
	sorted := make([]RankedMedia, len(items))
	copy(sorted, items)

	sort.SliceStable(sorted, func(i, j int) bool {
		return viewsOrMinusOne(sorted[i].Views) > viewsOrMinusOne(sorted[j].Views)
	})

	if topN >= 0 && len(sorted) > topN {
		sorted = sorted[:topN]
	}
	return sorted
}

func viewsOrMinusOne(v *int64) int64 {
	if v == nil {
		return -1
	}
	return *v
}

func MediaTypeFromString(mediaType string) domain.MediaType {
	switch strings.ToUpper(mediaType) {
	case "IMAGE":
		return domain.MediaTypeImage
	case "VIDEO":
		return domain.MediaTypeVideo
	case "CAROUSEL_ALBUM":
		return domain.MediaTypeCarousel
	case "REELS":
		return domain.MediaTypeReels
	default:
		return domain.MediaTypeUnknown
	}
}

// ExtractHashtags devolve as hashtags da legenda sem o #, em minúsculas e sem repetição,
// na ordem em que aparecem
func ExtractHashtags(caption *string) []string {
	if caption == nil || *caption == "" {
		return []string{}
	}

	lower := cases.Lower(language.Und)
	matches := hashtagPattern.FindAllString(norm.NFC.String(*caption), -1)

	seen := make(map[string]struct{}, len(matches))
	tags := make([]string, 0, len(matches))
	for _, match := range matches {
		tag := lower.String(strings.TrimPrefix(match, "#"))
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}

	return tags
}

func ParseTimestamp(raw *string) *time.Time {
	if raw == nil || *raw == "" {
		return nil
	}

	for _, layout := range []string{graphTimestampLayout, time.RFC3339} {
		if t, err := time.Parse(layout, *raw); err == nil {
			utc := t.UTC()
			return &utc
		}
	}
	return nil
}
