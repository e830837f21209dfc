package igclient

import (
	"context"
	stderrors "errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/influencer-hub-api/infrastructure/integrator/instagram/igdomain"
	"github.com/vfg2006/influencer-hub-api/internal/config"
)

const (
	profileFields = "user_id,id,username,name,account_type,profile_picture_url,followers_count,follows_count,media_count,biography,website"
	mediaFields   = "id,caption,media_type,permalink,timestamp,like_count,comments_count"
	mediaMetrics  = "plays,video_views,impressions,reach"
)

var ErrNoBusinessAccount = errors.New("nenhum instagram_business_account encontrado")

type Client interface {
	GetProfile(ctx context.Context) (*igdomain.Profile, error)
	GetProfileViews(ctx context.Context, igUserID string) (*int64, error)
	GetBusinessAccountID(ctx context.Context) (string, error)
	ListMedia(ctx context.Context, igUserID string, limit int) ([]igdomain.Media, error)
	GetMediaInsights(ctx context.Context, mediaID string) (*igdomain.InsightsResponse, error)
}

// TokenSource fornece o token atual e permite renovar quando a API recusa
type TokenSource interface {
	Token() (string, error)
	CanRefresh() bool
	RefreshToken(ctx context.Context) error
}

type GraphClient struct {
	instagramURL string
	facebookURL  string
	tokens       TokenSource
	httpClient   *http.Client
}

func NewClient(cfg *config.Config, tokens TokenSource) Client {
	return &GraphClient{
		instagramURL: cfg.InstagramURL(),
		facebookURL:  cfg.FacebookURL(),
		tokens:       tokens,
		httpClient:   &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *GraphClient) GetProfile(ctx context.Context) (*igdomain.Profile, error) {
	params := url.Values{}
	params.Add("fields", profileFields)

	var profile igdomain.Profile
	if err := c.get(ctx, c.instagramURL, "/me", params, &profile); err != nil {
		return nil, err
	}

	if profile.IgUserID() == "" {
		return nil, errors.New("não foi possível determinar o id do usuário do Instagram (user_id/id ausentes em /me)")
	}

	return &profile, nil
}

// GetProfileViews pode falhar por falta de permissão de insights; o chamador decide o que fazer
func (c *GraphClient) GetProfileViews(ctx context.Context, igUserID string) (*int64, error) {
	params := url.Values{}
	params.Add("metric", "profile_views")
	params.Add("period", "day")

	var insights igdomain.InsightsResponse
	if err := c.get(ctx, c.instagramURL, "/"+igUserID+"/insights", params, &insights); err != nil {
		return nil, err
	}

	return insights.Pick("profile_views"), nil
}

func (c *GraphClient) GetBusinessAccountID(ctx context.Context) (string, error) {
	params := url.Values{}
	params.Add("fields", "instagram_business_account")
	params.Add("limit", "50")

	var accounts igdomain.FacebookAccounts
	if err := c.get(ctx, c.facebookURL, "/me/accounts", params, &accounts); err != nil {
		return "", err
	}

	id := accounts.BusinessAccountID()
	if id == "" {
		return "", ErrNoBusinessAccount
	}

	return id, nil
}

func (c *GraphClient) ListMedia(ctx context.Context, igUserID string, limit int) ([]igdomain.Media, error) {
	params := url.Values{}
	params.Add("fields", mediaFields)
	params.Add("limit", strconv.Itoa(limit))

	var page igdomain.MediaPage
	if err := c.get(ctx, c.facebookURL, "/"+igUserID+"/media", params, &page); err != nil {
		return nil, err
	}

	if page.Data == nil {
		return []igdomain.Media{}, nil
	}
	return page.Data, nil
}

func (c *GraphClient) GetMediaInsights(ctx context.Context, mediaID string) (*igdomain.InsightsResponse, error) {
	params := url.Values{}
	params.Add("metric", mediaMetrics)

	var insights igdomain.InsightsResponse
	if err := c.get(ctx, c.facebookURL, "/"+mediaID+"/insights", params, &insights); err != nil {
		return nil, err
	}

	return &insights, nil
}

// get faz a chamada e, se o token estiver expirado, renova e tenta uma única vez mais
func (c *GraphClient) get(ctx context.Context, baseURL, path string, params url.Values, out any) error {
	err := c.doGet(ctx, baseURL, path, params, out)

	var graphErr *igdomain.GraphError
	if err == nil || !stderrors.As(err, &graphErr) || !graphErr.IsTokenExpired() || !c.tokens.CanRefresh() {
		return err
	}

	logrus.Warnf("Token expirado detectado pela Graph API. Código: %d, Subcódigo: %d",
		graphErr.Details.Code, graphErr.Details.ErrorSubcode)

	if refreshErr := c.tokens.RefreshToken(ctx); refreshErr != nil {
		return errors.Wrapf(err, "renovação do token falhou: %v", refreshErr)
	}

	return c.doGet(ctx, baseURL, path, params, out)
}

func (c *GraphClient) doGet(ctx context.Context, baseURL, path string, params url.Values, out any) error {
	token, err := c.tokens.Token()
	if err != nil {
		return err
	}

	query := url.Values{}
	for k, v := range params {
		query[k] = v
	}
	query.Set("access_token", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return errors.Wrap(err, "criando requisição para a Graph API")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "chamando %s", path)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "lendo resposta da Graph API")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return parseGraphError(resp.StatusCode, body)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrapf(err, "decodificando resposta de %s", path)
	}

	return nil
}
