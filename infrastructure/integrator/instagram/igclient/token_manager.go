package igclient

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/influencer-hub-api/infrastructure/integrator/instagram/igdomain"
	"github.com/vfg2006/influencer-hub-api/internal/config"
)

const (
	refreshInterval   = 23 * time.Hour
	refreshRetryDelay = time.Hour
)

// TokenManager guarda o token de longa duração do Instagram e o renova
// pelo endpoint refresh_access_token
type TokenManager struct {
	mu             sync.RWMutex
	token          string
	tokenErr       error
	expiresAt      time.Time
	refreshEnabled bool
	refreshURL     string
	httpClient     *http.Client
	now            func() time.Time
}

func NewTokenManager(cfg *config.Config, httpClient *http.Client) *TokenManager {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	token, err := NormalizeToken(cfg.Instagram.AccessToken)
	if err != nil {
		logrus.Warnf("Token do Instagram inválido: %v", err)
	} else {
		logrus.Infof("Token do Instagram carregado (%s)", Fingerprint(token))
	}

	return &TokenManager{
		token:          token,
		tokenErr:       err,
		expiresAt:      cfg.Instagram.TokenExpiresAt,
		refreshEnabled: cfg.InstagramSync.TokenRefreshEnabled,
		refreshURL:     cfg.Instagram.GraphURL + "/refresh_access_token",
		httpClient:     httpClient,
		now:            time.Now,
	}
}

// Token devolve o token atual ou o erro de normalização
func (tm *TokenManager) Token() (string, error) {
	tm.mu.RLock()
	defer tm.mu.RUnlock()

	if tm.tokenErr != nil {
		return "", tm.tokenErr
	}
	return tm.token, nil
}

func (tm *TokenManager) ExpiresAt() time.Time {
	tm.mu.RLock()
	defer tm.mu.RUnlock()
	return tm.expiresAt
}

func (tm *TokenManager) CanRefresh() bool {
	tm.mu.RLock()
	defer tm.mu.RUnlock()
	return tm.refreshEnabled && tm.tokenErr == nil
}

// RefreshToken troca o token atual por um novo token de longa duração
func (tm *TokenManager) RefreshToken(ctx context.Context) error {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	if tm.tokenErr != nil {
		return errors.Wrap(tm.tokenErr, "não é possível renovar")
	}

	if !tm.expiresAt.IsZero() && tm.expiresAt.Sub(tm.now()) < time.Hour {
		logrus.Warn("Token está muito próximo da expiração ou já expirou - pode ser necessária reautorização manual")
	}

	params := url.Values{}
	params.Add("grant_type", "ig_refresh_token")
	params.Add("access_token", tm.token)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, tm.refreshURL+"?"+params.Encode(), nil)
	if err != nil {
		return errors.Wrap(err, "criando requisição de renovação")
	}

	resp, err := tm.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "renovando token")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "lendo resposta de renovação")
	}

	if resp.StatusCode != http.StatusOK {
		graphErr := parseGraphError(resp.StatusCode, body)
		if graphErr.IsTokenExpired() {
			logrus.Error("O token de acesso expirou e não pode ser renovado automaticamente. É necessário reautorizar")
		}
		return errors.Wrap(graphErr, "renovação do token recusada")
	}

	var tokenResp TokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return errors.Wrap(err, "decodificando resposta de renovação")
	}
	if tokenResp.AccessToken == "" {
		return errors.New("token retornado pela API é vazio")
	}

	tm.token = tokenResp.AccessToken
	tm.expiresAt = CalculateTokenExpiration(tm.now(), tokenResp.ExpiresIn)

	logrus.Infof("Token do Instagram renovado. Expira em %s (renovação em %s)",
		FormatDuration(tokenResp.ExpiresIn), tm.expiresAt.Format(time.RFC3339))

	return nil
}

// EnsureValidToken renova proativamente quando faltam menos de 24 horas
func (tm *TokenManager) EnsureValidToken(ctx context.Context) error {
	if _, err := tm.Token(); err != nil {
		return err
	}

	if !tm.CanRefresh() {
		return nil
	}

	expiresAt := tm.ExpiresAt()
	if expiresAt.IsZero() || expiresAt.Sub(tm.now()) >= 24*time.Hour {
		return nil
	}

	logrus.Info("Token expira em menos de 24 horas. Renovando proativamente...")
	return tm.RefreshToken(ctx)
}

// StartAutoRefresh renova o token periodicamente até o contexto ser cancelado
func (tm *TokenManager) StartAutoRefresh(ctx context.Context) {
	if !tm.CanRefresh() {
		logrus.Info("Renovação automática do token do Instagram desabilitada")
		return
	}

	ticker := time.NewTicker(refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			logrus.Info("Iniciando renovação periódica do token do Instagram")
			if err := tm.RefreshToken(ctx); err != nil {
				logrus.Errorf("Erro na renovação periódica do token: %v", err)
				ticker.Reset(refreshRetryDelay)
				continue
			}
			ticker.Reset(refreshInterval)
		case <-ctx.Done():
			logrus.Info("Encerrando renovação periódica do token")
			return
		}
	}
}

func parseGraphError(status int, body []byte) *igdomain.GraphError {
	ge := &igdomain.GraphError{StatusCode: status, Raw: string(body)}
	var errResp igdomain.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		ge.Details = errResp.Error
	}
	return ge
}
