package searching

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/influencer-hub-api/infrastructure/repository"
	"github.com/vfg2006/influencer-hub-api/internal/domain"
	"github.com/vfg2006/influencer-hub-api/internal/search"
	"github.com/vfg2006/influencer-hub-api/pkg/apiErrors"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/unicode/norm"
)

// Quantidade de contas exibidas na página inicial
const homeListSize = 10

type Searcher interface {
	Search(ctx context.Context, userID string, filters domain.Filters, page int) (*SearchResult, error)
	Options(ctx context.Context, userID string) (*Options, error)
	Detail(ctx context.Context, accountID string) (*domain.Account, error)
	Home(ctx context.Context) ([]search.Row, error)
}

// SearchResult é a página aplicada à sessão do usuário.
// CampaignID é repassado para que o cliente saiba em qual campanha vincular.
type SearchResult struct {
	search.Page[search.Row]
	Filters    domain.Filters `json:"filters"`
	CampaignID string         `json:"campaign_id,omitempty"`
}

// Options são as listas de seleção do formulário de busca
type Options struct {
	Platforms []string                `json:"platforms"`
	Keywords  []string                `json:"keywords"`
	Campaigns []domain.CampaignOption `json:"campaigns"`
}

type Service struct {
	accountRepo  repository.AccountRepository
	campaignRepo repository.CampaignRepository
	sessions     *search.SessionStore
}

func NewService(accountRepo repository.AccountRepository, campaignRepo repository.CampaignRepository, sessions *search.SessionStore) *Service {
	return &Service{
		accountRepo:  accountRepo,
		campaignRepo: campaignRepo,
		sessions:     sessions,
	}
}

// Search executa a busca textual, normaliza as métricas, aplica os intervalos e pagina.
// Se outra busca do mesmo usuário começou depois desta, o resultado é descartado.
func (s *Service) Search(ctx context.Context, userID string, filters domain.Filters, page int) (*SearchResult, error) {
	session := s.sessions.For(userID)
	tok := session.Begin(search.SlotResults)

	accounts, err := s.accountRepo.Search(ctx, filters)
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("Erro ao buscar influenciadores")
		return nil, NewSearchError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	rows := search.ApplyRanges(search.NormalizeAll(accounts), filters)

	applied, ok := session.ApplyResults(tok, filters, rows, page)
	if !ok {
		logrus.WithFields(logrus.Fields{"user_id": userID, "seq": tok.Seq}).Debug("Resultado de busca obsoleto descartado")
		return nil, NewSearchError(ErrStaleRequest, apiErrors.ErrStaleRequest, "Uma busca mais recente está em andamento")
	}

	return &SearchResult{
		Page:       applied,
		Filters:    filters,
		CampaignID: filters.CampaignID,
	}, nil
}

// Options carrega palavras-chave e campanhas em paralelo, cada uma no seu slot
func (s *Service) Options(ctx context.Context, userID string) (*Options, error) {
	session := s.sessions.For(userID)
	keywordsTok := session.Begin(search.SlotKeywords)
	campaignsTok := session.Begin(search.SlotCampaigns)

	options := &Options{Platforms: domain.Platforms}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		raw, err := s.accountRepo.ListKeywords(gctx)
		if err != nil {
			return err
		}
		keywords := KeywordOptions(raw)
		if session.IsLatest(keywordsTok) {
			options.Keywords = keywords
		}
		return nil
	})

	g.Go(func() error {
		campaigns, err := s.campaignRepo.ListOptions(gctx, userID)
		if err != nil {
			return err
		}
		if session.IsLatest(campaignsTok) {
			options.Campaigns = campaigns
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("Erro ao carregar opções de busca")
		return nil, NewSearchError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	if options.Keywords == nil || options.Campaigns == nil {
		return nil, NewSearchError(ErrStaleRequest, apiErrors.ErrStaleRequest, "Uma requisição mais recente está em andamento")
	}

	return options, nil
}

// KeywordOptions separa as listas por vírgula e devolve termos únicos e ordenados
func KeywordOptions(raw []string) []string {
	seen := make(map[string]struct{})
	keywords := make([]string, 0)

	for _, entry := range raw {
		for _, part := range strings.Split(entry, ",") {
			keyword := norm.NFC.String(strings.TrimSpace(part))
			if keyword == "" {
				continue
			}
			if _, ok := seen[keyword]; ok {
				continue
			}
			seen[keyword] = struct{}{}
			keywords = append(keywords, keyword)
		}
	}

	sort.Strings(keywords)
	return keywords
}

// Detail retorna a conta com as métricas da mais nova para a mais antiga
func (s *Service) Detail(ctx context.Context, accountID string) (*domain.Account, error) {
	// ids de conta são UUID; qualquer outro valor não existe
	if _, err := uuid.Parse(accountID); err != nil {
		return nil, NewSearchError(ErrAccountNotFound, apiErrors.ErrResourceNotFound, "Influenciador não encontrado")
	}

	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, NewSearchError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	if account == nil {
		return nil, NewSearchError(ErrAccountNotFound, apiErrors.ErrResourceNotFound, "Influenciador não encontrado")
	}

	return account, nil
}

func (s *Service) Home(ctx context.Context) ([]search.Row, error) {
	accounts, err := s.accountRepo.ListRecent(ctx, homeListSize)
	if err != nil {
		return nil, NewSearchError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return search.NormalizeAll(accounts), nil
}
