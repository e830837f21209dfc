package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/vfg2006/influencer-hub-api/infrastructure/database/postgres"
	"github.com/vfg2006/influencer-hub-api/internal/domain"
)

const (
	accountsTable        = "accounts a"
	accountsMetricsTable = "accounts_metrics"
)

var accountColumns = []string{
	"a.id", "a.platform", "a.platform_profile_id", "a.profile_id", "a.account_name",
	"a.account_url", "a.caption", "a.profile_image_url", "a.gender", "a.keywords",
	"a.is_verified", "a.business_account", "a.country", "a.email", "a.language",
	"a.does_livestream", "a.created_at", "a.updated_at",
}

var metricColumns = []string{
	"id", "account_id", "posts", "followers", "following",
	"maximum_likes", "profile_views", "videos", "metric_date",
}

type AccountRepository interface {
	Search(ctx context.Context, filters domain.Filters) ([]*domain.Account, error)
	GetByID(ctx context.Context, accountID string) (*domain.Account, error)
	ListRecent(ctx context.Context, limit uint64) ([]*domain.Account, error)
	ListKeywords(ctx context.Context) ([]string, error)
	GetByProfileID(ctx context.Context, platform, profileID string) (*domain.Account, error)
	GetByPlatformProfileID(ctx context.Context, platform, platformProfileID string) (*domain.Account, error)
	Upsert(ctx context.Context, account *domain.Account) (string, error)
}

type accountRepository struct {
	conn *postgres.Connection
}

func NewAccountRepository(conn *postgres.Connection) AccountRepository {
	return &accountRepository{
		conn: conn,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

// likePattern escapa curingas do usuário e envolve o termo com %
func likePattern(term string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + replacer.Replace(term) + "%"
}

// buildSearchQuery monta o filtro textual da busca. Os intervalos numéricos
// são aplicados depois da normalização, fora do SQL.
func buildSearchQuery(filters domain.Filters) squirrel.SelectBuilder {
	query := squirrel.
		Select(accountColumns...).
		From(accountsTable).
		OrderBy("a.account_name ASC", "a.id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(filters.Platforms) > 0 {
		platforms := squirrel.Or{}
		for _, platform := range filters.Platforms {
			platforms = append(platforms, squirrel.ILike{"a.platform": likePattern(platform)})
		}
		query = query.Where(platforms)
	}

	if username := strings.TrimSpace(filters.Username); username != "" {
		query = query.Where(squirrel.ILike{"a.account_name": likePattern(username)})
	}

	if gender := strings.TrimSpace(filters.Gender); gender != "" {
		// Igualdade sem diferenciar maiúsculas, sem busca por trecho: "male" não casa com "female"
		query = query.Where(squirrel.ILike{"a.gender": gender})
	}

	if len(filters.Keywords) > 0 {
		keywords := squirrel.Or{}
		for _, keyword := range filters.Keywords {
			keywords = append(keywords, squirrel.ILike{"a.keywords": likePattern(keyword)})
		}
		query = query.Where(keywords)
	}

	return query
}

func (r *accountRepository) Search(ctx context.Context, filters domain.Filters) ([]*domain.Account, error) {
	accounts, err := r.listAccounts(ctx, buildSearchQuery(filters))
	if err != nil {
		return nil, err
	}

	if err := r.attachMetrics(ctx, accounts); err != nil {
		return nil, err
	}

	return accounts, nil
}

func (r *accountRepository) GetByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := r.getAccount(ctx, squirrel.Eq{"a.id": accountID})
	if err != nil || account == nil {
		return account, err
	}

	if err := r.attachMetrics(ctx, []*domain.Account{account}); err != nil {
		return nil, err
	}

	return account, nil
}

func (r *accountRepository) ListRecent(ctx context.Context, limit uint64) ([]*domain.Account, error) {
	query := squirrel.
		Select(accountColumns...).
		From(accountsTable).
		OrderBy("a.updated_at DESC", "a.id ASC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar)

	accounts, err := r.listAccounts(ctx, query)
	if err != nil {
		return nil, err
	}

	if err := r.attachMetrics(ctx, accounts); err != nil {
		return nil, err
	}

	return accounts, nil
}

// ListKeywords retorna o texto bruto de keywords de cada conta
func (r *accountRepository) ListKeywords(ctx context.Context) ([]string, error) {
	keywordsSQL, args, err := squirrel.
		Select("DISTINCT a.keywords").
		From(accountsTable).
		Where(squirrel.And{
			squirrel.NotEq{"a.keywords": nil},
			squirrel.NotEq{"a.keywords": ""},
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "montando consulta de keywords")
	}

	rows, err := r.conn.QueryContext(ctx, keywordsSQL, args...)
	if err != nil {
		return nil, errors.Wrap(err, "consultando keywords")
	}
	defer rows.Close()

	keywords := make([]string, 0)
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, errors.Wrap(err, "lendo keywords")
		}
		keywords = append(keywords, raw)
	}

	return keywords, errors.Wrap(rows.Err(), "iterando keywords")
}

func (r *accountRepository) GetByProfileID(ctx context.Context, platform, profileID string) (*domain.Account, error) {
	return r.getAccount(ctx, squirrel.Eq{"a.platform": platform, "a.profile_id": profileID})
}

func (r *accountRepository) GetByPlatformProfileID(ctx context.Context, platform, platformProfileID string) (*domain.Account, error) {
	return r.getAccount(ctx, squirrel.Eq{"a.platform": platform, "a.platform_profile_id": platformProfileID})
}

// Upsert grava a conta pela chave (profile_id, platform) e devolve o id persistido
func (r *accountRepository) Upsert(ctx context.Context, account *domain.Account) (string, error) {
	upsertSQL, args, err := buildAccountUpsert(account, uuid.NewString())
	if err != nil {
		return "", errors.Wrap(err, "montando upsert de conta")
	}

	var id string
	if err := r.conn.QueryRowContext(ctx, upsertSQL, args...).Scan(&id); err != nil {
		return "", translate(err, "upsert de conta")
	}

	return id, nil
}

func buildAccountUpsert(account *domain.Account, newID string) (string, []interface{}, error) {
	return squirrel.
		Insert("accounts").
		Columns(
			"id", "platform", "platform_profile_id", "profile_id", "account_name",
			"account_url", "caption", "profile_image_url", "gender", "keywords",
			"is_verified", "business_account", "country", "email", "language",
			"does_livestream", "updated_at",
		).
		Values(
			newID, account.Platform, account.PlatformProfileID, account.ProfileID, account.AccountName,
			account.AccountURL, account.Caption, account.ProfileImageURL, account.Gender, account.Keywords,
			account.IsVerified, account.BusinessAccount, account.Country, account.Email, account.Language,
			account.DoesLivestream, squirrel.Expr("NOW()"),
		).
		Suffix(`ON CONFLICT (profile_id, platform) DO UPDATE SET
			platform_profile_id = EXCLUDED.platform_profile_id,
			account_name = EXCLUDED.account_name,
			account_url = EXCLUDED.account_url,
			caption = EXCLUDED.caption,
			profile_image_url = EXCLUDED.profile_image_url,
			gender = EXCLUDED.gender,
			keywords = EXCLUDED.keywords,
			is_verified = EXCLUDED.is_verified,
			business_account = EXCLUDED.business_account,
			country = EXCLUDED.country,
			email = EXCLUDED.email,
			language = EXCLUDED.language,
			does_livestream = EXCLUDED.does_livestream,
			updated_at = EXCLUDED.updated_at
			RETURNING id`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *accountRepository) getAccount(ctx context.Context, where squirrel.Sqlizer) (*domain.Account, error) {
	accountSQL, args, err := squirrel.
		Select(accountColumns...).
		From(accountsTable).
		Where(where).
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "montando consulta de conta")
	}

	account, err := scanAccount(r.conn.QueryRowContext(ctx, accountSQL, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "consultando conta")
	}

	return account, nil
}

func (r *accountRepository) listAccounts(ctx context.Context, query squirrel.SelectBuilder) ([]*domain.Account, error) {
	accountsSQL, args, err := query.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "montando consulta de contas")
	}

	rows, err := r.conn.QueryContext(ctx, accountsSQL, args...)
	if err != nil {
		return nil, errors.Wrap(err, "consultando contas")
	}
	defer rows.Close()

	accounts := make([]*domain.Account, 0)
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, errors.Wrap(err, "lendo conta")
		}
		accounts = append(accounts, account)
	}

	return accounts, errors.Wrap(rows.Err(), "iterando contas")
}

// attachMetrics carrega os snapshots de todas as contas numa única consulta,
// do mais recente para o mais antigo
func (r *accountRepository) attachMetrics(ctx context.Context, accounts []*domain.Account) error {
	if len(accounts) == 0 {
		return nil
	}

	byID := make(map[string]*domain.Account, len(accounts))
	ids := make([]string, 0, len(accounts))
	for _, account := range accounts {
		account.Metrics = make([]domain.MetricSnapshot, 0)
		byID[account.ID] = account
		ids = append(ids, account.ID)
	}

	metricsSQL, args, err := squirrel.
		Select(metricColumns...).
		From(accountsMetricsTable).
		Where(squirrel.Eq{"account_id": ids}).
		OrderBy("account_id", "metric_date DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "montando consulta de métricas")
	}

	rows, err := r.conn.QueryContext(ctx, metricsSQL, args...)
	if err != nil {
		return errors.Wrap(err, "consultando métricas")
	}
	defer rows.Close()

	for rows.Next() {
		metric, err := scanMetric(rows)
		if err != nil {
			return errors.Wrap(err, "lendo métrica")
		}
		if account, ok := byID[metric.AccountID]; ok {
			account.Metrics = append(account.Metrics, *metric)
		}
	}

	return errors.Wrap(rows.Err(), "iterando métricas")
}

func scanAccount(row rowScanner) (*domain.Account, error) {
	acc := &domain.Account{}

	if err := row.Scan(
		&acc.ID,
		&acc.Platform,
		&acc.PlatformProfileID,
		&acc.ProfileID,
		&acc.AccountName,
		&acc.AccountURL,
		&acc.Caption,
		&acc.ProfileImageURL,
		&acc.Gender,
		&acc.Keywords,
		&acc.IsVerified,
		&acc.BusinessAccount,
		&acc.Country,
		&acc.Email,
		&acc.Language,
		&acc.DoesLivestream,
		&acc.CreatedAt,
		&acc.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return acc, nil
}

func scanMetric(row rowScanner) (*domain.MetricSnapshot, error) {
	var (
		metric                                                        domain.MetricSnapshot
		posts, followers, following, maximumLikes, profileViews, vids sql.NullInt64
	)

	if err := row.Scan(
		&metric.ID,
		&metric.AccountID,
		&posts,
		&followers,
		&following,
		&maximumLikes,
		&profileViews,
		&vids,
		&metric.MetricDate,
	); err != nil {
		return nil, err
	}

	metric.Posts = nullableCount(posts)
	metric.Followers = nullableCount(followers)
	metric.Following = nullableCount(following)
	metric.MaximumLikes = nullableCount(maximumLikes)
	metric.ProfileViews = nullableCount(profileViews)
	metric.Videos = nullableCount(vids)

	return &metric, nil
}
