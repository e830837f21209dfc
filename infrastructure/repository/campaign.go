package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/influencer-hub-api/infrastructure/database/postgres"
	"github.com/vfg2006/influencer-hub-api/internal/domain"
)

const (
	campaignsTable           = "campaigns"
	campaignInfluencersTable = "campaign_influencers"
)

var campaignColumns = []string{
	"id", "user_id", "name", "description", "start_date", "end_date",
	"budget", "goal", "status", "influencers", "created_at", "updated_at",
}

type CampaignRepository interface {
	Create(ctx context.Context, campaign *domain.Campaign) (*domain.Campaign, error)
	ListByUser(ctx context.Context, userID string, status *domain.CampaignStatus) ([]*domain.Campaign, error)
	ListOptions(ctx context.Context, userID string) ([]domain.CampaignOption, error)
	GetByID(ctx context.Context, userID, campaignID string) (*domain.Campaign, error)
	Update(ctx context.Context, userID, campaignID string, changes domain.CampaignChanges) (*domain.Campaign, error)
	AttachInfluencer(ctx context.Context, userID, campaignID string, account *domain.Account) (*domain.Campaign, bool, error)
	ListInfluencers(ctx context.Context, userID, campaignID string) ([]domain.CampaignInfluencer, error)
}

type campaignRepository struct {
	conn *postgres.Connection
}

func NewCampaignRepository(conn *postgres.Connection) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

func (r *campaignRepository) Create(ctx context.Context, campaign *domain.Campaign) (*domain.Campaign, error) {
	campaignSQL, args, err := squirrel.
		Insert(campaignsTable).
		Columns("id", "user_id", "name", "description", "start_date", "end_date", "budget", "goal", "status", "influencers").
		Values(
			campaign.ID,
			campaign.UserID,
			campaign.Name,
			campaign.Description,
			campaign.StartDate,
			campaign.EndDate,
			campaign.Budget,
			campaign.Goal,
			campaign.Status,
			campaign.Influencers,
		).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "montando insert de campanha")
	}

	if err := r.conn.QueryRowContext(ctx, campaignSQL, args...).Scan(&campaign.CreatedAt, &campaign.UpdatedAt); err != nil {
		return nil, translate(err, "criando campanha")
	}

	return campaign, nil
}

func buildListCampaigns(userID string, status *domain.CampaignStatus) squirrel.SelectBuilder {
	query := squirrel.
		Select(campaignColumns...).
		From(campaignsTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if status != nil && *status != "" {
		query = query.Where(squirrel.Eq{"status": *status})
	}

	return query
}

func (r *campaignRepository) ListByUser(ctx context.Context, userID string, status *domain.CampaignStatus) ([]*domain.Campaign, error) {
	campaignSQL, args, err := buildListCampaigns(userID, status).ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "montando consulta de campanhas")
	}

	rows, err := r.conn.QueryContext(ctx, campaignSQL, args...)
	if err != nil {
		return nil, errors.Wrap(err, "consultando campanhas")
	}
	defer rows.Close()

	campaigns := make([]*domain.Campaign, 0)
	for rows.Next() {
		campaign, err := scanCampaign(rows)
		if err != nil {
			return nil, errors.Wrap(err, "lendo campanha")
		}
		campaigns = append(campaigns, campaign)
	}

	return campaigns, errors.Wrap(rows.Err(), "iterando campanhas")
}

func (r *campaignRepository) ListOptions(ctx context.Context, userID string) ([]domain.CampaignOption, error) {
	optionsSQL, args, err := squirrel.
		Select("id", "name").
		From(campaignsTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "montando consulta de opções")
	}

	rows, err := r.conn.QueryContext(ctx, optionsSQL, args...)
	if err != nil {
		return nil, errors.Wrap(err, "consultando opções de campanha")
	}
	defer rows.Close()

	options := make([]domain.CampaignOption, 0)
	for rows.Next() {
		var option domain.CampaignOption
		if err := rows.Scan(&option.ID, &option.Name); err != nil {
			return nil, errors.Wrap(err, "lendo opção de campanha")
		}
		options = append(options, option)
	}

	return options, errors.Wrap(rows.Err(), "iterando opções de campanha")
}

func (r *campaignRepository) GetByID(ctx context.Context, userID, campaignID string) (*domain.Campaign, error) {
	campaign, err := selectCampaign(ctx, r.conn, userID, campaignID, false)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "consultando campanha")
	}

	return campaign, nil
}

func buildCampaignUpdate(userID, campaignID string, changes domain.CampaignChanges) squirrel.UpdateBuilder {
	query := squirrel.
		Update(campaignsTable).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": campaignID, "user_id": userID}).
		Suffix("RETURNING " + strings.Join(campaignColumns, ", ")).
		PlaceholderFormat(squirrel.Dollar)

	if changes.Name != nil {
		query = query.Set("name", *changes.Name)
	}
	if changes.Description != nil {
		query = query.Set("description", *changes.Description)
	}
	if changes.StartDate != nil {
		query = query.Set("start_date", *changes.StartDate)
	}
	if changes.EndDate != nil {
		query = query.Set("end_date", *changes.EndDate)
	}
	if changes.Budget != nil {
		query = query.Set("budget", *changes.Budget)
	}
	if changes.Goal != nil {
		query = query.Set("goal", *changes.Goal)
	}
	if changes.Status != nil {
		query = query.Set("status", *changes.Status)
	}

	return query
}

// Update altera apenas a campanha do próprio usuário
func (r *campaignRepository) Update(ctx context.Context, userID, campaignID string, changes domain.CampaignChanges) (*domain.Campaign, error) {
	campaignSQL, args, err := buildCampaignUpdate(userID, campaignID, changes).ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "montando atualização de campanha")
	}

	campaign, err := scanCampaign(r.conn.QueryRowContext(ctx, campaignSQL, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, translate(err, "atualizando campanha")
	}

	return campaign, nil
}

// AttachInfluencer vincula a conta à campanha numa transação. A linha da
// campanha fica bloqueada enquanto o texto legado de influenciadores é
// atualizado. O bool indica se o vínculo foi criado agora.
func (r *campaignRepository) AttachInfluencer(ctx context.Context, userID, campaignID string, account *domain.Account) (*domain.Campaign, bool, error) {
	var (
		campaign *domain.Campaign
		attached bool
	)

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		var err error
		campaign, err = selectCampaign(ctx, tx, userID, campaignID, true)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		if err != nil {
			return errors.Wrap(err, "bloqueando campanha")
		}

		linkSQL, args, err := squirrel.
			Insert(campaignInfluencersTable).
			Columns("campaign_id", "account_id", "display_name").
			Values(campaign.ID, account.ID, account.DisplayName()).
			Suffix("ON CONFLICT (campaign_id, account_id) DO NOTHING").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return errors.Wrap(err, "montando vínculo de influenciador")
		}

		result, err := tx.ExecContext(ctx, linkSQL, args...)
		if err != nil {
			return translate(err, "vinculando influenciador")
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return errors.Wrap(err, "lendo resultado do vínculo")
		}
		if affected == 0 {
			return nil
		}

		attached = true
		influencers, changed := legacyInfluencers(campaign.Influencers, account.DisplayName())
		if !changed {
			return nil
		}

		updateSQL, args, err := squirrel.
			Update(campaignsTable).
			Set("influencers", influencers).
			Set("updated_at", squirrel.Expr("NOW()")).
			Where(squirrel.Eq{"id": campaign.ID, "user_id": userID}).
			Suffix("RETURNING updated_at").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return errors.Wrap(err, "montando atualização de influenciadores")
		}

		if err := tx.QueryRowContext(ctx, updateSQL, args...).Scan(&campaign.UpdatedAt); err != nil {
			return errors.Wrap(err, "atualizando influenciadores")
		}

		campaign.Influencers = &influencers
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	return campaign, attached, nil
}

func (r *campaignRepository) ListInfluencers(ctx context.Context, userID, campaignID string) ([]domain.CampaignInfluencer, error) {
	listSQL, args, err := squirrel.
		Select("ci.campaign_id", "ci.account_id", "ci.display_name", "ci.created_at").
		From(campaignInfluencersTable + " ci").
		Join(campaignsTable + " c ON c.id = ci.campaign_id").
		Where(squirrel.Eq{"c.id": campaignID, "c.user_id": userID}).
		OrderBy("ci.created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "montando consulta de influenciadores")
	}

	rows, err := r.conn.QueryContext(ctx, listSQL, args...)
	if err != nil {
		return nil, errors.Wrap(err, "consultando influenciadores da campanha")
	}
	defer rows.Close()

	influencers := make([]domain.CampaignInfluencer, 0)
	for rows.Next() {
		var item domain.CampaignInfluencer
		if err := rows.Scan(&item.CampaignID, &item.AccountID, &item.DisplayName, &item.CreatedAt); err != nil {
			return nil, errors.Wrap(err, "lendo influenciador da campanha")
		}
		influencers = append(influencers, item)
	}

	return influencers, errors.Wrap(rows.Err(), "iterando influenciadores da campanha")
}

func selectCampaign(ctx context.Context, q postgres.Queryer, userID, campaignID string, forUpdate bool) (*domain.Campaign, error) {
	query := squirrel.
		Select(campaignColumns...).
		From(campaignsTable).
		Where(squirrel.Eq{"id": campaignID, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	if forUpdate {
		query = query.Suffix("FOR UPDATE")
	}

	campaignSQL, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	return scanCampaign(q.QueryRowContext(ctx, campaignSQL, args...))
}

func scanCampaign(row rowScanner) (*domain.Campaign, error) {
	var (
		campaign  domain.Campaign
		startDate sql.NullTime
		endDate   sql.NullTime
		budget    sql.NullFloat64
	)

	if err := row.Scan(
		&campaign.ID,
		&campaign.UserID,
		&campaign.Name,
		&campaign.Description,
		&startDate,
		&endDate,
		&budget,
		&campaign.Goal,
		&campaign.Status,
		&campaign.Influencers,
		&campaign.CreatedAt,
		&campaign.UpdatedAt,
	); err != nil {
		return nil, err
	}

	campaign.StartDate = nullableTime(startDate)
	campaign.EndDate = nullableTime(endDate)
	if budget.Valid {
		value := budget.Float64
		campaign.Budget = &value
	}

	return &campaign, nil
}

// legacyInfluencers devolve o novo texto de influenciadores e se ele mudou.
// Nomes já presentes no texto não são repetidos.
func legacyInfluencers(current *string, name string) (string, bool) {
	if domain.HasInfluencerName(current, name) {
		return "", false
	}
	return domain.AppendInfluencerName(current, name), true
}
