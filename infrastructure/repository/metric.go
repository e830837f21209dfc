package repository

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/influencer-hub-api/infrastructure/database/postgres"
	"github.com/vfg2006/influencer-hub-api/internal/domain"
)

type MetricRepository interface {
	UpsertSnapshot(ctx context.Context, snapshot *domain.MetricSnapshot) error
	UpdateDailyAggregates(ctx context.Context, accountID string, metricDate time.Time, maximumLikes, videos int64) (bool, error)
}

type metricRepository struct {
	conn *postgres.Connection
}

func NewMetricRepository(conn *postgres.Connection) MetricRepository {
	return &metricRepository{conn: conn}
}

// UpsertSnapshot grava o snapshot diário. Rodar de novo no mesmo dia atualiza
// a linha existente; maximum_likes e videos só são sobrescritos quando informados.
func (r *metricRepository) UpsertSnapshot(ctx context.Context, snapshot *domain.MetricSnapshot) error {
	upsertSQL, args, err := buildSnapshotUpsert(snapshot)
	if err != nil {
		return errors.Wrap(err, "montando upsert de snapshot")
	}

	if _, err := r.conn.ExecContext(ctx, upsertSQL, args...); err != nil {
		return translate(err, "upsert de snapshot")
	}

	return nil
}

func buildSnapshotUpsert(snapshot *domain.MetricSnapshot) (string, []interface{}, error) {
	return squirrel.
		Insert(accountsMetricsTable).
		Columns("account_id", "posts", "followers", "following", "maximum_likes", "profile_views", "videos", "metric_date").
		Values(
			snapshot.AccountID,
			snapshot.Posts,
			snapshot.Followers,
			snapshot.Following,
			snapshot.MaximumLikes,
			snapshot.ProfileViews,
			snapshot.Videos,
			snapshot.MetricDate,
		).
		Suffix(`ON CONFLICT (account_id, metric_date) DO UPDATE SET
			posts = EXCLUDED.posts,
			followers = EXCLUDED.followers,
			following = EXCLUDED.following,
			profile_views = EXCLUDED.profile_views,
			maximum_likes = COALESCE(EXCLUDED.maximum_likes, accounts_metrics.maximum_likes),
			videos = COALESCE(EXCLUDED.videos, accounts_metrics.videos)`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// UpdateDailyAggregates atualiza maximum_likes e videos no snapshot do dia.
// Só o sync de conta cria o snapshot; sem linha para o dia nada é gravado e o
// retorno é false.
func (r *metricRepository) UpdateDailyAggregates(ctx context.Context, accountID string, metricDate time.Time, maximumLikes, videos int64) (bool, error) {
	updateSQL, args, err := buildDailyAggregatesUpdate(accountID, metricDate, maximumLikes, videos)
	if err != nil {
		return false, errors.Wrap(err, "montando atualização de agregados")
	}

	result, err := r.conn.ExecContext(ctx, updateSQL, args...)
	if err != nil {
		return false, translate(err, "atualizando agregados diários")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "lendo resultado dos agregados")
	}

	return affected > 0, nil
}

func buildDailyAggregatesUpdate(accountID string, metricDate time.Time, maximumLikes, videos int64) (string, []interface{}, error) {
	return squirrel.
		Update(accountsMetricsTable).
		Set("maximum_likes", maximumLikes).
		Set("videos", videos).
		Where(squirrel.Eq{"account_id": accountID, "metric_date": metricDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}
