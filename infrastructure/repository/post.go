package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/influencer-hub-api/infrastructure/database/postgres"
	"github.com/vfg2006/influencer-hub-api/internal/domain"
)

const (
	postsTable        = "posts"
	postMetricsTable  = "post_metrics"
	hashtagsTable     = "hashtags"
	postHashtagsTable = "post_hashtags"
)

type PostRepository interface {
	UpsertPost(ctx context.Context, post *domain.Post) (int64, error)
	UpsertMetrics(ctx context.Context, metric domain.PostMetric) error
	UpsertHashtag(ctx context.Context, tag string) (int64, error)
	LinkHashtag(ctx context.Context, postID, hashtagID int64) error
}

type postRepository struct {
	conn *postgres.Connection
}

func NewPostRepository(conn *postgres.Connection) PostRepository {
	return &postRepository{conn: conn}
}

func (r *postRepository) UpsertPost(ctx context.Context, post *domain.Post) (int64, error) {
	postSQL, args, err := squirrel.
		Insert(postsTable).
		Columns("account_id", "external_post_id", "media_type", "caption", "link", "posted_at", "scraped_at").
		Values(post.AccountID, post.ExternalPostID, int(post.MediaType), post.Caption, post.Link, post.PostedAt, post.ScrapedAt).
		Suffix(`ON CONFLICT (account_id, external_post_id) DO UPDATE SET
			media_type = EXCLUDED.media_type,
			caption = EXCLUDED.caption,
			link = EXCLUDED.link,
			posted_at = EXCLUDED.posted_at,
			scraped_at = EXCLUDED.scraped_at
			RETURNING id`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "montando upsert de post")
	}

	var id int64
	if err := r.conn.QueryRowContext(ctx, postSQL, args...).Scan(&id); err != nil {
		return 0, translate(err, "upsert do post "+post.ExternalPostID)
	}

	return id, nil
}

// UpsertMetrics guarda uma medição por post e dia
func (r *postRepository) UpsertMetrics(ctx context.Context, metric domain.PostMetric) error {
	metricSQL, args, err := squirrel.
		Insert(postMetricsTable).
		Columns("post_id", "likes", "comments", "views", "metric_date").
		Values(metric.PostID, metric.Likes, metric.Comments, metric.Views, metric.MetricDate).
		Suffix(`ON CONFLICT (post_id, metric_date) DO UPDATE SET
			likes = EXCLUDED.likes,
			comments = EXCLUDED.comments,
			views = EXCLUDED.views`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "montando upsert de métricas do post")
	}

	if _, err := r.conn.ExecContext(ctx, metricSQL, args...); err != nil {
		return translate(err, "upsert de métricas do post")
	}

	return nil
}

func (r *postRepository) UpsertHashtag(ctx context.Context, tag string) (int64, error) {
	hashtagSQL, args, err := squirrel.
		Insert(hashtagsTable).
		Columns("tag").
		Values(tag).
		Suffix("ON CONFLICT (tag) DO UPDATE SET tag = EXCLUDED.tag RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "montando upsert de hashtag")
	}

	var id int64
	if err := r.conn.QueryRowContext(ctx, hashtagSQL, args...).Scan(&id); err != nil {
		return 0, translate(err, "upsert da hashtag "+tag)
	}

	return id, nil
}

func (r *postRepository) LinkHashtag(ctx context.Context, postID, hashtagID int64) error {
	linkSQL, args, err := squirrel.
		Insert(postHashtagsTable).
		Columns("post_id", "hashtag_id").
		Values(postID, hashtagID).
		Suffix("ON CONFLICT (post_id, hashtag_id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "montando vínculo de hashtag")
	}

	if _, err := r.conn.ExecContext(ctx, linkSQL, args...); err != nil {
		return translate(err, "vinculando hashtag")
	}

	return nil
}
