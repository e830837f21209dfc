package main

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/influencer-hub-api/infrastructure/database/postgres"
	"github.com/vfg2006/influencer-hub-api/internal/config"
)

type migration struct {
	Name       string
	Statements []string
}

var migrations = []migration{
	{
		Name: "users",
		Statements: []string{
			`CREATE TABLE IF NOT EXISTS users (
				id             UUID PRIMARY KEY,
				email          TEXT NOT NULL UNIQUE,
				password_hash  TEXT NOT NULL,
				name           TEXT,
				company        TEXT,
				role           TEXT,
				timezone       TEXT,
				language       TEXT,
				role_id        INTEGER NOT NULL DEFAULT 2,
				email_verified BOOLEAN NOT NULL DEFAULT FALSE,
				created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`,
		},
	},
	{
		Name: "accounts",
		Statements: []string{
			`CREATE TABLE IF NOT EXISTS accounts (
				id                  UUID PRIMARY KEY,
				platform            TEXT NOT NULL,
				platform_profile_id TEXT,
				profile_id          TEXT,
				account_name        TEXT NOT NULL,
				account_url         TEXT,
				caption             TEXT,
				profile_image_url   TEXT,
				gender              TEXT,
				keywords            TEXT,
				is_verified         BOOLEAN NOT NULL DEFAULT FALSE,
				business_account    BOOLEAN NOT NULL DEFAULT FALSE,
				country             TEXT,
				email               TEXT,
				language            TEXT,
				does_livestream     BOOLEAN,
				created_at          TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at          TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				CONSTRAINT accounts_profile_platform_key UNIQUE (profile_id, platform)
			)`,
			`CREATE INDEX IF NOT EXISTS accounts_platform_profile_idx ON accounts (platform, platform_profile_id)`,
			`CREATE INDEX IF NOT EXISTS accounts_updated_at_idx ON accounts (updated_at DESC)`,
		},
	},
	{
		Name: "accounts_metrics",
		Statements: []string{
			`CREATE TABLE IF NOT EXISTS accounts_metrics (
				id            BIGSERIAL PRIMARY KEY,
				account_id    UUID NOT NULL REFERENCES accounts (id) ON DELETE CASCADE,
				posts         BIGINT,
				followers     BIGINT,
				following     BIGINT,
				maximum_likes BIGINT,
				profile_views BIGINT,
				videos        BIGINT,
				metric_date   DATE NOT NULL,
				CONSTRAINT accounts_metrics_account_date_key UNIQUE (account_id, metric_date)
			)`,
			// Bases antigas gravavam -1 para métrica desconhecida
			`UPDATE accounts_metrics SET posts = NULL WHERE posts < 0`,
			`UPDATE accounts_metrics SET followers = NULL WHERE followers < 0`,
			`UPDATE accounts_metrics SET following = NULL WHERE following < 0`,
			`UPDATE accounts_metrics SET maximum_likes = NULL WHERE maximum_likes < 0`,
			`UPDATE accounts_metrics SET profile_views = NULL WHERE profile_views < 0`,
			`UPDATE accounts_metrics SET videos = NULL WHERE videos < 0`,
		},
	},
	{
		Name: "campaigns",
		Statements: []string{
			`CREATE TABLE IF NOT EXISTS campaigns (
				id          TEXT PRIMARY KEY,
				user_id     UUID NOT NULL REFERENCES users (id) ON DELETE CASCADE,
				name        TEXT NOT NULL,
				description TEXT,
				start_date  DATE,
				end_date    DATE,
				budget      NUMERIC(14, 2),
				goal        TEXT,
				status      TEXT NOT NULL DEFAULT 'draft',
				influencers TEXT,
				created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`,
			`CREATE INDEX IF NOT EXISTS campaigns_user_created_idx ON campaigns (user_id, created_at DESC)`,
			`CREATE TABLE IF NOT EXISTS campaign_influencers (
				campaign_id  TEXT NOT NULL REFERENCES campaigns (id) ON DELETE CASCADE,
				account_id   UUID NOT NULL REFERENCES accounts (id) ON DELETE CASCADE,
				display_name TEXT NOT NULL,
				created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				PRIMARY KEY (campaign_id, account_id)
			)`,
		},
	},
	{
		Name: "posts",
		Statements: []string{
			`CREATE TABLE IF NOT EXISTS posts (
				id               BIGSERIAL PRIMARY KEY,
				account_id       UUID NOT NULL REFERENCES accounts (id) ON DELETE CASCADE,
				external_post_id TEXT NOT NULL,
				media_type       SMALLINT NOT NULL,
				caption          TEXT,
				link             TEXT,
				posted_at        TIMESTAMPTZ,
				scraped_at       TIMESTAMPTZ NOT NULL,
				CONSTRAINT posts_account_external_key UNIQUE (account_id, external_post_id)
			)`,
			`CREATE TABLE IF NOT EXISTS post_metrics (
				post_id     BIGINT NOT NULL REFERENCES posts (id) ON DELETE CASCADE,
				likes       BIGINT NOT NULL DEFAULT 0,
				comments    BIGINT NOT NULL DEFAULT 0,
				views       BIGINT,
				metric_date DATE NOT NULL,
				PRIMARY KEY (post_id, metric_date)
			)`,
			`CREATE TABLE IF NOT EXISTS hashtags (
				id  BIGSERIAL PRIMARY KEY,
				tag TEXT NOT NULL UNIQUE
			)`,
			`CREATE TABLE IF NOT EXISTS post_hashtags (
				post_id    BIGINT NOT NULL REFERENCES posts (id) ON DELETE CASCADE,
				hashtag_id BIGINT NOT NULL REFERENCES hashtags (id) ON DELETE CASCADE,
				PRIMARY KEY (post_id, hashtag_id)
			)`,
		},
	},
	{
		Name: "sync_runs",
		Statements: []string{
			`CREATE TABLE IF NOT EXISTS sync_runs (
				id          TEXT PRIMARY KEY,
				kind        TEXT NOT NULL,
				target      TEXT NOT NULL,
				status      TEXT NOT NULL,
				step        TEXT NOT NULL,
				error       TEXT,
				started_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				finished_at TIMESTAMPTZ
			)`,
			`CREATE INDEX IF NOT EXISTS sync_runs_kind_target_idx ON sync_runs (kind, target, started_at DESC)`,
		},
	},
}

func setupLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.Info("Iniciando script de migração...")
}

func applyMigration(tx *sql.Tx, m migration) error {
	startTime := time.Now()

	for i, statement := range m.Statements {
		if _, err := tx.Exec(statement); err != nil {
			return errors.Wrapf(err, "migração %s, instrução %d", m.Name, i+1)
		}
	}

	logrus.WithFields(logrus.Fields{
		"migration":  m.Name,
		"statements": len(m.Statements),
		"duration":   time.Since(startTime).String(),
	}).Info("Migração aplicada")
	return nil
}

func main() {
	setupLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar configuração")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, m := range migrations {
			if err := applyMigration(tx, m); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logrus.WithError(err).Fatal("Migração interrompida, nenhuma alteração foi gravada")
	}

	logrus.WithField("migrations", len(migrations)).Info("Script de migração concluído com sucesso")
}
