package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/influencer-hub-api/infrastructure/database/postgres"
	"github.com/vfg2006/influencer-hub-api/internal/domain"
	"github.com/vfg2006/influencer-hub-api/pkg/utils"
)

const syncRunsTable = "sync_runs"

// SyncRunRepository registra os checkpoints das sincronizações
type SyncRunRepository interface {
	Start(ctx context.Context, kind, target string) (*domain.SyncRun, error)
	Checkpoint(ctx context.Context, runID, step string) error
	Finish(ctx context.Context, runID string, status domain.SyncRunStatus, errMsg *string) error
	Latest(ctx context.Context, kind, target string) (*domain.SyncRun, error)
}

type syncRunRepository struct {
	conn *postgres.Connection
}

func NewSyncRunRepository(conn *postgres.Connection) SyncRunRepository {
	return &syncRunRepository{conn: conn}
}

func (r *syncRunRepository) Start(ctx context.Context, kind, target string) (*domain.SyncRun, error) {
	id, err := utils.GenerateID(16)
	if err != nil {
		return nil, errors.Wrap(err, "gerando id da execução")
	}

	run := &domain.SyncRun{
		ID:     id,
		Kind:   kind,
		Target: target,
		Status: domain.SyncRunStatusRunning,
		Step:   "started",
	}

	runSQL, args, err := squirrel.
		Insert(syncRunsTable).
		Columns("id", "kind", "target", "status", "step").
		Values(run.ID, run.Kind, run.Target, run.Status, run.Step).
		Suffix("RETURNING started_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "montando insert de execução")
	}

	if err := r.conn.QueryRowContext(ctx, runSQL, args...).Scan(&run.StartedAt); err != nil {
		return nil, translate(err, "registrando execução")
	}

	return run, nil
}

func (r *syncRunRepository) Checkpoint(ctx context.Context, runID, step string) error {
	runSQL, args, err := squirrel.
		Update(syncRunsTable).
		Set("step", step).
		Where(squirrel.Eq{"id": runID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "montando checkpoint")
	}

	_, err = r.conn.ExecContext(ctx, runSQL, args...)
	return errors.Wrap(err, "gravando checkpoint")
}

func (r *syncRunRepository) Finish(ctx context.Context, runID string, status domain.SyncRunStatus, errMsg *string) error {
	runSQL, args, err := squirrel.
		Update(syncRunsTable).
		Set("status", status).
		Set("error", errMsg).
		Set("finished_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": runID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "montando finalização de execução")
	}

	_, err = r.conn.ExecContext(ctx, runSQL, args...)
	return errors.Wrap(err, "finalizando execução")
}

func (r *syncRunRepository) Latest(ctx context.Context, kind, target string) (*domain.SyncRun, error) {
	runSQL, args, err := squirrel.
		Select("id", "kind", "target", "status", "step", "error", "started_at", "finished_at").
		From(syncRunsTable).
		Where(squirrel.Eq{"kind": kind, "target": target}).
		OrderBy("started_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "montando consulta de execução")
	}

	var (
		run        domain.SyncRun
		finishedAt sql.NullTime
	)
	err = r.conn.QueryRowContext(ctx, runSQL, args...).Scan(
		&run.ID, &run.Kind, &run.Target, &run.Status, &run.Step, &run.Error, &run.StartedAt, &finishedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "consultando execução")
	}

	run.FinishedAt = nullableTime(finishedAt)
	return &run, nil
}
