package repository

import (
	"database/sql"
	stderrors "errors"
	"time"

	"github.com/lib/pq"
	"github.com/pkg/errors"
)

var (
	// ErrNotFound indica que nenhuma linha foi afetada por uma escrita escopada
	ErrNotFound = errors.New("registro não encontrado")
	// ErrAlreadyExists indica violação de unicidade
	ErrAlreadyExists = errors.New("registro já existe")
)

const pqUniqueViolation = "23505"

// translate converte erros do driver nos erros do pacote
func translate(err error, msg string) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if stderrors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
		return errors.Wrap(ErrAlreadyExists, msg)
	}

	return errors.Wrap(err, msg)
}

// nullableCount lê contadores opcionais; negativos (legado -1) viram desconhecido
func nullableCount(v sql.NullInt64) *int64 {
	if !v.Valid || v.Int64 < 0 {
		return nil
	}
	n := v.Int64
	return &n
}

func nullableTime(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	t := v.Time
	return &t
}
