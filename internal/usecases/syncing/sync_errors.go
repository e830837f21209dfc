package syncing

import (
	"errors"
	"fmt"
)

var (
	ErrProfileIDRequired = errors.New(`missing "profile_id" in request body`)
	ErrAccountNotSynced  = errors.New("conta não encontrada, rode a sincronização da conta primeiro")
	ErrGraphAPI          = errors.New("erro ao consultar a Graph API do Instagram")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// SyncError é um erro de sincronização com a etapa em que ocorreu
type SyncError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Step    string // Etapa da sincronização (quando aplicável)
	Details string // Detalhes adicionais
}

func (e *SyncError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *SyncError) Unwrap() error {
	return e.Err
}

func NewSyncError(err error, code string, step string, details string) *SyncError {
	return &SyncError{
		Err:     err,
		Code:    code,
		Step:    step,
		Details: details,
	}
}
