package searching

import (
	"errors"
	"fmt"
)

var (
	ErrStaleRequest      = errors.New("requisição substituída por uma mais recente")
	ErrAccountNotFound   = errors.New("influenciador não encontrado")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// SearchError é um erro com contexto adicional para a busca
type SearchError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

func (e *SearchError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *SearchError) Unwrap() error {
	return e.Err
}

func NewSearchError(err error, code string, details string) *SearchError {
	return &SearchError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
