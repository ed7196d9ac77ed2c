package insighting

import (
	"errors"
	"fmt"
)

var (
	// Erros de validação dos filtros
	ErrInvalidTimeframe = errors.New("período inválido")
	ErrInvalidActivity  = errors.New("filtro de atividade inválido")
	ErrInvalidDate      = errors.New("data inválida")

	// Erros de leitura
	ErrFetchActivities = errors.New("erro ao buscar atividades")
	ErrFetchDigest     = errors.New("erro ao ler resumo")
	ErrDigestNotReady  = errors.New("nenhum resumo gerado ainda")
	ErrSaveDigest      = errors.New("erro ao salvar resumo")
)

// InsightError é um erro com contexto adicional para consultas de métricas
type InsightError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *InsightError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *InsightError) Unwrap() error {
	return e.Err
}

func NewInsightError(err error, code string, details string) *InsightError {
	return &InsightError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
