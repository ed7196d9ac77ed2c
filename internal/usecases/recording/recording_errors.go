package recording

import (
	"errors"
	"fmt"
)

// Erros específicos para o registro de atividades
var (
	ErrDuplicateDay   = errors.New("já existe registro de atividade para este dia")
	ErrSaveActivity   = errors.New("erro ao salvar atividade")
	ErrInvalidPayload = errors.New("dados da atividade inválidos")
)

// ActivityError é um erro com contexto adicional para atividades
type ActivityError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Day     string // Dia envolvido (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ActivityError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ActivityError) Unwrap() error {
	return e.Err
}

// NewActivityError cria um novo ActivityError
func NewActivityError(err error, code string, day string, details string) *ActivityError {
	return &ActivityError{
		Err:     err,
		Code:    code,
		Day:     day,
		Details: details,
	}
}
