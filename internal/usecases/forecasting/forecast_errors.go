package forecasting

import "fmt"

// ProjectionError carrega o código de API para entradas rejeitadas
type ProjectionError struct {
	Err     error
	Code    string
	Details string
}

func (e *ProjectionError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ProjectionError) Unwrap() error {
	return e.Err
}
