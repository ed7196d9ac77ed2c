// Package dashboard modela o estado do painel de SDR: um redutor puro sobre ações explícitas
// e um controlador que sequencia as requisições à API.
package dashboard

import (
	"github.com/vfg2006/sdr-metrics-api/internal/analytics"
	"github.com/vfg2006/sdr-metrics-api/internal/domain"
)

type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
)

// Toast é a notificação transitória exibida após um envio
type Toast struct {
	Kind    ToastKind
	Message string
}

type FormState struct {
	Open       bool
	Submitting bool
	Input      domain.DailyActivity
}

// State é imutável do ponto de vista do chamador: Reduce sempre devolve uma nova cópia
type State struct {
	Loading      bool
	Error        string
	Records      []domain.DailyActivity
	Filters      domain.ReportFilters
	Toast        *Toast
	Form         FormState
	RequestToken uint64
}

func InitialState() State {
	return State{
		Filters: domain.ReportFilters{
			Timeframe: domain.TimeframeAll,
			Activity:  domain.ActivityFilterAll,
		},
	}
}

// Action é uma transição do painel
type Action interface {
	isAction()
}

type (
	FetchStarted struct {
		Token uint64
	}
	FetchSucceeded struct {
		Token   uint64
		Records []domain.DailyActivity
	}
	FetchFailed struct {
		Token uint64
		Err   error
	}
	FiltersChanged struct {
		Filters domain.ReportFilters
	}
	FormOpened       struct{}
	FormClosed       struct{}
	FormInputChanged struct {
		Input domain.DailyActivity
	}
	SubmitStarted   struct{}
	SubmitSucceeded struct {
		Activity domain.DailyActivity
	}
	SubmitFailed struct {
		Err error
	}
	ToastDismissed struct{}
)

func (FetchStarted) isAction()     {}
func (FetchSucceeded) isAction()   {}
func (FetchFailed) isAction()      {}
func (FiltersChanged) isAction()   {}
func (FormOpened) isAction()       {}
func (FormClosed) isAction()       {}
func (FormInputChanged) isAction() {}
func (SubmitStarted) isAction()    {}
func (SubmitSucceeded) isAction()  {}
func (SubmitFailed) isAction()     {}
func (ToastDismissed) isAction()   {}

const (
	submitSuccessMessage = "Data submitted successfully"
	submitFailureMessage = "Failed to submit data"
)

// Reduce aplica a ação e devolve o novo estado. Respostas com token antigo são descartadas.
func Reduce(state State, action Action) State {
	next := state
	next.Records = cloneRecords(state.Records)

	switch a := action.(type) {
	case FetchStarted:
		if a.Token <= state.RequestToken {
			return next
		}
		next.RequestToken = a.Token
		next.Loading = true
		next.Error = ""

	case FetchSucceeded:
		if a.Token != state.RequestToken {
			return next
		}
		next.Loading = false
		next.Error = ""
		next.Records = analytics.SortByDay(a.Records)

	case FetchFailed:
		if a.Token != state.RequestToken {
			return next
		}
		next.Loading = false
		next.Records = nil
		next.Error = "Failed to fetch data"
		if a.Err != nil {
			next.Error = a.Err.Error()
		}

	case FiltersChanged:
		next.Filters = a.Filters
		if next.Filters.Timeframe == "" {
			next.Filters.Timeframe = domain.TimeframeAll
		}
		if next.Filters.Activity == "" {
			next.Filters.Activity = domain.ActivityFilterAll
		}

	case FormOpened:
		next.Form.Open = true

	case FormClosed:
		next.Form = FormState{}

	case FormInputChanged:
		next.Form.Input = a.Input

	case SubmitStarted:
		next.Form.Submitting = true

	case SubmitSucceeded:
		next.Form = FormState{}
		next.Toast = &Toast{Kind: ToastSuccess, Message: submitSuccessMessage}
		next.Records = analytics.SortByDay(append(next.Records, a.Activity))

	case SubmitFailed:
		// formulário continua aberto com a entrada preservada
		next.Form.Submitting = false
		message := submitFailureMessage
		if a.Err != nil {
			message = message + ": " + a.Err.Error()
		}
		next.Toast = &Toast{Kind: ToastError, Message: message}

	case ToastDismissed:
		next.Toast = nil
	}

	return next
}

func cloneRecords(records []domain.DailyActivity) []domain.DailyActivity {
	if records == nil {
		return nil
	}
	out := make([]domain.DailyActivity, len(records))
	copy(out, records)
	return out
}
