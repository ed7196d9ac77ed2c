package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/vfg2006/sdr-metrics-api/internal/domain"
	"github.com/vfg2006/sdr-metrics-api/pkg/log"
	"github.com/vfg2006/sdr-metrics-api/pkg/utils"
)

// Controller liga o redutor ao cliente HTTP. Cada busca recebe um token crescente;
// respostas que chegam depois de uma busca mais nova são ignoradas pelo redutor.
type Controller struct {
	client    StatsClient
	mu        sync.Mutex
	state     State
	lastToken uint64
	today     func() time.Time
}

func NewController(client StatsClient) *Controller {
	return &Controller{
		client: client,
		state:  InitialState(),
		today:  utils.Today,
	}
}

// State retorna uma cópia do estado atual
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	state := c.state
	state.Records = cloneRecords(c.state.Records)
	return state
}

func (c *Controller) Dispatch(action Action) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = Reduce(c.state, action)
	return c.state
}

func (c *Controller) issueToken() (uint64, domain.ReportFilters) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lastToken++
	c.state = Reduce(c.state, FetchStarted{Token: c.lastToken})
	return c.lastToken, c.state.Filters
}

// Refresh busca os registros com os filtros atuais
func (c *Controller) Refresh(ctx context.Context) error {
	token, filters := c.issueToken()

	records, err := c.client.DailyStats(ctx, filters)
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("dashboard: falha ao buscar registros")
		c.Dispatch(FetchFailed{Token: token, Err: err})
		return err
	}

	c.Dispatch(FetchSucceeded{Token: token, Records: records})
	return nil
}

// SetFilters troca os filtros e dispara uma nova busca
func (c *Controller) SetFilters(ctx context.Context, filters domain.ReportFilters) error {
	c.Dispatch(FiltersChanged{Filters: filters})
	return c.Refresh(ctx)
}

func (c *Controller) OpenForm() {
	c.Dispatch(FormOpened{})
}

func (c *Controller) CloseForm() {
	c.Dispatch(FormClosed{})
}

func (c *Controller) UpdateForm(input domain.DailyActivity) {
	c.Dispatch(FormInputChanged{Input: input})
}

func (c *Controller) DismissToast() {
	c.Dispatch(ToastDismissed{})
}

// Submit envia o formulário; o dia é sempre hoje, como no painel
func (c *Controller) Submit(ctx context.Context) error {
	state := c.Dispatch(SubmitStarted{})

	input := state.Form.Input
	input.Day = domain.NewDate(c.today())

	stored, err := c.client.CreateActivity(ctx, input)
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("dashboard: falha ao enviar atividade")
		c.Dispatch(SubmitFailed{Err: err})
		return err
	}

	c.Dispatch(SubmitSucceeded{Activity: *stored})
	return c.Refresh(ctx)
}
