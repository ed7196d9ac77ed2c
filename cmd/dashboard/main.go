package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/sdr-metrics-api/internal/config"
	"github.com/vfg2006/sdr-metrics-api/internal/dashboard"
	"github.com/vfg2006/sdr-metrics-api/internal/domain"
	"github.com/vfg2006/sdr-metrics-api/internal/usecases/insighting"
	"github.com/vfg2006/sdr-metrics-api/pkg/log"
	"github.com/vfg2006/sdr-metrics-api/pkg/utils"
)

type appContext struct {
	ctx        context.Context
	client     *dashboard.HTTPClient
	controller *dashboard.Controller
}

type FilterFlags struct {
	Timeframe string `help:"Janela de tempo (week, month, quarter, all)." default:"all"`
	StartDate string `help:"Data inicial (YYYY-MM-DD)."`
	EndDate   string `help:"Data final (YYYY-MM-DD)."`
	Activity  string `help:"Filtro de atividade (all, calls, meetings)." default:"all"`
}

func (f FilterFlags) parse() (domain.ReportFilters, error) {
	return insighting.ParseFilters(insighting.FilterParams{
		Timeframe: f.Timeframe,
		StartDate: f.StartDate,
		EndDate:   f.EndDate,
		Activity:  f.Activity,
	}, time.Now())
}

// ReportCmd busca os registros e monta o painel localmente
type ReportCmd struct {
	FilterFlags `embed:""`
}

func (c *ReportCmd) Run(app *appContext) error {
	filters, err := c.parse()
	if err != nil {
		return err
	}

	if err := app.controller.SetFilters(app.ctx, filters); err != nil {
		return err
	}

	fmt.Println(utils.PrettyJson(dashboard.Derive(app.controller.State(), time.Now())))
	return nil
}

// RecordCmd envia a atividade do dia
type RecordCmd struct {
	Dials         int `help:"Ligações discadas."`
	Conversations int `help:"Conversas realizadas."`
	Calls         int `help:"Chamadas."`
	Emails        int `help:"E-mails enviados."`
	LinkedIn      int `name:"linkedin" help:"Contatos via LinkedIn."`
	Meetings      int `help:"Reuniões agendadas."`
}

func (c *RecordCmd) Run(app *appContext) error {
	app.controller.OpenForm()
	app.controller.UpdateForm(domain.DailyActivity{
		Dials:         domain.Count(c.Dials),
		Conversations: domain.Count(c.Conversations),
		Calls:         domain.Count(c.Calls),
		Emails:        domain.Count(c.Emails),
		LinkedIn:      domain.Count(c.LinkedIn),
		Meetings:      domain.Count(c.Meetings),
	})

	err := app.controller.Submit(app.ctx)
	state := app.controller.State()
	if state.Toast != nil {
		fmt.Println(state.Toast.Message)
	}
	return err
}

// ROICmd calcula a projeção de ROI no servidor
type ROICmd struct {
	WeeklyAttendance float64 `required:"" help:"Público semanal."`
	AverageGiving    float64 `required:"" help:"Oferta média por pessoa."`
	StreamingCost    float64 `required:"" help:"Custo mensal de streaming."`
	EquipmentCost    float64 `required:"" help:"Custo do equipamento."`
	StaffHours       float64 `required:"" help:"Horas semanais da equipe."`
	OnlineEngagement float64 `required:"" help:"Engajamento online (%)."`
}

func (c *ROICmd) Run(app *appContext) error {
	projection, err := app.client.ProjectROI(app.ctx, domain.ROIInputs{
		WeeklyAttendance: &c.WeeklyAttendance,
		AverageGiving:    &c.AverageGiving,
		StreamingCost:    &c.StreamingCost,
		EquipmentCost:    &c.EquipmentCost,
		StaffHours:       &c.StaffHours,
		OnlineEngagement: &c.OnlineEngagement,
	})
	if err != nil {
		return err
	}

	fmt.Println(utils.PrettyJson(projection))
	return nil
}

var CLI struct {
	Report ReportCmd `cmd:"" help:"Mostra o painel de métricas." default:"1"`
	Record RecordCmd `cmd:"" help:"Registra a atividade de hoje."`
	ROI    ROICmd    `cmd:"" name:"roi" help:"Projeta o ROI de transmissão."`
}

func main() {
	kctx := kong.Parse(&CLI,
		kong.Name("dashboard"),
		kong.Description("Cliente de linha de comando da API de métricas SDR"),
		kong.UsageOnError(),
	)

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	log.Setup(cfg.App.LogLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	client := dashboard.NewClient(cfg)
	app := &appContext{
		ctx:        ctx,
		client:     client,
		controller: dashboard.NewController(client),
	}

	if err := kctx.Run(app); err != nil {
		fmt.Fprintf(os.Stderr, "Erro: %v\n", err)
		os.Exit(1)
	}
}
