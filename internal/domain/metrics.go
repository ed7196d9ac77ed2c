package domain

// PipelineValuePerMeeting é o valor estimado de pipeline atribuído a cada reunião
const PipelineValuePerMeeting = 5000

// MetricsSummary agrega as métricas de uma sequência de dias
type MetricsSummary struct {
	DialToConversion     float64 `json:"dialToConversion"`
	MeetingRate          float64 `json:"meetingRate"`
	TotalLeads           int     `json:"totalLeads"`
	PipelineValue        int     `json:"pipelineValue"`
	AverageDials         float64 `json:"averageDials"`
	AverageConversations float64 `json:"averageConversations"`
	TotalDials           int     `json:"totalDials"`
	TotalConversations   int     `json:"totalConversations"`
	TotalMeetings        int     `json:"totalMeetings"`
	Days                 int     `json:"days"`
}

// Canais da distribuição, na ordem de exibição
const (
	ChannelCalls    = "Calls"
	ChannelEmails   = "Emails"
	ChannelLinkedIn = "LinkedIn"
	ChannelMeetings = "Meetings"
)

type DistributionEntry struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// ActivityDistribution mantém a ordem fixa Calls, Emails, LinkedIn, Meetings
type ActivityDistribution []DistributionEntry

// Get retorna o valor de um canal e se ele está presente
func (d ActivityDistribution) Get(name string) (int, bool) {
	for _, e := range d {
		if e.Name == name {
			return e.Value, true
		}
	}
	return 0, false
}

type TrendStatus string

const (
	TrendOK        TrendStatus = "ok"
	TrendNoPrior   TrendStatus = "no_prior"
	TrendUnbounded TrendStatus = "unbounded"
)

// TrendValue é a variação percentual em relação ao dia anterior
type TrendValue struct {
	Percent float64     `json:"percent"`
	Status  TrendStatus `json:"status"`
}

type TrendPoint struct {
	Date              Date       `json:"date"`
	DialTrend         TrendValue `json:"dialTrend"`
	ConversationTrend TrendValue `json:"conversionTrend"`
}

// BreakdownRow é uma linha da tabela de desempenho diário
type BreakdownRow struct {
	Date           Date       `json:"date"`
	Dials          int        `json:"dials"`
	Conversations  int        `json:"conversations"`
	ConversionRate float64    `json:"conversionRate"`
	Meetings       int        `json:"meetings"`
	Trend          TrendValue `json:"trend"`
}

type PeakDay struct {
	Day           Date `json:"day"`
	Conversations int  `json:"conversations"`
}

// DashboardReport reúne tudo que o painel precisa para renderizar
type DashboardReport struct {
	Filters      ReportFilters        `json:"filters"`
	Summary      MetricsSummary       `json:"summary"`
	Distribution ActivityDistribution `json:"distribution"`
	Trends       []TrendPoint         `json:"trends"`
	Breakdown    []BreakdownRow       `json:"breakdown"`
	TopDays      []PeakDay            `json:"topDays"`
	Recent       []DailyActivity      `json:"recent"`
}
