// Package analytics contém os cálculos puros do painel de SDR e da calculadora de ROI.
package analytics

import (
	"github.com/vfg2006/sdr-metrics-api/internal/domain"
	"github.com/vfg2006/sdr-metrics-api/pkg/utils"
)

// Summarize reduz uma sequência de dias às métricas do painel.
// O resultado não depende da ordem dos registros.
func Summarize(records []domain.DailyActivity) domain.MetricsSummary {
	var totalDials, totalConversations, totalMeetings int
	for _, r := range records {
		totalDials += int(r.Dials)
		totalConversations += int(r.Conversations)
		totalMeetings += int(r.Meetings)
	}

	days := float64(len(records))

	return domain.MetricsSummary{
		DialToConversion:     utils.Percentage(float64(totalConversations), float64(totalDials)),
		MeetingRate:          utils.Percentage(float64(totalMeetings), float64(totalConversations)),
		TotalLeads:           totalConversations,
		PipelineValue:        totalMeetings * domain.PipelineValuePerMeeting,
		AverageDials:         utils.RoundWithOneDecimalPlace(utils.SafeDivide(float64(totalDials), days)),
		AverageConversations: utils.RoundWithOneDecimalPlace(utils.SafeDivide(float64(totalConversations), days)),
		TotalDials:           totalDials,
		TotalConversations:   totalConversations,
		TotalMeetings:        totalMeetings,
		Days:                 len(records),
	}
}

// Distribution soma cada canal de forma independente, na ordem fixa de exibição
func Distribution(records []domain.DailyActivity) domain.ActivityDistribution {
	var calls, emails, linkedIn, meetings int
	for _, r := range records {
		calls += int(r.Calls)
		emails += int(r.Emails)
		linkedIn += int(r.LinkedIn)
		meetings += int(r.Meetings)
	}

	return domain.ActivityDistribution{
		{Name: domain.ChannelCalls, Value: calls},
		{Name: domain.ChannelEmails, Value: emails},
		{Name: domain.ChannelLinkedIn, Value: linkedIn},
		{Name: domain.ChannelMeetings, Value: meetings},
	}
}

// FilterDistribution restringe os canais exibidos conforme o filtro de atividade
func FilterDistribution(distribution domain.ActivityDistribution, filter domain.ActivityFilter) domain.ActivityDistribution {
	var keep string
	switch filter {
	case domain.ActivityFilterCalls:
		keep = domain.ChannelCalls
	case domain.ActivityFilterMeetings:
		keep = domain.ChannelMeetings
	default:
		out := make(domain.ActivityDistribution, len(distribution))
		copy(out, distribution)
		return out
	}

	out := make(domain.ActivityDistribution, 0, 1)
	for _, entry := range distribution {
		if entry.Name == keep {
			out = append(out, entry)
		}
	}
	return out
}
