package domain

import "time"

type Timeframe string

const (
	TimeframeAll     Timeframe = "all"
	TimeframeWeek    Timeframe = "week"
	TimeframeMonth   Timeframe = "month"
	TimeframeQuarter Timeframe = "quarter"
)

func (t Timeframe) Valid() bool {
	switch t {
	case TimeframeAll, TimeframeWeek, TimeframeMonth, TimeframeQuarter:
		return true
	}
	return false
}

type ActivityFilter string

const (
	ActivityFilterAll      ActivityFilter = "all"
	ActivityFilterCalls    ActivityFilter = "calls"
	ActivityFilterMeetings ActivityFilter = "meetings"
)

func (a ActivityFilter) Valid() bool {
	switch a {
	case ActivityFilterAll, ActivityFilterCalls, ActivityFilterMeetings:
		return true
	}
	return false
}

// ReportFilters representa os filtros aplicados ao painel
type ReportFilters struct {
	Timeframe Timeframe      `json:"timeframe"`
	StartDate *time.Time     `json:"start_date,omitempty"`
	EndDate   *time.Time     `json:"end_date,omitempty"`
	Activity  ActivityFilter `json:"activity"`
	Reference time.Time      `json:"reference"`
}
