package analytics

import (
	"math"

	"github.com/pkg/errors"
	"github.com/vfg2006/sdr-metrics-api/internal/domain"
	"github.com/vfg2006/sdr-metrics-api/pkg/utils"
)

const (
	ProjectionMonths = 12

	monthlyEngagementGrowth = 0.05
	onlineGivingShare       = 0.6
	weeksPerMonth           = 4
	staffHourlyRate         = 25
	equipmentAmortization   = 12
)

var (
	ErrMissingInput = errors.New("missing required input")
	ErrInvalidInput = errors.New("invalid input")
)

// Project gera a projeção de 12 meses. Entradas ausentes, negativas ou não finitas são rejeitadas.
func Project(inputs domain.ROIInputs) ([]domain.ProjectionPoint, error) {
	values, err := validateInputs(inputs)
	if err != nil {
		return nil, err
	}

	attendance := values["weeklyAttendance"]
	giving := values["averageGiving"]
	streaming := values["streamingCost"]
	equipment := values["equipmentCost"]
	staffHours := values["staffHours"]
	engagement := values["onlineEngagement"]

	monthlyCosts := streaming + equipment/equipmentAmortization + staffHours*staffHourlyRate*weeksPerMonth

	points := make([]domain.ProjectionPoint, 0, ProjectionMonths)
	for i := 0; i < ProjectionMonths; i++ {
		viewers := math.Floor(attendance * (engagement / 100) * (1 + float64(i)*monthlyEngagementGrowth))
		revenue := viewers * (giving * onlineGivingShare) * weeksPerMonth
		roi := utils.SafeDivide(revenue-monthlyCosts, monthlyCosts) * 100

		points = append(points, domain.ProjectionPoint{
			Month:   i + 1,
			Viewers: int(viewers),
			Revenue: revenue,
			Costs:   monthlyCosts,
			ROI:     int(roundHalfUp(roi)),
		})
	}

	return points, nil
}

// SummarizeProjection lê os indicadores do último mês da projeção
func SummarizeProjection(points []domain.ProjectionPoint) domain.ProjectionSummary {
	if len(points) == 0 {
		return domain.ProjectionSummary{}
	}

	last := points[len(points)-1]
	return domain.ProjectionSummary{
		FirstYearROI:            last.ROI,
		MonthlyRevenuePotential: int(roundHalfUp(last.Revenue)),
	}
}

func validateInputs(inputs domain.ROIInputs) (map[string]float64, error) {
	fields := []struct {
		name  string
		value *float64
	}{
		{"weeklyAttendance", inputs.WeeklyAttendance},
		{"averageGiving", inputs.AverageGiving},
		{"streamingCost", inputs.StreamingCost},
		{"equipmentCost", inputs.EquipmentCost},
		{"staffHours", inputs.StaffHours},
		{"onlineEngagement", inputs.OnlineEngagement},
	}

	values := make(map[string]float64, len(fields))
	for _, f := range fields {
		if f.value == nil {
			return nil, errors.Wrapf(ErrMissingInput, "field %s", f.name)
		}
		v := *f.value
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, errors.Wrapf(ErrInvalidInput, "field %s must be a finite number", f.name)
		}
		if v < 0 {
			return nil, errors.Wrapf(ErrInvalidInput, "field %s must not be negative", f.name)
		}
		values[f.name] = v
	}

	return values, nil
}

// roundHalfUp arredonda .5 para cima, inclusive em negativos (-0.5 -> 0)
func roundHalfUp(f float64) float64 {
	return math.Floor(f + 0.5)
}
