package domain

// ROIInputs são os parâmetros informados na calculadora de ROI de transmissão.
// Ponteiros distinguem um campo ausente de um zero explícito.
type ROIInputs struct {
	WeeklyAttendance *float64 `json:"weeklyAttendance"`
	AverageGiving    *float64 `json:"averageGiving"`
	StreamingCost    *float64 `json:"streamingCost"`
	EquipmentCost    *float64 `json:"equipmentCost"`
	StaffHours       *float64 `json:"staffHours"`
	OnlineEngagement *float64 `json:"onlineEngagement"`
}

type ProjectionPoint struct {
	Month   int     `json:"month"`
	Viewers int     `json:"viewers"`
	Revenue float64 `json:"revenue"`
	Costs   float64 `json:"costs"`
	ROI     int     `json:"roi"`
}

type ProjectionSummary struct {
	FirstYearROI            int `json:"firstYearROI"`
	MonthlyRevenuePotential int `json:"monthlyRevenuePotential"`
}

type ProjectionResponse struct {
	Points  []ProjectionPoint `json:"points"`
	Summary ProjectionSummary `json:"summary"`
}
