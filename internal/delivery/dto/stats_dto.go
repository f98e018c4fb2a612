package dto

// StatsSnapshot is the dashboard statistics payload. Field names stay in the
// dashboard's camelCase wire format. Degraded lists the metrics whose query
// failed and fell back to a zero value, so a degraded zero is
// distinguishable from a genuine zero.
type StatsSnapshot struct {
	TotalPatients        int64         `json:"totalPatients"`
	TotalDoctors         int64         `json:"totalDoctors"`
	TotalAppointments    int64         `json:"totalAppointments"`
	TodaysAppointments   int64         `json:"todaysAppointments"`
	UpcomingAppointments int64         `json:"upcomingAppointments"`
	GenderDistribution   []GenderCount `json:"genderDistribution"`
	WeeklyAppointments   []DayCount    `json:"weeklyAppointments"`
	TopDoctors           []TopDoctor   `json:"topDoctors"`
	Degraded             []string      `json:"degraded,omitempty"`
}

type GenderCount struct {
	Gender string `json:"gender"`
	Count  int64  `json:"count"`
}

type DayCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type TopDoctor struct {
	Name             string `json:"name"`
	Specialty        string `json:"specialty,omitempty"`
	AppointmentCount int64  `json:"appointment_count"`
}

type MonthCount struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

// MonthlyStatsResponse is the detailed appointment statistics payload
type MonthlyStatsResponse struct {
	Monthly []MonthCount `json:"monthly"`
}

// Metric names reported in StatsSnapshot.Degraded.
const (
	MetricTotalPatients        = "totalPatients"
	MetricTotalDoctors         = "totalDoctors"
	MetricTotalAppointments    = "totalAppointments"
	MetricTodaysAppointments   = "todaysAppointments"
	MetricUpcomingAppointments = "upcomingAppointments"
	MetricGenderDistribution   = "genderDistribution"
	MetricWeeklyAppointments   = "weeklyAppointments"
	MetricTopDoctors           = "topDoctors"
)
