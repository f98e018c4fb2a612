package entity

// Aggregate row types scanned by the statistics queries.

// GenderCount is one bucket of the patient gender distribution
type GenderCount struct {
	Gender string `json:"gender"`
	Count  int64  `json:"count"`
}

// DayCount is the appointment count for a single calendar date
type DayCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// MonthCount is the appointment count for a single calendar month
type MonthCount struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

// DoctorAppointmentCount ranks a doctor by total appointments booked
type DoctorAppointmentCount struct {
	Name             string `json:"name"`
	Specialty        string `json:"specialty"`
	AppointmentCount int64  `json:"appointment_count"`
}
