package entity

import "time"

// Appointment represents a scheduled visit between a patient and a doctor.
// PatientID and DoctorID are plain references without database-level foreign
// keys: deleting a patient or doctor leaves the appointment row in place.
type Appointment struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID int       `gorm:"not null;index" json:"patient_id"`
	DoctorID  int       `gorm:"not null;index" json:"doctor_id"`
	Date      time.Time `gorm:"type:date;not null;index" json:"date"`
	Time      string    `gorm:"type:varchar(5);not null" json:"time"`
	Reason    string    `gorm:"type:text" json:"reason,omitempty"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  Doctor  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// DateString returns the appointment date in the API's YYYY-MM-DD format
func (a *Appointment) DateString() string {
	return a.Date.Format("2006-01-02")
}
