package entity

// Patient represents a registered patient record
type Patient struct {
	ID       int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string `gorm:"type:varchar(255);not null" json:"name"`
	Age      *int   `gorm:"type:int" json:"age,omitempty"`
	Gender   string `gorm:"type:varchar(50)" json:"gender,omitempty"`
	ImageURL string `gorm:"column:image_url;type:text" json:"image_url,omitempty"`
	Email    string `gorm:"type:varchar(255)" json:"email,omitempty"`

	// Relationships
	Appointments []Appointment `gorm:"foreignKey:PatientID" json:"appointments,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

// HasEmail reports whether the patient has a contact address for notifications
func (p *Patient) HasEmail() bool {
	return p.Email != ""
}
