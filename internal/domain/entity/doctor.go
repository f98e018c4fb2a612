package entity

// Doctor represents a practicing doctor record
type Doctor struct {
	ID        int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string `gorm:"type:varchar(255);not null" json:"name"`
	Specialty string `gorm:"type:varchar(255)" json:"specialty,omitempty"`
	ImageURL  string `gorm:"column:image_url;type:text" json:"image_url,omitempty"`
	Email     string `gorm:"type:varchar(255)" json:"email,omitempty"`

	// Relationships
	Appointments []Appointment `gorm:"foreignKey:DoctorID" json:"appointments,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// HasEmail reports whether the doctor has a contact address for notifications
func (d *Doctor) HasEmail() bool {
	return d.Email != ""
}
