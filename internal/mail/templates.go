package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"hospital-management-api/internal/domain/entity"
)

// Message composers. All functions here are pure: the same input always
// produces byte-identical output, and nothing reaches the network.

const hospitalName = "City General Hospital"

var reminderTemplate = template.Must(template.New("reminder").Parse(`<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: #3498db; color: white; padding: 20px; text-align: center; border-radius: 5px 5px 0 0; }
    .content { background: #f9f9f9; padding: 30px; border-radius: 0 0 5px 5px; }
    .appointment-details { background: white; border: 1px solid #ddd; border-radius: 5px; padding: 20px; margin: 20px 0; }
    .footer { text-align: center; margin-top: 30px; padding-top: 20px; border-top: 1px solid #ddd; color: #7f8c8d; font-size: 0.9em; }
  </style>
</head>
<body>
  <div class="header">
    <h1>{{.Hospital}}</h1>
    <h2>Appointment Reminder</h2>
  </div>
  <div class="content">
    <p>Dear <strong>{{.PatientName}}</strong>,</p>
    <p>This is a friendly reminder about your upcoming appointment.</p>
    <div class="appointment-details">
      <h3>Appointment Details:</h3>
      <p><strong>Date:</strong> {{.FormattedDate}}</p>
      <p><strong>Time:</strong> {{.FormattedTime}}</p>
      <p><strong>Doctor:</strong> Dr. {{.DoctorName}}{{if .Specialty}} ({{.Specialty}}){{end}}</p>
      <p><strong>Reason:</strong> {{.Reason}}</p>
      <p><strong>Appointment ID:</strong> #{{.AppointmentID}}</p>
    </div>
    <h3>Please Remember:</h3>
    <ul>
      <li>Arrive 15 minutes before your scheduled time</li>
      <li>Bring your ID and insurance card</li>
      <li>Bring any relevant medical records or test results</li>
      <li>Notify us if you need to reschedule or cancel</li>
    </ul>
    <p>If you need to reschedule or have any questions, please contact our reception.</p>
  </div>
  <div class="footer">
    <p>{{.Hospital}}</p>
    <p>This is an automated message. Please do not reply to this email.</p>
  </div>
</body>
</html>
`))

var doctorNotificationTemplate = template.Must(template.New("doctorNotification").Parse(`<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .header { background: #2c3e50; color: white; padding: 20px; }
    .content { padding: 20px; }
    .appointment { background: #f8f9fa; padding: 15px; border-left: 4px solid #3498db; margin: 15px 0; }
    .footer { background: #ecf0f1; padding: 15px; margin-top: 20px; font-size: 0.9em; }
  </style>
</head>
<body>
  <div class="header">
    <h2>New Appointment Scheduled</h2>
  </div>
  <div class="content">
    <p>Dear Dr. <strong>{{.DoctorName}}</strong>,</p>
    <p>A new appointment has been scheduled with you:</p>
    <div class="appointment">
      <p><strong>Patient:</strong> {{.PatientName}}</p>
      <p><strong>Date:</strong> {{.Date}}</p>
      <p><strong>Time:</strong> {{.Time}}</p>
      <p><strong>Reason:</strong> {{.Reason}}</p>
      <p><strong>Patient ID:</strong> {{.PatientID}}</p>
    </div>
    <p>Please review the appointment details in the hospital management system.</p>
  </div>
  <div class="footer">
    <p>Hospital Management System Notification</p>
  </div>
</body>
</html>
`))

var welcomeTemplate = template.Must(template.New("welcome").Parse(`<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .header { background: #27ae60; color: white; padding: 20px; }
    .content { padding: 20px; }
    .welcome { font-size: 1.2em; margin: 20px 0; }
  </style>
</head>
<body>
  <div class="header">
    <h1>Welcome to Our Hospital!</h1>
  </div>
  <div class="content">
    <p>Dear <strong>{{.PatientName}}</strong>,</p>
    <div class="welcome">
      Welcome to {{.Hospital}}! We're delighted to have you as our patient.
    </div>
    <p>Your patient registration is complete. Your patient ID is: <strong>{{.PatientID}}</strong></p>
    <h3>What to do next:</h3>
    <ul>
      <li>Schedule your first appointment with a doctor</li>
      <li>Review our hospital policies and patient rights</li>
      <li>Update your medical history in your patient profile</li>
    </ul>
    <p>If you have any questions, please don't hesitate to contact us.</p>
    <p>Best regards,<br>{{.Hospital}} Team</p>
  </div>
</body>
</html>
`))

// ReminderSubject builds the subject line for a patient appointment reminder
func ReminderSubject(doctor *entity.Doctor) string {
	return fmt.Sprintf("Reminder: Appointment Tomorrow with Dr. %s", doctor.Name)
}

// AppointmentReminderBody renders the reminder email sent to a patient the
// day before their appointment
func AppointmentReminderBody(appointment *entity.Appointment, patient *entity.Patient, doctor *entity.Doctor) (string, error) {
	reason := appointment.Reason
	if reason == "" {
		reason = "General checkup"
	}

	data := struct {
		Hospital      string
		PatientName   string
		DoctorName    string
		Specialty     string
		FormattedDate string
		FormattedTime string
		Reason        string
		AppointmentID int
	}{
		Hospital:      hospitalName,
		PatientName:   patient.Name,
		DoctorName:    doctor.Name,
		Specialty:     doctor.Specialty,
		FormattedDate: appointment.Date.Format("Monday, January 2, 2006"),
		FormattedTime: formatTimeOfDay(appointment.Time),
		Reason:        reason,
		AppointmentID: appointment.ID,
	}

	var buf bytes.Buffer
	if err := reminderTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// DoctorNotificationSubject builds the subject line for the doctor's copy of
// an upcoming appointment
func DoctorNotificationSubject(appointment *entity.Appointment, patient *entity.Patient) string {
	return fmt.Sprintf("New Appointment: %s on %s", patient.Name, appointment.DateString())
}

// DoctorNotificationBody renders the notification email sent to the doctor
func DoctorNotificationBody(appointment *entity.Appointment, patient *entity.Patient, doctor *entity.Doctor) (string, error) {
	reason := appointment.Reason
	if reason == "" {
		reason = "Not specified"
	}

	data := struct {
		DoctorName  string
		PatientName string
		PatientID   int
		Date        string
		Time        string
		Reason      string
	}{
		DoctorName:  doctor.Name,
		PatientName: patient.Name,
		PatientID:   patient.ID,
		Date:        appointment.DateString(),
		Time:        appointment.Time,
		Reason:      reason,
	}

	var buf bytes.Buffer
	if err := doctorNotificationTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// WelcomeSubject builds the subject line for a new patient's welcome email
func WelcomeSubject(patient *entity.Patient) string {
	return fmt.Sprintf("Welcome to %s, %s!", hospitalName, patient.Name)
}

// WelcomePatientBody renders the welcome email sent when a patient registers
func WelcomePatientBody(patient *entity.Patient) (string, error) {
	data := struct {
		Hospital    string
		PatientName string
		PatientID   int
	}{
		Hospital:    hospitalName,
		PatientName: patient.Name,
		PatientID:   patient.ID,
	}

	var buf bytes.Buffer
	if err := welcomeTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// formatTimeOfDay converts a stored HH:MM string to a 12-hour display time.
// Unparseable values pass through unchanged.
func formatTimeOfDay(value string) string {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return value
	}
	return t.Format("3:04 PM")
}
