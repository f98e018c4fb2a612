package service

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"hospital-management-api/config"
	"hospital-management-api/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type sentMessage struct {
	To      string
	Subject string
	Body    string
}

// fakeMailer records sends and can be told to fail specific recipients.
type fakeMailer struct {
	mu      sync.Mutex
	sent    []sentMessage
	failFor map[string]error
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{failFor: make(map[string]error)}
}

func (m *fakeMailer) Send(to, subject, htmlBody string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err, ok := m.failFor[to]; ok {
		return err
	}
	m.sent = append(m.sent, sentMessage{To: to, Subject: subject, Body: htmlBody})
	return nil
}

func (m *fakeMailer) messages() []sentMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]sentMessage(nil), m.sent...)
}

// stubAppointmentSource serves a fixed appointment list and records the
// requested date.
type stubAppointmentSource struct {
	appointments []entity.Appointment
	err          error
	queriedDate  time.Time
}

func (s *stubAppointmentSource) FindByDateWithRelations(db *gorm.DB, date time.Time) ([]entity.Appointment, error) {
	s.queriedDate = date
	if s.err != nil {
		return nil, s.err
	}
	return s.appointments, nil
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// testDB builds an unconnected gorm instance. The stubs never touch the
// connection pool, so no database needs to be running.
func testDB() *gorm.DB {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=test dbname=test",
	}), &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               logger.Discard,
	})
	if err != nil {
		panic(err)
	}
	return db
}

func newTestService(source *stubAppointmentSource, mailer *fakeMailer) *ReminderService {
	return NewReminderService(testDB(), quietLogger(), source, mailer, config.ReminderConfig{
		Cron:         "@every 1h",
		CycleTimeout: time.Minute,
	})
}

func reminderAppointment() entity.Appointment {
	return entity.Appointment{
		ID:        11,
		PatientID: 1,
		DoctorID:  2,
		Date:      time.Now().AddDate(0, 0, 1),
		Time:      "09:30",
		Reason:    "Follow-up",
		Patient: entity.Patient{
			ID:    1,
			Name:  "Sam Carter",
			Email: "sam.carter@example.com",
		},
		Doctor: entity.Doctor{
			ID:        2,
			Name:      "Janet Fraiser",
			Specialty: "Internal Medicine",
			Email:     "j.fraiser@example.com",
		},
	}
}

func TestRunOnceSendsReminderThenDoctorNotification(t *testing.T) {
	mailer := newFakeMailer()
	source := &stubAppointmentSource{appointments: []entity.Appointment{reminderAppointment()}}
	svc := newTestService(source, mailer)

	svc.RunOnce(context.Background())

	messages := mailer.messages()
	require.Len(t, messages, 2)

	assert.Equal(t, "sam.carter@example.com", messages[0].To)
	assert.Contains(t, messages[0].Subject, "Dr. Janet Fraiser")
	assert.Contains(t, messages[0].Body, "Sam Carter")

	assert.Equal(t, "j.fraiser@example.com", messages[1].To)
	assert.Contains(t, messages[1].Subject, "Sam Carter")
	assert.Contains(t, messages[1].Body, "Follow-up")
}

func TestRunOnceQueriesTomorrow(t *testing.T) {
	mailer := newFakeMailer()
	source := &stubAppointmentSource{}
	svc := newTestService(source, mailer)

	svc.RunOnce(context.Background())

	tomorrow := time.Now().AddDate(0, 0, 1)
	assert.Equal(t, tomorrow.Format("2006-01-02"), source.queriedDate.Format("2006-01-02"))
}

func TestRunOnceSkipsPatientWithoutEmail(t *testing.T) {
	appointment := reminderAppointment()
	appointment.Patient.Email = ""

	mailer := newFakeMailer()
	source := &stubAppointmentSource{appointments: []entity.Appointment{appointment}}
	svc := newTestService(source, mailer)

	svc.RunOnce(context.Background())

	assert.Empty(t, mailer.messages())
}

func TestRunOnceSkipsDoctorNotificationWhenPatientSendFails(t *testing.T) {
	mailer := newFakeMailer()
	mailer.failFor["sam.carter@example.com"] = errors.New("smtp unavailable")
	source := &stubAppointmentSource{appointments: []entity.Appointment{reminderAppointment()}}
	svc := newTestService(source, mailer)

	svc.RunOnce(context.Background())

	assert.Empty(t, mailer.messages())
}

func TestRunOnceSkipsDoctorWithoutEmail(t *testing.T) {
	appointment := reminderAppointment()
	appointment.Doctor.Email = ""

	mailer := newFakeMailer()
	source := &stubAppointmentSource{appointments: []entity.Appointment{appointment}}
	svc := newTestService(source, mailer)

	svc.RunOnce(context.Background())

	messages := mailer.messages()
	require.Len(t, messages, 1)
	assert.Equal(t, "sam.carter@example.com", messages[0].To)
}

func TestRunOnceContinuesAfterFailure(t *testing.T) {
	first := reminderAppointment()
	second := reminderAppointment()
	second.ID = 12
	second.Patient = entity.Patient{ID: 3, Name: "Daniel Jackson", Email: "d.jackson@example.com"}

	mailer := newFakeMailer()
	mailer.failFor["sam.carter@example.com"] = errors.New("smtp unavailable")
	source := &stubAppointmentSource{appointments: []entity.Appointment{first, second}}
	svc := newTestService(source, mailer)

	svc.RunOnce(context.Background())

	messages := mailer.messages()
	require.Len(t, messages, 2)
	assert.Equal(t, "d.jackson@example.com", messages[0].To)
	assert.Equal(t, "j.fraiser@example.com", messages[1].To)
}

func TestRunOnceDoctorNotificationFailureDoesNotAffectPatientSend(t *testing.T) {
	mailer := newFakeMailer()
	mailer.failFor["j.fraiser@example.com"] = errors.New("smtp unavailable")
	source := &stubAppointmentSource{appointments: []entity.Appointment{reminderAppointment()}}
	svc := newTestService(source, mailer)

	svc.RunOnce(context.Background())

	messages := mailer.messages()
	require.Len(t, messages, 1)
	assert.Equal(t, "sam.carter@example.com", messages[0].To)
}

func TestRunOnceAbortsWhenSourceFails(t *testing.T) {
	mailer := newFakeMailer()
	source := &stubAppointmentSource{err: errors.New("connection refused")}
	svc := newTestService(source, mailer)

	svc.RunOnce(context.Background())

	assert.Empty(t, mailer.messages())
}

func TestStartStopLifecycle(t *testing.T) {
	mailer := newFakeMailer()
	svc := newTestService(&stubAppointmentSource{}, mailer)

	require.NoError(t, svc.Start())
	assert.True(t, svc.Running())

	// starting again is a no-op
	require.NoError(t, svc.Start())
	assert.True(t, svc.Running())

	svc.Stop()
	assert.False(t, svc.Running())

	// stopping again is a no-op
	svc.Stop()
	assert.False(t, svc.Running())
}

func TestStartRejectsInvalidCronSpec(t *testing.T) {
	svc := NewReminderService(testDB(), quietLogger(), &stubAppointmentSource{}, newFakeMailer(), config.ReminderConfig{
		Cron:         "not a cron spec",
		CycleTimeout: time.Minute,
	})

	err := svc.Start()
	require.Error(t, err)
	assert.False(t, svc.Running())
}
