package service

import (
	"context"
	"sync"
	"time"

	"hospital-management-api/config"
	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/internal/mail"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AppointmentSource is the slice of the appointment repository the reminder
// cycle needs: tomorrow's appointments with their patient and doctor loaded.
type AppointmentSource interface {
	FindByDateWithRelations(db *gorm.DB, date time.Time) ([]entity.Appointment, error)
}

// ReminderService runs the daily email reminder cycle on a cron schedule.
// Each cycle loads tomorrow's appointments and sends the patient a reminder,
// then notifies the doctor when the patient send went through.
type ReminderService struct {
	db           *gorm.DB
	log          *logrus.Logger
	appointments AppointmentSource
	mailer       mail.Mailer
	cronSpec     string
	cycleTimeout time.Duration

	mu      sync.Mutex
	cron    *cron.Cron
	running bool
}

func NewReminderService(
	db *gorm.DB,
	log *logrus.Logger,
	appointments AppointmentSource,
	mailer mail.Mailer,
	cfg config.ReminderConfig,
) *ReminderService {
	return &ReminderService{
		db:           db,
		log:          log,
		appointments: appointments,
		mailer:       mailer,
		cronSpec:     cfg.Cron,
		cycleTimeout: cfg.CycleTimeout,
	}
}

// Start schedules the reminder cycle. Calling Start on a running service is
// a logged no-op.
func (s *ReminderService) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		s.log.Warn("Reminder scheduler already running")
		return nil
	}

	c := cron.New()
	_, err := c.AddFunc(s.cronSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.cycleTimeout)
		defer cancel()
		s.RunOnce(ctx)
	})
	if err != nil {
		return err
	}

	c.Start()
	s.cron = c
	s.running = true
	s.log.Infof("Reminder scheduler started with spec %q", s.cronSpec)

	return nil
}

// Stop halts the scheduler and waits for an in-flight cycle to finish.
func (s *ReminderService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()
	s.cron = nil
	s.running = false
	s.log.Info("Reminder scheduler stopped")
}

func (s *ReminderService) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// RunOnce executes a single reminder cycle for tomorrow's appointments.
// A failure on one appointment never stops the rest of the cycle. There is
// no sent marker, so re-running a cycle re-sends its reminders.
func (s *ReminderService) RunOnce(ctx context.Context) {
	tomorrow := time.Now().AddDate(0, 0, 1)

	appointments, err := s.appointments.FindByDateWithRelations(s.db.WithContext(ctx), tomorrow)
	if err != nil {
		s.log.Warnf("Failed to load appointments for reminder cycle: %+v", err)
		return
	}

	s.log.Infof("Reminder cycle started for %s with %d appointments",
		tomorrow.Format("2006-01-02"), len(appointments))

	sent := 0
	for i := range appointments {
		appointment := &appointments[i]
		if s.remind(appointment) {
			sent++
		}
	}

	s.log.Infof("Reminder cycle finished, %d reminders sent", sent)
}

// remind sends the patient reminder for one appointment and reports whether
// it went out. The doctor notification only follows a successful patient
// send, and its own failure is logged without affecting the result.
func (s *ReminderService) remind(appointment *entity.Appointment) bool {
	patient := &appointment.Patient
	doctor := &appointment.Doctor

	if !patient.HasEmail() {
		return false
	}

	body, err := mail.AppointmentReminderBody(appointment, patient, doctor)
	if err != nil {
		s.log.Warnf("Failed to render reminder for appointment %d: %+v", appointment.ID, err)
		return false
	}

	if err := s.mailer.Send(patient.Email, mail.ReminderSubject(doctor), body); err != nil {
		s.log.Warnf("Failed to send reminder for appointment %d: %+v", appointment.ID, err)
		return false
	}

	if doctor.HasEmail() {
		s.notifyDoctor(appointment, patient, doctor)
	}

	return true
}

func (s *ReminderService) notifyDoctor(appointment *entity.Appointment, patient *entity.Patient, doctor *entity.Doctor) {
	body, err := mail.DoctorNotificationBody(appointment, patient, doctor)
	if err != nil {
		s.log.Warnf("Failed to render doctor notification for appointment %d: %+v", appointment.ID, err)
		return
	}

	if err := s.mailer.Send(doctor.Email, mail.DoctorNotificationSubject(appointment, patient), body); err != nil {
		s.log.Warnf("Failed to send doctor notification for appointment %d: %+v", appointment.ID, err)
	}
}
