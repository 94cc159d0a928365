package reminders

import (
	"context"
	"salon-service/internal/app/contracts"
	"salon-service/internal/app/models"
	"salon-service/internal/pkg/constvars"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	tickTimeout   = 30 * time.Second
	dispatchLease = 25 * time.Second
)

// Worker periodically scans for appointments with due unsent reminders and
// dispatches them. A redis lease keeps concurrent instances from double
// sending.
type Worker struct {
	AppointmentRepository contracts.AppointmentRepository
	NotificationService   contracts.NotificationService
	LockerService         contracts.LockerService
	Log                   *zap.Logger

	cron *cron.Cron
}

func NewWorker(
	appointmentRepository contracts.AppointmentRepository,
	notificationService contracts.NotificationService,
	lockerService contracts.LockerService,
	logger *zap.Logger,
) *Worker {
	return &Worker{
		AppointmentRepository: appointmentRepository,
		NotificationService:   notificationService,
		LockerService:         lockerService,
		Log:                   logger,
	}
}

// Start schedules the dispatch tick with the given cron spec and returns a
// stop function that waits for an in-flight tick to finish.
func (w *Worker) Start(cronSpec string) (func(), error) {
	w.cron = cron.New()
	_, err := w.cron.AddFunc(cronSpec, w.tick)
	if err != nil {
		return nil, err
	}
	w.cron.Start()
	w.Log.Info("reminder worker started", zap.String("cron_spec", cronSpec))

	return func() {
		<-w.cron.Stop().Done()
		w.Log.Info("reminder worker stopped")
	}, nil
}

func (w *Worker) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), tickTimeout)
	defer cancel()

	acquired, lockValue, err := w.LockerService.TryLock(ctx, constvars.ReminderDispatchLockKey, dispatchLease)
	if err != nil {
		w.Log.Error("reminders.Worker.tick failed to acquire dispatch lease", zap.Error(err))
		return
	}
	if !acquired {
		return
	}
	defer func() {
		if err := w.LockerService.Unlock(ctx, constvars.ReminderDispatchLockKey, lockValue); err != nil {
			w.Log.Error("reminders.Worker.tick failed to release dispatch lease", zap.Error(err))
		}
	}()

	now := time.Now()
	appointments, err := w.AppointmentRepository.FindWithDueReminders(ctx, now)
	if err != nil {
		w.Log.Error("reminders.Worker.tick failed to load due reminders", zap.Error(err))
		return
	}

	for i := range appointments {
		w.dispatchDue(ctx, &appointments[i], now)
	}
}

// dispatchDue sends every due unsent reminder of one appointment and persists
// the sent flags. Reminders stay unsent on dispatch setup errors and will be
// retried on the next tick.
func (w *Worker) dispatchDue(ctx context.Context, appointment *models.Appointment, now time.Time) {
	var dispatched bool
	for i := range appointment.Reminders {
		reminder := &appointment.Reminders[i]
		if reminder.Sent || reminder.ScheduledFor.After(now) {
			continue
		}

		w.NotificationService.Dispatch(ctx, constvars.NotificationTypeReminder, appointment, []string{string(reminder.Channel)})
		reminder.Sent = true
		dispatched = true

		w.Log.Info("reminders.Worker dispatched reminder",
			zap.String(constvars.LoggingAppointmentIDKey, appointment.ID.Hex()),
			zap.String(constvars.LoggingNotificationTypeKey, string(reminder.Channel)),
			zap.Time("scheduled_for", reminder.ScheduledFor),
		)
	}

	if !dispatched {
		return
	}
	if err := w.AppointmentRepository.UpdateAppointment(ctx, appointment); err != nil {
		w.Log.Error("reminders.Worker failed to persist sent reminders",
			zap.String(constvars.LoggingAppointmentIDKey, appointment.ID.Hex()),
			zap.Error(err),
		)
	}
}
