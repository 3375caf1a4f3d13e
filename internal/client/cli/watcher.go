package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/saludconecta/internal/client/models"
)

// StartReminderWatcher checks for upcoming appointments every interval
// until ctx is done. Reminders are added to the feed on the event loop.
func (a *App) StartReminderWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkReminders(ctx)

		case <-ctx.Done():
			return
		}
	}
}

// checkReminders runs off the loop. It only reads the store.
func (a *App) checkReminders(ctx context.Context) {
	if a.reminders == nil || !a.store.IsAuthenticated() {
		return
	}
	u := a.store.User()
	if u == nil {
		return
	}

	cancel := context.CancelFunc(func() {})
	if d := a.config.ReminderTimeout; d > 0 {
		ctx, cancel = context.WithTimeout(ctx, d)
	}
	due, err := a.reminders.Due(ctx, u.ID, a.now())
	cancel()
	if err != nil {
		a.log.Warn(ctx, "reminder check failed", "error", err)
		return
	}
	if len(due) == 0 {
		return
	}

	a.post(func() {
		for _, ap := range due {
			a.store.AddNotification(models.NotificationInput{
				Title:    "Recordatorio de cita",
				Message:  fmt.Sprintf("Tu cita con %s es el %s a las %s", ap.DoctorName, ap.Date, ap.Time),
				Severity: models.SeverityWarning,
			})
			a.rec.RecordNotification(string(models.SeverityWarning))
		}
	})
}
