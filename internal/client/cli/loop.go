package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dmitrijs2005/saludconecta/internal/client/models"
	"github.com/dmitrijs2005/saludconecta/internal/client/state"
)

// stopper is the part of *time.Timer the loop keeps.
type stopper interface {
	Stop() bool
}

// afterFunc is a test seam for time.AfterFunc.
var afterFunc = func(d time.Duration, f func()) stopper {
	return time.AfterFunc(d, f)
}

// Run starts the event loop and blocks until the user exits, input ends or
// ctx is cancelled.
//
// The loop goroutine is the only one that mutates the store. Input lines,
// task results and timers all arrive as events on this goroutine.
func (a *App) Run(ctx context.Context) error {
	a.start(ctx)
	defer a.stop()

	go a.input.run(a.ctx)
	if a.config.ReminderInterval > 0 {
		a.goBackground(func(ctx context.Context) {
			a.StartReminderWatcher(ctx, a.config.ReminderInterval)
		})
	}

	a.requestInput()
	for {
		select {
		case <-a.ctx.Done():
			return nil
		case ev := <-a.events:
			ev()
		case in := <-a.input.lines:
			if in.err != nil {
				if errors.Is(in.err, io.EOF) {
					return nil
				}
				return in.err
			}
			a.handleLine(in.text)
			if a.quit {
				return nil
			}
			a.requestInput()
		}
	}
}

// start prepares the loop state and kicks off session hydration and the
// startup timers. It does not read input.
func (a *App) start(ctx context.Context) {
	a.ctx, a.cancel = context.WithCancel(ctx)
	a.screenCtx, a.screenCancel = context.WithCancel(a.ctx)
	a.current = a.store.Screen()

	a.store.Subscribe(a.onChange)

	if a.notifier != nil {
		granted := a.notifier.RequestPermission(a.ctx)
		if granted && a.sessions != nil {
			enabled, err := a.sessions.NotificationsEnabled(a.ctx, true)
			if err != nil {
				a.log.Warn(a.ctx, "notification preference not loaded", "error", err)
			} else {
				a.notifier.SetEnabled(enabled)
			}
		}
	}

	a.hydrate()
	a.after(a.config.DemoNotificationDelay, func() {
		a.store.AddNotification(models.NotificationInput{
			Title:    "Cita programada",
			Message:  "Tu cita con Dr. Carlos Ruiz es mañana a las 10:00",
			Severity: models.SeverityInfo,
		})
		a.rec.RecordNotification(string(models.SeverityInfo))
	})

	a.enterScreen(a.current)
}

// stop cancels every task and timer and waits for the task goroutines.
func (a *App) stop() {
	for _, t := range a.timers {
		t.Stop()
	}
	close(a.done)
	a.cancel()
	a.tasks.Wait()
}

// post hands fn to the loop. It gives up once the loop has stopped.
func (a *App) post(fn func()) {
	select {
	case a.events <- fn:
	case <-a.done:
	}
}

// after runs fn on the loop once d has elapsed. Pending timers are kept
// until they fire so stop can cancel them.
func (a *App) after(d time.Duration, fn func()) stopper {
	a.timerSeq++
	id := a.timerSeq
	t := afterFunc(d, func() {
		a.post(func() {
			delete(a.timers, id)
			fn()
		})
	})
	a.timers[id] = t
	return t
}

// goBackground runs fn on its own goroutine with the application context.
func (a *App) goBackground(fn func(ctx context.Context)) {
	a.tasks.Add(1)
	go func() {
		defer a.tasks.Done()
		fn(a.ctx)
	}()
}

func (a *App) requestInput() {
	if f := a.form; f != nil {
		field := f.fields[f.pos]
		a.input.request(field.label, field.secret)
		return
	}
	a.input.request(a.status(), false)
}

// status is the prompt line: app, screen, user and unread badge.
func (a *App) status() string {
	var b strings.Builder
	b.WriteString(styles.prompt.Render("salud"))
	b.WriteString(" " + string(a.store.Screen()))
	if u := a.store.User(); u != nil && a.store.IsAuthenticated() {
		b.WriteString(" (" + u.Name + ")")
	}
	if badge := state.UnreadBadge(a.store.UnreadCount()); badge != "" {
		b.WriteString(" " + styles.badge.Render("🔔"+badge))
	}
	if a.toastMsg != "" {
		b.WriteString(" " + styles.toast.Render(a.toastMsg))
	}
	return b.String()
}

// handleLine routes a line to the open form, or else to the command
// dispatcher.
func (a *App) handleLine(line string) {
	if f := a.form; f != nil {
		if f.accept(line) {
			a.form = nil
			f.submit(f.values)
		}
		return
	}
	a.dispatch(line)
}

// dispatch runs a global or screen command.
func (a *App) dispatch(line string) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return
	}
	cmd, args := strings.ToLower(parts[0]), parts[1:]

	if g, ok := globalCommands[cmd]; ok {
		g.run(a, args)
		return
	}
	sc := a.screens[a.store.Screen()]
	if c, ok := sc.commands[cmd]; ok {
		c.run(a, args)
		return
	}
	a.println(fmt.Sprintf("Unknown command: %s (type 'help')", cmd))
}

// onChange observes the store. It runs on the loop goroutine because only
// the loop mutates the store.
func (a *App) onChange(c state.Change) {
	switch c {
	case state.ChangeScreen:
		next := a.store.Screen()
		if next == a.current {
			return
		}
		a.leaveScreen(a.current)
		a.current = next
		a.enterScreen(next)
	case state.ChangeSession:
		if a.store.Phase() == state.PhaseReady {
			a.maybeLeaveSplash()
		}
	}
}

func (a *App) leaveScreen(s models.Screen) {
	if sc := a.screens[s]; sc != nil && sc.leave != nil {
		sc.leave(a)
	}
	a.screenCancel()
	a.form = nil
}

func (a *App) enterScreen(s models.Screen) {
	a.screenCtx, a.screenCancel = context.WithCancel(a.ctx)
	a.view = view{}
	a.rec.RecordScreenView(string(s))

	sc := a.screens[s]
	if sc.enter != nil {
		sc.enter(a)
	}
	if a.store.Screen() == s {
		a.render()
	}
}

func (a *App) println(s string) {
	fmt.Fprintln(a.out, s)
}

// toast shows a transient message that leaves the prompt after ToastTTL.
func (a *App) toast(msg string) {
	a.toastSeq++
	seq := a.toastSeq
	a.toastMsg = msg
	a.println(styles.toast.Render(msg))
	a.after(a.config.ToastTTL, func() {
		if a.toastSeq == seq {
			a.toastMsg = ""
		}
	})
}
