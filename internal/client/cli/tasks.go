package cli

import (
	"context"

	"github.com/dmitrijs2005/saludconecta/internal/client/state"
)

// Task is a handle on one asynchronous collaborator call.
type Task struct {
	Ticket state.Ticket
	cancel context.CancelFunc
	done   chan struct{}
}

// Cancel abandons the task. Its result, if any, is dropped.
func (t *Task) Cancel() { t.cancel() }

// Done is closed once the work function has returned.
func (t *Task) Done() <-chan struct{} { return t.done }

// work runs off the loop. It must not touch the store; it returns the
// closure that applies its result on the loop, or nil.
type work func(ctx context.Context, t state.Ticket) (apply func())

// spawn runs w for the current screen: leaving the screen cancels it.
func (a *App) spawn(kind state.RequestKind, w work) *Task {
	return a.spawnIn(a.screenCtx, kind, w)
}

// spawnIn runs w under parent and posts its result back to the loop. The
// result is dropped when the task was cancelled or its screen was left.
// Tasks with a kind are also dropped once a newer request of that kind has
// been issued; an empty kind lets every result apply.
func (a *App) spawnIn(parent context.Context, kind state.RequestKind, w work) *Task {
	var ticket state.Ticket
	if kind != "" {
		ticket = a.store.Begin(kind)
	}
	ctx, cancel := context.WithCancel(parent)
	task := &Task{Ticket: ticket, cancel: cancel, done: make(chan struct{})}

	a.tasks.Add(1)
	go func() {
		defer a.tasks.Done()
		apply := w(ctx, ticket)
		close(task.done)
		if apply == nil {
			cancel()
			return
		}
		a.post(func() {
			defer cancel()
			if ctx.Err() != nil {
				a.log.Debug(a.ctx, "task result dropped", "ticket", ticket.String(), "reason", ctx.Err())
				return
			}
			if kind != "" && !a.store.Current(ticket) {
				a.log.Debug(a.ctx, "task result dropped", "ticket", ticket.String(), "reason", "stale")
				return
			}
			apply()
		})
	}()
	return task
}
