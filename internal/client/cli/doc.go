// Package cli provides the interactive SaludConecta terminal client.
//
// Every screen of the app is a REPL view. One event loop goroutine owns the
// application state: input lines, results of asynchronous collaborator
// calls (tasks) and timers are all delivered to it as events, so screens
// never race on the store.
//
// Typical flow: the splash screen restores the persisted session, then
// moves to the dashboard or to onboarding; login and registration run as
// tasks and sign the user in when they succeed.
//
// The loop is started via App.Run(ctx), which blocks until the user exits.
// See App, Task and StartReminderWatcher for details.
package cli
