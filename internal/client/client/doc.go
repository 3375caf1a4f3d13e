// Package client contains the external collaborators of the SaludConecta
// client.
//
// # Overview
//
// The package provides:
//  1. Transport-agnostic contracts for every collaborator the application
//     talks to: AuthClient, DirectoryClient, AppointmentClient,
//     MessagingClient, ResourceClient, Notifier, VideoClient and
//     StorageClient.
//  2. Mock implementations (MockAuth, MockDirectory, MockAppointments,
//     MockMessaging, MockResources, MockVideo) that answer from fixtures
//     after a fixed, configurable delay.
//  3. Real adapters where the terminal offers one: TerminalNotifier for
//     local notifications and S3Storage for avatar uploads.
//  4. Local persistence bootstrap utilities (InitDatabase, RunMigrations)
//     wiring an SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match
// with errors.Is: ErrInvalidCredentials, ErrUnavailable, ErrNotFound,
// ErrPermissionDenied, ErrAccountExists.
//
// Concurrency & Contexts
//
// Implementations are safe for concurrent use. All blocking operations
// accept context.Context and return ctx.Err() when it is cancelled before
// the call settles.
package client
