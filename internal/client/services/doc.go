// Package services contains the application services of the SaludConecta
// client. Services compose collaborators with local persistence; they never
// write to the application state, which stays the job of the screens.
package services

import (
	"time"

	"github.com/dmitrijs2005/saludconecta/internal/metrics"
)

// observe is deferred with a pointer to the named error result so the
// recorded outcome is the one actually returned.
func observe(rec metrics.Recorder, op string, start time.Time, err *error) {
	rec.ObserveRequest(op, time.Since(start), *err)
}
