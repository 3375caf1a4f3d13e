package client

import (
	"context"
	"time"
)

// Latency scales the fixed delays of the mock collaborators. A value of
// one second reproduces the delays as written; zero disables them.
type Latency time.Duration

func (l Latency) scale(base time.Duration) time.Duration {
	return time.Duration(int64(base) * int64(l) / int64(time.Second))
}

// wait sleeps for the scaled base delay or until ctx is done.
func (l Latency) wait(ctx context.Context, base time.Duration) error {
	d := l.scale(base)
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
