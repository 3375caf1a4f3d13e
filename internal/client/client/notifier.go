package client

import (
	"context"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/dmitrijs2005/saludconecta/internal/logging"
	"golang.org/x/time/rate"
)

// TerminalNotifier prints local notifications as a bell line on the
// terminal. Delivery needs both the user's setting and a granted
// permission, and is throttled so a burst of feed entries cannot flood the
// screen.
type TerminalNotifier struct {
	mu      sync.Mutex
	out     io.Writer
	limiter *rate.Limiter
	log     logging.Logger

	enabled atomic.Bool
	granted atomic.Bool
}

// NewTerminalNotifier builds a notifier writing to out. perSecond <= 0
// disables throttling.
func NewTerminalNotifier(out io.Writer, enabled bool, perSecond float64, log logging.Logger) *TerminalNotifier {
	limit := rate.Inf
	if perSecond > 0 {
		limit = rate.Limit(perSecond)
	}
	n := &TerminalNotifier{
		out:     out,
		limiter: rate.NewLimiter(limit, 3),
		log:     log,
	}
	n.enabled.Store(enabled)
	return n
}

// RequestPermission grants delivery when notifications are enabled in the
// configuration. A terminal has nobody else to ask.
func (n *TerminalNotifier) RequestPermission(ctx context.Context) bool {
	ok := n.enabled.Load()
	n.granted.Store(ok)
	if !ok {
		n.log.Info(ctx, "local notifications disabled")
	}
	return ok
}

// SetEnabled toggles delivery from the settings screen.
func (n *TerminalNotifier) SetEnabled(v bool) {
	n.enabled.Store(v)
	if v {
		n.granted.Store(true)
	}
}

func (n *TerminalNotifier) Enabled() bool {
	return n.enabled.Load() && n.granted.Load()
}

func (n *TerminalNotifier) SendLocalNotification(ctx context.Context, title, body string) {
	if !n.Enabled() {
		return
	}
	if !n.limiter.Allow() {
		n.log.Debug(ctx, "local notification throttled", "title", title)
		return
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	if _, err := fmt.Fprintf(n.out, "\a🔔 %s: %s\n", title, body); err != nil {
		n.log.Warn(ctx, "local notification failed", "error", err)
	}
}
