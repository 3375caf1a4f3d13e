package state

// Change names the facet touched by a mutation.
type Change int

const (
	ChangeScreen Change = iota + 1
	ChangeSession
	ChangeNotifications
	ChangeCall
)

func (c Change) String() string {
	switch c {
	case ChangeScreen:
		return "screen"
	case ChangeSession:
		return "session"
	case ChangeNotifications:
		return "notifications"
	case ChangeCall:
		return "call"
	default:
		return "unknown"
	}
}
