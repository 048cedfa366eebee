package core

// Severity tags a user-visible notice.
type Severity int

const (
	SeverityInfo Severity = iota
	SeveritySuccess
	SeverityError
)

// String returns the severity name.
func (s Severity) String() string {
	switch s {
	case SeveritySuccess:
		return "success"
	case SeverityError:
		return "error"
	default:
		return "info"
	}
}

// Notice is a fire-and-forget message for the player.
type Notice struct {
	Severity Severity
	Title    string
	Message  string
}

// Notifier displays notices. Implementations must not block.
type Notifier interface {
	Notify(n Notice)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(Notice)

// Notify calls f(n).
func (f NotifierFunc) Notify(n Notice) {
	f(n)
}

// Discard is a Notifier that drops every notice.
var Discard Notifier = NotifierFunc(func(Notice) {})
