package core

// Event is emitted by a game to the UI boundary.
type Event interface {
	gameEvent()
}

// ScoreChanged is sent when the displayed (integer) score changes.
type ScoreChanged struct {
	Score int
}

func (ScoreChanged) gameEvent() {}

// LivesChanged is sent when the player gains or loses lives.
type LivesChanged struct {
	Lives int
}

func (LivesChanged) gameEvent() {}

// LevelChanged is sent when the difficulty level changes.
type LevelChanged struct {
	Level int
}

func (LevelChanged) gameEvent() {}

// PhaseChanged is sent on every session state transition.
type PhaseChanged struct {
	From Phase
	To   Phase
}

func (PhaseChanged) gameEvent() {}

// SessionEnded is sent once when a run ends with no lives left.
type SessionEnded struct {
	FinalScore int
	Best       int
}

func (SessionEnded) gameEvent() {}

// Listener receives game events.
type Listener interface {
	OnEvent(e Event)
}

// ListenerFunc adapts a function to the Listener interface.
type ListenerFunc func(Event)

// OnEvent calls f(e).
func (f ListenerFunc) OnEvent(e Event) {
	f(e)
}

// Dispatcher fans events out to subscribed listeners in subscription order.
// It is not safe for concurrent use; games dispatch from their update loop.
type Dispatcher struct {
	listeners []Listener
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Subscribe registers a listener for all events.
func (d *Dispatcher) Subscribe(l Listener) {
	d.listeners = append(d.listeners, l)
}

// Dispatch delivers the event to every listener.
func (d *Dispatcher) Dispatch(e Event) {
	for _, l := range d.listeners {
		l.OnEvent(e)
	}
}
