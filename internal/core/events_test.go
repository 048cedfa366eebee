package core

import "testing"

func TestDispatcherOrder(t *testing.T) {
	d := NewDispatcher()

	var got []string
	d.Subscribe(ListenerFunc(func(e Event) {
		if sc, ok := e.(ScoreChanged); ok && sc.Score == 7 {
			got = append(got, "first")
		}
	}))
	d.Subscribe(ListenerFunc(func(Event) {
		got = append(got, "second")
	}))

	d.Dispatch(ScoreChanged{Score: 7})

	if len(got) != 2 || got[0] != "first" || got[1] != "second" {
		t.Errorf("listeners called as %v, expected [first second]", got)
	}
}

func TestDispatcherWithoutListeners(t *testing.T) {
	d := NewDispatcher()
	d.Dispatch(LivesChanged{Lives: 1}) // must not panic
}

func TestPhaseString(t *testing.T) {
	if PhaseMenu.String() != "menu" || PhasePlaying.String() != "playing" || PhaseGameOver.String() != "game over" {
		t.Error("unexpected phase names")
	}
}
