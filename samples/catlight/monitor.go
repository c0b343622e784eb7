package catlight

// Monitor wakes the cat whenever the light comes on, and keeps asking
// until the cat actually wakes.

type Event interface {
	event()
}

type SwitchedOn struct{}

type WokeUp struct{}

func (SwitchedOn) event() {}
func (WokeUp) event()     {}

type Command interface {
	command()
}

type WakeUp struct{}

func (WakeUp) command() {}

type State string

const (
	Idle     State = "idle"
	WakingUp State = "waking-up"
)

type Monitor struct{}

func (Monitor) React(state State, event Event) []Command {
	if _, ok := event.(SwitchedOn); ok && state == Idle {
		return []Command{WakeUp{}}
	}

	return nil
}

func (Monitor) Evolve(state State, event Event) State {
	switch event.(type) {
	case SwitchedOn:
		return WakingUp
	case WokeUp:
		return Idle
	}

	return state
}

func (Monitor) Resume(state State) []Command {
	if state == WakingUp {
		return []Command{WakeUp{}}
	}

	return nil
}

func (Monitor) InitialState() State {
	return Idle
}

func (Monitor) IsTerminal(state State) bool {
	return state == Idle
}
