package cat

// A cat is either awake or asleep, and only ever changes its mind when it
// suits the cat.

type Command interface {
	command()
}

type WakeUp struct{}

type GetToSleep struct{}

func (WakeUp) command()     {}
func (GetToSleep) command() {}

type Event interface {
	event()
}

type WokeUp struct{}

type GotToSleep struct{}

func (WokeUp) event()     {}
func (GotToSleep) event() {}

type State string

const (
	Awake  State = "awake"
	Asleep State = "asleep"
)

type Cat struct{}

func (Cat) Decide(command Command, state State) []Event {
	switch command.(type) {
	case WakeUp:
		if state == Asleep {
			return []Event{WokeUp{}}
		}
	case GetToSleep:
		if state == Awake {
			return []Event{GotToSleep{}}
		}
	}

	return nil
}

func (Cat) Evolve(state State, event Event) State {
	switch event.(type) {
	case WokeUp:
		return Awake
	case GotToSleep:
		return Asleep
	}

	return state
}

func (Cat) InitialState() State {
	return Awake
}

func (Cat) IsTerminal(state State) bool {
	return false
}
