package bulb

// A bulb survives a fixed number of switch-ons. Commands that make no
// sense for the current state decide nothing; only refitting a fitted bulb
// is answered, with a FitRejected event.

type Command interface {
	command()
}

type Fit struct {
	MaxUses int `json:"max_uses"`
}

type SwitchOn struct{}

type SwitchOff struct{}

func (Fit) command()       {}
func (SwitchOn) command()  {}
func (SwitchOff) command() {}

type Event interface {
	event()
}

type Fitted struct {
	MaxUses int `json:"max_uses"`
}

type SwitchedOn struct{}

type SwitchedOff struct{}

type Blew struct{}

type FitRejected struct {
	Reason string `json:"reason"`
}

func (Fitted) event()      {}
func (SwitchedOn) event()  {}
func (SwitchedOff) event() {}
func (Blew) event()        {}
func (FitRejected) event() {}

type Phase string

const (
	NotFitted Phase = "not-fitted"
	Working   Phase = "working"
	Blown     Phase = "blown"
)

type Status string

const (
	On  Status = "on"
	Off Status = "off"
)

type State struct {
	Phase     Phase  `json:"phase"`
	Status    Status `json:"status,omitempty"`
	Remaining int    `json:"remaining,omitempty"`
}

type Bulb struct{}

func (Bulb) Decide(command Command, state State) []Event {
	switch cmd := command.(type) {
	case Fit:
		if state.Phase != NotFitted {
			return []Event{FitRejected{Reason: "bulb already fitted"}}
		}

		return []Event{Fitted{MaxUses: cmd.MaxUses}}
	case SwitchOn:
		if state.Phase == Working && state.Status == Off {
			if state.Remaining > 0 {
				return []Event{SwitchedOn{}}
			}

			return []Event{Blew{}}
		}
	case SwitchOff:
		if state.Phase == Working && state.Status == On {
			return []Event{SwitchedOff{}}
		}
	}

	return nil
}

func (Bulb) Evolve(state State, event Event) State {
	switch evt := event.(type) {
	case Fitted:
		if state.Phase == NotFitted {
			return State{Phase: Working, Status: Off, Remaining: evt.MaxUses}
		}
	case SwitchedOn:
		if state.Phase == Working {
			return State{Phase: Working, Status: On, Remaining: state.Remaining - 1}
		}
	case SwitchedOff:
		if state.Phase == Working {
			return State{Phase: Working, Status: Off, Remaining: state.Remaining}
		}
	case Blew:
		if state.Phase == Working {
			return State{Phase: Blown}
		}
	}

	return state
}

func (Bulb) InitialState() State {
	return State{Phase: NotFitted}
}

func (Bulb) IsTerminal(state State) bool {
	return state.Phase == Blown
}
