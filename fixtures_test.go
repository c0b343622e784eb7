package deciders

// tally: a decider that accumulates signed amounts until it reaches a
// limit. Zero amounts and terminal states decide nothing.
type tallyCommand struct {
	Amount int
}

type tallyEvent struct {
	Amount int
}

type tally struct {
	Limit int
}

func (d tally) Decide(command tallyCommand, state int) []tallyEvent {
	if command.Amount == 0 || d.IsTerminal(state) {
		return nil
	}

	return []tallyEvent{{Amount: command.Amount}}
}

func (d tally) Evolve(state int, event tallyEvent) int {
	return state + event.Amount
}

func (d tally) InitialState() int {
	return 0
}

func (d tally) IsTerminal(state int) bool {
	return state >= d.Limit
}

// watchdog: a process that raises an investigation for every trip and
// counts the ones still outstanding.
type watchCommand struct {
	Note string
}

type watchEvent struct {
	Kind string
}

type watchdog struct{}

func (p watchdog) React(state int, event watchEvent) []watchCommand {
	if event.Kind == "trip" {
		return []watchCommand{{Note: "investigate"}}
	}

	return nil
}

func (p watchdog) Evolve(state int, event watchEvent) int {
	switch event.Kind {
	case "trip":
		return state + 1
	case "reset":
		return 0
	}

	return state
}

func (p watchdog) Resume(state int) []watchCommand {
	if state == 0 {
		return nil
	}

	commands := make([]watchCommand, state)
	for i := range commands {
		commands[i] = watchCommand{Note: "investigate"}
	}

	return commands
}

func (p watchdog) InitialState() int {
	return 0
}

func (p watchdog) IsTerminal(state int) bool {
	return state == 0
}

// damper: reacts to tally events above a threshold with a correcting
// command, so a combined feedback loop settles after one round.
type damper struct {
	Threshold int
}

func (p damper) React(state int, event tallyEvent) []tallyCommand {
	if event.Amount > p.Threshold {
		return []tallyCommand{{Amount: p.Threshold - event.Amount}}
	}

	return nil
}

func (p damper) Evolve(state int, event tallyEvent) int {
	if event.Amount > p.Threshold {
		return state + 1
	}

	return state
}

func (p damper) Resume(state int) []tallyCommand {
	return nil
}

func (p damper) InitialState() int {
	return 0
}

func (p damper) IsTerminal(state int) bool {
	return true
}
