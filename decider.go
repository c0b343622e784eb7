package deciders

// Decider is a stateless transition system. Decide translates a command and
// the current state into an ordered list of events; an empty list is a
// legal outcome, not a failure. Evolve folds a single event into the state
// and must be total, events it does not recognise leave the state as it
// was.
//
// Implementations carry immutable configuration at most, never accumulated
// state. The output and input state types are split so that state-shaping
// combinators stay inside the contract; plain deciders use the symmetric
// form Decider[C, E, S, S].
type Decider[C any, E any, So any, Si any] interface {
	Decide(command C, state Si) []E
	Evolve(state Si, event E) So
	InitialState() So
	IsTerminal(state Si) bool
}

// Replay derives the current state by folding Evolve over the event history
// from the initial state. Same events, same state.
func Replay[C any, E any, S any](decider Decider[C, E, S, S], events []E) S {
	state := decider.InitialState()
	for _, event := range events {
		state = decider.Evolve(state, event)
	}

	return state
}
