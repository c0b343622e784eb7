package deciders

func ApplyDecider[C any, E any, Sd any, So any, Si any](
	function Decider[C, E, func(Sd) So, Si],
	argument Decider[C, E, Sd, Si],
) AppliedDecider[C, E, Sd, So, Si] {
	return AppliedDecider[C, E, Sd, So, Si]{function: function, argument: argument}
}

// AppliedDecider evolves a state-to-state function alongside its argument
// and applies one to the other.
type AppliedDecider[C any, E any, Sd any, So any, Si any] struct {
	function Decider[C, E, func(Sd) So, Si]
	argument Decider[C, E, Sd, Si]
}

func (a AppliedDecider[C, E, Sd, So, Si]) Decide(command C, state Si) []E {
	return append(a.function.Decide(command, state), a.argument.Decide(command, state)...)
}

func (a AppliedDecider[C, E, Sd, So, Si]) Evolve(state Si, event E) So {
	return a.function.Evolve(state, event)(a.argument.Evolve(state, event))
}

func (a AppliedDecider[C, E, Sd, So, Si]) InitialState() So {
	return a.function.InitialState()(a.argument.InitialState())
}

func (a AppliedDecider[C, E, Sd, So, Si]) IsTerminal(state Si) bool {
	return a.function.IsTerminal(state) && a.argument.IsTerminal(state)
}
