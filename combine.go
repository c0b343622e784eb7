package deciders

func CombineProcessDecider[C any, E any, Sp any, Sd any](
	process Process[E, C, Sp],
	decider Decider[C, E, Sd, Sd],
) CombinedProcessDecider[C, E, Sp, Sd] {
	return CombinedProcessDecider[C, E, Sp, Sd]{process: process, decider: decider}
}

// CombinedProcessDecider closes the loop between a decider and a process
// that watches its events. Decide runs the feedback to a fixed point:
// events from each command are offered to the process, and the commands it
// raises join the back of the queue. Nothing here guards against a pairing
// whose feedback never settles; that contract belongs to the composition
// author.
type CombinedProcessDecider[C any, E any, Sp any, Sd any] struct {
	process Process[E, C, Sp]
	decider Decider[C, E, Sd, Sd]
}

func (c CombinedProcessDecider[C, E, Sp, Sd]) Decide(command C, state Pair[Sp, Sd]) []E {
	processState := state.First
	deciderState := state.Second

	var produced []E
	pending := []C{command}
	for len(pending) > 0 {
		next := pending[0]
		pending = pending[1:]

		events := c.decider.Decide(next, deciderState)
		for _, event := range events {
			deciderState = c.decider.Evolve(deciderState, event)
		}
		produced = append(produced, events...)

		var raised []C
		processState, raised = CollectFold(c.process, processState, events)
		pending = append(pending, raised...)
	}

	return produced
}

func (c CombinedProcessDecider[C, E, Sp, Sd]) Evolve(state Pair[Sp, Sd], event E) Pair[Sp, Sd] {
	return PairOf(c.process.Evolve(state.First, event), c.decider.Evolve(state.Second, event))
}

func (c CombinedProcessDecider[C, E, Sp, Sd]) InitialState() Pair[Sp, Sd] {
	return PairOf(c.process.InitialState(), c.decider.InitialState())
}

func (c CombinedProcessDecider[C, E, Sp, Sd]) IsTerminal(state Pair[Sp, Sd]) bool {
	return c.process.IsTerminal(state.First) && c.decider.IsTerminal(state.Second)
}
