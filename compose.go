package deciders

func ComposeDeciders[C1 any, C2 any, E1 any, E2 any, S1 any, S2 any](
	first Decider[C1, E1, S1, S1],
	second Decider[C2, E2, S2, S2],
) ComposedDeciders[C1, C2, E1, E2, S1, S2] {
	return ComposedDeciders[C1, C2, E1, E2, S1, S2]{first: first, second: second}
}

// ComposedDeciders runs two deciders side by side. Commands and events are
// tagged Left for the first decider and Right for the second; the state is
// the pair of both states and an event for one side never touches the
// other.
type ComposedDeciders[C1 any, C2 any, E1 any, E2 any, S1 any, S2 any] struct {
	first  Decider[C1, E1, S1, S1]
	second Decider[C2, E2, S2, S2]
}

func (c ComposedDeciders[C1, C2, E1, E2, S1, S2]) Decide(command Either[C1, C2], state Pair[S1, S2]) []Either[E1, E2] {
	if cmd, ok := command.Left(); ok {
		return wrapLeft[E1, E2](c.first.Decide(cmd, state.First))
	}

	cmd, _ := command.Right()
	return wrapRight[E1, E2](c.second.Decide(cmd, state.Second))
}

func (c ComposedDeciders[C1, C2, E1, E2, S1, S2]) Evolve(state Pair[S1, S2], event Either[E1, E2]) Pair[S1, S2] {
	if evt, ok := event.Left(); ok {
		return PairOf(c.first.Evolve(state.First, evt), state.Second)
	}

	evt, _ := event.Right()
	return PairOf(state.First, c.second.Evolve(state.Second, evt))
}

func (c ComposedDeciders[C1, C2, E1, E2, S1, S2]) InitialState() Pair[S1, S2] {
	return PairOf(c.first.InitialState(), c.second.InitialState())
}

func (c ComposedDeciders[C1, C2, E1, E2, S1, S2]) IsTerminal(state Pair[S1, S2]) bool {
	return c.first.IsTerminal(state.First) && c.second.IsTerminal(state.Second)
}

func wrapLeft[L any, R any](values []L) []Either[L, R] {
	if len(values) == 0 {
		return nil
	}

	wrapped := make([]Either[L, R], len(values))
	for i, value := range values {
		wrapped[i] = Left[L, R](value)
	}

	return wrapped
}

func wrapRight[L any, R any](values []R) []Either[L, R] {
	if len(values) == 0 {
		return nil
	}

	wrapped := make([]Either[L, R], len(values))
	for i, value := range values {
		wrapped[i] = Right[L, R](value)
	}

	return wrapped
}
