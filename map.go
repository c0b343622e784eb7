package deciders

func MapDecider[C any, E any, Sn any, Sd any, Si any](
	decider Decider[C, E, Sd, Si],
	convert InfallibleConverter[Sd, Sn],
) MappedDecider[C, E, Sn, Sd, Si] {
	return MappedDecider[C, E, Sn, Sd, Si]{decider: decider, convert: convert}
}

// MappedDecider projects the evolved state through a converter. Decide
// still sees the original input state; only the output side changes shape.
type MappedDecider[C any, E any, Sn any, Sd any, Si any] struct {
	decider Decider[C, E, Sd, Si]
	convert InfallibleConverter[Sd, Sn]
}

func (m MappedDecider[C, E, Sn, Sd, Si]) Decide(command C, state Si) []E {
	return m.decider.Decide(command, state)
}

func (m MappedDecider[C, E, Sn, Sd, Si]) Evolve(state Si, event E) Sn {
	return m.convert.Convert(m.decider.Evolve(state, event))
}

func (m MappedDecider[C, E, Sn, Sd, Si]) InitialState() Sn {
	return m.convert.Convert(m.decider.InitialState())
}

func (m MappedDecider[C, E, Sn, Sd, Si]) IsTerminal(state Si) bool {
	return m.decider.IsTerminal(state)
}

func Map2[C any, E any, S1 any, S2 any, So any, Si any](
	first Decider[C, E, S1, Si],
	second Decider[C, E, S2, Si],
	combine func(first S1, second S2) So,
) Map2Deciders[C, E, S1, S2, So, Si] {
	return Map2Deciders[C, E, S1, S2, So, Si]{first: first, second: second, combine: combine}
}

// Map2Deciders runs two deciders over the same commands, events and input
// state, combining their evolved states into one. Decide concatenates the
// first decider's events with the second's.
type Map2Deciders[C any, E any, S1 any, S2 any, So any, Si any] struct {
	first   Decider[C, E, S1, Si]
	second  Decider[C, E, S2, Si]
	combine func(first S1, second S2) So
}

func (m Map2Deciders[C, E, S1, S2, So, Si]) Decide(command C, state Si) []E {
	return append(m.first.Decide(command, state), m.second.Decide(command, state)...)
}

func (m Map2Deciders[C, E, S1, S2, So, Si]) Evolve(state Si, event E) So {
	return m.combine(m.first.Evolve(state, event), m.second.Evolve(state, event))
}

func (m Map2Deciders[C, E, S1, S2, So, Si]) InitialState() So {
	return m.combine(m.first.InitialState(), m.second.InitialState())
}

func (m Map2Deciders[C, E, S1, S2, So, Si]) IsTerminal(state Si) bool {
	return m.first.IsTerminal(state) && m.second.IsTerminal(state)
}
