package deciders

func AdaptDecider[Cn any, Cd any, En any, Ed any, Sn any, Sd any](
	decider Decider[Cd, Ed, Sd, Sd],
	commands FallibleConverter[Cn, Cd],
	events FallibleConverter[En, Ed],
	emitted InfallibleConverter[Ed, En],
	states InfallibleConverter[Sn, Sd],
) AdaptedDecider[Cn, Cd, En, Ed, Sn, Sd] {
	return AdaptedDecider[Cn, Cd, En, Ed, Sn, Sd]{
		decider:  decider,
		commands: commands,
		events:   events,
		emitted:  emitted,
		states:   states,
	}
}

// AdaptedDecider runs a decider against foreign command, event and state
// types. Commands and events translate fallibly on the way in, values that
// do not concern the decider slide past without effect; the decider's own
// events always translate back out.
type AdaptedDecider[Cn any, Cd any, En any, Ed any, Sn any, Sd any] struct {
	decider  Decider[Cd, Ed, Sd, Sd]
	commands FallibleConverter[Cn, Cd]
	events   FallibleConverter[En, Ed]
	emitted  InfallibleConverter[Ed, En]
	states   InfallibleConverter[Sn, Sd]
}

func (a AdaptedDecider[Cn, Cd, En, Ed, Sn, Sd]) Decide(command Cn, state Sn) []En {
	converted, ok := a.commands.Convert(command)
	if !ok {
		return nil
	}

	events := a.decider.Decide(converted, a.states.Convert(state))
	if len(events) == 0 {
		return nil
	}

	emitted := make([]En, len(events))
	for i, event := range events {
		emitted[i] = a.emitted.Convert(event)
	}

	return emitted
}

func (a AdaptedDecider[Cn, Cd, En, Ed, Sn, Sd]) Evolve(state Sn, event En) Sd {
	converted := a.states.Convert(state)

	evt, ok := a.events.Convert(event)
	if !ok {
		return converted
	}

	return a.decider.Evolve(converted, evt)
}

func (a AdaptedDecider[Cn, Cd, En, Ed, Sn, Sd]) InitialState() Sd {
	return a.decider.InitialState()
}

func (a AdaptedDecider[Cn, Cd, En, Ed, Sn, Sd]) IsTerminal(state Sn) bool {
	return a.decider.IsTerminal(a.states.Convert(state))
}
