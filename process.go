package deciders

// Process is the reactive half of the algebra. React translates an observed
// event into follow-up commands, Resume regenerates the commands still in
// flight from the state alone.
type Process[E any, C any, S any] interface {
	React(state S, event E) []C
	Evolve(state S, event E) S
	Resume(state S) []C
	InitialState() S
	IsTerminal(state S) bool
}

// CollectFold walks events in order, collecting the reactions to each event
// before folding the event into the state. Commands come back in encounter
// order.
func CollectFold[E any, C any, S any](process Process[E, C, S], state S, events []E) (S, []C) {
	var commands []C
	for _, event := range events {
		commands = append(commands, process.React(state, event)...)
		state = process.Evolve(state, event)
	}

	return state, commands
}

func AdaptProcess[En any, Ep any, Cn any, Cp any, S any](
	process Process[Ep, Cp, S],
	events FallibleConverter[En, Ep],
	commands InfallibleConverter[Cp, Cn],
) AdaptedProcess[En, Ep, Cn, Cp, S] {
	return AdaptedProcess[En, Ep, Cn, Cp, S]{
		process:  process,
		events:   events,
		commands: commands,
	}
}

// AdaptedProcess runs a process against foreign event and command
// alphabets. Events translate fallibly on the way in, an event that does
// not concern the process is ignored outright; the process's own commands
// always translate out.
type AdaptedProcess[En any, Ep any, Cn any, Cp any, S any] struct {
	process  Process[Ep, Cp, S]
	events   FallibleConverter[En, Ep]
	commands InfallibleConverter[Cp, Cn]
}

func (a AdaptedProcess[En, Ep, Cn, Cp, S]) React(state S, event En) []Cn {
	converted, ok := a.events.Convert(event)
	if !ok {
		return nil
	}

	return a.convertAll(a.process.React(state, converted))
}

func (a AdaptedProcess[En, Ep, Cn, Cp, S]) Evolve(state S, event En) S {
	converted, ok := a.events.Convert(event)
	if !ok {
		return state
	}

	return a.process.Evolve(state, converted)
}

func (a AdaptedProcess[En, Ep, Cn, Cp, S]) Resume(state S) []Cn {
	return a.convertAll(a.process.Resume(state))
}

func (a AdaptedProcess[En, Ep, Cn, Cp, S]) InitialState() S {
	return a.process.InitialState()
}

func (a AdaptedProcess[En, Ep, Cn, Cp, S]) IsTerminal(state S) bool {
	return a.process.IsTerminal(state)
}

func (a AdaptedProcess[En, Ep, Cn, Cp, S]) convertAll(commands []Cp) []Cn {
	if len(commands) == 0 {
		return nil
	}

	converted := make([]Cn, len(commands))
	for i, command := range commands {
		converted[i] = a.commands.Convert(command)
	}

	return converted
}
