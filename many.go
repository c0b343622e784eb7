package deciders

// Keyed tags a command or event with the key of the instance it concerns.
type Keyed[V any] struct {
	Key   string
	Value V
}

func KeyedAs[V any](key string, value V) Keyed[V] {
	return Keyed[V]{Key: key, Value: value}
}

func NewManyDecider[C any, E any, S any](decider Decider[C, E, S, S]) ManyDecider[C, E, S] {
	return ManyDecider[C, E, S]{decider: decider}
}

// ManyDecider replicates a decider across string keys. The state maps keys
// to instance states; a key without an entry reads as the initial state, so
// instances spring into being on first use. Evolve never mutates the
// incoming map, it returns an updated copy.
type ManyDecider[C any, E any, S any] struct {
	decider Decider[C, E, S, S]
}

func (m ManyDecider[C, E, S]) Decide(command Keyed[C], state map[string]S) []Keyed[E] {
	events := m.decider.Decide(command.Value, m.stateFor(state, command.Key))
	if len(events) == 0 {
		return nil
	}

	keyed := make([]Keyed[E], len(events))
	for i, event := range events {
		keyed[i] = Keyed[E]{Key: command.Key, Value: event}
	}

	return keyed
}

func (m ManyDecider[C, E, S]) Evolve(state map[string]S, event Keyed[E]) map[string]S {
	updated := make(map[string]S, len(state)+1)
	for key, value := range state {
		updated[key] = value
	}
	updated[event.Key] = m.decider.Evolve(m.stateFor(state, event.Key), event.Value)

	return updated
}

func (m ManyDecider[C, E, S]) InitialState() map[string]S {
	return map[string]S{}
}

// IsTerminal holds when every known instance is terminal; an empty map is
// vacuously terminal.
func (m ManyDecider[C, E, S]) IsTerminal(state map[string]S) bool {
	for _, value := range state {
		if !m.decider.IsTerminal(value) {
			return false
		}
	}

	return true
}

func (m ManyDecider[C, E, S]) stateFor(state map[string]S, key string) S {
	if value, ok := state[key]; ok {
		return value
	}

	return m.decider.InitialState()
}
