package deciders

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
)

const tracerName = "deciders"

type RunnerOption[S any] func(*runnerSettings[S])

type runnerSettings[S any] struct {
	initial *S
}

// WithInitialState seeds the runner with a previously derived state instead
// of the decider's initial state.
func WithInitialState[S any](state S) RunnerOption[S] {
	return func(settings *runnerSettings[S]) {
		settings.initial = &state
	}
}

func NewInMemoryRunner[C any, E any, S any](decider Decider[C, E, S, S], options ...RunnerOption[S]) *InMemoryRunner[C, E, S] {
	settings := runnerSettings[S]{}
	for _, option := range options {
		option(&settings)
	}

	state := decider.InitialState()
	if settings.initial != nil {
		state = *settings.initial
	}

	return &InMemoryRunner[C, E, S]{decider: decider, state: state}
}

// InMemoryRunner drives a single decider, holding the only mutable state in
// the package. Submit decides against the held state, folds the produced
// events back in and returns them. Not safe for concurrent use; callers own
// the single goroutine it runs on.
type InMemoryRunner[C any, E any, S any] struct {
	decider Decider[C, E, S, S]
	state   S
}

func (r *InMemoryRunner[C, E, S]) Submit(ctx context.Context, command C) []E {
	_, span := otel.Tracer(tracerName).Start(ctx, fmt.Sprintf("submit %s", NameOf(command)))
	defer span.End()

	events := r.decider.Decide(command, r.state)
	for _, event := range events {
		r.state = r.decider.Evolve(r.state, event)
	}

	return events
}

func (r *InMemoryRunner[C, E, S]) State() S {
	return r.state
}
