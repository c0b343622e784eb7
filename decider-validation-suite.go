package deciders

import (
	"context"
	"testing"

	"github.com/jaswdr/faker"
	"github.com/stretchr/testify/assert"
)

func NewDeciderValidationSuite[C any, E any, S any](decider Decider[C, E, S, S], generate func(f faker.Faker) C) *DeciderValidationSuite[C, E, S] {
	return &DeciderValidationSuite[C, E, S]{
		decider:  decider,
		generate: generate,
		faker:    faker.New(),
		rounds:   23,
	}
}

// DeciderValidationSuite checks the contract every decider owes its
// callers: a constant initial state, repeatable decisions, deterministic
// replay and agreement between the runner and a manual fold. Concrete
// deciders register the suite from their own tests with a command
// generator.
type DeciderValidationSuite[C any, E any, S any] struct {
	decider  Decider[C, E, S, S]
	generate func(f faker.Faker) C
	faker    faker.Faker
	rounds   int
}

func (s *DeciderValidationSuite[C, E, S]) Run(t *testing.T) {
	t.Run("starts from a constant initial state", s.ConstantInitialState)
	t.Run("decides repeatably", s.DecidesRepeatably)
	t.Run("replays deterministically", s.ReplaysDeterministically)
	t.Run("agrees with a manual fold through the runner", s.RunnerAgreesWithManualFold)
}

func (s *DeciderValidationSuite[C, E, S]) MakeCommands() []C {
	commands := make([]C, s.rounds)
	for i := 0; i < s.rounds; i++ {
		commands[i] = s.generate(s.faker)
	}

	return commands
}

func (s *DeciderValidationSuite[C, E, S]) ConstantInitialState(t *testing.T) {
	assert.Equal(t, s.decider.InitialState(), s.decider.InitialState())
}

func (s *DeciderValidationSuite[C, E, S]) DecidesRepeatably(t *testing.T) {
	state := s.decider.InitialState()
	for _, command := range s.MakeCommands() {
		first := s.decider.Decide(command, state)
		second := s.decider.Decide(command, state)
		assert.Equal(t, first, second)

		for _, event := range first {
			state = s.decider.Evolve(state, event)
		}
	}
}

func (s *DeciderValidationSuite[C, E, S]) ReplaysDeterministically(t *testing.T) {
	state := s.decider.InitialState()

	var history []E
	for _, command := range s.MakeCommands() {
		events := s.decider.Decide(command, state)
		for _, event := range events {
			state = s.decider.Evolve(state, event)
		}
		history = append(history, events...)
	}

	assert.Equal(t, state, Replay(s.decider, history))
	assert.Equal(t, Replay(s.decider, history), Replay(s.decider, history))
}

func (s *DeciderValidationSuite[C, E, S]) RunnerAgreesWithManualFold(t *testing.T) {
	ctx := context.TODO()

	runner := NewInMemoryRunner(s.decider)
	state := s.decider.InitialState()
	for _, command := range s.MakeCommands() {
		expected := s.decider.Decide(command, state)
		for _, event := range expected {
			state = s.decider.Evolve(state, event)
		}

		assert.Equal(t, expected, runner.Submit(ctx, command))
	}

	assert.Equal(t, state, runner.State())
}
