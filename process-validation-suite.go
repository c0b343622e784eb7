package deciders

import (
	"testing"

	"github.com/jaswdr/faker"
	"github.com/stretchr/testify/assert"
)

func NewProcessValidationSuite[E any, C any, S any](process Process[E, C, S], generate func(f faker.Faker) E) *ProcessValidationSuite[E, C, S] {
	return &ProcessValidationSuite[E, C, S]{
		process:  process,
		generate: generate,
		faker:    faker.New(),
		rounds:   23,
	}
}

// ProcessValidationSuite checks the reactive contract: a constant initial
// state, deterministic evolution, reactions collected before their event is
// folded in, and repeatable resumption.
type ProcessValidationSuite[E any, C any, S any] struct {
	process  Process[E, C, S]
	generate func(f faker.Faker) E
	faker    faker.Faker
	rounds   int
}

func (s *ProcessValidationSuite[E, C, S]) Run(t *testing.T) {
	t.Run("starts from a constant initial state", s.ConstantInitialState)
	t.Run("evolves deterministically", s.EvolvesDeterministically)
	t.Run("collects reactions in encounter order", s.CollectsInEncounterOrder)
	t.Run("resumes repeatably", s.ResumesRepeatably)
}

func (s *ProcessValidationSuite[E, C, S]) MakeEvents() []E {
	events := make([]E, s.rounds)
	for i := 0; i < s.rounds; i++ {
		events[i] = s.generate(s.faker)
	}

	return events
}

func (s *ProcessValidationSuite[E, C, S]) ConstantInitialState(t *testing.T) {
	assert.Equal(t, s.process.InitialState(), s.process.InitialState())
}

func (s *ProcessValidationSuite[E, C, S]) EvolvesDeterministically(t *testing.T) {
	state := s.process.InitialState()
	for _, event := range s.MakeEvents() {
		assert.Equal(t, s.process.Evolve(state, event), s.process.Evolve(state, event))
		state = s.process.Evolve(state, event)
	}
}

func (s *ProcessValidationSuite[E, C, S]) CollectsInEncounterOrder(t *testing.T) {
	events := s.MakeEvents()

	state := s.process.InitialState()
	for i := 0; i+1 < len(events); i += 2 {
		first := events[i]
		second := events[i+1]

		pairwise := append(s.process.React(state, first), s.process.React(s.process.Evolve(state, first), second)...)
		folded, collected := CollectFold(s.process, state, []E{first, second})

		assert.Equal(t, pairwise, collected)
		assert.Equal(t, s.process.Evolve(s.process.Evolve(state, first), second), folded)

		state = folded
	}
}

func (s *ProcessValidationSuite[E, C, S]) ResumesRepeatably(t *testing.T) {
	state := s.process.InitialState()
	for _, event := range s.MakeEvents() {
		assert.Equal(t, s.process.Resume(state), s.process.Resume(state))
		state = s.process.Evolve(state, event)
	}

	assert.Equal(t, s.process.Resume(state), s.process.Resume(state))
}
