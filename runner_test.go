package deciders

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunnerStartsFromTheInitialState(t *testing.T) {
	runner := NewInMemoryRunner[tallyCommand, tallyEvent, int](tally{Limit: 10})

	assert.Equal(t, 0, runner.State())
}

func TestRunnerCanBeSeededWithAState(t *testing.T) {
	runner := NewInMemoryRunner[tallyCommand, tallyEvent, int](tally{Limit: 10}, WithInitialState(7))

	assert.Equal(t, 7, runner.State())
}

func TestSubmitReturnsTheEventsAndFoldsThemIn(t *testing.T) {
	ctx := context.TODO()
	runner := NewInMemoryRunner[tallyCommand, tallyEvent, int](tally{Limit: 10})

	events := runner.Submit(ctx, tallyCommand{Amount: 4})

	assert.Equal(t, []tallyEvent{{Amount: 4}}, events)
	assert.Equal(t, 4, runner.State())
}

func TestSubmitOfARejectedCommandLeavesTheStateAlone(t *testing.T) {
	ctx := context.TODO()
	runner := NewInMemoryRunner[tallyCommand, tallyEvent, int](tally{Limit: 10}, WithInitialState(10))

	events := runner.Submit(ctx, tallyCommand{Amount: 4})

	assert.Empty(t, events)
	assert.Equal(t, 10, runner.State())
}

func TestRunnerMatchesAManualFold(t *testing.T) {
	ctx := context.TODO()
	decider := tally{Limit: 10}
	commands := []tallyCommand{{Amount: 3}, {Amount: 0}, {Amount: 5}, {Amount: 4}, {Amount: 1}}

	runner := NewInMemoryRunner[tallyCommand, tallyEvent, int](decider)
	state := decider.InitialState()
	for _, command := range commands {
		for _, event := range decider.Decide(command, state) {
			state = decider.Evolve(state, event)
		}
		runner.Submit(ctx, command)
	}

	assert.Equal(t, state, runner.State())
}
