package deciders

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ledger: a wider alphabet in which only the cash account concerns the
// tally decider.
type ledgerCommand struct {
	Account string
	Amount  int
}

type ledgerEvent struct {
	Account string
	Amount  int
}

type ledgerState struct {
	Balance int
}

func cashCommands(command ledgerCommand) (tallyCommand, bool) {
	if command.Account != "cash" {
		return tallyCommand{}, false
	}

	return tallyCommand{Amount: command.Amount}, true
}

func cashEvents(event ledgerEvent) (tallyEvent, bool) {
	if event.Account != "cash" {
		return tallyEvent{}, false
	}

	return tallyEvent{Amount: event.Amount}, true
}

func emittedCashEvents(event tallyEvent) ledgerEvent {
	return ledgerEvent{Account: "cash", Amount: event.Amount}
}

func ledgerBalance(state ledgerState) int {
	return state.Balance
}

func adaptedLedger() AdaptedDecider[ledgerCommand, tallyCommand, ledgerEvent, tallyEvent, ledgerState, int] {
	return AdaptDecider[ledgerCommand, tallyCommand, ledgerEvent, tallyEvent, ledgerState, int](
		tally{Limit: 10},
		FallibleConverterFunction[ledgerCommand, tallyCommand](cashCommands),
		FallibleConverterFunction[ledgerEvent, tallyEvent](cashEvents),
		InfallibleConverterFunction[tallyEvent, ledgerEvent](emittedCashEvents),
		InfallibleConverterFunction[ledgerState, int](ledgerBalance),
	)
}

func TestAdaptedDecideTranslatesBothWays(t *testing.T) {
	adapted := adaptedLedger()

	events := adapted.Decide(ledgerCommand{Account: "cash", Amount: 3}, ledgerState{Balance: 2})

	assert.Equal(t, []ledgerEvent{{Account: "cash", Amount: 3}}, events)
}

func TestCommandsThatDoNotConvertDecideNothing(t *testing.T) {
	adapted := adaptedLedger()

	events := adapted.Decide(ledgerCommand{Account: "bonds", Amount: 3}, ledgerState{Balance: 2})

	assert.Empty(t, events)
}

func TestEventsThatDoNotConvertLeaveTheStateAsConverted(t *testing.T) {
	adapted := adaptedLedger()

	evolved := adapted.Evolve(ledgerState{Balance: 2}, ledgerEvent{Account: "bonds", Amount: 9})

	assert.Equal(t, 2, evolved)
}

func TestEventsThatConvertEvolveTheInnerDecider(t *testing.T) {
	adapted := adaptedLedger()

	evolved := adapted.Evolve(ledgerState{Balance: 2}, ledgerEvent{Account: "cash", Amount: 9})

	assert.Equal(t, 11, evolved)
}

func TestAdaptedInitialStateIsTheInnerInitialState(t *testing.T) {
	adapted := adaptedLedger()

	assert.Equal(t, 0, adapted.InitialState())
}

func TestAdaptedTerminalityReadsThroughTheStateConverter(t *testing.T) {
	adapted := adaptedLedger()

	assert.False(t, adapted.IsTerminal(ledgerState{Balance: 9}))
	assert.True(t, adapted.IsTerminal(ledgerState{Balance: 10}))
}
