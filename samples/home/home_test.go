package home

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	deciders "github.com/weegigs/wee-deciders-go"
	"github.com/weegigs/wee-deciders-go/samples/bulb"
	"github.com/weegigs/wee-deciders-go/samples/cat"
	"github.com/weegigs/wee-deciders-go/samples/catlight"
)

func TestHomeStartsIdleAwakeAndUnfitted(t *testing.T) {
	state := NewHome().InitialState()

	assert.Equal(t, catlight.Idle, state.First)
	assert.Equal(t, cat.Awake, state.Second.First)
	assert.Equal(t, bulb.State{Phase: bulb.NotFitted}, state.Second.Second)
}

func TestSwitchingOnTheLightWakesTheSleepingCat(t *testing.T) {
	ctx := context.TODO()
	runner := NewRunner()

	runner.Submit(ctx, BulbCommand(bulb.Fit{MaxUses: 5}))
	runner.Submit(ctx, CatCommand(cat.GetToSleep{}))

	events := runner.Submit(ctx, BulbCommand(bulb.SwitchOn{}))

	assert.Equal(t, []Event{BulbEvent(bulb.SwitchedOn{}), CatEvent(cat.WokeUp{})}, events)

	state := runner.State()
	assert.Equal(t, catlight.Idle, state.First)
	assert.Equal(t, cat.Awake, state.Second.First)
	assert.Equal(t, bulb.State{Phase: bulb.Working, Status: bulb.On, Remaining: 4}, state.Second.Second)
}

func TestMonitorKeepsWakingWhenTheCatWasAlreadyAwake(t *testing.T) {
	ctx := context.TODO()
	runner := NewRunner()

	runner.Submit(ctx, BulbCommand(bulb.Fit{MaxUses: 5}))
	runner.Submit(ctx, CatCommand(cat.GetToSleep{}))
	runner.Submit(ctx, CatCommand(cat.WakeUp{}))

	events := runner.Submit(ctx, BulbCommand(bulb.SwitchOn{}))
	assert.Equal(t, []Event{BulbEvent(bulb.SwitchedOn{})}, events)

	runner.Submit(ctx, BulbCommand(bulb.SwitchOff{}))

	state := runner.State()
	assert.Equal(t, catlight.WakingUp, state.First)
	assert.Equal(t, cat.Awake, state.Second.First)
	assert.Equal(t, bulb.State{Phase: bulb.Working, Status: bulb.Off, Remaining: 4}, state.Second.Second)
}

func TestEventsForOneApplianceLeaveTheOtherAlone(t *testing.T) {
	household := NewHome()
	state := household.InitialState()

	evolved := household.Evolve(state, BulbEvent(bulb.Fitted{MaxUses: 3}))

	assert.Equal(t, state.Second.First, evolved.Second.First)
	assert.Equal(t, bulb.State{Phase: bulb.Working, Status: bulb.Off, Remaining: 3}, evolved.Second.Second)
}

func TestReplayRebuildsTheHousehold(t *testing.T) {
	ctx := context.TODO()
	runner := NewRunner()

	var history []Event
	for _, command := range []Command{
		BulbCommand(bulb.Fit{MaxUses: 5}),
		CatCommand(cat.GetToSleep{}),
		BulbCommand(bulb.SwitchOn{}),
		BulbCommand(bulb.SwitchOff{}),
	} {
		history = append(history, runner.Submit(ctx, command)...)
	}

	assert.Equal(t, runner.State(), deciders.Replay[Command, Event, State](NewHome(), history))
}

func TestASeededRunnerPicksUpWhereItLeftOff(t *testing.T) {
	ctx := context.TODO()
	snapshot := deciders.PairOf(catlight.Idle, deciders.PairOf(cat.Asleep, bulb.State{Phase: bulb.Working, Status: bulb.Off, Remaining: 1}))

	runner := NewRunner(deciders.WithInitialState[State](snapshot))

	events := runner.Submit(ctx, BulbCommand(bulb.SwitchOn{}))

	assert.Equal(t, []Event{BulbEvent(bulb.SwitchedOn{}), CatEvent(cat.WokeUp{})}, events)
	assert.Equal(t, 0, runner.State().Second.Second.Remaining)
}
