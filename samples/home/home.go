package home

import (
	deciders "github.com/weegigs/wee-deciders-go"
	"github.com/weegigs/wee-deciders-go/samples/bulb"
	"github.com/weegigs/wee-deciders-go/samples/cat"
	"github.com/weegigs/wee-deciders-go/samples/catlight"
)

// home wires the cat and the bulb into one household and lets the catlight
// monitor watch the shared event stream: switching the light on wakes the
// cat in the same decision.

type Command = deciders.Either[cat.Command, bulb.Command]

type Event = deciders.Either[cat.Event, bulb.Event]

type Appliances = deciders.Pair[cat.State, bulb.State]

type State = deciders.Pair[catlight.State, Appliances]

type Home = deciders.CombinedProcessDecider[Command, Event, catlight.State, Appliances]

func CatCommand(command cat.Command) Command {
	return deciders.Left[cat.Command, bulb.Command](command)
}

func BulbCommand(command bulb.Command) Command {
	return deciders.Right[cat.Command, bulb.Command](command)
}

func CatEvent(event cat.Event) Event {
	return deciders.Left[cat.Event, bulb.Event](event)
}

func BulbEvent(event bulb.Event) Event {
	return deciders.Right[cat.Event, bulb.Event](event)
}

func monitorEvents(event Event) (catlight.Event, bool) {
	if evt, ok := event.Left(); ok {
		if _, ok := evt.(cat.WokeUp); ok {
			return catlight.WokeUp{}, true
		}

		return nil, false
	}

	evt, _ := event.Right()
	if _, ok := evt.(bulb.SwitchedOn); ok {
		return catlight.SwitchedOn{}, true
	}

	return nil, false
}

func monitorCommands(command catlight.Command) Command {
	return CatCommand(cat.WakeUp{})
}

func NewHome() Home {
	appliances := deciders.ComposeDeciders[cat.Command, bulb.Command, cat.Event, bulb.Event, cat.State, bulb.State](cat.Cat{}, bulb.Bulb{})

	monitor := deciders.AdaptProcess[Event, catlight.Event, Command, catlight.Command, catlight.State](
		catlight.Monitor{},
		deciders.FallibleConverterFunction[Event, catlight.Event](monitorEvents),
		deciders.InfallibleConverterFunction[catlight.Command, Command](monitorCommands),
	)

	return deciders.CombineProcessDecider[Command, Event, catlight.State, Appliances](monitor, appliances)
}

func NewRunner(options ...deciders.RunnerOption[State]) *deciders.InMemoryRunner[Command, Event, State] {
	return deciders.NewInMemoryRunner[Command, Event, State](NewHome(), options...)
}
