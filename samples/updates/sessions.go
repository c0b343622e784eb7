package updates

import (
	deciders "github.com/weegigs/wee-deciders-go"
)

// A single server handles any number of concurrent sessions keyed by
// session id. The aliases keep the instantiated combinator types readable
// at call sites.
type (
	SessionCommand = deciders.Keyed[Command]
	SessionEvent   = deciders.Keyed[Event]
	SessionStates  = map[string]Session

	Sessions      = deciders.ManyDecider[Command, Event, Session]
	SessionRunner = deciders.InMemoryRunner[SessionCommand, SessionEvent, SessionStates]
)

func NewSessions(server Server) Sessions {
	return deciders.NewManyDecider[Command, Event, Session](server)
}

func NewSessionRunner(server Server, options ...deciders.RunnerOption[SessionStates]) *SessionRunner {
	return deciders.NewInMemoryRunner[SessionCommand, SessionEvent, SessionStates](NewSessions(server), options...)
}

// ForSession addresses a command to one session of a session runner.
func ForSession(id SessionID, command Command) SessionCommand {
	return deciders.KeyedAs[Command](id.String(), command)
}
