package updates

import (
	"github.com/Masterminds/semver/v3"
)

// Server runs the update conversation for a single connection. A session
// starts with a version query, may be offered newer releases, and ends once
// the client is up to date, has its download, or asked for something the
// manifest cannot serve.
type Server struct {
	manifest Manifest
}

func NewServer(manifest Manifest) Server {
	return Server{manifest: manifest}
}

func (s Server) Decide(command Command, state Session) []Event {
	switch command := command.(type) {
	case QueryForUpdate:
		if state.Phase == NewConnection {
			return s.query(command.CurrentVersion)
		}

	case DownloadUpdate:
		if state.Phase == Offered {
			return s.download(command.Version, state.Available)
		}
	}

	return nil
}

func (s Server) query(current string) []Event {
	version, err := semver.NewVersion(current)
	if err != nil || !s.manifest.Contains(version) {
		return []Event{UnknownVersionQueried{Version: current}}
	}

	newer := s.manifest.Newer(version)
	if len(newer) == 0 {
		return []Event{AlreadyUpToDate{}}
	}

	return []Event{UpdateAvailable{Versions: newer}}
}

func (s Server) download(version string, available []string) []Event {
	offered := false
	for _, candidate := range available {
		if candidate == version {
			offered = true
			break
		}
	}

	if !offered {
		return []Event{InvalidVersion{Version: version}}
	}

	data, ok := s.manifest.DataFor(version)
	if !ok {
		return []Event{InvalidVersion{Version: version}}
	}

	return []Event{GotUpdateData{Data: data}}
}

func (s Server) Evolve(state Session, event Event) Session {
	switch event := event.(type) {
	case UpdateAvailable:
		if state.Phase == NewConnection {
			return Session{Phase: Offered, Available: event.Versions}
		}

	case UnknownVersionQueried:
		if state.Phase == NewConnection {
			return Session{Phase: UnknownVersion, Version: event.Version}
		}

	case AlreadyUpToDate:
		if state.Phase == NewConnection {
			return Session{Phase: UpToDate}
		}

	case GotUpdateData:
		if state.Phase == Offered {
			return Session{Phase: DownloadReady, Data: event.Data}
		}

	case InvalidVersion:
		if state.Phase == Offered {
			return Session{Phase: DownloadUnavailable}
		}
	}

	return state
}

func (s Server) InitialState() Session {
	return Session{Phase: NewConnection}
}

func (s Server) IsTerminal(state Session) bool {
	switch state.Phase {
	case UpToDate, DownloadReady, DownloadUnavailable:
		return true
	}

	return false
}
