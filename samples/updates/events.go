package updates

type Event interface {
	event()
}

type UpdateAvailable struct {
	Versions []string `json:"versions"`
}

type UnknownVersionQueried struct {
	Version string `json:"version"`
}

type AlreadyUpToDate struct{}

type GotUpdateData struct {
	Data string `json:"data"`
}

type InvalidVersion struct {
	Version string `json:"version"`
}

func (UpdateAvailable) event()       {}
func (UnknownVersionQueried) event() {}
func (AlreadyUpToDate) event()       {}
func (GotUpdateData) event()         {}
func (InvalidVersion) event()        {}
