package updates

type Command interface {
	command()
}

type QueryForUpdate struct {
	CurrentVersion string `json:"current_version"`
}

type DownloadUpdate struct {
	Version string `json:"version"`
}

func (QueryForUpdate) command() {}

func (DownloadUpdate) command() {}
