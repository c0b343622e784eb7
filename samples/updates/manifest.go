package updates

import (
	"fmt"
	"os"
	"sort"

	"github.com/Masterminds/semver/v3"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// Manifest is the immutable release history the server answers from.
// Releases are kept in ascending version order.
type Manifest struct {
	Releases []Release `json:"releases"`
}

type Release struct {
	Version string `json:"version"`
	Data    string `json:"data"`
	Notes   string `json:"notes,omitempty"`
}

type InvalidManifestError struct {
	Version string
	Reason  string
}

func (e *InvalidManifestError) Error() string {
	return fmt.Sprintf("invalid manifest: release %q %s", e.Version, e.Reason)
}

func InvalidManifest(version string, reason string) error {
	return &InvalidManifestError{
		Version: version,
		Reason:  reason,
	}
}

// DefaultManifest mirrors the release history the server ships with.
func DefaultManifest() Manifest {
	return Manifest{
		Releases: []Release{
			{Version: "1.0.0", Data: "Download data for v1.0.0"},
			{Version: "1.0.1", Data: "Download data for v1.0.1"},
			{Version: "1.1.0", Data: "Download data for v1.1.0"},
			{Version: "1.1.1", Data: "Download data for v1.1.1"},
			{Version: "1.2.0", Data: "Download data for v1.2.0"},
			{Version: "2.0.0", Data: "Download data for v2.0.0"},
		},
	}
}

func LoadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, errors.Wrap(err, fmt.Sprintf("failed to read manifest from %s", path))
	}

	return ParseManifest(data)
}

func ParseManifest(data []byte) (Manifest, error) {
	var manifest Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return Manifest{}, errors.Wrap(err, "failed to decode manifest")
	}

	if err := manifest.validate(); err != nil {
		return Manifest{}, err
	}

	manifest.sortReleases()

	return manifest, nil
}

func (m Manifest) validate() error {
	if len(m.Releases) == 0 {
		return errors.New("manifest lists no releases")
	}

	for _, release := range m.Releases {
		if _, err := semver.NewVersion(release.Version); err != nil {
			return InvalidManifest(release.Version, "is not a semantic version")
		}

		if release.Data == "" {
			return InvalidManifest(release.Version, "has no download data")
		}
	}

	return nil
}

func (m Manifest) sortReleases() {
	sort.Slice(m.Releases, func(i, j int) bool {
		return semver.MustParse(m.Releases[i].Version).LessThan(semver.MustParse(m.Releases[j].Version))
	})
}

func (m Manifest) Contains(version *semver.Version) bool {
	for _, release := range m.Releases {
		if parsed, err := semver.NewVersion(release.Version); err == nil && parsed.Equal(version) {
			return true
		}
	}

	return false
}

// Newer lists the versions strictly above the given one, oldest first.
func (m Manifest) Newer(version *semver.Version) []string {
	var newer []string
	for _, release := range m.Releases {
		if parsed, err := semver.NewVersion(release.Version); err == nil && parsed.GreaterThan(version) {
			newer = append(newer, release.Version)
		}
	}

	return newer
}

func (m Manifest) DataFor(version string) (string, bool) {
	for _, release := range m.Releases {
		if release.Version == version {
			return release.Data, true
		}
	}

	return "", false
}
