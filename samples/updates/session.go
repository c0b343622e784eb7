package updates

import (
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

type Phase string

const (
	NewConnection       Phase = "new-connection"
	Offered             Phase = "offered"
	UnknownVersion      Phase = "unknown-version"
	UpToDate            Phase = "up-to-date"
	DownloadReady       Phase = "download-ready"
	DownloadUnavailable Phase = "download-unavailable"
)

// Session is the state of one client conversation: a version query,
// then at most one download.
type Session struct {
	Phase     Phase    `json:"phase"`
	Available []string `json:"available,omitempty"`
	Version   string   `json:"version,omitempty"`
	Data      string   `json:"data,omitempty"`
}

type SessionID string

func (id SessionID) String() string {
	return string(id)
}

type SessionIDGenerator struct {
	lk      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

func NewSessionIDGenerator() *SessionIDGenerator {
	t := time.Now()
	entropy := ulid.Monotonic(rand.New(rand.NewSource(t.UnixNano())), 0)

	return &SessionIDGenerator{
		entropy: entropy,
	}
}

func (g *SessionIDGenerator) NewSessionID(t time.Time) SessionID {
	g.lk.Lock()
	defer g.lk.Unlock()

	return SessionID(ulid.MustNew(ulid.Timestamp(t), g.entropy).String())
}
