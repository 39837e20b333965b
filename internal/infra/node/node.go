package node

import (
	"os"
	"sync"

	"github.com/google/uuid"
)

// Info identifies the running server instance. It is reported by /healthz and
// attached to every log line.
type Info struct {
	InstanceID string `json:"instance_id"`
	Hostname   string `json:"hostname"`
	Version    string `json:"version"`
	CommitHash string `json:"commit_hash"`
}

// Set at build time with -ldflags "-X entity-config-server/internal/infra/node.Version=..."
var Version = "development"
var CommitHash = "unknown"

var (
	current     Info
	currentOnce sync.Once
)

func Current() Info {
	currentOnce.Do(func() {
		hostname, err := os.Hostname()
		if err != nil || hostname == "" {
			hostname = "localhost"
		}
		current = Info{
			InstanceID: uuid.NewString(),
			Hostname:   hostname,
			Version:    Version,
			CommitHash: CommitHash,
		}
	})
	return current
}
