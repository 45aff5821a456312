package models

import (
	"time"

	"github.com/google/uuid"
)

// DaemonInfo represents the running daemon instance.
// This corresponds to ~/.tintbar/daemon.yaml.
type DaemonInfo struct {
	Version    int       `yaml:"version"`
	PID        int       `yaml:"pid"`
	InstanceID string    `yaml:"instance_id"`
	StartedAt  time.Time `yaml:"started_at"`
}

// NewDaemonInfo creates a new daemon info with current values.
func NewDaemonInfo(pid int) *DaemonInfo {
	return &DaemonInfo{
		Version:    1,
		PID:        pid,
		InstanceID: uuid.New().String(),
		StartedAt:  time.Now().UTC(),
	}
}
