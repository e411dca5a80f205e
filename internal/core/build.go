package core

import (
	"fmt"
	"time"

	"github.com/Masterminds/semver/v3"
)

const (
	Version     = "1.0.0"
	Environment = "Production"

	fallbackBuildID = "BUILD_0"
)

// IDProvider hands out the build identifier for a component
type IDProvider interface {
	BuildID() string
}

// ClockIDs derives "BUILD_<unix millis>" from Now.
type ClockIDs struct {
	Now func() time.Time
}

func (c ClockIDs) BuildID() string {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	return fmt.Sprintf("BUILD_%d", now().UnixMilli())
}

// StaticID always returns the same identifier.
type StaticID string

func (s StaticID) BuildID() string { return string(s) }

// BuildInfo is the build metadata shown by the shell and the status panel.
// It is fixed at construction.
type BuildInfo struct {
	Version     string `json:"version"`
	BuildID     string `json:"buildId"`
	Environment string `json:"environment"`
}

func NewBuildInfo(ids IDProvider) BuildInfo {
	id := ""
	if ids != nil {
		id = ids.BuildID()
	}
	if id == "" {
		id = fallbackBuildID
	}
	return BuildInfo{
		Version:     Version,
		BuildID:     id,
		Environment: Environment,
	}
}

// Semver parses Version as a semantic version.
func (b BuildInfo) Semver() (*semver.Version, error) {
	v, err := semver.StrictNewVersion(b.Version)
	if err != nil {
		return nil, fmt.Errorf("parse version %q: %w", b.Version, err)
	}
	return v, nil
}
