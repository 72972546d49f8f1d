package npm

import (
	"context"
	"fmt"
)

// Prober reports the installed npm version.
type Prober interface {
	Probe(ctx context.Context) (Version, error)
}

// ExecProber asks npm for its version.
type ExecProber struct {
	Runner Runner
}

// NewProber creates a prober running the npm on PATH.
func NewProber() *ExecProber {
	return &ExecProber{Runner: ExecRunner{}}
}

// Probe implements Prober.
func (p *ExecProber) Probe(ctx context.Context) (Version, error) {
	out, err := p.Runner.Run(ctx, "", "--version")
	if err != nil {
		return Version{}, fmt.Errorf("probing npm version: %w", err)
	}
	return ParseVersion(out)
}

// StaticProber returns a fixed version.
type StaticProber Version

// Probe implements Prober.
func (p StaticProber) Probe(context.Context) (Version, error) {
	return Version(p), nil
}
