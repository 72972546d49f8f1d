package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/donejs/donegen/internal/gitconfig"
	"github.com/donejs/donegen/internal/npm"
	"github.com/donejs/donegen/internal/packages"
	"github.com/donejs/donegen/internal/prompt"
)

// scriptedPrompter answers from a fixed map and records every key it is asked.
type scriptedPrompter struct {
	replies map[string]string
	asked   []string
}

func (p *scriptedPrompter) Ask(_ context.Context, questions []prompt.Question, seed prompt.Answers) (prompt.Answers, error) {
	answers := seed.Clone()
	for _, q := range questions {
		if !q.Applicable(answers) {
			continue
		}
		p.asked = append(p.asked, q.Key)
		if v, ok := p.replies[q.Key]; ok {
			answers[q.Key] = v
			continue
		}
		answers[q.Key] = q.DefaultValue(answers)
	}
	return answers, nil
}

type installCall struct {
	dir      string
	mode     npm.SaveMode
	packages []string
}

type fakeInstaller struct {
	calls []installCall
	err   error
}

func (f *fakeInstaller) Install(_ context.Context, dir string, mode npm.SaveMode, pkgs ...string) error {
	f.calls = append(f.calls, installCall{dir: dir, mode: mode, packages: pkgs})
	return f.err
}

type failingProber struct{}

func (failingProber) Probe(context.Context) (npm.Version, error) {
	return npm.Version{}, errors.New("npm: command not found")
}

func testDeps(t *testing.T) (Deps, *fakeInstaller) {
	t.Helper()
	table, err := packages.Default()
	require.NoError(t, err)

	installer := &fakeInstaller{}
	return Deps{
		Prompter:  prompt.DefaultPrompter{},
		Prober:    npm.StaticProber{Major: 6, Minor: 14, Patch: 4},
		Installer: installer,
		Git:       gitconfig.Static{Name: "Jane Doe", Email: "jane@example.com"},
		Packages:  table,
		Now:       func() time.Time { return time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC) },
	}, installer
}
