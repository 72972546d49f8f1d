// Package prompt collects answers to generator questions interactively or from defaults.
package prompt

import (
	"context"
	"errors"
	"sort"
)

// ErrAborted is returned when the user cancels a prompt.
var ErrAborted = errors.New("prompt aborted")

// Answers maps question keys to answers.
type Answers map[string]string

// Clone returns a copy of a.
func (a Answers) Clone() Answers {
	out := make(Answers, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Keys returns the answered keys, sorted.
func (a Answers) Keys() []string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Question describes one prompt.
type Question struct {
	// Key is the answer key.
	Key string

	// Message is shown to the user.
	Message string

	// Default computes the default from the answers collected so far. Nil means no default.
	Default func(Answers) string

	// When reports whether the question applies. Nil means always.
	When func(Answers) bool

	// Validate rejects an answer. Nil accepts anything.
	Validate func(string) error

	// Store marks answers remembered across runs as future defaults.
	Store bool
}

// Applicable reports whether q would be shown given answers.
func (q Question) Applicable(answers Answers) bool {
	return q.When == nil || q.When(answers)
}

// DefaultValue returns q's default, or "" when it has none.
func (q Question) DefaultValue(answers Answers) string {
	if q.Default == nil {
		return ""
	}
	return q.Default(answers)
}

// Check runs the validator, if any.
func (q Question) Check(value string) error {
	if q.Validate == nil {
		return nil
	}
	return q.Validate(value)
}

// Static returns a default source that always yields s.
func Static(s string) func(Answers) string {
	return func(Answers) string { return s }
}

// Prompter asks questions. Ask returns seed extended with an answer for every
// applicable question, evaluated in order.
type Prompter interface {
	Ask(ctx context.Context, questions []Question, seed Answers) (Answers, error)
}

// Defaults answers every applicable question with its default, without
// interaction. Questions are filtered exactly as an interactive run would.
// A seeded value survives only when its question is not applicable.
func Defaults(questions []Question, seed Answers) Answers {
	answers := seed.Clone()
	for _, q := range questions {
		if !q.Applicable(answers) {
			continue
		}
		answers[q.Key] = q.DefaultValue(answers)
	}
	return answers
}

// DefaultPrompter answers with Defaults.
type DefaultPrompter struct{}

// Ask implements Prompter.
func (DefaultPrompter) Ask(_ context.Context, questions []Question, seed Answers) (Answers, error) {
	return Defaults(questions, seed), nil
}

// presetPrompter answers questions found in a preset and delegates the rest.
type presetPrompter struct {
	preset Answers
	next   Prompter
}

// WithPreset answers questions whose key is in preset without asking,
// validating each preset value. Remaining questions go to next.
func WithPreset(next Prompter, preset Answers) Prompter {
	if len(preset) == 0 {
		return next
	}
	return &presetPrompter{preset: preset, next: next}
}

// Ask implements Prompter.
func (p *presetPrompter) Ask(ctx context.Context, questions []Question, seed Answers) (Answers, error) {
	answers := seed.Clone()
	for _, q := range questions {
		if !q.Applicable(answers) {
			continue
		}
		if v, ok := p.preset[q.Key]; ok {
			if err := q.Check(v); err != nil {
				return nil, &InvalidAnswerError{Key: q.Key, Err: err}
			}
			answers[q.Key] = v
			continue
		}

		asked, err := p.next.Ask(ctx, []Question{q}, answers)
		if err != nil {
			return nil, err
		}
		answers = asked
	}
	return answers, nil
}

// InvalidAnswerError reports a preset answer rejected by its validator.
type InvalidAnswerError struct {
	Key string
	Err error
}

func (e *InvalidAnswerError) Error() string {
	return "invalid answer for " + e.Key + ": " + e.Err.Error()
}

func (e *InvalidAnswerError) Unwrap() error {
	return e.Err
}
