package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// LinePrompter asks questions one line at a time. It is used when stdin is
// not a terminal, e.g. when answers are piped in.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLinePrompter creates a prompter reading from in and writing prompts to out.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

// Ask implements Prompter. An empty line accepts the default. At end of input
// the remaining questions take their defaults.
func (p *LinePrompter) Ask(ctx context.Context, questions []Question, seed Answers) (Answers, error) {
	answers := seed.Clone()
	eof := false

	for _, q := range questions {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !q.Applicable(answers) {
			continue
		}

		def := q.DefaultValue(answers)
		for {
			value := def
			if !eof {
				fmt.Fprint(p.out, label(q.Message, def))

				line, err := p.in.ReadString('\n')
				if errors.Is(err, io.EOF) {
					eof = true
				} else if err != nil {
					return nil, fmt.Errorf("reading answer for %s: %w", q.Key, err)
				}
				if line = strings.TrimSpace(line); line != "" {
					value = line
				}
				if eof {
					fmt.Fprintln(p.out)
				}
			}

			if err := q.Check(value); err != nil {
				if eof {
					return nil, &InvalidAnswerError{Key: q.Key, Err: err}
				}
				fmt.Fprintf(p.out, ">> %s\n", err)
				continue
			}

			answers[q.Key] = value
			break
		}
	}
	return answers, nil
}

func label(message, def string) string {
	if def == "" {
		return fmt.Sprintf("? %s: ", message)
	}
	return fmt.Sprintf("? %s (%s): ", message, def)
}
