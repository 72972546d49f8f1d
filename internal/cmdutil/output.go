package cmdutil

import (
	"errors"
	"fmt"
	"io"

	oerrors "github.com/donejs/donegen/internal/errors"
	"github.com/donejs/donegen/internal/output"
	"github.com/donejs/donegen/internal/pipeline"
	"github.com/donejs/donegen/internal/prompt"
)

// PrintResult writes the summary of a pipeline run to w.
func PrintResult(w io.Writer, result *pipeline.Result, dryRun bool) {
	if result == nil {
		return
	}

	if dryRun {
		fmt.Fprintln(w, output.FormatCheckmark(fmt.Sprintf("Would generate %s %q in %s", result.Archetype, result.Name, result.Root)))
		for _, dest := range result.Planned {
			fmt.Fprintln(w, output.FormatFileLine(dest, output.StatusCreated))
		}
		if result.ManifestDiff != "" {
			fmt.Fprintln(w)
			fmt.Fprintln(w, "package.json changes:")
			fmt.Fprint(w, result.ManifestDiff)
		}
		return
	}

	fmt.Fprintln(w, output.FormatCheckmark(fmt.Sprintf("Generated %s %q", result.Archetype, result.Name)))
	fmt.Fprintln(w)
	fmt.Fprint(w, output.RenderFileTree(result.Root, result.Files))
	if steps := output.FormatNextSteps(result.NextSteps); steps != "" {
		fmt.Fprintln(w)
		fmt.Fprint(w, steps)
	}
}

// PrintError reports a failed run in a user-friendly format. Structured
// errors are written to w as-is; others go through the logger.
func PrintError(w io.Writer, msg string, err error) {
	var detail *oerrors.DetailError
	var invalid *prompt.InvalidAnswerError
	var install *pipeline.InstallError

	switch {
	case errors.Is(err, prompt.ErrAborted):
		output.Warn("aborted")
	case errors.As(err, &detail):
		fmt.Fprint(w, detail.Error())
	case errors.As(err, &invalid):
		output.Error(msg, "answer", invalid.Key, "error", invalid.Err)
	case errors.As(err, &install):
		output.Error("installing dependencies failed", "error", install.Err)
		output.Info("generated files were kept; run npm install to retry")
	default:
		output.Error(msg, "error", err)
	}
}

// ExitError converts a run error to an ExitError after it has been printed.
func ExitError(err error) error {
	if err == nil {
		return nil
	}
	return &oerrors.ExitError{Code: oerrors.ExitCodeFromError(err), Err: err, Printed: true}
}
