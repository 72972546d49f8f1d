package manifest

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/gonvenience/ytbx"
	"github.com/homeport/dyff/pkg/dyff"
	"sigs.k8s.io/yaml"
)

// Diff renders a YAML-aware report of the changes from before to after.
// It returns an empty string when the manifests are equivalent.
func Diff(before, after Object, useColor bool) (string, error) {
	beforeInput, err := toInput("package.json (current)", before)
	if err != nil {
		return "", fmt.Errorf("converting current manifest: %w", err)
	}

	afterInput, err := toInput("package.json (generated)", after)
	if err != nil {
		return "", fmt.Errorf("converting generated manifest: %w", err)
	}

	report, err := dyff.CompareInputFiles(beforeInput, afterInput)
	if err != nil {
		return "", fmt.Errorf("comparing manifests: %w", err)
	}

	if len(report.Diffs) == 0 {
		return "", nil
	}

	return renderReport(report, useColor)
}

// toInput converts a manifest into a dyff input through its YAML form.
func toInput(name string, o Object) (ytbx.InputFile, error) {
	raw, err := o.MarshalJSON()
	if err != nil {
		return ytbx.InputFile{}, err
	}

	data, err := yaml.JSONToYAML(raw)
	if err != nil {
		return ytbx.InputFile{}, err
	}

	docs, err := ytbx.LoadYAMLDocuments(data)
	if err != nil {
		return ytbx.InputFile{}, err
	}

	return ytbx.InputFile{Location: name, Documents: docs}, nil
}

func renderReport(report dyff.Report, useColor bool) (string, error) {
	var buf bytes.Buffer

	reportWriter := &dyff.HumanReport{
		Report:            report,
		DoNotInspectCerts: true,
		NoTableStyle:      !useColor,
		OmitHeader:        true,
	}

	if err := reportWriter.WriteReport(&buf); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}

	lines := strings.Split(buf.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}
