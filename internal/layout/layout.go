// Package layout computes where generated files land inside a project.
package layout

import (
	"path"
	"path/filepath"
	"strings"

	oerrors "github.com/donejs/donegen/internal/errors"
)

// SingleFileSuffix marks a component module name that is generated as one
// file instead of a modlet directory.
const SingleFileSuffix = ".component"

// DefaultLibFolder is used when the manifest does not declare steal.directories.lib.
const DefaultLibFolder = "."

// ResolveProjectFolder validates the folder that holds generated sources.
// Absolute candidates are rewritten relative to projectRoot. A folder that
// escapes the project root is rejected, never corrected.
func ResolveProjectFolder(candidate, projectRoot string) (string, error) {
	folder := candidate
	if filepath.IsAbs(folder) {
		rel, err := filepath.Rel(projectRoot, folder)
		if err != nil {
			return "", oerrors.NewExternalPathError(candidate)
		}
		folder = rel
	}

	for _, segment := range strings.Split(filepath.ToSlash(folder), "/") {
		if segment == ".." {
			return "", oerrors.NewExternalPathError(folder)
		}
	}

	return folder, nil
}

// ComponentPath describes where a component is generated.
type ComponentPath struct {
	// Segments are the module path segments kept after deduplication.
	Segments []string

	// Dir is the destination directory relative to the project root.
	Dir string

	// Root is "../" once per segment of Dir, for imports relative to the project root.
	Root string

	// Name is the short component name (the last segment).
	Name string

	// Module is the full module identifier ("~/restaurant/list").
	Module string

	// IsRoot is true when the module name equals the project package name.
	IsRoot bool

	// SingleFile is true for the ".component" variant.
	SingleFile bool

	// TestImport is the module identifier of the modlet's test file.
	TestImport string
}

// ResolveComponentPath computes the destination of a component named
// moduleName inside libFolder of the project packageName.
func ResolveComponentPath(moduleName, libFolder, packageName string) ComponentPath {
	name := strings.TrimSuffix(moduleName, "/")

	singleFile := strings.Contains(name, SingleFileSuffix)
	name = strings.Replace(name, SingleFileSuffix, "", 1)

	segments := splitSegments(name)
	isRoot := strings.Join(segments, "/") == packageName

	if !isRoot && len(segments) > 0 && segments[0] == packageName {
		segments = segments[1:]
	}

	short := ""
	if len(segments) > 0 {
		short = segments[len(segments)-1]
	}

	dirSegments := segments
	if singleFile && len(dirSegments) > 0 {
		dirSegments = dirSegments[:len(dirSegments)-1]
	}

	dir := path.Join(append([]string{filepath.ToSlash(libFolder)}, dirSegments...)...)

	result := ComponentPath{
		Segments:   segments,
		Dir:        filepath.FromSlash(dir),
		Root:       RootPrefix(dir),
		Name:       short,
		Module:     path.Join(append([]string{"~"}, segments...)...),
		IsRoot:     isRoot,
		SingleFile: singleFile,
	}
	if !singleFile {
		result.TestImport = path.Join(result.Module, short+"-test")
	}

	return result
}

// RootPrefix returns "../" once per segment of dir. The current directory has no segments.
func RootPrefix(dir string) string {
	dir = path.Clean(filepath.ToSlash(dir))
	if dir == "." || dir == "" {
		return ""
	}
	return strings.Repeat("../", len(strings.Split(strings.Trim(dir, "/"), "/")))
}

// splitSegments splits a module name on "/" and trims each segment, dropping empty ones.
func splitSegments(name string) []string {
	parts := strings.Split(name, "/")
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		segments = append(segments, p)
	}
	return segments
}
