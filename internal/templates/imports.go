package templates

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// AppendImport adds `import '<module>';` to the end of the JavaScript file at
// path. Missing files and files that already import module are left alone.
// It reports whether the file changed.
func AppendImport(path, module string) (bool, error) {
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", path, err)
	}

	line := fmt.Sprintf("import '%s';", module)
	text := string(content)
	if strings.Contains(text, line) || strings.Contains(text, fmt.Sprintf(`import "%s";`, module)) {
		return false, nil
	}

	if text != "" && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	text += line + "\n"

	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return false, fmt.Errorf("writing %s: %w", path, err)
	}
	return true, nil
}
