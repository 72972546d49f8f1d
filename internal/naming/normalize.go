// Package naming validates and repairs package names and derives the case
// variants used by generated sources.
package naming

import (
	"regexp"

	oerrors "github.com/donejs/donegen/internal/errors"
	"github.com/donejs/donegen/internal/output"
)

// Normalize returns raw unchanged when it is a legal package name. Otherwise
// it kebab-cases raw once and re-checks; a name that still fails produces an
// ErrInvalidName carrying the first complaint.
func Normalize(raw string) (string, error) {
	if ValidatePackageName(raw).ValidForNewPackages() {
		return raw, nil
	}

	fixed := KebabCase(raw)
	result := ValidatePackageName(fixed)
	if !result.ValidForNewPackages() {
		return "", oerrors.NewInvalidNameError(fixed, result.Reason())
	}

	output.Debug("repaired package name", "from", raw, "to", fixed)
	return fixed, nil
}

// tagName matches a custom element name: lowercase, starts with a letter, has a dash.
var tagName = regexp.MustCompile(`^[a-z][a-z0-9._]*(-[a-z0-9._]*)+$`)

// ValidateTagName checks that tag can be registered as a custom element.
func ValidateTagName(tag string) error {
	if tag == "" {
		return oerrors.NewValidationError("tag name is required", "tag", "")
	}
	if !tagName.MatchString(tag) {
		return oerrors.NewValidationError(
			"invalid tag name "+tag+": must be lowercase, start with a letter and contain a dash",
			"tag",
			"Prefix the tag with your app name, e.g. my-app-"+KebabCase(tag),
		)
	}
	return nil
}

// ValidateRequired rejects empty answers.
func ValidateRequired(value string) error {
	if value == "" {
		return oerrors.NewValidationError("a value is required", "", "")
	}
	return nil
}
