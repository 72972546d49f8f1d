package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates user input failed validation.
	ErrValidation = errors.New("validation error")

	// ErrPermission indicates insufficient filesystem permissions.
	ErrPermission = errors.New("permission denied")

	// ErrNotFound indicates a file, archetype, or template was not found.
	ErrNotFound = errors.New("not found")

	// ErrInvalidName indicates a package name failed the registry rules,
	// even after the kebab-case repair.
	ErrInvalidName = errors.New("invalid package name")

	// ErrExternalPath indicates a project folder resolves outside the project root.
	ErrExternalPath = errors.New("external path")

	// ErrMissingPackageList indicates manifest assembly ran without a dependency table.
	ErrMissingPackageList = errors.New("missing package list")

	// ErrComponentResolution indicates the project context needed to place a
	// component (its package.json) is absent.
	ErrComponentResolution = errors.New("component resolution failed")
)
