package naming

import (
	"fmt"
	"regexp"
	"strings"
)

// maxNameLength is the registry limit on package name length.
const maxNameLength = 214

// scopedName splits "@scope/name" into its parts.
var scopedName = regexp.MustCompile(`^(?:@([^/]+?)/)?([^/]+?)$`)

// specialChars may not appear in the package part of a new name.
var specialChars = regexp.MustCompile(`[~'!()*]`)

// blacklist holds names the registry refuses outright.
var blacklist = map[string]bool{
	"node_modules": true,
	"favicon.ico":  true,
}

// coreModules holds Node core module names, which are not allowed for new packages.
var coreModules = map[string]bool{
	"assert": true, "async_hooks": true, "buffer": true, "child_process": true,
	"cluster": true, "console": true, "constants": true, "crypto": true,
	"dgram": true, "dns": true, "domain": true, "events": true, "fs": true,
	"http": true, "http2": true, "https": true, "inspector": true, "module": true,
	"net": true, "os": true, "path": true, "perf_hooks": true, "process": true,
	"punycode": true, "querystring": true, "readline": true, "repl": true,
	"stream": true, "string_decoder": true, "sys": true, "timers": true,
	"tls": true, "trace_events": true, "tty": true, "url": true, "util": true,
	"v8": true, "vm": true, "worker_threads": true, "zlib": true,
}

// Validation is the outcome of checking a package name.
type Validation struct {
	// Errors make the name invalid for any package.
	Errors []string

	// Warnings make the name invalid for new packages only.
	Warnings []string
}

// ValidForNewPackages reports whether the name can be published as a new package.
func (v Validation) ValidForNewPackages() bool {
	return len(v.Errors) == 0 && len(v.Warnings) == 0
}

// Reason returns the first complaint, errors before warnings.
func (v Validation) Reason() string {
	if len(v.Errors) > 0 {
		return v.Errors[0]
	}
	if len(v.Warnings) > 0 {
		return v.Warnings[0]
	}
	return ""
}

// ValidatePackageName checks name against the package registry naming rules.
func ValidatePackageName(name string) Validation {
	var v Validation

	if name == "" {
		v.Errors = append(v.Errors, "name length must be greater than zero")
		return v
	}
	if strings.HasPrefix(name, ".") {
		v.Errors = append(v.Errors, "name cannot start with a period")
	}
	if strings.HasPrefix(name, "_") {
		v.Errors = append(v.Errors, "name cannot start with an underscore")
	}
	if strings.TrimSpace(name) != name {
		v.Errors = append(v.Errors, "name cannot contain leading or trailing spaces")
	}
	if blacklist[strings.ToLower(name)] {
		v.Errors = append(v.Errors, fmt.Sprintf("%s is a blacklisted name", name))
	}

	if coreModules[strings.ToLower(name)] {
		v.Warnings = append(v.Warnings, fmt.Sprintf("%s is a core module name", name))
	}
	if len(name) > maxNameLength {
		v.Warnings = append(v.Warnings, fmt.Sprintf("name can no longer contain more than %d characters", maxNameLength))
	}
	if strings.ToLower(name) != name {
		v.Warnings = append(v.Warnings, "name can no longer contain capital letters")
	}

	pkg := name
	if i := strings.LastIndex(name, "/"); i >= 0 {
		pkg = name[i+1:]
	}
	if specialChars.MatchString(pkg) {
		v.Warnings = append(v.Warnings, `name can no longer contain special characters ("~\'!()*")`)
	}

	if !urlFriendly(name) {
		m := scopedName.FindStringSubmatch(name)
		if m == nil || m[1] == "" || !urlFriendly(m[1]) || !urlFriendly(m[2]) {
			v.Errors = append(v.Errors, "name can only contain URL-friendly characters")
		}
	}

	return v
}

// urlFriendly reports whether s survives URI component encoding unchanged.
func urlFriendly(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case strings.IndexByte("-_.!~*'()", c) >= 0:
		default:
			return false
		}
	}
	return true
}
