package template

import (
	"fmt"
	"slices"
)

// ID identifies one of the built-in project templates.
type ID int

const (
	// Default is the executable project template.
	Default ID = iota
	// Library is the static library project template.
	Library
)

// IDs returns every built-in template in declaration order.
func IDs() []ID {
	return []ID{Default, Library}
}

// String returns the canonical template name.
func (id ID) String() string {
	switch id {
	case Default:
		return "default"
	case Library:
		return "library"
	}
	return fmt.Sprintf("template(%d)", int(id))
}

// Aliases returns the accepted spellings for the template.
func (id ID) Aliases() []string {
	switch id {
	case Default:
		return []string{"default"}
	case Library:
		return []string{"lib", "library"}
	}
	return nil
}

// IsValid reports whether id is one of the built-in templates.
func (id ID) IsValid() bool {
	switch id {
	case Default, Library:
		return true
	}
	return false
}

// usesBuildDir reports whether the template's build script installs into
// the build output directory.
func (id ID) usesBuildDir() bool {
	switch id {
	case Default:
		return true
	case Library:
		return false
	}
	return false
}

// ParseID resolves a raw template name to its ID. Matching is exact.
func ParseID(raw string) (ID, error) {
	for _, id := range IDs() {
		if slices.Contains(id.Aliases(), raw) {
			return id, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTemplate, raw)
}
