// Package flags extracts named parameter values from a raw command-line token
// list. Resolution is deliberately simpler than a full flag parser: unknown
// tokens are ignored, a flag without a following value is treated as absent,
// and when a parameter is given more than once the last occurrence wins.
package flags

import "slices"

// Key is the canonical name of a resolvable parameter.
type Key string

const (
	// KeyName selects the project name.
	KeyName Key = "name"
	// KeyStd selects the C++ language standard.
	KeyStd Key = "std"
	// KeyCMakeMin selects the minimum required CMake version.
	KeyCMakeMin Key = "cmake-min"
)

// Spec describes one resolvable parameter.
type Spec struct {
	Key       Key
	Spellings []string
	Usage     string
}

// Table is the fixed flag table, in the order shown by the usage text.
var Table = []Spec{
	{Key: KeyName, Spellings: []string{"-n", "--name"}, Usage: "Name of the project"},
	{Key: KeyStd, Spellings: []string{"-s", "--std"}, Usage: "Required version of the C++ standard"},
	{Key: KeyCMakeMin, Spellings: []string{"-c", "--cmake-min"}, Usage: "Minimal required version of CMake"},
}

// Prefix marks a token as a flag rather than a positional argument.
const Prefix = "-"

// Resolve scans tokens for any of the accepted spellings and returns the token
// that follows the last match. A spelling in the final position has no value
// and is ignored. The boolean is false when no value was found.
func Resolve(tokens []string, spellings []string) (string, bool) {
	var (
		value string
		found bool
	)
	for i, tok := range tokens {
		if i == len(tokens)-1 {
			break
		}
		if slices.Contains(spellings, tok) {
			value = tokens[i+1]
			found = true
		}
	}
	return value, found
}

// Lookup resolves key through the fixed table.
// Unknown keys resolve to no value.
func Lookup(tokens []string, key Key) (string, bool) {
	spec, ok := SpecFor(key)
	if !ok {
		return "", false
	}
	return Resolve(tokens, spec.Spellings)
}

// SpecFor returns the table entry for key.
func SpecFor(key Key) (Spec, bool) {
	for _, s := range Table {
		if s.Key == key {
			return s, true
		}
	}
	return Spec{}, false
}

// Recognized reports whether tok is one of the spellings in the table.
func Recognized(tok string) bool {
	for _, s := range Table {
		if slices.Contains(s.Spellings, tok) {
			return true
		}
	}
	return false
}
