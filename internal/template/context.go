package template

import "strings"

// Placeholder names recognized inside template resources.
const (
	PlaceholderProjectName     = "project_name"
	PlaceholderCMakeMinVersion = "cmake_min_version"
	PlaceholderCPPStandard     = "cpp_standard"
	PlaceholderBuildDir        = "build_dir"
)

// Placeholders lists every recognized placeholder name.
var Placeholders = []string{
	PlaceholderProjectName,
	PlaceholderCMakeMinVersion,
	PlaceholderCPPStandard,
	PlaceholderBuildDir,
}

// Marker returns the literal marker for a placeholder name, e.g. "{{build_dir}}".
func Marker(name string) string {
	return "{{" + name + "}}"
}

// Values provides data for placeholder substitution.
type Values struct {
	ProjectName     string
	CMakeMinVersion string
	CPPStandard     string
	BuildDir        string
}

// Lookup returns the value for a placeholder name.
func (v Values) Lookup(name string) (string, bool) {
	switch name {
	case PlaceholderProjectName:
		return v.ProjectName, true
	case PlaceholderCMakeMinVersion:
		return v.CMakeMinVersion, true
	case PlaceholderCPPStandard:
		return v.CPPStandard, true
	case PlaceholderBuildDir:
		return v.BuildDir, true
	}
	return "", false
}

// replacer builds a single-pass replacer over every known marker.
// No marker is a substring of another, so the order of pairs is irrelevant.
func (v Values) replacer() *strings.Replacer {
	pairs := make([]string, 0, len(Placeholders)*2)
	for _, name := range Placeholders {
		val, _ := v.Lookup(name)
		pairs = append(pairs, Marker(name), val)
	}
	return strings.NewReplacer(pairs...)
}
