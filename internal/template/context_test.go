package template

import "testing"

func TestMarker(t *testing.T) {
	if got := Marker(PlaceholderBuildDir); got != "{{build_dir}}" {
		t.Errorf("Marker() = %q, want %q", got, "{{build_dir}}")
	}
}

func TestPlaceholdersHaveValues(t *testing.T) {
	vals := Values{ProjectName: "p", CMakeMinVersion: "c", CPPStandard: "s", BuildDir: "b"}
	seen := map[string]bool{}
	for _, name := range Placeholders {
		v, ok := vals.Lookup(name)
		if !ok || v == "" {
			t.Errorf("Lookup(%q) = %q, %v", name, v, ok)
		}
		if seen[v] {
			t.Errorf("placeholder %q shares value %q with another", name, v)
		}
		seen[v] = true
	}
	if _, ok := vals.Lookup("unknown"); ok {
		t.Error("Lookup(unknown) should report false")
	}
}

func TestReplacerIsSinglePass(t *testing.T) {
	// A value that looks like a marker is not expanded again.
	vals := Values{ProjectName: "{{build_dir}}", BuildDir: "./bin"}
	if got := vals.replacer().Replace("{{project_name}}"); got != "{{build_dir}}" {
		t.Errorf("Replace() = %q, want %q", got, "{{build_dir}}")
	}
}
