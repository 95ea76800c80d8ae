package flags

import "testing"

func TestResolve(t *testing.T) {
	nameFlags := []string{"-n", "--name"}

	tests := []struct {
		name      string
		tokens    []string
		wantValue string
		wantFound bool
	}{
		{"empty tokens", nil, "", false},
		{"no match", []string{"new", "lib"}, "", false},
		{"short spelling", []string{"new", "-n", "demo"}, "demo", true},
		{"long spelling", []string{"new", "--name", "demo"}, "demo", true},
		{"last occurrence wins", []string{"new", "-n", "a", "-n", "b"}, "b", true},
		{"last occurrence wins across spellings", []string{"new", "--name", "a", "-n", "b"}, "b", true},
		{"short after long", []string{"-n", "a", "--name", "b"}, "b", true},
		{"position decides, not spelling", []string{"new", "--name", "b", "-n", "a"}, "a", true},
		{"trailing flag ignored", []string{"new", "-n"}, "", false},
		{"trailing flag keeps earlier value", []string{"new", "-n", "a", "-n"}, "a", true},
		{"value may look like a flag", []string{"-n", "-s"}, "-s", true},
		{"unrelated flags ignored", []string{"new", "-s", "20", "-c", "3.25"}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := Resolve(tt.tokens, nameFlags)
			if found != tt.wantFound {
				t.Fatalf("Resolve(%q) found = %v, want %v", tt.tokens, found, tt.wantFound)
			}
			if got != tt.wantValue {
				t.Errorf("Resolve(%q) = %q, want %q", tt.tokens, got, tt.wantValue)
			}
		})
	}
}

func TestResolveDoesNotMutateTokens(t *testing.T) {
	tokens := []string{"new", "-n", "a", "-n", "b"}
	snapshot := append([]string(nil), tokens...)

	Resolve(tokens, []string{"-n"})

	for i := range tokens {
		if tokens[i] != snapshot[i] {
			t.Fatalf("tokens[%d] = %q, want %q", i, tokens[i], snapshot[i])
		}
	}
}

func TestLookup(t *testing.T) {
	tokens := []string{"new", "library", "--std", "20", "-c", "3.28", "--name", "engine"}

	cases := map[Key]string{
		KeyName:     "engine",
		KeyStd:      "20",
		KeyCMakeMin: "3.28",
	}
	for key, want := range cases {
		got, ok := Lookup(tokens, key)
		if !ok {
			t.Errorf("Lookup(%q) found nothing", key)
			continue
		}
		if got != want {
			t.Errorf("Lookup(%q) = %q, want %q", key, got, want)
		}
	}

	if _, ok := Lookup(tokens, Key("build-dir")); ok {
		t.Error("Lookup of an unknown key should resolve to no value")
	}
}

func TestRecognized(t *testing.T) {
	for _, spec := range Table {
		for _, sp := range spec.Spellings {
			if !Recognized(sp) {
				t.Errorf("Recognized(%q) = false, want true", sp)
			}
		}
	}
	for _, tok := range []string{"-b", "--build-dir", "new", ""} {
		if Recognized(tok) {
			t.Errorf("Recognized(%q) = true, want false", tok)
		}
	}
}
