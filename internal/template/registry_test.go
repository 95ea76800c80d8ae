package template

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"
)

// testTemplateFS returns a minimal but complete template tree.
func testTemplateFS() fstest.MapFS {
	file := func(s string) *fstest.MapFile { return &fstest.MapFile{Data: []byte(s)} }
	return fstest.MapFS{
		"default/template.yaml":  file("id: default\ndescription: exe\naliases: [default]\n"),
		"default/build.sh":       file("cp {{project_name}} {{build_dir}}\n"),
		"default/CMakeLists.txt": file("project({{project_name}})\nset(CMAKE_CXX_STANDARD {{cpp_standard}})\n"),
		"default/main.cpp":       file("int main() {}\n"),
		"default/gitignore":      file("{{build_dir}}/\n"),
		"library/template.yaml":  file("id: library\ndescription: lib\naliases: [library, lib]\n"),
		"library/build.sh":       file("echo {{project_name}}\n"),
		"library/CMakeLists.txt": file("cmake_minimum_required(VERSION {{cmake_min_version}})\n"),
		"library/main.cpp":       file("int main() {}\n"),
		"library/gitignore":      file("build/\n"),
	}
}

func TestNewRegistry(t *testing.T) {
	t.Run("embedded_templates", func(t *testing.T) {
		fsys, err := EmbeddedTemplates()
		if err != nil {
			t.Fatalf("EmbeddedTemplates() error: %v", err)
		}
		if _, err := NewRegistry(fsys); err != nil {
			t.Fatalf("NewRegistry(embedded) error: %v", err)
		}
	})

	t.Run("missing_manifest", func(t *testing.T) {
		fsys := testTemplateFS()
		delete(fsys, "library/template.yaml")

		_, err := NewRegistry(fsys)
		if !errors.Is(err, ErrTemplateNotFound) {
			t.Errorf("expected ErrTemplateNotFound, got: %v", err)
		}
	})

	t.Run("manifest_id_mismatch", func(t *testing.T) {
		fsys := testTemplateFS()
		fsys["default/template.yaml"] = &fstest.MapFile{Data: []byte("id: exe\naliases: [default]\n")}

		_, err := NewRegistry(fsys)
		if !errors.Is(err, ErrInvalidManifest) {
			t.Errorf("expected ErrInvalidManifest, got: %v", err)
		}
	})

	t.Run("manifest_alias_mismatch", func(t *testing.T) {
		fsys := testTemplateFS()
		fsys["library/template.yaml"] = &fstest.MapFile{Data: []byte("id: library\naliases: [lib]\n")}

		_, err := NewRegistry(fsys)
		if !errors.Is(err, ErrInvalidManifest) {
			t.Errorf("expected ErrInvalidManifest, got: %v", err)
		}
	})

	t.Run("invalid_yaml", func(t *testing.T) {
		fsys := testTemplateFS()
		fsys["default/template.yaml"] = &fstest.MapFile{Data: []byte("id: [unterminated\n")}

		_, err := NewRegistry(fsys)
		if !errors.Is(err, ErrInvalidManifest) {
			t.Errorf("expected ErrInvalidManifest, got: %v", err)
		}
	})
}

func TestRegistryLookup(t *testing.T) {
	r, err := NewRegistry(testTemplateFS())
	if err != nil {
		t.Fatalf("NewRegistry error: %v", err)
	}

	t.Run("every_template_has_required_resources", func(t *testing.T) {
		for _, id := range IDs() {
			res, err := r.Lookup(id)
			if err != nil {
				t.Fatalf("Lookup(%v) error: %v", id, err)
			}
			if res.ID != id {
				t.Errorf("Lookup(%v).ID = %v", id, res.ID)
			}
			for _, name := range RequiredResources {
				if _, ok := res.Text[name]; !ok {
					t.Errorf("Lookup(%v) missing resource %s", id, name)
				}
			}
		}
	})

	t.Run("unknown_id", func(t *testing.T) {
		_, err := r.Lookup(ID(9))
		if !errors.Is(err, ErrUnknownTemplate) {
			t.Errorf("expected ErrUnknownTemplate, got: %v", err)
		}
	})

	t.Run("missing_resource", func(t *testing.T) {
		fsys := testTemplateFS()
		delete(fsys, "library/gitignore")
		r, err := NewRegistry(fsys)
		if err != nil {
			t.Fatalf("NewRegistry error: %v", err)
		}
		_, err = r.Lookup(Library)
		if !errors.Is(err, ErrTemplateNotFound) {
			t.Errorf("expected ErrTemplateNotFound, got: %v", err)
		}
	})

	t.Run("library_must_not_reference_build_dir", func(t *testing.T) {
		fsys := testTemplateFS()
		fsys["library/build.sh"] = &fstest.MapFile{Data: []byte("cp out {{build_dir}}\n")}
		r, err := NewRegistry(fsys)
		if err != nil {
			t.Fatalf("NewRegistry error: %v", err)
		}
		_, err = r.Lookup(Library)
		if !errors.Is(err, ErrInvalidManifest) {
			t.Errorf("expected ErrInvalidManifest, got: %v", err)
		}
	})
}

func TestEmbeddedLibraryOmitsBuildDir(t *testing.T) {
	fsys, err := EmbeddedTemplates()
	if err != nil {
		t.Fatalf("EmbeddedTemplates() error: %v", err)
	}
	r, err := NewRegistry(fsys)
	if err != nil {
		t.Fatalf("NewRegistry error: %v", err)
	}

	def, err := r.Lookup(Default)
	if err != nil {
		t.Fatalf("Lookup(Default) error: %v", err)
	}
	if !strings.Contains(def.Get(ResourceBuildScript), Marker(PlaceholderBuildDir)) {
		t.Error("default build.sh should install into the build output directory")
	}

	lib, err := r.Lookup(Library)
	if err != nil {
		t.Fatalf("Lookup(Library) error: %v", err)
	}
	for _, name := range []ResourceName{ResourceBuildScript, ResourceCMakeLists} {
		if strings.Contains(lib.Get(name), Marker(PlaceholderBuildDir)) {
			t.Errorf("library %s references the build output directory", name)
		}
		if lib.Get(name) == def.Get(name) {
			t.Errorf("library %s is identical to the default template", name)
		}
	}
}

func TestEmbeddedLibrarySources(t *testing.T) {
	fsys, err := EmbeddedTemplates()
	if err != nil {
		t.Fatalf("EmbeddedTemplates() error: %v", err)
	}
	r, err := NewRegistry(fsys)
	if err != nil {
		t.Fatalf("NewRegistry error: %v", err)
	}
	lib, err := r.Lookup(Library)
	if err != nil {
		t.Fatalf("Lookup(Library) error: %v", err)
	}

	// Only src/ exists in a scaffolded project.
	cmake := lib.Get(ResourceCMakeLists)
	if strings.Contains(cmake, "/include") {
		t.Errorf("library CMakeLists.txt references a missing include directory:\n%s", cmake)
	}
	if !strings.Contains(cmake, "PUBLIC ${CMAKE_CURRENT_SOURCE_DIR}/src") {
		t.Errorf("library CMakeLists.txt should export src:\n%s", cmake)
	}
	if src := lib.Get(ResourceMainSource); strings.Contains(src, "int main(") {
		t.Errorf("library source should not define main:\n%s", src)
	}
}

func TestRegistryDescribe(t *testing.T) {
	r, err := NewRegistry(testTemplateFS())
	if err != nil {
		t.Fatalf("NewRegistry error: %v", err)
	}

	desc := r.Describe()
	if len(desc) != len(IDs()) {
		t.Fatalf("Describe() returned %d entries, want %d", len(desc), len(IDs()))
	}
	if desc[0].ID != Default || desc[0].Description != "exe" {
		t.Errorf("desc[0] = %+v", desc[0])
	}
	if desc[1].ID != Library || desc[1].Description != "lib" {
		t.Errorf("desc[1] = %+v", desc[1])
	}
}
