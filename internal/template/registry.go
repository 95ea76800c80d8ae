package template

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed templates
var embedded embed.FS

// EmbeddedTemplates returns the built-in template tree rooted at the
// per-template directories ("default/", "library/").
func EmbeddedTemplates() (fs.FS, error) {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		return nil, fmt.Errorf("embedded templates: %w", err)
	}
	return sub, nil
}

// ResourceName names one text resource inside a template.
type ResourceName string

// Resources every template must provide.
const (
	ResourceBuildScript ResourceName = "build.sh"
	ResourceCMakeLists  ResourceName = "CMakeLists.txt"
	ResourceMainSource  ResourceName = "main.cpp"
	ResourceGitIgnore   ResourceName = "gitignore"
)

// RequiredResources lists the resources looked up for every template.
var RequiredResources = []ResourceName{
	ResourceBuildScript,
	ResourceCMakeLists,
	ResourceMainSource,
	ResourceGitIgnore,
}

// manifestFile is the per-template metadata file.
const manifestFile = "template.yaml"

// Manifest is the metadata stored alongside each template's resources.
type Manifest struct {
	ID          string   `yaml:"id"`
	Description string   `yaml:"description"`
	Aliases     []string `yaml:"aliases"`
}

// Resources holds the raw text of one template's resources.
type Resources struct {
	ID   ID
	Text map[ResourceName]string
}

// Get returns the raw text of the named resource.
func (r Resources) Get(name ResourceName) string {
	return r.Text[name]
}

// Descriptor summarizes a template for listings.
type Descriptor struct {
	ID          ID
	Description string
	Aliases     []string
}

// Registry maps template IDs to their text resources.
type Registry struct {
	fsys      fs.FS
	manifests map[ID]Manifest
}

// NewRegistry loads and checks the manifest of every built-in template.
// In production fsys comes from EmbeddedTemplates; tests use testing/fstest.MapFS.
func NewRegistry(fsys fs.FS) (*Registry, error) {
	r := &Registry{
		fsys:      fsys,
		manifests: make(map[ID]Manifest, len(IDs())),
	}
	for _, id := range IDs() {
		m, err := r.loadManifest(id)
		if err != nil {
			return nil, err
		}
		r.manifests[id] = m
	}
	return r, nil
}

// loadManifest reads template.yaml for id and checks it against the built-in set.
func (r *Registry) loadManifest(id ID) (Manifest, error) {
	p := path.Join(id.String(), manifestFile)
	data, err := fs.ReadFile(r.fsys, p)
	if err != nil {
		return Manifest{}, fmt.Errorf("%w: %s", ErrTemplateNotFound, p)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("%w: parse %s: %v", ErrInvalidManifest, p, err)
	}

	if m.ID != id.String() {
		return Manifest{}, fmt.Errorf("%w: %s declares id %q, want %q", ErrInvalidManifest, p, m.ID, id.String())
	}

	got := slices.Clone(m.Aliases)
	want := slices.Clone(id.Aliases())
	slices.Sort(got)
	slices.Sort(want)
	if !slices.Equal(got, want) {
		return Manifest{}, fmt.Errorf("%w: %s declares aliases %v, want %v", ErrInvalidManifest, p, m.Aliases, id.Aliases())
	}

	return m, nil
}

// Lookup returns the raw resources of a template.
func (r *Registry) Lookup(id ID) (Resources, error) {
	if !id.IsValid() {
		return Resources{}, fmt.Errorf("%w: %s", ErrUnknownTemplate, id)
	}

	res := Resources{
		ID:   id,
		Text: make(map[ResourceName]string, len(RequiredResources)),
	}
	for _, name := range RequiredResources {
		p := path.Join(id.String(), string(name))
		data, err := fs.ReadFile(r.fsys, p)
		if err != nil {
			return Resources{}, fmt.Errorf("%w: %s", ErrTemplateNotFound, p)
		}
		res.Text[name] = string(data)
	}

	if err := checkBuildDirUsage(res); err != nil {
		return Resources{}, err
	}
	return res, nil
}

// checkBuildDirUsage rejects templates that reference the build output
// directory in their build files without installing into it.
func checkBuildDirUsage(res Resources) error {
	if res.ID.usesBuildDir() {
		return nil
	}
	marker := Marker(PlaceholderBuildDir)
	for _, name := range []ResourceName{ResourceBuildScript, ResourceCMakeLists} {
		if strings.Contains(res.Get(name), marker) {
			return fmt.Errorf("%w: %s/%s references %s", ErrInvalidManifest, res.ID, name, marker)
		}
	}
	return nil
}

// Describe returns a descriptor for every built-in template, in declaration order.
func (r *Registry) Describe() []Descriptor {
	out := make([]Descriptor, 0, len(r.manifests))
	for _, id := range IDs() {
		m := r.manifests[id]
		out = append(out, Descriptor{
			ID:          id,
			Description: m.Description,
			Aliases:     id.Aliases(),
		})
	}
	return out
}
