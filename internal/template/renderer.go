package template

import (
	"io"
	"log/slog"
	"path"
	"regexp"
	"slices"

	"github.com/modu-ai/cppnew/internal/defs"
)

// unexpandedMarkerPattern detects leftover {{name}} markers in rendered output.
var unexpandedMarkerPattern = regexp.MustCompile(`\{\{[A-Za-z_][A-Za-z0-9_.]*\}\}`)

// RenderedFile is one file of a rendered project.
type RenderedFile struct {
	Path    string // slash-separated, relative to the project root
	Content string
}

// RenderedFileSet is the complete on-disk layout of a rendered template.
// It is produced once per invocation and handed to the materializer as a value.
type RenderedFileSet struct {
	Template ID
	// Files are written in order; parent directories are created on demand.
	Files []RenderedFile
	// Dirs are created after Files, including empty placeholder directories.
	Dirs []string
	// IgnoreFile is written only after version control has been initialized.
	IgnoreFile RenderedFile
	// Unresolved lists markers left untouched because no value is known for them.
	Unresolved []string
}

// fileLayout maps template resources to their destination paths.
var fileLayout = []struct {
	resource ResourceName
	path     string
}{
	{ResourceBuildScript, defs.BuildScript},
	{ResourceCMakeLists, defs.CMakeLists},
	{ResourceMainSource, path.Join(defs.SourceDir, defs.MainSource)},
}

// Renderer substitutes placeholder values into template resources.
type Renderer interface {
	// Render replaces every known marker in every resource and lays the
	// results out as a RenderedFileSet. Unknown markers pass through unchanged.
	Render(res Resources, vals Values) RenderedFileSet
}

// renderer is the concrete implementation of Renderer.
type renderer struct {
	logger *slog.Logger
}

// NewRenderer creates a Renderer. A nil logger discards output.
func NewRenderer(logger *slog.Logger) Renderer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &renderer{logger: logger.With("module", "template")}
}

// Render implements Renderer.
func (r *renderer) Render(res Resources, vals Values) RenderedFileSet {
	rep := vals.replacer()
	set := RenderedFileSet{Template: res.ID}

	for _, entry := range fileLayout {
		content := rep.Replace(res.Get(entry.resource))
		set.Files = append(set.Files, RenderedFile{Path: entry.path, Content: content})
		set.Unresolved = appendUnresolved(set.Unresolved, content)
	}

	set.Dirs = append([]string{defs.SourceDir}, defs.PlaceholderDirs...)

	ignore := rep.Replace(res.Get(ResourceGitIgnore))
	set.IgnoreFile = RenderedFile{Path: defs.GitIgnore, Content: ignore}
	set.Unresolved = appendUnresolved(set.Unresolved, ignore)

	if len(set.Unresolved) > 0 {
		r.logger.Debug("unresolved markers left in rendered output",
			"template", res.ID.String(),
			"markers", set.Unresolved,
		)
	}
	r.logger.Debug("template rendered",
		"template", res.ID.String(),
		"files", len(set.Files),
		"dirs", len(set.Dirs),
	)
	return set
}

// appendUnresolved adds markers found in content that are not yet listed.
func appendUnresolved(list []string, content string) []string {
	for _, m := range unexpandedMarkerPattern.FindAllString(content, -1) {
		if !slices.Contains(list, m) {
			list = append(list, m)
		}
	}
	return list
}
