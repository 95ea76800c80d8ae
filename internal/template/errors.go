package template

import "errors"

// Sentinel errors for the template package.
var (
	// ErrUnknownTemplate indicates a template name outside the built-in set.
	ErrUnknownTemplate = errors.New("template: unknown template")

	// ErrTemplateNotFound indicates a template resource is missing from the embedded filesystem.
	ErrTemplateNotFound = errors.New("template: resource not found")

	// ErrInvalidManifest indicates a template.yaml that disagrees with the built-in template set.
	ErrInvalidManifest = errors.New("template: invalid manifest")
)
