package defs

import "io/fs"

// File system permissions for scaffolded artifacts.
const (
	DirPerm        fs.FileMode = 0o755
	FilePerm       fs.FileMode = 0o644
	ExecutablePerm fs.FileMode = 0o755
)
