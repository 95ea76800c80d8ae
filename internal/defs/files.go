package defs

// Artifact names written into a scaffolded project.
const (
	// BuildScript is the shell script that configures and builds the project.
	BuildScript = "build.sh"

	// CMakeLists is the CMake build-configuration file.
	CMakeLists = "CMakeLists.txt"

	// MainSource is the starter translation unit under SourceDir.
	MainSource = "main.cpp"

	// GitIgnore is the ignore file written after repository initialization.
	GitIgnore = ".gitignore"

	// GitDir is the repository metadata directory created by the VCS backend.
	GitDir = ".git"
)

// Project directory layout (slash-separated, relative to the project root).
const (
	SourceDir        = "src"
	ExternalLibWin   = "external/lib/win"
	ExternalLibLinux = "external/lib/linux"
)

// PlaceholderDirs lists the empty directories reserved for platform-specific
// external dependencies.
var PlaceholderDirs = []string{
	ExternalLibWin,
	ExternalLibLinux,
}
