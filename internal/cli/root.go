package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// newRootCmd creates the root command. Flag parsing is disabled so that
// every raw token, flag spellings included, reaches App.Dispatch untouched.
func newRootCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "cppnew <command> [template] [flags...]",
		Short: "Scaffold a new C++ project built with CMake",
		Long: `cppnew creates a ready-to-build C++ project: a CMakeLists.txt,
a build script, a starter source file and empty directories for
platform-specific external libraries.`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Dispatch(cmd.Context(), args)
		},
	}
}

// @MX:ANCHOR: [AUTO] Execute is the main entry point for the cppnew CLI
// @MX:REASON: [AUTO] fan_in=1, called from cmd/cppnew/main.go
// Execute initializes dependencies and runs the root command.
func Execute() error {
	if err := InitDependencies(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return newRootCmd(deps.App(os.Stdout, os.Stderr)).Execute()
}
