package cli

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Command is a supported top-level command.
type Command int

const (
	// CommandNew scaffolds a new project.
	CommandNew Command = iota
	// CommandHelp prints the usage text.
	CommandHelp
)

var commandNames = map[Command]string{
	CommandNew:  "new",
	CommandHelp: "help",
}

var commandDescriptions = map[Command]string{
	CommandNew:  "Create a new C++ project in ./<name>",
	CommandHelp: "Show this help",
}

// Commands returns every command in usage order.
func Commands() []Command {
	return []Command{CommandNew, CommandHelp}
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return fmt.Sprintf("command(%d)", int(c))
}

// Description returns the one-line usage description of c.
func (c Command) Description() string {
	return commandDescriptions[c]
}

var lower = cases.Lower(language.Und)

// ParseCommand resolves a command token. Matching ignores case and
// surrounding whitespace; anything else yields ErrUnknownCommand.
func ParseCommand(raw string) (Command, error) {
	name := lower.String(strings.TrimSpace(raw))
	for _, c := range Commands() {
		if commandNames[c] == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCommand, raw)
}
