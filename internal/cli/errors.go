package cli

import "errors"

// ErrUnknownCommand indicates a command token outside the supported set.
var ErrUnknownCommand = errors.New("unknown command")
