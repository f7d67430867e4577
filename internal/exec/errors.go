package exec

import "errors"

// ErrCommandNotFound names the condition of a stage's command name resolving
// to nothing on PATH. Dispatch does not return it: it prints the
// "<name>: command not found" diagnostic directly and carries on.
var ErrCommandNotFound = errors.New("command not found")
