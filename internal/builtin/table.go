// Package builtin implements the shell's internal commands: exit, echo,
// pwd, cd, type, and history.
package builtin

import (
	"io"
	"sort"

	"github.com/mikaelmansson/posh/internal/state"
)

// Env is the execution context a Handler runs with: the streams it should
// write to (already resolved for any per-stage redirection) and a handle on
// shared shell state.
type Env struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Shell  *state.Shell
	Table  *Table
}

// Handler implements one built-in command.
type Handler func(env *Env, args []string) error

// Table is the name -> Handler dispatch table. A Table built by NewTable is
// safe to share across an entire session; it is not mutated after startup
// except by tests that register mocks.
type Table struct {
	handlers map[string]Handler
}

// NewTable builds the standard built-in table.
func NewTable() *Table {
	t := &Table{handlers: make(map[string]Handler)}
	t.handlers["exit"] = exit
	t.handlers["echo"] = echo
	t.handlers["pwd"] = pwd
	t.handlers["cd"] = cd
	t.handlers["type"] = typeCmd
	t.handlers["history"] = history
	return t
}

// Get looks up the handler for name.
func (t *Table) Get(name string) (Handler, bool) {
	h, ok := t.handlers[name]
	return h, ok
}

// Has reports whether name is a registered built-in.
func (t *Table) Has(name string) bool {
	_, ok := t.handlers[name]
	return ok
}

// Names returns every registered built-in name, sorted.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.handlers))
	for name := range t.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Register adds or replaces a handler. It exists for tests that need to
// inject mock commands into a pipeline.
func (t *Table) Register(name string, h Handler) {
	t.handlers[name] = h
}

// Unregister removes a handler previously added with Register.
func (t *Table) Unregister(name string) {
	delete(t.handlers, name)
}
