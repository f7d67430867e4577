// Package exec parses and executes one already-lexed input line: a single
// stage runs directly under an I/O scope, while multiple pipe-separated
// stages run concurrently, wired together with real OS pipes.
package exec

import (
	"errors"
	"fmt"
	"io"
	osexec "os/exec"

	"github.com/mikaelmansson/posh/internal/builtin"
	"github.com/mikaelmansson/posh/internal/lang"
	"github.com/mikaelmansson/posh/internal/resolve"
	"github.com/mikaelmansson/posh/internal/state"
)

// Dispatcher lexes, parses, and executes input lines against a shared
// builtin table and shell state.
type Dispatcher struct {
	Shell  *state.Shell
	Table  *builtin.Table
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// New creates a Dispatcher.
func New(shell *state.Shell, table *builtin.Table, stdin io.Reader, stdout, stderr io.Writer) *Dispatcher {
	return &Dispatcher{Shell: shell, Table: table, Stdin: stdin, Stdout: stdout, Stderr: stderr}
}

// RunLine lexes, parses, and executes one input line. Lex and parse errors
// are reported as diagnostics to Stderr; they never abort the session.
func (d *Dispatcher) RunLine(line string) {
	tokens, err := lang.Lex(line)
	if err != nil {
		fmt.Fprintln(d.Stderr, "Syntax error: unbalanced quotes")
		return
	}

	segments := lang.SplitPipeline(tokens)
	if len(segments) == 0 {
		return
	}

	stages := make([]*lang.Stage, len(segments))
	for i, seg := range segments {
		stage, err := lang.ParseStage(seg)
		if err != nil {
			fmt.Fprintln(d.Stderr, "Syntax error: expected filename after redirection operator")
			return
		}
		stages[i] = stage
	}

	if len(stages) == 1 {
		d.runSingle(stages[0])
		return
	}
	d.runPipeline(stages)
}

func (d *Dispatcher) runSingle(stage *lang.Stage) {
	if len(stage.Argv) == 0 {
		return
	}

	scope, err := openScope(stage, d.Stdout, d.Stderr)
	if err != nil {
		fmt.Fprintf(d.Stderr, "%s: %v\n", stage.Argv[0], err)
		return
	}
	defer scope.Close()

	name, args := stage.Argv[0], stage.Argv[1:]

	if handler, ok := d.Table.Get(name); ok {
		env := &builtin.Env{Stdin: d.Stdin, Stdout: scope.Stdout, Stderr: scope.Stderr, Shell: d.Shell, Table: d.Table}
		if err := handler(env, args); err != nil {
			fmt.Fprintf(scope.Stderr, "%s: %v\n", name, err)
		}
		return
	}

	path, ok := resolve.Resolve(name)
	if !ok {
		fmt.Fprintf(d.Stderr, "%s: command not found\n", name)
		return
	}

	cmd := osexec.Command(path, args...)
	cmd.Args = append([]string{name}, args...)
	cmd.Stdin = d.Stdin
	cmd.Stdout = scope.Stdout
	cmd.Stderr = scope.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *osexec.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintf(d.Stderr, "Error: %v\n", err)
		}
	}
}
