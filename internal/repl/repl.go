// Package repl drives the interactive read-eval-print loop: it prints the
// prompt, reads one line, dispatches it, and persists history on exit.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"golang.org/x/term"

	"github.com/mikaelmansson/posh/internal/builtin"
	shexec "github.com/mikaelmansson/posh/internal/exec"
	"github.com/mikaelmansson/posh/internal/state"
)

const prompt = "$ "

// Shell drives the REPL loop against a given shell state and builtin table.
type Shell struct {
	state *state.Shell
	table *builtin.Table

	rl          *readline.Instance
	scanner     *bufio.Scanner
	interactive bool
}

// New builds a Shell. When stdin is a terminal, input is read through
// github.com/chzyer/readline (arrow-key recall, tab completion, ^C/^D
// handling); otherwise it falls back to a plain line scanner so piped or
// scripted input keeps working without a pty.
func New(st *state.Shell, table *builtin.Table) (*Shell, error) {
	sh := &Shell{state: st, table: table}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		rl, err := readline.NewEx(&readline.Config{
			Prompt:          prompt,
			AutoComplete:    newCompleter(table),
			InterruptPrompt: "^C",
			EOFPrompt:       "exit",
		})
		if err != nil {
			return nil, fmt.Errorf("posh: initializing readline: %w", err)
		}
		for _, entry := range st.History.All() {
			rl.SaveHistory(entry)
		}
		sh.rl = rl
		sh.interactive = true
		return sh, nil
	}

	sh.scanner = bufio.NewScanner(os.Stdin)
	return sh, nil
}

func (sh *Shell) readLine() (string, error) {
	if sh.interactive {
		return sh.rl.Readline()
	}

	fmt.Fprint(os.Stdout, prompt)
	if !sh.scanner.Scan() {
		if err := sh.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return sh.scanner.Text(), nil
}

// Run loops reading and dispatching lines until EOF, then flushes history.
func (sh *Shell) Run() {
	if sh.interactive {
		defer sh.rl.Close()
	}
	defer func() { _ = sh.state.FlushHistory() }()

	dispatcher := shexec.New(sh.state, sh.table, os.Stdin, os.Stdout, os.Stderr)

	for {
		line, err := sh.readLine()
		if err == readline.ErrInterrupt {
			continue
		}
		if err != nil {
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		sh.state.History.Append(line)
		dispatcher.RunLine(line)
	}
}
