// Command posh is an interactive POSIX-style command shell.
package main

import (
	"fmt"
	"os"

	"github.com/mikaelmansson/posh/internal/builtin"
	"github.com/mikaelmansson/posh/internal/config"
	"github.com/mikaelmansson/posh/internal/histfile"
	"github.com/mikaelmansson/posh/internal/repl"
	"github.com/mikaelmansson/posh/internal/state"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "posh: %v\n", err)
	}

	histFile := cfg.HistFile
	if envFile := os.Getenv("HISTFILE"); envFile != "" {
		histFile = envFile
	}

	history := histfile.New(cfg.HistorySize)
	if histFile != "" {
		if err := history.ReadFile(histFile); err != nil && !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "posh: %s: %v\n", histFile, err)
		}
	}

	sh := state.New(history, histFile)
	table := builtin.NewTable()

	shell, err := repl.New(sh, table)
	if err != nil {
		fmt.Fprintf(os.Stderr, "posh: %v\n", err)
		os.Exit(1)
	}

	shell.Run()
}
