package builtin

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
)

// history prints the in-memory log (optionally limited to the last N
// entries), or with -r/-w/-a loads from, overwrites, or appends to a file.
func history(env *Env, args []string) error {
	fs := pflag.NewFlagSet("history", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var readPath, writePath, appendPath string
	fs.StringVarP(&readPath, "read", "r", "", "load history entries from file")
	fs.StringVarP(&writePath, "write", "w", "", "overwrite file with the full history")
	fs.StringVarP(&appendPath, "append", "a", "", "append new history entries to file")

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(env.Stderr, "history: %v\n", err)
		return nil
	}

	switch {
	case readPath != "":
		if err := env.Shell.History.ReadFile(readPath); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				fmt.Fprintf(env.Stdout, "history: %s: No such file or directory\n", readPath)
				return nil
			}
			return err
		}
		return nil
	case writePath != "":
		return env.Shell.History.WriteFile(writePath)
	case appendPath != "":
		return env.Shell.History.AppendFile(appendPath)
	}

	entries := env.Shell.History.All()
	start := 0
	rest := fs.Args()
	if len(rest) > 0 {
		if n, ok := atoiNonNegative(rest[0]); ok && n < len(entries) {
			start = len(entries) - n
		}
	}

	for i := start; i < len(entries); i++ {
		fmt.Fprintf(env.Stdout, "%4d  %s\n", i+1, entries[i])
	}
	return nil
}
