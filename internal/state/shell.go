// Package state holds the shell's process-lifetime state: its history
// store and the path to its HISTFILE, if any. Current directory and
// environment are not duplicated here; they are read through directly from
// the OS (os.Getwd, os.Chdir, os.Getenv) since the process itself is the
// single source of truth for them.
package state

import "github.com/mikaelmansson/posh/internal/histfile"

// Shell is the state shared across one shell session.
type Shell struct {
	History  *histfile.Store
	HistFile string
}

// New creates a Shell wired to the given history store and HISTFILE path.
// HistFile may be empty, in which case history is not persisted at session
// end (an explicit `history -w`/`-a` still writes to the path it is given).
func New(history *histfile.Store, histFile string) *Shell {
	return &Shell{History: history, HistFile: histFile}
}

// FlushHistory writes the full in-memory history to HistFile, if set. It is
// the single point at which history is persisted outside of an explicit
// `history -w`/`-a` invocation.
func (s *Shell) FlushHistory() error {
	if s.HistFile == "" {
		return nil
	}
	return s.History.WriteFile(s.HistFile)
}
