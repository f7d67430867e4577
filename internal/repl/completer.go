package repl

import (
	"os"
	"sort"
	"strings"

	"github.com/chzyer/readline"

	"github.com/mikaelmansson/posh/internal/builtin"
)

// poshCompleter offers built-in names as the first word and local filesystem
// entries for every word after that. It does not know about executables on
// PATH; only local names are completed.
type poshCompleter struct {
	table *builtin.Table
}

func newCompleter(table *builtin.Table) readline.AutoCompleter {
	return &poshCompleter{table: table}
}

func (c *poshCompleter) Do(line []rune, pos int) ([][]rune, int) {
	text := string(line[:pos])
	fields := strings.Fields(text)

	firstWord := len(fields) == 0 || (len(fields) == 1 && !strings.HasSuffix(text, " "))
	if firstWord {
		prefix := ""
		if len(fields) == 1 {
			prefix = fields[0]
		}
		return c.completeCommand(prefix)
	}

	lastSpace := strings.LastIndex(text, " ")
	partial := text[lastSpace+1:]
	return c.completePath(partial)
}

func (c *poshCompleter) completeCommand(prefix string) ([][]rune, int) {
	var names []string
	for _, name := range c.table.Names() {
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	out := make([][]rune, len(names))
	for i, n := range names {
		out[i] = []rune(n[len(prefix):] + " ")
	}
	return out, len(prefix)
}

func (c *poshCompleter) completePath(partial string) ([][]rune, int) {
	dir := "."
	prefix := partial
	if idx := strings.LastIndex(partial, "/"); idx >= 0 {
		dir = partial[:idx+1]
		prefix = partial[idx+1:]
		if dir == "" {
			dir = "/"
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, 0
	}

	var matches []string
	for _, e := range entries {
		if !strings.HasPrefix(e.Name(), prefix) {
			continue
		}
		name := e.Name()
		if e.IsDir() {
			name += "/"
		}
		matches = append(matches, name)
	}
	sort.Strings(matches)

	out := make([][]rune, len(matches))
	for i, m := range matches {
		out[i] = []rune(m[len(prefix):])
	}
	return out, len(prefix)
}
