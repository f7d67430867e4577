package exec

import (
	"io"
	"os"

	"github.com/mikaelmansson/posh/internal/lang"
)

// ioScope opens the files a single non-pipeline stage's redirections name,
// and exposes the resulting stdout/stderr writers. Close releases any files
// it opened.
type ioScope struct {
	Stdout io.Writer
	Stderr io.Writer
	files  []*os.File
}

func openScope(stage *lang.Stage, baseOut, baseErr io.Writer) (*ioScope, error) {
	scope := &ioScope{Stdout: baseOut, Stderr: baseErr}

	if r, ok := stage.Redirects[lang.FDStdout]; ok {
		f, err := openRedirect(r)
		if err != nil {
			return nil, err
		}
		scope.files = append(scope.files, f)
		scope.Stdout = f
	}

	if r, ok := stage.Redirects[lang.FDStderr]; ok {
		f, err := openRedirect(r)
		if err != nil {
			scope.Close()
			return nil, err
		}
		scope.files = append(scope.files, f)
		scope.Stderr = f
	}

	return scope, nil
}

func openRedirect(r lang.Redirection) (*os.File, error) {
	flags := os.O_CREATE | os.O_WRONLY
	if r.Mode == lang.Append {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	return os.OpenFile(r.Target, flags, 0o644)
}

func (s *ioScope) Close() {
	for _, f := range s.files {
		f.Close()
	}
}
