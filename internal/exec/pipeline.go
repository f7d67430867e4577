package exec

import (
	"errors"
	"fmt"
	"io"
	"os"
	osexec "os/exec"

	"github.com/mikaelmansson/posh/internal/builtin"
	"github.com/mikaelmansson/posh/internal/lang"
	"github.com/mikaelmansson/posh/internal/resolve"
)

// stageWait is how the pipeline collects a running stage's completion: an
// external process via cmd.Wait, or a built-in running in its own goroutine
// via a completion channel.
type stageWait func() error

// runPipeline wires len(stages) stages together with real OS pipes (one
// os.Pipe per adjacent pair) and runs them concurrently. External stages run
// as real child processes via os/exec; built-in stages run as goroutines
// with their stdin/stdout/stderr set directly to the stage's pipe ends,
// since Go has no portable in-process fork. For an external stage the parent
// closes its copies of the stage's pipe ends right after the child starts;
// for a built-in stage the goroutine closes its stdout pipe end when the
// handler returns, and its stdin pipe end is closed once the stage has been
// waited for. Either way downstream stages see EOF exactly when all writers
// of their input pipe have finished.
func (d *Dispatcher) runPipeline(stages []*lang.Stage) {
	n := len(stages)
	var prevRead *os.File
	var waits []stageWait
	var openFiles []*os.File

	closeOpenFiles := func() {
		for _, f := range openFiles {
			f.Close()
		}
	}

	for i, stage := range stages {
		isLast := i == n-1

		if len(stage.Argv) == 0 {
			if prevRead != nil {
				prevRead.Close()
				prevRead = nil
			}
			continue
		}

		var pipeWrite, nextRead *os.File
		if !isLast {
			r, w, err := os.Pipe()
			if err != nil {
				fmt.Fprintf(d.Stderr, "Error: %v\n", err)
				if prevRead != nil {
					prevRead.Close()
				}
				closeOpenFiles()
				return
			}
			pipeWrite, nextRead = w, r
		}

		var stdin io.Reader = d.Stdin
		stdinFile := prevRead
		if stdinFile != nil {
			stdin = stdinFile
		}

		var stdout io.Writer = d.Stdout
		stdoutFile := pipeWrite
		if stdoutFile == nil {
			if r, ok := stage.Redirects[lang.FDStdout]; ok {
				f, err := openRedirect(r)
				if err != nil {
					fmt.Fprintf(d.Stderr, "%s: %v\n", r.Target, err)
					if stdinFile != nil {
						stdinFile.Close()
					}
					closeOpenFiles()
					return
				}
				openFiles = append(openFiles, f)
				stdout = f
			}
		} else {
			stdout = stdoutFile
		}

		var stderr io.Writer = d.Stderr
		if r, ok := stage.Redirects[lang.FDStderr]; ok {
			f, err := openRedirect(r)
			if err != nil {
				fmt.Fprintf(d.Stderr, "%s: %v\n", r.Target, err)
				if stdinFile != nil {
					stdinFile.Close()
				}
				closeOpenFiles()
				return
			}
			openFiles = append(openFiles, f)
			stderr = f
		}

		name, args := stage.Argv[0], stage.Argv[1:]

		if handler, ok := d.Table.Get(name); ok {
			waits = append(waits, d.startBuiltinStage(name, handler, args, stdin, stdout, stderr, stdinFile, stdoutFile))
			prevRead = nextRead
			continue
		}

		path, ok := resolve.Resolve(name)
		if !ok {
			fmt.Fprintf(d.Stderr, "%s: command not found\n", name)
			if stdinFile != nil {
				stdinFile.Close()
			}
			if stdoutFile != nil {
				stdoutFile.Close()
			}
			prevRead = nextRead
			continue
		}

		cmd := osexec.Command(path, args...)
		cmd.Args = append([]string{name}, args...)
		cmd.Stdin = stdin
		cmd.Stdout = stdout
		cmd.Stderr = stderr

		if err := cmd.Start(); err != nil {
			fmt.Fprintf(d.Stderr, "Error: %v\n", err)
			if stdinFile != nil {
				stdinFile.Close()
			}
			if stdoutFile != nil {
				stdoutFile.Close()
			}
			prevRead = nextRead
			continue
		}

		// The child has its own duplicated copies of these fds; the
		// parent's copies are no longer needed.
		if stdinFile != nil {
			stdinFile.Close()
		}
		if stdoutFile != nil {
			stdoutFile.Close()
		}

		c := cmd
		waits = append(waits, func() error { return c.Wait() })
		prevRead = nextRead
	}

	if prevRead != nil {
		prevRead.Close()
	}

	for _, wait := range waits {
		if err := wait(); err != nil {
			var exitErr *osexec.ExitError
			if !errors.As(err, &exitErr) {
				fmt.Fprintf(d.Stderr, "Error: %v\n", err)
			}
		}
	}

	closeOpenFiles()
}

// startBuiltinStage runs a built-in as a goroutine wired directly to the
// stage's pipe ends and returns a stageWait that blocks until it finishes.
// The goroutine, not the caller, owns closing stdoutFile, since closing it
// immediately (as happens for a real child process) would sever the pipe
// before the goroutine has written anything.
func (d *Dispatcher) startBuiltinStage(name string, handler builtin.Handler, args []string, stdin io.Reader, stdout, stderr io.Writer, stdinFile, stdoutFile *os.File) stageWait {
	done := make(chan struct{})

	go func() {
		defer close(done)
		env := &builtin.Env{Stdin: stdin, Stdout: stdout, Stderr: stderr, Shell: d.Shell, Table: d.Table}
		if err := handler(env, args); err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", name, err)
		}
		if stdoutFile != nil {
			stdoutFile.Close()
		}
	}()

	return func() error {
		<-done
		if stdinFile != nil {
			stdinFile.Close()
		}
		return nil
	}
}
