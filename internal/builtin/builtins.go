package builtin

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mikaelmansson/posh/internal/resolve"
)

func exit(env *Env, args []string) error {
	_ = env.Shell.FlushHistory()
	os.Exit(0)
	return nil
}

func echo(env *Env, args []string) error {
	fmt.Fprintln(env.Stdout, strings.Join(args, " "))
	return nil
}

func pwd(env *Env, args []string) error {
	dir, err := os.Getwd()
	if err != nil {
		return err
	}
	fmt.Fprintln(env.Stdout, dir)
	return nil
}

func cd(env *Env, args []string) error {
	target := "~"
	if len(args) > 0 {
		target = args[0]
	}

	resolved := target
	if resolved == "~" || strings.HasPrefix(resolved, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			if resolved == "~" {
				resolved = home
			} else {
				resolved = filepath.Join(home, resolved[2:])
			}
		}
	}

	if err := os.Chdir(resolved); err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintf(env.Stdout, "cd: %s: No such file or directory\n", target)
			return nil
		}
		return err
	}
	return nil
}

func typeCmd(env *Env, args []string) error {
	if len(args) == 0 {
		return nil
	}
	name := args[0]

	if env.Table.Has(name) {
		fmt.Fprintf(env.Stdout, "%s is a shell builtin\n", name)
		return nil
	}

	if path, ok := resolve.Resolve(name); ok {
		fmt.Fprintf(env.Stdout, "%s is %s\n", name, path)
		return nil
	}

	fmt.Fprintf(env.Stdout, "%s: not found\n", name)
	return nil
}

func atoiNonNegative(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
