package builtin

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikaelmansson/posh/internal/histfile"
	"github.com/mikaelmansson/posh/internal/state"
)

func newTestEnv(t *testing.T) (*Env, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	table := NewTable()
	sh := state.New(histfile.New(0), "")
	return &Env{Stdout: &stdout, Stderr: &stderr, Shell: sh, Table: table}, &stdout, &stderr
}

func TestEcho_JoinsArgsWithSingleSpace(t *testing.T) {
	env, stdout, _ := newTestEnv(t)
	require.NoError(t, echo(env, []string{"hello", "world"}))
	assert.Equal(t, "hello world\n", stdout.String())
}

func TestPwd_PrintsCurrentDirectory(t *testing.T) {
	dir := t.TempDir()
	oldwd, err := os.Getwd()
	require.NoError(t, err)
	defer os.Chdir(oldwd)
	require.NoError(t, os.Chdir(dir))

	env, stdout, _ := newTestEnv(t)
	require.NoError(t, pwd(env, nil))

	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	assert.Equal(t, resolved+"\n", stdout.String())
}

func TestCd_NoSuchDirectory(t *testing.T) {
	oldwd, err := os.Getwd()
	require.NoError(t, err)
	defer os.Chdir(oldwd)

	env, stdout, _ := newTestEnv(t)
	require.NoError(t, cd(env, []string{"/no/such/path/posh-test"}))
	assert.Equal(t, "cd: /no/such/path/posh-test: No such file or directory\n", stdout.String())
}

func TestCd_ChangesDirectory(t *testing.T) {
	dir := t.TempDir()
	oldwd, err := os.Getwd()
	require.NoError(t, err)
	defer os.Chdir(oldwd)

	env, _, _ := newTestEnv(t)
	require.NoError(t, cd(env, []string{dir}))

	cwd, err := os.Getwd()
	require.NoError(t, err)
	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	assert.Equal(t, resolved, cwd)
}

func TestType_Builtin(t *testing.T) {
	env, stdout, _ := newTestEnv(t)
	require.NoError(t, typeCmd(env, []string{"echo"}))
	assert.Equal(t, "echo is a shell builtin\n", stdout.String())
}

func TestType_NotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	env, stdout, _ := newTestEnv(t)
	require.NoError(t, typeCmd(env, []string{"nope-not-anywhere"}))
	assert.Equal(t, "nope-not-anywhere: not found\n", stdout.String())
}

func TestHistory_ListWithLimit(t *testing.T) {
	env, stdout, _ := newTestEnv(t)
	env.Shell.History.Append("one")
	env.Shell.History.Append("two")
	env.Shell.History.Append("three")

	require.NoError(t, history(env, []string{"2"}))
	assert.Equal(t, "   2  two\n   3  three\n", stdout.String())
}

func TestHistory_WriteThenRead(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hist")

	env, _, _ := newTestEnv(t)
	env.Shell.History.Append("cmd1")
	env.Shell.History.Append("cmd2")

	require.NoError(t, history(env, []string{"-w", path}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "cmd1\ncmd2\n", string(data))

	env2, _, _ := newTestEnv(t)
	require.NoError(t, history(env2, []string{"-r", path}))
	assert.Equal(t, []string{"cmd1", "cmd2"}, env2.Shell.History.All())
}

func TestHistory_ReadMissingFile(t *testing.T) {
	env, stdout, _ := newTestEnv(t)
	missing := filepath.Join(t.TempDir(), "nope")
	require.NoError(t, history(env, []string{"-r", missing}))
	assert.Contains(t, stdout.String(), "No such file or directory")
}
