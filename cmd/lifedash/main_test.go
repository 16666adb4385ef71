package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

var shortIDRegex = regexp.MustCompile(`\[([0-9a-f]{8})\]`)

// cliEnv is a throwaway config file and database for one test.
type cliEnv struct {
	t       *testing.T
	dir     string
	dbPath  string
	cfgPath string
}

func newCLIEnv(t *testing.T) *cliEnv {
	t.Helper()

	dir := t.TempDir()
	env := &cliEnv{
		t:       t,
		dir:     dir,
		dbPath:  filepath.Join(dir, "lifedash.db"),
		cfgPath: filepath.Join(dir, "config.yaml"),
	}

	cfg := fmt.Sprintf("database:\n  path: %s\nlogging:\n  level: error\n", env.dbPath)
	require.NoError(t, os.WriteFile(env.cfgPath, []byte(cfg), 0600))

	t.Cleanup(viper.Reset)
	return env
}

// run executes the root command with args and returns everything written.
func (e *cliEnv) run(args ...string) (string, error) {
	return e.runWithInput("", args...)
}

func (e *cliEnv) runWithInput(input string, args ...string) (string, error) {
	e.t.Helper()
	viper.Reset()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(append([]string{"--config", e.cfgPath}, args...))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(input))

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func (e *cliEnv) mustRun(args ...string) string {
	e.t.Helper()
	out, err := e.run(args...)
	require.NoError(e.t, err, out)
	return out
}

// createdID pulls the short id printed by an add command.
func createdID(t *testing.T, out string) string {
	t.Helper()
	m := shortIDRegex.FindStringSubmatch(out)
	require.NotNil(t, m, "no id in output: %s", out)
	return m[1]
}

func TestVersionCommand(t *testing.T) {
	env := newCLIEnv(t)
	out := env.mustRun("version")
	require.Equal(t, "lifedash dev\n", out)
}
