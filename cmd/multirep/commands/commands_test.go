package commands

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplaceCmd(t *testing.T) {
	cmd := NewReplaceCmd()
	out := &bytes.Buffer{}
	cmd.SetIn(strings.NewReader("Hana is cute"))
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"Hana", "Minami", "cute", "kawaii"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "Minami is kawaii", out.String())
}

func TestReplaceCmdFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("foo bar"), 0644))

	cmd := NewReplaceCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--file", path, "foo", "baz"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "baz bar", out.String())
}

func TestReplaceCmdOddArguments(t *testing.T) {
	cmd := NewReplaceCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"only"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OLD NEW pairs")
}

func TestExchangeCmd(t *testing.T) {
	cmd := NewExchangeCmd()
	out := &bytes.Buffer{}
	cmd.SetIn(strings.NewReader("Both Hina and Hinata are kawaii"))
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"Hina", "Hinata"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "Both Hinata and Hina are kawaii", out.String())
}

func TestExchangeCmdEmptyPattern(t *testing.T) {
	cmd := NewExchangeCmd()
	cmd.SetIn(strings.NewReader("whatever"))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"", "x"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-empty")
}

// writeRules writes a rules file pointing at root and returns its path
func writeRules(t *testing.T, root string) string {
	t.Helper()
	content := fmt.Sprintf(`
replacements:
  - old: Hana
    new: Minami
paths:
  root: %q
`, root)
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestApplyCmd(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "a.txt")
	require.NoError(t, os.WriteFile(target, []byte("Hana is cute"), 0644))

	cfgPath := writeRules(t, root)
	opts := &Opts{ConfigFile: &cfgPath}

	cmd := NewApplyCmd(opts)
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})

	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "Minami is cute", string(data))
	assert.Contains(t, out.String(), "1 files changed, 1 replacements")
}

func TestStatusCmdDoesNotWrite(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "a.txt")
	require.NoError(t, os.WriteFile(target, []byte("Hana is cute"), 0644))

	cfgPath := writeRules(t, root)
	opts := &Opts{ConfigFile: &cfgPath}

	cmd := NewStatusCmd(opts)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "Hana is cute", string(data), "status must not modify files")
}

func TestApplyCmdMissingConfig(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")
	opts := &Opts{ConfigFile: &missing}

	cmd := NewApplyCmd(opts)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config")
}
