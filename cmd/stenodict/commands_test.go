package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd(t *testing.T) {
	root := newRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "stenodict dev")
}

func TestRootCmd_Subcommands(t *testing.T) {
	root := newRootCmd()

	for _, name := range []string{"list", "add", "update", "delete", "undo", "status", "lookup", "build", "reset", "version"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}
}

func TestRootCmd_MissingConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("STENODICT_CONFIG", "")

	root := newRootCmd()
	root.SetArgs([]string{
		"--config", filepath.Join(dir, "missing.yaml"),
		"delete", "x",
	})
	assert.Error(t, root.Execute())
}

func TestRootCmd_ArgsValidation(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"add", "KAT"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	assert.Error(t, root.Execute())
}
