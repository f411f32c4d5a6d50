package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trknhr/hmmtag/internal/store"
)

func TestExecute_ClosesOwnedDBOnError(t *testing.T) {
	dir := t.TempDir()
	root, a := newRootCmd(nil)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{
		"--config", filepath.Join(dir, "missing.yaml"),
		"--db", filepath.Join(dir, "hmmtag.db"),
		"--log-level", "none",
		"tag", "--name", "nope", "dog",
	})

	err := execute(root, a)
	assert.ErrorIs(t, err, store.ErrModelNotFound)

	require.NotNil(t, a.db, "the command should have opened the database")
	assert.Error(t, a.db.Ping(), "database must be closed after a failed command")
	assert.NoError(t, a.close(), "closing twice is a no-op")
}

func TestExecute_LeavesInjectedDBOpen(t *testing.T) {
	db, err := store.OpenDB(filepath.Join(t.TempDir(), "hmmtag.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	root, a := newRootCmd(db)
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml"), "--log-level", "none", "models"})

	require.NoError(t, execute(root, a))
	assert.NoError(t, db.Ping())
}
