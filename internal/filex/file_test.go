package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureDir_CreatesNested(t *testing.T) {
	base := t.TempDir()
	want := filepath.Join(base, "a", "b")

	got, err := EnsureDir(want)
	require.NoError(t, err)
	require.Equal(t, want, got)

	info, err := os.Stat(got)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestEnsureDir_ExistingIsFine(t *testing.T) {
	base := t.TempDir()

	got, err := EnsureDir(base)
	require.NoError(t, err)
	require.Equal(t, base, got)
}
