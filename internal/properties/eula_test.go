package properties

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestAcceptEULA_RewritesFlagAndPreservesComments verifies the toggle keeps
// comment lines untouched, in order, and is idempotent.
func TestAcceptEULA_RewritesFlagAndPreservesComments(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	original := "#By changing the setting below to TRUE you are indicating your agreement to our EULA.\n" +
		"#Sat Jan 04 12:00:00 UTC 2025\n" +
		"#https://aka.ms/MinecraftEULA\n" +
		"eula=false\n"

	path := filepath.Join(dir, EULAFilename)
	require.NoError(t, os.WriteFile(path, []byte(original), 0o644))

	require.NoError(t, AcceptEULA(dir))

	first, err := os.ReadFile(path)
	require.NoError(t, err)

	expected := "#By changing the setting below to TRUE you are indicating your agreement to our EULA.\n" +
		"#Sat Jan 04 12:00:00 UTC 2025\n" +
		"#https://aka.ms/MinecraftEULA\n" +
		"eula=true\n"
	require.Equal(t, expected, string(first))

	// Second toggle is byte-identical.
	require.NoError(t, AcceptEULA(dir))

	second, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

// TestAcceptEULA_AppendsWhenFlagMissing covers a file without a flag line.
func TestAcceptEULA_AppendsWhenFlagMissing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, EULAFilename)
	require.NoError(t, os.WriteFile(path, []byte("# just a comment\n"), 0o644))

	require.NoError(t, AcceptEULA(dir))

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "# just a comment\neula=true\n", string(contents))
}

// TestAcceptEULA_MissingFile asserts the distinct error kind for an absent file.
func TestAcceptEULA_MissingFile(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, AcceptEULA(t.TempDir()), ErrEULANotFound)
}

// TestEULAExists reports presence of the flag file.
func TestEULAExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.False(t, EULAExists(dir))

	require.NoError(t, os.WriteFile(filepath.Join(dir, EULAFilename), []byte("eula=false\n"), 0o644))
	require.True(t, EULAExists(dir))
}
