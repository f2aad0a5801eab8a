package stash_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schmitthub/stash"
)

func TestLoadEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "# comment line\nSTASH_TEST_ALPHA=hello\nSTASH_TEST_BETA=\"quoted value\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	// Setenv registers cleanup so the applied values don't leak out of the test.
	t.Setenv("STASH_TEST_ALPHA", "")
	t.Setenv("STASH_TEST_BETA", "")

	env, err := stash.LoadEnv(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", env["STASH_TEST_ALPHA"])
	assert.Equal(t, "quoted value", env["STASH_TEST_BETA"])

	// Entries were applied to the process environment.
	assert.Equal(t, "hello", os.Getenv("STASH_TEST_ALPHA"))
	assert.Equal(t, "quoted value", os.Getenv("STASH_TEST_BETA"))

	// Comment lines never become entries.
	_, ok := env["# comment line"]
	assert.False(t, ok)
}

func TestLoadEnv_MissingFileReturnsEnviron(t *testing.T) {
	t.Setenv("STASH_TEST_SENTINEL", "present")

	env, err := stash.LoadEnv(filepath.Join(t.TempDir(), "does-not-exist.env"))
	require.NoError(t, err)
	assert.Equal(t, "present", env["STASH_TEST_SENTINEL"])
}

func TestLoadEnv_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("this is not a dotenv line\n"), 0644))

	_, err := stash.LoadEnv(path)
	require.Error(t, err)

	var decErr *stash.DecodeError
	require.ErrorAs(t, err, &decErr)
	assert.Equal(t, "dotenv", decErr.Codec)
}

// chdir changes the working directory for the duration of the test,
// mirroring t.Chdir (testing.T.Chdir requires Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Errorf("restoring working directory: %v", err)
		}
	})
}

func TestGetenv_FileOverridesProcess(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.WriteFile(".env", []byte("STASH_TEST_GAMMA=fromfile\n"), 0644))

	t.Setenv("STASH_TEST_GAMMA", "fromenv")
	t.Setenv("STASH_TEST_DELTA", "envonly")

	assert.Equal(t, "fromfile", stash.Getenv("STASH_TEST_GAMMA"))
	assert.Equal(t, "envonly", stash.Getenv("STASH_TEST_DELTA"))
}

func TestGetenv_NoFile(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("STASH_TEST_EPSILON", "plain")

	assert.Equal(t, "plain", stash.Getenv("STASH_TEST_EPSILON"))
	assert.Equal(t, "", stash.Getenv("STASH_TEST_UNSET"))
}
