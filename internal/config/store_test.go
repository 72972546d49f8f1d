package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_RoundTrip(t *testing.T) {
	shared := filepath.Join(t.TempDir(), ".donegen", "store.yaml")
	local := filepath.Join(t.TempDir(), LocalStoreName)

	s, err := OpenStore(shared, local)
	require.NoError(t, err)
	assert.Equal(t, shared, s.Path())
	assert.Empty(t, s.Keys())

	s.Set("authorName", "Jane")
	s.Set("authorEmail", "jane@example.com")
	require.NoError(t, s.Save())

	reopened, err := OpenStore(shared, local)
	require.NoError(t, err)
	v, ok := reopened.Get("authorName")
	assert.True(t, ok)
	assert.Equal(t, "Jane", v)
	assert.Equal(t, []string{"authorEmail", "authorName"}, reopened.Keys())
}

func TestStore_FallsBackOnPermissionError(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced")
	}

	readOnly := t.TempDir()
	require.NoError(t, os.Chmod(readOnly, 0o555))
	t.Cleanup(func() { _ = os.Chmod(readOnly, 0o755) })

	shared := filepath.Join(readOnly, "store.yaml")
	local := filepath.Join(t.TempDir(), LocalStoreName)

	s, err := OpenStore(shared, local)
	require.NoError(t, err)
	assert.Equal(t, local, s.Path())
}

func TestStore_OtherErrorsAreReturned(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	// A regular file where a directory is expected is not a permission problem.
	_, err := OpenStore(filepath.Join(blocker, "store.yaml"), filepath.Join(dir, LocalStoreName))
	assert.Error(t, err)
}

func TestStore_MalformedFileIsIgnored(t *testing.T) {
	shared := filepath.Join(t.TempDir(), "store.yaml")
	require.NoError(t, os.WriteFile(shared, []byte("answers: [oops"), 0o644))

	s, err := OpenStore(shared, "")
	require.NoError(t, err)
	assert.Empty(t, s.Keys())
}
