package registry

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T, contents string) (*Registry, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "users.txt")
	if contents != "" {
		require.NoError(t, os.WriteFile(path, []byte(contents), 0600))
	}

	reg, err := New(path)
	require.NoError(t, err)
	return reg, path
}

func storedNames(t *testing.T, path string) []string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	names := strings.Fields(string(data))
	sort.Strings(names)
	return names
}

func TestNewLoadsExistingStore(t *testing.T) {
	reg, _ := newTestRegistry(t, "fake_user ")

	assert.Equal(t, 1, reg.Len())
	assert.True(t, reg.Contains("fake_user"))
}

func TestNewMissingStoreStartsEmpty(t *testing.T) {
	reg, err := New(filepath.Join(t.TempDir(), "does-not-exist.txt"))
	require.NoError(t, err)

	assert.Equal(t, 0, reg.Len())
	assert.Empty(t, reg.List())
}

func TestAddPersistsImmediately(t *testing.T) {
	reg, path := newTestRegistry(t, "fake_user ")

	added, err := reg.Add("new_user")
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, []string{"fake_user", "new_user"}, storedNames(t, path))
}

func TestAddDuplicateIsNoOp(t *testing.T) {
	reg, path := newTestRegistry(t, "fake_user ")

	added, err := reg.Add("fake_user")
	require.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, []string{"fake_user"}, storedNames(t, path))
}

func TestRemoveMissingLeavesStoreUnchanged(t *testing.T) {
	reg, path := newTestRegistry(t, "fake_user ")

	removed, err := reg.Remove("user_not_in_our_list")
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Equal(t, []string{"fake_user"}, storedNames(t, path))
}

func TestRemovePersistsImmediately(t *testing.T) {
	reg, path := newTestRegistry(t, "fake_user ")

	_, err := reg.Add("new_user")
	require.NoError(t, err)

	removed, err := reg.Remove("new_user")
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, []string{"fake_user"}, storedNames(t, path))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	reg, path := newTestRegistry(t, "")

	for _, name := range []string{"carol", "alice", "bob"} {
		_, err := reg.Add(name)
		require.NoError(t, err)
	}

	reloaded, err := New(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob", "carol"}, reloaded.List())
}

func TestListIsSorted(t *testing.T) {
	reg, _ := newTestRegistry(t, "zeta alpha mid ")

	assert.Equal(t, []string{"alpha", "mid", "zeta"}, reg.List())
}
