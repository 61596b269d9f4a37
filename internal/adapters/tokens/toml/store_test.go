package toml

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/paws-quests-cli/internal/domain"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreSaveThenLoadAfterRestart(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tokens.toml")

	first := newTestStore(t, path, nil)
	_, err := first.Load(context.Background())
	require.NoError(t, err)
	require.NoError(t, first.Save(context.Background(), "1001", "token-a"))
	require.NoError(t, first.Save(context.Background(), "1002", "token-b"))

	restarted := newTestStore(t, path, nil)
	tokens, err := restarted.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[domain.UserID]domain.Token{
		"1001": "token-a",
		"1002": "token-b",
	}, tokens)

	token, ok := restarted.Lookup("1001")
	require.True(t, ok)
	assert.Equal(t, domain.Token("token-a"), token)
}

func TestStoreSaveReplacesExistingToken(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tokens.toml")
	store := newTestStore(t, path, nil)

	require.NoError(t, store.Save(context.Background(), "1001", "old"))
	require.NoError(t, store.Save(context.Background(), "1001", "new"))

	entries := store.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, domain.CachedToken{UserID: "1001", Token: "new"}, entries[0])

	tokens, err := newTestStore(t, path, nil).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[domain.UserID]domain.Token{"1001": "new"}, tokens)
}

func TestStoreSaveKeepsEntriesFromDiskWithoutExplicitLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tokens.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 1\n\n[tokens]\n1001 = 'kept'\n"), 0o600))

	store := newTestStore(t, path, nil)
	require.NoError(t, store.Save(context.Background(), "1002", "added"))

	tokens, err := newTestStore(t, path, nil).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[domain.UserID]domain.Token{"1001": "kept", "1002": "added"}, tokens)
}

func TestStoreLoadTreatsMissingFileAsEmpty(t *testing.T) {
	t.Parallel()

	store := newTestStore(t, filepath.Join(t.TempDir(), "missing", "tokens.toml"), nil)

	tokens, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tokens)
}

func TestStoreLoadTreatsCorruptFileAsEmpty(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		content string
	}{
		{name: "not toml", content: "{{{ this is not toml"},
		{name: "json cache", content: `{"1001":"token"}`},
		{name: "future version", content: "version = 9\n\n[tokens]\n1001 = 'x'\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tokens.toml")
			require.NoError(t, os.WriteFile(path, []byte(tc.content), 0o600))

			logs := &bytes.Buffer{}
			store := newTestStore(t, path, logs)

			tokens, err := store.Load(context.Background())
			require.NoError(t, err)
			assert.Empty(t, tokens)
			assert.Contains(t, logs.String(), "ignoring unreadable token cache")
		})
	}
}

func TestStoreWritesPrivateFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "cache", "tokens.toml")
	store := newTestStore(t, path, nil)

	require.NoError(t, store.Save(context.Background(), "1001", "token-a"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(tokensFileMode), info.Mode().Perm())

	leftovers, err := filepath.Glob(filepath.Join(filepath.Dir(path), ".tokens-*.toml.tmp"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestStoreKeepsTokenInMemoryWhenPersistFails(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	blocker := filepath.Join(root, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("file, not a directory"), 0o600))

	store := newTestStore(t, filepath.Join(blocker, "tokens.toml"), nil)

	err := store.Save(context.Background(), "1001", "token-a")
	require.Error(t, err)
	assert.ErrorContains(t, err, "create token cache directory")

	token, ok := store.Lookup("1001")
	require.True(t, ok)
	assert.Equal(t, domain.Token("token-a"), token)
}

func TestStoreRejectsEmptyUserID(t *testing.T) {
	t.Parallel()

	store := newTestStore(t, filepath.Join(t.TempDir(), "tokens.toml"), nil)

	err := store.Save(context.Background(), "  ", "token")
	require.Error(t, err)
	assert.ErrorContains(t, err, "token user id is empty")
}

func TestNewStoreUsesDefaultFileName(t *testing.T) {
	t.Parallel()

	store, err := NewStore("  ", nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultFileName, filepath.Base(store.Path()))
	assert.True(t, filepath.IsAbs(store.Path()))
}

func newTestStore(t *testing.T, path string, logs *bytes.Buffer) *Store {
	t.Helper()

	var logger *log.Logger
	if logs != nil {
		logger = log.NewWithOptions(logs, log.Options{Level: log.DebugLevel})
	}

	store, err := NewStore(path, logger)
	require.NoError(t, err)
	return store
}
