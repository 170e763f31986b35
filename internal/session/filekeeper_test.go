package session_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memora/intake/internal/models"
	"github.com/memora/intake/internal/session"
)

func TestFileKeeper_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "identity.json")
	keeper := session.NewFileKeeper(path)

	identity := session.Identity{
		Token: "tok-123",
		User:  models.User{UID: "uid-1", Username: "testuser", CompanyCode: "01"},
	}

	require.NoError(t, keeper.Save(identity))

	got, err := keeper.Load()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, identity.Token, got.Token)
	assert.Equal(t, identity.User.Username, got.User.Username)

	require.NoError(t, keeper.Clear())
	got, err = keeper.Load()
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestFileKeeper_LoadMissingFile(t *testing.T) {
	keeper := session.NewFileKeeper(filepath.Join(t.TempDir(), "nope.json"))

	got, err := keeper.Load()
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestFileKeeper_LoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "identity.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	keeper := session.NewFileKeeper(path)
	got, err := keeper.Load()
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestFileKeeper_LoadEmptyToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "identity.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"token":"","user":{}}`), 0o600))

	keeper := session.NewFileKeeper(path)
	got, err := keeper.Load()
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestFileKeeper_ClearMissingFile(t *testing.T) {
	keeper := session.NewFileKeeper(filepath.Join(t.TempDir(), "nope.json"))
	assert.NoError(t, keeper.Clear())
}
