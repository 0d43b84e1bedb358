package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSeed(t *testing.T) {
	seed := DefaultSeed()

	require.Len(t, seed.Menu, 7)
	assert.Equal(t, "Pizza", seed.Menu[1].Name)
	assert.Equal(t, 32.0, seed.Menu[1].Price)
	require.Len(t, seed.Inventory, 4)
	require.Len(t, seed.Users, 3)
}

func TestLoadSeedOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	content := []byte(`menu:
  - id: 1
    name: "Shawarma"
    price: 14.5
    category: "Main"
    img: "http://example.com/shawarma.jpg"
users:
  - username: "boss"
    password: "secret"
    role: "ADMIN"
`)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	seed, err := LoadSeed(path)

	require.NoError(t, err)
	require.Len(t, seed.Menu, 1)
	assert.Equal(t, "Shawarma", seed.Menu[0].Name)
	assert.Equal(t, 14.5, seed.Menu[0].Price)
	assert.Equal(t, "http://example.com/shawarma.jpg", seed.Menu[0].ImageURL)
	// sections absent from the file keep the defaults
	require.Len(t, seed.Inventory, 4)
	require.Len(t, seed.Users, 1)
	assert.Equal(t, "boss", seed.Users[0].Username)
}

func TestLoadSeedErrors(t *testing.T) {
	_, err := LoadSeed(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("menu: [whoops"), 0o644))
	_, err = LoadSeed(path)
	assert.Error(t, err)
}
