package score

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	assert.Equal(t, 120, Parse("120"))
	assert.Equal(t, 0, Parse("0"))
	assert.Equal(t, 0, Parse(""))
	assert.Equal(t, 0, Parse("abc"))
	assert.Equal(t, 0, Parse("-30"))
	assert.Equal(t, 0, Parse("12.5"))
}

func TestFileStoreMissing(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "best.json"))
	assert.Equal(t, 0, s.Load())
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "best.json")
	s := NewFileStore(path)

	require.NoError(t, s.Save(240))
	assert.Equal(t, 240, s.Load())
	assert.Equal(t, 240, NewFileStore(path).Load())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var entries map[string]string
	require.NoError(t, json.Unmarshal(data, &entries))
	assert.Equal(t, "240", entries[Key])
}

func TestFileStoreMalformedValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "best.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"snake_best_v2": "abc"}`), 0644))

	assert.Equal(t, 0, NewFileStore(path).Load())
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "best.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0644))

	s := NewFileStore(path)
	assert.Equal(t, 0, s.Load())

	require.NoError(t, s.Save(50))
	assert.Equal(t, 50, s.Load())
}

func TestFileStoreKeepsOtherKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "best.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"theme": "dark"}`), 0644))

	require.NoError(t, NewFileStore(path).Save(70))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var entries map[string]string
	require.NoError(t, json.Unmarshal(data, &entries))
	assert.Equal(t, map[string]string{"theme": "dark", Key: "70"}, entries)
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	assert.Equal(t, 0, s.Load())

	s.SetRaw("abc")
	assert.Equal(t, 0, s.Load())

	require.NoError(t, s.Save(30))
	assert.Equal(t, 30, s.Load())
}

func TestOpen(t *testing.T) {
	assert.IsType(t, &MemoryStore{}, Open(""))

	path := filepath.Join(t.TempDir(), "best.json")
	fs, ok := Open(path).(*FileStore)
	require.True(t, ok)
	assert.Equal(t, path, fs.Path())
}
