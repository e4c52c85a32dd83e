package cartridge

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadTruncatesOversizedImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "big.gb")
	data := make([]byte, MaxSize+100)
	for i := range data {
		data[i] = byte(i)
	}
	assert.NoError(t, os.WriteFile(path, data, 0o644))

	got, err := Load(path)
	assert.NoError(t, err)
	assert.Len(t, got, MaxSize)
	assert.Equal(t, byte(0), got[0])
	assert.Equal(t, data[MaxSize-1], got[MaxSize-1])
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.gb"))
	assert.Error(t, err)
}

func TestLoadSmallImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "small.gb")
	assert.NoError(t, os.WriteFile(path, []byte{0x3E, 0x42, 0xAF}, 0o644))

	got, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x3E, 0x42, 0xAF}, got)
}
