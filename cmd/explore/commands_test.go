package main

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageSize(t *testing.T) {
	payload := make([]byte, 300)
	dataURL := "data:image/png;base64," + base64.StdEncoding.EncodeToString(payload)

	assert.Equal(t, int64(300), imageSize(dataURL))
	assert.Equal(t, int64(0), imageSize(""))
}

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "clip.mp3")
	dst := filepath.Join(dir, "kept.mp3")
	require.NoError(t, os.WriteFile(src, []byte("ID3audio"), 0o600))

	require.NoError(t, copyFile(src, dst))

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "ID3audio", string(got))

	assert.Error(t, copyFile(filepath.Join(dir, "missing.mp3"), dst))
}
