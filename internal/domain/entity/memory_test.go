package entity

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortPhotoMemories_YearMonthCreatedAt(t *testing.T) {
	memories := []PhotoMemory{
		{ID: "a", Year: 2020, Month: 5, CreatedAt: 100},
		{ID: "b", Year: 2019, Month: 12, CreatedAt: 50},
		{ID: "c", Year: 2020, Month: 5, CreatedAt: 10},
	}

	sorted := SortPhotoMemories(memories)

	ids := make([]string, 0, len(sorted))
	for _, m := range sorted {
		ids = append(ids, m.ID)
	}
	assert.Equal(t, []string{"b", "c", "a"}, ids)
	assert.Equal(t, "a", memories[0].ID, "input must not be reordered")
}

func TestMemoryMap_CloneIsIndependent(t *testing.T) {
	m := MemoryMap{"the-stud": {{ID: "1"}}}
	c := m.Clone()
	c["the-stud"] = append(c["the-stud"], PhotoMemory{ID: "2"})
	c["el-rio"] = nil

	assert.Len(t, m["the-stud"], 1)
	assert.NotContains(t, m, "el-rio")
}

func TestAudioClip_ReleaseRemovesFileOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clip.mp3")
	require.NoError(t, os.WriteFile(path, []byte("ID3"), 0o600))

	clip := &AudioClip{PlaceID: "the-stud", Path: path}
	require.NoError(t, clip.Release())
	require.NoError(t, clip.Release())

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
	assert.NoError(t, (*AudioClip)(nil).Release())
}

func TestDecodeMemoryMap(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
		wantLen int
	}{
		{name: "empty object", body: `{}`, wantLen: 0},
		{name: "object of lists", body: `{"the-stud":[{"id":"1","placeId":"the-stud","caption":"c","year":2019,"month":4,"createdAt":1}],"el-rio":[]}`, wantLen: 2},
		{name: "null document", body: `null`, wantErr: true},
		{name: "array document", body: `[]`, wantErr: true},
		{name: "non-list value", body: `{"the-stud":{"id":"1"}}`, wantErr: true},
		{name: "wrong field type", body: `{"the-stud":[{"year":"2019"}]}`, wantErr: true},
		{name: "not json", body: `memories`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeMemoryMap([]byte(tt.body))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedMemoryMap)

				return
			}
			require.NoError(t, err)
			assert.Len(t, got, tt.wantLen)
		})
	}
}
