package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads/")
	require.NoError(t, err)

	key, err := s.Upload(ctx, strings.NewReader("surat tugas"), "clarifications/1985/bukti.pdf", "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, "clarifications/1985/bukti.pdf", key)

	ok, err := s.Exists(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)

	rc, err := s.Download(ctx, key)
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	rc.Close()
	require.NoError(t, err)
	assert.Equal(t, "surat tugas", string(data))

	url, err := s.GetURL(ctx, key, 0)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/clarifications/1985/bukti.pdf", url)

	require.NoError(t, s.Delete(ctx, key))
	require.NoError(t, s.Delete(ctx, key))

	_, err = s.Download(ctx, key)
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestLocalStorage_RejectsTraversal(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocalStorage(t.TempDir(), "/uploads")
	require.NoError(t, err)

	for _, path := range []string{"../secret.txt", "a/../../secret.txt", "", ".."} {
		_, err := s.Upload(ctx, strings.NewReader("x"), path, "text/plain")
		assert.ErrorIs(t, err, ErrInvalidPath, path)
	}

	// Leading slashes are treated as relative keys
	key, err := s.Upload(ctx, strings.NewReader("x"), "/leaves/surat.pdf", "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, "leaves/surat.pdf", key)
}
