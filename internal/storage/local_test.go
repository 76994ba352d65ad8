package storage

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func uploadHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("photo", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req, err := http.NewRequest(http.MethodPost, "/api/uploads", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["photo"][0]
}

func TestSaveWritesFileAndReturnsURL(t *testing.T) {
	require := require.New(t)
	dir := t.TempDir()

	store, err := NewLocalStore(dir, "/uploads/")
	require.NoError(err)

	url, err := store.Save(uploadHeader(t, "street.JPG", []byte("jpegdata")))
	require.NoError(err)
	require.True(strings.HasPrefix(url, "/uploads/"))
	require.True(strings.HasSuffix(url, ".jpg"))

	data, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(url, "/uploads/")))
	require.NoError(err)
	require.Equal([]byte("jpegdata"), data)
}

func TestSaveRejectsUnknownExtension(t *testing.T) {
	require := require.New(t)
	store, err := NewLocalStore(t.TempDir(), "/uploads")
	require.NoError(err)

	_, err = store.Save(uploadHeader(t, "payload.exe", []byte("nope")))
	require.ErrorIs(err, ErrUnsupportedType)
}

func TestSaveNamesAreUnique(t *testing.T) {
	require := require.New(t)
	store, err := NewLocalStore(t.TempDir(), "/uploads")
	require.NoError(err)

	a, err := store.Save(uploadHeader(t, "one.png", []byte("a")))
	require.NoError(err)
	b, err := store.Save(uploadHeader(t, "one.png", []byte("b")))
	require.NoError(err)
	require.NotEqual(a, b)
}
